package query

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/npillmayer/uistyle/colors"
	"github.com/npillmayer/uistyle/element"
	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
)

// DefaultCacheSize is the number of query results an engine caches by default.
const DefaultCacheSize = 500

// result is a cached query outcome. properties is nil for "no match".
// chain is the chain the result was computed for, used to confirm cache hits.
type result struct {
	chain      element.Chain
	properties *style.Properties
	matched    []*rules.Rule
}

// Engine executes queries against a rule set. An Engine is safe for
// concurrent use.
type Engine struct {
	mx         sync.Mutex
	rules      *rules.Set
	colors     *colors.Registry
	cacheSize  int
	cache      *lru.Cache[uint64, result]
	generation uint64
	matchCount int // number of rule set matches performed
}

// Option configures an Engine.
type Option func(*Engine)

// WithCacheSize sets the maximum number of cached query results.
// Values < 1 are ignored.
func WithCacheSize(n int) Option {
	return func(eng *Engine) {
		if n > 0 {
			eng.cacheSize = n
		}
	}
}

// WithColors sets the registry used to resolve color expressions.
func WithColors(reg *colors.Registry) Option {
	return func(eng *Engine) {
		eng.colors = reg
	}
}

// NewEngine creates an engine for a rule set.
func NewEngine(rs *rules.Set, opts ...Option) *Engine {
	if rs == nil {
		rs = rules.NewSet("")
	}
	eng := &Engine{rules: rs, cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.colors == nil {
		eng.colors = colors.NewRegistry()
	}
	cache, err := lru.NewWithEvict(eng.cacheSize, func(key uint64, _ result) {
		tracer().Debugf("evicted query result %x", key)
	})
	if err != nil { // only for size <= 0
		panic(err)
	}
	eng.cache = cache
	eng.generation = rs.Generation()
	return eng
}

// Rules returns the rule set of the engine.
func (eng *Engine) Rules() *rules.Set {
	return eng.rules
}

// Colors returns the color registry of the engine.
func (eng *Engine) Colors() *colors.Registry {
	return eng.colors
}

// NewQuery creates a query with an empty element chain.
func (eng *Engine) NewQuery() *Query {
	return &Query{engine: eng}
}

// CacheLen returns the number of cached results.
func (eng *Engine) CacheLen() int {
	return eng.cache.Len()
}

// Purge drops all cached results.
func (eng *Engine) Purge() {
	eng.mx.Lock()
	defer eng.mx.Unlock()
	eng.cache.Purge()
}

// lookup returns the cached result for chain, computing and caching it if
// absent. Lookup and insertion happen under a single lock. Fingerprints
// may collide, so a hit counts only if the cached chain equals chain.
func (eng *Engine) lookup(chain element.Chain) result {
	key := chain.Fingerprint()
	eng.mx.Lock()
	defer eng.mx.Unlock()
	if gen := eng.rules.Generation(); gen != eng.generation {
		tracer().Infof("rule set %q changed, dropping %d cached results", eng.rules.Name(), eng.cache.Len())
		eng.cache.Purge()
		eng.generation = gen
	}
	if r, ok := eng.cache.Get(key); ok {
		if r.chain.Equal(chain) {
			tracer().Debugf("query cache hit for %x", key)
			return r
		}
		tracer().Infof("fingerprint %x collides for %s and %s", key, r.chain, chain)
	}
	r := eng.resolve(chain.Clone())
	eng.cache.Add(key, r)
	return r
}

// resolve matches chain against the rule set and merges the property trees
// of the matching rules, most specific first.
func (eng *Engine) resolve(chain element.Chain) result {
	eng.matchCount++
	matched := eng.rules.Match(chain)
	tracer().Debugf("%d rules match %s", len(matched), chain)
	if len(matched) == 0 {
		return result{chain: chain}
	}
	props := style.New()
	for _, r := range matched {
		props.Resolve(r.Properties)
	}
	return result{chain: chain, properties: props, matched: matched}
}
