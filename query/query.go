package query

import (
	"image/color"

	"github.com/npillmayer/uistyle/colors"
	"github.com/npillmayer/uistyle/element"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/npillmayer/uistyle/rules"
	"github.com/npillmayer/uistyle/style"
)

// Query resolves the properties of a single element chain. A Query is not
// safe for concurrent use; create one query per goroutine.
type Query struct {
	engine   *Engine
	chain    element.Chain
	result   result
	executed bool
}

// SetElements sets the element chain to query, root first. The chain is
// copied. Results of a previous execution are discarded.
func (q *Query) SetElements(chain element.Chain) {
	q.chain = append(element.Chain(nil), chain...)
	q.result = result{}
	q.executed = false
}

// Elements returns the element chain of the query.
func (q *Query) Elements() element.Chain {
	return q.chain
}

// Execute runs the query and reports wether any rule matched.
func (q *Query) Execute() bool {
	q.result = q.engine.lookup(q.chain)
	q.executed = true
	return q.result.properties != nil
}

// Properties returns the merged property tree of the last execution, or an
// empty tree if nothing matched. Every call returns a fresh copy; clients
// may modify it without affecting the cache.
func (q *Query) Properties() *style.Properties {
	props := style.New()
	props.Resolve(q.result.properties)
	return props
}

// MatchedRules returns the rules which matched in the last execution, most
// specific first.
func (q *Query) MatchedRules() []*rules.Rule {
	return append([]*rules.Rule(nil), q.result.matched...)
}

// Executed reports wether Execute has been called since the last call to
// SetElements.
func (q *Query) Executed() bool {
	return q.executed
}

// Color resolves a color expression with the engine's color registry.
func (q *Query) Color(x colors.Expr) maybe.Maybe[color.RGBA] {
	return x.Resolve(q.engine.colors)
}

// ColorOf resolves an optional color property, as found in a property tree.
func (q *Query) ColorOf(prop maybe.Maybe[colors.Expr]) maybe.Maybe[color.RGBA] {
	return maybe.AndThen(q.Color, prop)
}
