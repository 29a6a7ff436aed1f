package colors

import (
	"errors"
	"image/color"
	"sync"

	"github.com/npillmayer/uistyle/maybe"
)

// Provider resolves the arguments of a custom color expression to a color.
type Provider func(args []string) maybe.Maybe[color.RGBA]

// ErrEmptyProviderName is returned when registering a provider without a name.
var ErrEmptyProviderName = errors.New("color provider name must not be empty")

// ErrNilProvider is returned when registering a nil provider.
var ErrNilProvider = errors.New("color provider must not be nil")

// Registry maps source names to color providers. A Registry is safe for
// concurrent use.
type Registry struct {
	sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider for a source name, replacing a provider of the
// same name.
func (reg *Registry) Register(name string, p Provider) error {
	if name == "" {
		return ErrEmptyProviderName
	}
	if p == nil {
		return ErrNilProvider
	}
	reg.Lock()
	defer reg.Unlock()
	if reg.providers == nil {
		reg.providers = make(map[string]Provider)
	}
	if _, exists := reg.providers[name]; exists {
		tracer().Infof("replacing color provider %q", name)
	}
	reg.providers[name] = p
	return nil
}

// Provider looks up a provider by name. The nil registry has no providers.
func (reg *Registry) Provider(name string) (Provider, bool) {
	if reg == nil {
		return nil, false
	}
	reg.RLock()
	defer reg.RUnlock()
	p, ok := reg.providers[name]
	return p, ok
}
