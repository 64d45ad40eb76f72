package example

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new example instance.
type Factory func() Example

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes an example available under name.
// It is typically called from init in the example's package.
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("example: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("example: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes name from the registry. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a fresh instance of the example registered as name.
func New(name string) (Example, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("example: unknown example %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Names returns the registered example names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
