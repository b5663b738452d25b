// Package skein is a runtime dependency injection container. It maps
// abstract service identifiers to concrete implementations and builds whole
// object graphs on demand by walking declared parameter lists.
//
// Unlike reflection-based containers, skein never inspects live call
// signatures: every registrable type carries an explicit Descriptor of its
// ordered constructor parameters, and factories declare their parameters the
// same way. The resolver consumes those descriptors to wire dependencies
// recursively.
//
// Basic usage:
//
//	c := skein.New()
//	c.RegisterType(skein.Descriptor{
//	    Name: "FileLogger",
//	    New:  func(args []any) (any, error) { return &FileLogger{}, nil },
//	})
//	c.Singleton("Logger", "FileLogger")
//
//	logger, err := c.Get("Logger")
package skein

import "sync"

// ContainerInterface is the minimal container capability contract: report
// whether an identifier is bound, and resolve it or fail. *Skein satisfies
// it, so the container can be consumed interchangeably wherever this generic
// capability is expected.
type ContainerInterface interface {
	// Has reports whether an explicit binding exists for id.
	Has(id string) bool

	// Get resolves id, failing if it was never bound.
	Get(id string) (any, error)
}

// Skein is the dependency injection container: a binding registry, a
// resolved-instance cache, a type descriptor registry, and the recursive
// resolver that ties them together.
//
// A Skein value is safe for concurrent use; a single mutex guards the
// registry, the caches, and the active resolution chain. Descriptor
// constructors and factory functions must not call back into the container:
// they receive their dependencies fully resolved.
type Skein struct {
	mu sync.RWMutex

	bindings  map[string]*Binding
	cache     *instanceCache
	types     *typeRegistry
	observers *observerChain

	// identifiers on the active resolution chain, checked to fail fast
	// on circular bindings
	resolving []string
}

var _ ContainerInterface = (*Skein)(nil)

// New creates an empty container.
func New() *Skein {
	return &Skein{
		bindings:  make(map[string]*Binding),
		cache:     newInstanceCache(),
		types:     newTypeRegistry(),
		observers: newObserverChain(),
	}
}
