package skein

import "fmt"

// Lazy defers resolution of an identifier until first use. The first Get
// resolves through the container and memoizes the result, error included.
//
// A Lazy value is not safe for concurrent use; hand each goroutine its own,
// or resolve eagerly instead.
type Lazy struct {
	container *Skein
	id        string
	resolved  bool
	value     any
	err       error
}

// NewLazy creates a deferred handle for id.
func NewLazy(c *Skein, id string) *Lazy {
	return &Lazy{container: c, id: id}
}

// Get resolves the identifier and returns the memoized result thereafter.
func (l *Lazy) Get() (any, error) {
	if l.resolved {
		return l.value, l.err
	}

	l.value, l.err = l.container.Resolve(l.id)
	l.resolved = true

	return l.value, l.err
}

// MustGet resolves the identifier and panics on error.
func (l *Lazy) MustGet() any {
	value, err := l.Get()
	if err != nil {
		panic(fmt.Sprintf("lazy dependency %s failed: %v", l.id, err))
	}

	return value
}

// IsResolved reports whether Get has run.
func (l *Lazy) IsResolved() bool {
	return l.resolved
}

// Name returns the identifier the handle resolves.
func (l *Lazy) Name() string {
	return l.id
}
