package skein

// Binding maps an abstract identifier to its concrete target.
type Binding struct {
	// Abstract is the identifier the binding is registered under.
	Abstract string

	// Concrete is either an identifier naming a registered type, or a
	// Factory whose return value serves as the resolved instance.
	Concrete any

	// Singleton marks the binding as resolve-once.
	Singleton bool
}

// Bind registers abstract as a transient binding for concrete. A nil
// concrete binds abstract to itself, which is how a concrete type with no
// interface is registered. Rebinding the same abstract overwrites the prior
// binding. Returns the container for chaining.
func (c *Skein) Bind(abstract string, concrete any) *Skein {
	return c.addBinding(abstract, concrete, false)
}

// Singleton registers abstract as a singleton binding for concrete: exactly
// one instance is created and reused across all resolutions. A nil concrete
// binds abstract to itself. Returns the container for chaining.
func (c *Skein) Singleton(abstract string, concrete any) *Skein {
	return c.addBinding(abstract, concrete, true)
}

// Instance registers a pre-built value under abstract as an already-resolved
// singleton. Returns the container for chaining.
func (c *Skein) Instance(abstract string, value any) *Skein {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bindings[abstract] = &Binding{Abstract: abstract, Concrete: abstract, Singleton: true}
	c.cache.replaceSingleton(abstract, value)

	return c
}

func (c *Skein) addBinding(abstract string, concrete any, singleton bool) *Skein {
	if concrete == nil {
		concrete = abstract
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bindings[abstract] = &Binding{Abstract: abstract, Concrete: concrete, Singleton: singleton}

	return c
}

// Has reports whether an explicit binding exists for id. It says nothing
// about whether id is resolvable: Make can resolve described types that were
// never bound.
func (c *Skein) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.bindings[id]

	return ok
}

// GetBinding returns the binding registered for id, or nil if id is unbound.
// The returned value is a copy; mutating it does not affect the registry.
func (c *Skein) GetBinding(id string) *Binding {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.bindings[id]
	if !ok {
		return nil
	}

	cp := *b

	return &cp
}

// GetBindings returns a copy of the whole binding registry.
func (c *Skein) GetBindings() map[string]Binding {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]Binding, len(c.bindings))
	for id, b := range c.bindings {
		out[id] = *b
	}

	return out
}

// GetConcreteBinding returns the concrete target bound to id: an identifier
// string, a Factory, or nil if id is unbound.
func (c *Skein) GetConcreteBinding(id string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	b, ok := c.bindings[id]
	if !ok {
		return nil
	}

	return b.Concrete
}
