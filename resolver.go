package skein

import (
	"errors"
	"fmt"
)

// Get resolves id, failing with *NotFoundError if it was never explicitly
// bound. This is the strict entry point: callers that want auto-binding use
// Make instead.
func (c *Skein) Get(id string) (any, error) {
	if err := c.observers.beforeResolve(id); err != nil {
		return nil, err
	}

	instance, err := c.doGet(id)

	if obsErr := c.observers.afterResolve(id, instance, err); obsErr != nil {
		return nil, obsErr
	}

	return instance, err
}

// doGet runs the strict lookup under the container lock. The deferred unlock
// keeps the container usable even when a constructor panics.
func (c *Skein) doGet(id string) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.bindings[id]; !ok {
		return nil, &NotFoundError{Abstract: id}
	}

	return c.resolve(id, resolveSettings{})
}

// Make resolves id, self-binding it first if it was never bound. Any
// identifier with a constructible descriptor and resolvable dependencies can
// be made without a prior Bind call.
func (c *Skein) Make(id string) (any, error) {
	return c.MakeWith(id, nil)
}

// MakeWith resolves id, binding it to concrete first if it was never bound.
// An existing binding is left untouched.
func (c *Skein) MakeWith(id string, concrete any) (any, error) {
	if err := c.observers.beforeResolve(id); err != nil {
		return nil, err
	}

	instance, err := c.doMake(id, concrete)

	if obsErr := c.observers.afterResolve(id, instance, err); obsErr != nil {
		return nil, obsErr
	}

	return instance, err
}

func (c *Skein) doMake(id string, concrete any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.bindings[id]; !ok {
		if concrete == nil {
			concrete = id
		}

		c.bindings[id] = &Binding{Abstract: id, Concrete: concrete}
	}

	return c.resolve(id, resolveSettings{})
}

// Resolve resolves an identifier or invokes a Factory directly.
//
// A Factory target is invoked with its own parameters dependency-resolved
// and its result returned as-is, uncached. There is no identifier to report
// or cache under, so a Factory target also bypasses observer hooks and
// ignores resolve options. An identifier target follows the binding's
// lifecycle (unbound identifiers resolve as transient self-bindings);
// AsSingleton forces the singleton path and WithMethod returns the named
// method's result instead of the instance.
func (c *Skein) Resolve(target any, opts ...ResolveOption) (any, error) {
	settings := applyResolveOptions(opts)

	switch t := target.(type) {
	case Factory:
		return c.doFactory(t)

	case string:
		if err := c.observers.beforeResolve(t); err != nil {
			return nil, err
		}

		instance, err := c.doResolve(t, settings)

		if obsErr := c.observers.afterResolve(t, instance, err); obsErr != nil {
			return nil, obsErr
		}

		return instance, err

	default:
		return nil, &UnresolvableBindingError{
			Concrete: fmt.Sprintf("%T", target),
			Cause:    errors.New("resolve target must be an identifier or a Factory"),
		}
	}
}

func (c *Skein) doFactory(f Factory) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.invokeFactory("factory", f)
}

func (c *Skein) doResolve(id string, settings resolveSettings) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.resolve(id, settings)
}

// resolve is the engine entry point. The caller holds c.mu. The lifecycle
// defaults to the binding's flag so that singleton bindings stay canonical
// through every public surface.
func (c *Skein) resolve(id string, settings resolveSettings) (any, error) {
	b := c.bindings[id]
	singleton := settings.forceSingleton || (b != nil && b.Singleton)

	instance, hit := any(nil), false
	if singleton {
		instance, hit = c.cache.singleton(id)
	}

	if !hit {
		var err error

		instance, err = c.construct(id, b, singleton)
		if err != nil {
			return nil, err
		}
	}

	if settings.method != "" {
		return c.call(id, b, instance, settings.method)
	}

	return instance, nil
}

// construct builds one fresh instance for id and stores it under id per its
// lifecycle. The resolution chain is extended for the duration of the build.
func (c *Skein) construct(id string, b *Binding, singleton bool) (any, error) {
	if err := c.enter(id); err != nil {
		return nil, err
	}
	defer c.leave()

	instance, err := c.buildInstance(id, b)
	if err != nil {
		return nil, err
	}

	c.cache.storeFor(id, instance, singleton)

	return instance, nil
}

// buildInstance builds an instance following the binding's concrete target.
// The caller has pushed id onto the resolution chain.
func (c *Skein) buildInstance(id string, b *Binding) (any, error) {
	concrete := any(id)
	if b != nil {
		concrete = b.Concrete
	}

	switch target := concrete.(type) {
	case Factory:
		return c.invokeFactory(id, target)
	case string:
		return c.buildType(target)
	default:
		return nil, &UnresolvableBindingError{
			Concrete: id,
			Cause:    fmt.Errorf("unsupported concrete target %T", concrete),
		}
	}
}

// buildType constructs an instance of the named type. A previously cached
// instance under the concrete key means the type was constructible before,
// so the default-valued fast path is tried first; its failure is silent and
// drops through to the full descriptor walk.
func (c *Skein) buildType(name string) (any, error) {
	if c.cache.has(name) {
		if instance, ok := c.tryFastConstruct(name); ok {
			c.cache.storeTransient(name, instance)

			return instance, nil
		}
	}

	desc, ok := c.types.lookup(name)
	if !ok {
		return nil, &UnresolvableBindingError{Concrete: name, Cause: errors.New("no descriptor registered")}
	}

	if desc.Abstract || desc.New == nil {
		return nil, &NonInstantiableBindingError{Concrete: name}
	}

	args, err := c.resolveParams(name, desc.Params)
	if err != nil {
		return nil, err
	}

	instance, err := desc.New(args)
	if err != nil {
		return nil, &UnresolvableBindingError{Concrete: name, Cause: err}
	}

	c.cache.storeTransient(name, instance)

	return instance, nil
}

// tryFastConstruct attempts the default-valued construction path for the
// named type. It never reports an error: a false result sends the caller
// down the full walk.
func (c *Skein) tryFastConstruct(name string) (any, bool) {
	desc, ok := c.types.lookup(name)
	if !ok || !desc.fastConstructible() {
		return nil, false
	}

	args := make([]any, len(desc.Params))
	for i, p := range desc.Params {
		args[i] = p.Default
	}

	instance, err := desc.New(args)
	if err != nil {
		return nil, false
	}

	return instance, true
}

// invokeFactoryChained invokes f with name on the resolution chain, so a
// factory looping back to its own binding fails fast. The chain entry is
// popped even if the factory panics.
func (c *Skein) invokeFactoryChained(name string, f Factory) (any, error) {
	if err := c.enter(name); err != nil {
		return nil, err
	}
	defer c.leave()

	return c.invokeFactory(name, f)
}

// invokeFactory resolves the factory's declared parameters and invokes it.
func (c *Skein) invokeFactory(owner string, f Factory) (any, error) {
	if f.Fn == nil {
		return nil, &UnresolvableBindingError{Concrete: owner, Cause: errors.New("factory has no function")}
	}

	args, err := c.resolveParams(owner, f.Params)
	if err != nil {
		return nil, err
	}

	instance, err := f.Fn(args)
	if err != nil {
		return nil, &UnresolvableBindingError{Concrete: owner, Cause: err}
	}

	return instance, nil
}

// call resolves the named method's parameters and invokes it on instance.
func (c *Skein) call(id string, b *Binding, instance any, method string) (any, error) {
	name := c.concreteName(id, b)

	desc, ok := c.types.lookup(name)
	if !ok {
		return nil, &UnresolvableBindingError{
			Concrete: name,
			Cause:    fmt.Errorf("no descriptor registered for method %q", method),
		}
	}

	m, ok := desc.Methods[method]
	if !ok || m.Call == nil {
		return nil, &UnresolvableBindingError{
			Concrete: name,
			Cause:    fmt.Errorf("method %q is not described", method),
		}
	}

	args, err := c.resolveParams(name+"."+method, m.Params)
	if err != nil {
		return nil, err
	}

	out, err := m.Call(instance, args)
	if err != nil {
		return nil, &UnresolvableBindingError{Concrete: name, Cause: err}
	}

	return out, nil
}

// resolveParams turns a declared parameter list into argument values, in
// declaration order.
func (c *Skein) resolveParams(owner string, params []Param) ([]any, error) {
	args := make([]any, len(params))

	for i, p := range params {
		v, err := c.resolveParam(owner, i, p)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	return args, nil
}

// resolveParam is the dependency-walk: one declared parameter to one
// argument value.
func (c *Skein) resolveParam(owner string, pos int, p Param) (any, error) {
	// Untyped and built-in parameters can only be satisfied by defaults.
	if p.Type == "" {
		if p.HasDefault {
			return p.Default, nil
		}

		return nil, &UnresolvableMissingTypeError{Owner: owner, Position: pos}
	}

	if p.builtin() {
		if p.HasDefault {
			return p.Default, nil
		}

		return nil, &UnresolvableBuiltInTypeError{Owner: owner, Position: pos, Type: p.Type}
	}

	name := p.Type
	b := c.bindings[name]

	// Unbound optional services fall back to their default.
	if b == nil && p.HasDefault {
		return p.Default, nil
	}

	if b != nil {
		if f, ok := b.Concrete.(Factory); ok {
			if b.Singleton {
				if v, ok := c.cache.singleton(name); ok {
					return v, nil
				}
			}

			v, err := c.invokeFactoryChained(name, f)
			if err != nil {
				return nil, err
			}

			c.cache.storeFor(name, v, b.Singleton)

			return v, nil
		}

		if b.Singleton {
			if v, ok := c.cache.singleton(name); ok {
				return v, nil
			}
		} else if _, ok := c.cache.transient(name); ok {
			// Transient eager-reuse: retry the default-valued path of the
			// concrete type; failure is silent.
			if v, ok := c.tryFastConstruct(c.concreteName(name, b)); ok {
				c.cache.storeTransient(name, v)

				return v, nil
			}
		}
	}

	// Full recursive resolution; unbound names resolve as self-bindings.
	return c.resolve(name, resolveSettings{})
}

// concreteName maps an identifier to its concrete type name where the
// binding provides one.
func (c *Skein) concreteName(id string, b *Binding) string {
	if b != nil {
		if s, ok := b.Concrete.(string); ok {
			return s
		}
	}

	return id
}

// enter pushes id onto the resolution chain, failing if it is already
// active.
func (c *Skein) enter(id string) error {
	for _, active := range c.resolving {
		if active == id {
			chain := make([]string, 0, len(c.resolving)+1)
			chain = append(chain, c.resolving...)
			chain = append(chain, id)

			return &CircularDependencyError{Chain: chain}
		}
	}

	c.resolving = append(c.resolving, id)

	return nil
}

func (c *Skein) leave() {
	c.resolving = c.resolving[:len(c.resolving)-1]
}
