package skein

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/multierr"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// Verify statically checks the whole registry without instantiating
// anything: every binding must lead to a constructible target, every
// declared parameter must be satisfiable, and the dependency graph must be
// acyclic. All findings are aggregated into the returned error; a nil
// result means every bound identifier would resolve.
func (c *Skein) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.bindings))
	for id := range c.bindings {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	v := &verifier{c: c, states: make(map[string]visitState)}
	for _, id := range ids {
		v.visit(id, nil)
	}

	return v.errs
}

// verifier walks the binding graph depth-first, validating each node once
// and recording cycles through the active chain.
type verifier struct {
	c      *Skein
	states map[string]visitState
	errs   error
}

func (v *verifier) visit(id string, chain []string) {
	switch v.states[id] {
	case visiting:
		cycle := make([]string, 0, len(chain)+1)
		cycle = append(cycle, chain...)
		cycle = append(cycle, id)
		v.fail(&CircularDependencyError{Chain: cycle})

		return
	case visited:
		return
	}

	v.states[id] = visiting
	chain = append(chain, id)

	for _, dep := range v.deps(id) {
		v.visit(dep, chain)
	}

	v.states[id] = visited
}

// deps validates id's concrete target and returns the identifiers it will
// resolve through the container.
func (v *verifier) deps(id string) []string {
	// An already-resolved singleton needs no construction path; Instance
	// registrations land here.
	if _, ok := v.c.cache.singleton(id); ok {
		return nil
	}

	b := v.c.bindings[id]

	concrete := any(id)
	if b != nil {
		concrete = b.Concrete
	}

	var (
		params []Param
		owner  string
	)

	switch target := concrete.(type) {
	case Factory:
		if target.Fn == nil {
			v.fail(&UnresolvableBindingError{Concrete: id, Cause: errors.New("factory has no function")})

			return nil
		}

		params = target.Params
		owner = id

	case string:
		desc, ok := v.c.types.lookup(target)
		if !ok {
			v.fail(&UnresolvableBindingError{Concrete: target, Cause: errors.New("no descriptor registered")})

			return nil
		}

		if desc.Abstract || desc.New == nil {
			v.fail(&NonInstantiableBindingError{Concrete: target})

			return nil
		}

		params = desc.Params
		owner = target

	default:
		v.fail(&UnresolvableBindingError{
			Concrete: id,
			Cause:    fmt.Errorf("unsupported concrete target %T", concrete),
		})

		return nil
	}

	var out []string

	for i, p := range params {
		switch {
		case p.Type == "":
			if !p.HasDefault {
				v.fail(&UnresolvableMissingTypeError{Owner: owner, Position: i})
			}
		case p.builtin():
			if !p.HasDefault {
				v.fail(&UnresolvableBuiltInTypeError{Owner: owner, Position: i, Type: p.Type})
			}
		default:
			name := p.Type

			_, bound := v.c.bindings[name]
			switch {
			case bound || v.c.types.has(name):
				out = append(out, name)
			case !p.HasDefault:
				v.fail(&UnresolvableBindingError{
					Concrete: name,
					Cause:    errors.New("no binding or descriptor for dependency"),
				})
			}
		}
	}

	return out
}

func (v *verifier) fail(err error) {
	v.errs = multierr.Append(v.errs, err)
}
