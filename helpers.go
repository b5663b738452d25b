package skein

import "fmt"

// ResolveAs resolves an identifier and type-asserts the result.
func ResolveAs[T any](c *Skein, id string, opts ...ResolveOption) (T, error) {
	var zero T

	instance, err := c.Resolve(id, opts...)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("service %q is not of type %T", id, zero)
	}

	return typed, nil
}

// MustResolve resolves or panics - use only during bootstrap.
func MustResolve[T any](c *Skein, id string, opts ...ResolveOption) T {
	instance, err := ResolveAs[T](c, id, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", id, err))
	}

	return instance
}

// GetAs is a typed Get: strict pre-registration contract plus a type
// assertion on the result.
func GetAs[T any](c *Skein, id string) (T, error) {
	var zero T

	instance, err := c.Get(id)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("service %q is not of type %T", id, zero)
	}

	return typed, nil
}

// MakeAs is a typed Make: auto-binds unbound identifiers, then asserts the
// result type.
func MakeAs[T any](c *Skein, id string) (T, error) {
	var zero T

	instance, err := c.Make(id)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("service %q is not of type %T", id, zero)
	}

	return typed, nil
}
