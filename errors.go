package skein

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by Get when the requested identifier has no
// explicit binding. Make does not produce it: it auto-binds instead.
type NotFoundError struct {
	Abstract string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no binding registered for %q", e.Abstract)
}

// NonInstantiableBindingError is returned when a resolution target is an
// interface or abstract type with no constructible binding.
type NonInstantiableBindingError struct {
	Concrete string
}

func (e *NonInstantiableBindingError) Error() string {
	return fmt.Sprintf("type %q is not instantiable", e.Concrete)
}

// UnresolvableBindingError is returned when building a type, method, or
// factory failed: the concrete type has no descriptor, the named method is
// not described, or construction itself reported an error.
type UnresolvableBindingError struct {
	Concrete string
	Cause    error
}

func (e *UnresolvableBindingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot resolve %q: %v", e.Concrete, e.Cause)
	}

	return fmt.Sprintf("cannot resolve %q", e.Concrete)
}

func (e *UnresolvableBindingError) Unwrap() error {
	return e.Cause
}

// UnresolvableBuiltInTypeError is returned when a dependency parameter is
// declared with a built-in type and carries no default; the container only
// auto-wires object dependencies.
type UnresolvableBuiltInTypeError struct {
	Owner    string
	Position int
	Type     string
}

func (e *UnresolvableBuiltInTypeError) Error() string {
	return fmt.Sprintf("%s: parameter %d has built-in type %q and cannot be auto-wired",
		e.Owner, e.Position, e.Type)
}

// UnresolvableMissingTypeError is returned when a dependency parameter has
// no declared type at all and carries no default.
type UnresolvableMissingTypeError struct {
	Owner    string
	Position int
}

func (e *UnresolvableMissingTypeError) Error() string {
	return fmt.Sprintf("%s: parameter %d has no declared type and cannot be auto-wired",
		e.Owner, e.Position)
}

// CircularDependencyError is returned when an identifier reappears on the
// active resolution chain. Chain lists the identifiers from the outermost
// resolution down to the repeated one.
type CircularDependencyError struct {
	Chain []string
}

func (e *CircularDependencyError) Error() string {
	if len(e.Chain) == 0 {
		return "circular dependency detected"
	}

	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Chain, " -> "))
}

// DuplicateDescriptorError is returned by RegisterType when a descriptor is
// already registered under the same name.
type DuplicateDescriptorError struct {
	Name string
}

func (e *DuplicateDescriptorError) Error() string {
	return fmt.Sprintf("descriptor already registered for type %q", e.Name)
}
