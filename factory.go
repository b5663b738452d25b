package skein

// Factory is a callable binding target: its return value serves as the
// resolved instance for the identifier it is bound to. Params declares the
// factory's own parameters, which the resolver satisfies before invoking Fn.
//
// Fn must not call back into the container; its dependencies arrive fully
// resolved, in declaration order.
type Factory struct {
	Params []Param
	Fn     func(args []any) (any, error)
}

// NewFactory builds a Factory from fn and its declared parameters.
func NewFactory(fn func(args []any) (any, error), params ...Param) Factory {
	return Factory{Params: params, Fn: fn}
}

// FactoryOf wraps a niladic constructor as a Factory.
func FactoryOf(fn func() (any, error)) Factory {
	return Factory{Fn: func([]any) (any, error) { return fn() }}
}

// ValueFactory returns a Factory that always yields v.
func ValueFactory(v any) Factory {
	return Factory{Fn: func([]any) (any, error) { return v, nil }}
}
