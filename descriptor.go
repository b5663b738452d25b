package skein

import "errors"

// Param describes one declared constructor, method, or factory parameter.
// Params are consumed by the resolver in declaration order.
type Param struct {
	// Type is the declared type identifier. Empty means the parameter
	// carries no type declaration at all.
	Type string

	// Builtin marks the declared type as a primitive that cannot be
	// auto-wired. Well-known primitive names are treated as built-in even
	// without the marker.
	Builtin bool

	// HasDefault and Default carry the parameter's declared default value,
	// used when the declared type cannot be auto-wired.
	HasDefault bool
	Default    any
}

// Dep declares an object-typed parameter resolved through the container.
func Dep(typeName string) Param {
	return Param{Type: typeName}
}

// DepDefault declares an object-typed parameter with a default value used
// when the type is unbound.
func DepDefault(typeName string, def any) Param {
	return Param{Type: typeName, HasDefault: true, Default: def}
}

// Primitive declares a built-in-typed parameter. Without a default it can
// never be auto-wired.
func Primitive(typeName string) Param {
	return Param{Type: typeName, Builtin: true}
}

// PrimitiveDefault declares a built-in-typed parameter satisfied by def.
func PrimitiveDefault(typeName string, def any) Param {
	return Param{Type: typeName, Builtin: true, HasDefault: true, Default: def}
}

// Untyped declares a parameter with no type declaration. Without a default
// it can never be auto-wired.
func Untyped() Param {
	return Param{}
}

// UntypedDefault declares an untyped parameter satisfied by def.
func UntypedDefault(def any) Param {
	return Param{HasDefault: true, Default: def}
}

// builtinTypes are the primitive identifiers recognized without an explicit
// Builtin marker.
var builtinTypes = map[string]struct{}{
	"bool": {}, "string": {},
	"int": {}, "int8": {}, "int16": {}, "int32": {}, "int64": {},
	"uint": {}, "uint8": {}, "uint16": {}, "uint32": {}, "uint64": {}, "uintptr": {},
	"float32": {}, "float64": {}, "complex64": {}, "complex128": {},
	"byte": {}, "rune": {},
}

func (p Param) builtin() bool {
	if p.Builtin {
		return true
	}

	_, ok := builtinTypes[p.Type]

	return ok
}

// Method describes a resolvable method on a registered type. Its parameters
// are dependency-resolved exactly like constructor parameters; Call receives
// the built instance and the resolved arguments.
type Method struct {
	Params []Param
	Call   func(recv any, args []any) (any, error)
}

// Descriptor describes a registrable type: its identifier, its ordered
// constructor parameter list, and how to construct it. Types with no
// constructor arguments leave Params empty; interfaces and abstract bases
// set Abstract (or leave New nil) and can only be resolved through a binding
// to a constructible type.
type Descriptor struct {
	Name     string
	Params   []Param
	New      func(args []any) (any, error)
	Abstract bool
	Methods  map[string]Method
}

// fastConstructible reports whether the type can be built without a
// dependency walk, which requires every parameter to carry a default.
func (d Descriptor) fastConstructible() bool {
	if d.Abstract || d.New == nil {
		return false
	}

	for _, p := range d.Params {
		if !p.HasDefault {
			return false
		}
	}

	return true
}

// typeRegistry holds the registered descriptors. Access is guarded by the
// container mutex.
type typeRegistry struct {
	descriptors map[string]Descriptor
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{descriptors: make(map[string]Descriptor)}
}

func (r *typeRegistry) register(d Descriptor) error {
	if d.Name == "" {
		return errors.New("descriptor name cannot be empty")
	}

	if _, exists := r.descriptors[d.Name]; exists {
		return &DuplicateDescriptorError{Name: d.Name}
	}

	r.descriptors[d.Name] = d

	return nil
}

func (r *typeRegistry) lookup(name string) (Descriptor, bool) {
	d, ok := r.descriptors[name]

	return d, ok
}

func (r *typeRegistry) has(name string) bool {
	_, ok := r.descriptors[name]

	return ok
}

// RegisterType adds a type descriptor to the container. Registering the same
// name twice is an error.
func (c *Skein) RegisterType(d Descriptor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.types.register(d)
}

// RegisterTypes registers multiple descriptors, stopping at the first
// failure.
func (c *Skein) RegisterTypes(ds ...Descriptor) error {
	for _, d := range ds {
		if err := c.RegisterType(d); err != nil {
			return err
		}
	}

	return nil
}

// HasType reports whether a descriptor is registered for name.
func (c *Skein) HasType(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.types.has(name)
}
