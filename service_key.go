package skein

// Key provides type-safe service identification.
// Use NewKey to create typed keys for your services.
type Key[T any] struct {
	name string
}

// NewKey creates a new typed service key. The type parameter T ensures type
// safety when binding and resolving services.
//
// Example:
//
//	var LoggerKey = skein.NewKey[Logger]("Logger")
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the string identifier of the key.
func (k Key[T]) Name() string {
	return k.name
}

// BindKey registers a transient binding under a typed key.
func BindKey[T any](c *Skein, key Key[T], concrete any) *Skein {
	return c.Bind(key.name, concrete)
}

// SingletonKey registers a singleton binding under a typed key.
func SingletonKey[T any](c *Skein, key Key[T], concrete any) *Skein {
	return c.Singleton(key.name, concrete)
}

// InstanceKey registers a pre-built value under a typed key.
func InstanceKey[T any](c *Skein, key Key[T], value T) *Skein {
	return c.Instance(key.name, value)
}

// GetKey resolves a typed key through the strict Get contract.
func GetKey[T any](c *Skein, key Key[T]) (T, error) {
	return GetAs[T](c, key.name)
}

// MakeKey resolves a typed key through the permissive Make contract.
func MakeKey[T any](c *Skein, key Key[T]) (T, error) {
	return MakeAs[T](c, key.name)
}

// MustKey resolves a typed key and panics on error.
func MustKey[T any](c *Skein, key Key[T]) T {
	instance, err := GetKey(c, key)
	if err != nil {
		panic(err)
	}

	return instance
}

// HasKey reports whether the key's identifier is bound.
func HasKey[T any](c *Skein, key Key[T]) bool {
	return c.Has(key.name)
}
