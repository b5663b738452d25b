package skein

// BindingSpec holds configuration for one binding in a batch registration.
type BindingSpec struct {
	Abstract  string
	Concrete  any
	Singleton bool
}

// Transient creates a BindingSpec for a transient binding.
//
// Example:
//
//	skein.Apply(c,
//	    skein.Transient("Mailer", "SMTPMailer"),
//	    skein.Shared("Logger", "FileLogger"),
//	)
func Transient(abstract string, concrete any) BindingSpec {
	return BindingSpec{Abstract: abstract, Concrete: concrete}
}

// Shared creates a BindingSpec for a singleton binding.
func Shared(abstract string, concrete any) BindingSpec {
	return BindingSpec{Abstract: abstract, Concrete: concrete, Singleton: true}
}

// Apply registers multiple bindings in a single call and returns the
// container for chaining.
func Apply(c *Skein, specs ...BindingSpec) *Skein {
	for _, spec := range specs {
		if spec.Singleton {
			c.Singleton(spec.Abstract, spec.Concrete)
		} else {
			c.Bind(spec.Abstract, spec.Concrete)
		}
	}

	return c
}
