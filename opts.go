package skein

// ResolveOption configures a single Resolve call.
type ResolveOption func(*resolveSettings)

type resolveSettings struct {
	method         string
	forceSingleton bool
}

// WithMethod invokes the named method on the resolved instance, with the
// method's own parameters dependency-resolved, and returns the method's
// result instead of the instance.
func WithMethod(name string) ResolveOption {
	return func(s *resolveSettings) { s.method = name }
}

// AsSingleton forces the singleton path regardless of how the target is
// bound: the instance is created once and reused on later singleton
// resolutions of the same identifier.
func AsSingleton() ResolveOption {
	return func(s *resolveSettings) { s.forceSingleton = true }
}

func applyResolveOptions(opts []ResolveOption) resolveSettings {
	var s resolveSettings
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
