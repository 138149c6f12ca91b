package convert

// CastFunc converts a single token. A non-nil error carries the reason shown
// to the user.
type CastFunc func(token string) (any, error)

// Registry maps parameter types to custom converters. The last registration
// for a type wins. It is not safe for concurrent mutation.
type Registry map[Type]CastFunc

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return make(Registry)
}

// Register installs fn for t, replacing any previous converter.
func (r Registry) Register(t Type, fn CastFunc) {
	r[t] = fn
}

// Lookup returns the converter registered for t.
func (r Registry) Lookup(t Type) (CastFunc, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r[t]
	return fn, ok && fn != nil
}
