package urltype

// Install is the one-call bootstrap: it registers every descriptor into
// a fresh registry attached to the host and wires a Resolver into the
// host's transition-start hook. The hook only fires for transitions
// whose destination carries at least one typed parameter; all other
// navigations proceed untouched.
//
// The first registration failure aborts startup and is returned as-is.
func Install(host Host, descriptors []Descriptor, opts ...ResolverOption) (*Registry, error) {
	reg := NewRegistry(WithHost(host))
	for _, d := range descriptors {
		if err := reg.Register(d); err != nil {
			return nil, err
		}
	}

	resolver := NewResolver(reg, opts...)
	host.OnTransitionStart(func(to State) bool {
		return len(reg.TypedParams(to, false)) > 0
	}, resolver.Run)

	return reg, nil
}
