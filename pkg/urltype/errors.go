package urltype

import "fmt"

// RegistrationError reports an attempt to register a second descriptor
// under a name that is already taken. The registry keeps the first
// registration; the caller must fix its configuration.
type RegistrationError struct {
	Name string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("urltype: type %q is already registered", e.Name)
}

// ResolveError reports a failed parameter resolution. It carries the
// parameter id and the underlying cause and aborts the whole transition.
type ResolveError struct {
	Param string
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("urltype: resolving parameter %q: %v", e.Param, e.Err)
}

// Unwrap returns the underlying resolution failure.
func (e *ResolveError) Unwrap() error {
	return e.Err
}
