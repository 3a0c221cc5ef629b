package urltype

import "context"

// ResolveThunk is the deferred resolution of one decoded parameter
// value. It is memo-free: every invocation may resolve again.
type ResolveThunk func(ctx context.Context) (any, error)

// DecodedValue is the intermediate carrier produced by a type's decode
// step: the canonical string form, computed eagerly, plus the deferred
// resolution thunk. The Resolver finalizes it into the real domain
// object when a navigation starts.
//
// DecodedValue replaces the hidden marker fields of the original design
// with an explicit type; membership in the typed-parameter system is a
// type assertion, not a property probe.
type DecodedValue struct {
	rep     string
	resolve ResolveThunk
}

func newDecodedValue(rep string, thunk ResolveThunk) *DecodedValue {
	return &DecodedValue{rep: rep, resolve: thunk}
}

// Representation returns the canonical string form, exactly what a URL
// built from this value would contain.
func (v *DecodedValue) Representation() string {
	return v.rep
}

// Resolve invokes the deferred resolution and returns the full domain
// object. Values decoded from an already-resolved object return it
// unchanged without touching the descriptor's ResolveFunc.
func (v *DecodedValue) Resolve(ctx context.Context) (any, error) {
	return v.resolve(ctx)
}

// IsDecoded reports whether v is a decoded parameter value belonging to
// the typed-parameter system.
func IsDecoded(v any) bool {
	_, ok := v.(*DecodedValue)
	return ok
}
