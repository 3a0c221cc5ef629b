package urltype

import (
	"context"
	"regexp"
	"strings"
)

// ParamType is the codec installed into the host router's URL parameter
// system for one registered descriptor. Encode, Decode and Equals stay
// synchronous and cheap; resolution is deferred into the DecodedValue
// they traffic in.
type ParamType struct {
	// Encode returns the URL form of a value. DecodedValues yield their
	// stored representation verbatim, guaranteeing symmetry with a prior
	// Decode; anything else goes through Represent.
	Encode func(v any) string

	// Decode accepts either the raw matched segment (string) or an
	// already-resolved domain object. Both become a DecodedValue; only
	// the string form defers into the descriptor's Resolve.
	Decode func(v any) any

	// Is reports whether a value belongs to the typed-parameter system.
	Is func(v any) bool

	// Equals compares two parameter values.
	Equals func(a, b any) bool

	// Pattern recognizes the raw segment in a URL, anchored to the full
	// segment.
	Pattern *regexp.Regexp
}

// newParamType translates a descriptor into the host codec protocol.
func newParamType(d Descriptor, pattern *regexp.Regexp) *ParamType {
	return &ParamType{
		Encode: func(v any) string {
			if dv, ok := v.(*DecodedValue); ok {
				return dv.Representation()
			}
			return d.Represent(v)
		},

		Decode: func(v any) any {
			switch raw := v.(type) {
			case nil:
				return nil
			case string:
				// Parsed from a URL: representation is the segment
				// itself, resolution is deferred until a navigation
				// actually starts.
				return newDecodedValue(raw, func(ctx context.Context) (any, error) {
					return d.Resolve(ctx, raw)
				})
			default:
				// URL construction from an already-resolved object:
				// the thunk returns it unchanged, Resolve is never hit.
				return newDecodedValue(d.Represent(raw), func(context.Context) (any, error) {
					return raw, nil
				})
			}
		},

		Is: IsDecoded,

		Equals: func(a, b any) bool {
			da, aDecoded := a.(*DecodedValue)
			db, bDecoded := b.(*DecodedValue)
			if aDecoded && bDecoded {
				return da.Representation() == db.Representation()
			}
			if a != nil && b != nil {
				// Fallback for values not (or not both) decoded yet:
				// case-insensitive comparison of their representations.
				return strings.EqualFold(representation(d, a), representation(d, b))
			}
			return a == b
		},

		Pattern: pattern,
	}
}

// representation returns the canonical string form of v for equality
// checks, using the stored form when v is already decoded.
func representation(d Descriptor, v any) string {
	if dv, ok := v.(*DecodedValue); ok {
		return dv.Representation()
	}
	return d.Represent(v)
}
