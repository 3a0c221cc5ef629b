// Package urltype turns URL path segments into typed parameters.
//
// A typed parameter is declared once as a Descriptor: a unique name, a
// regular expression that recognizes the raw segment, a Represent
// function that produces the canonical string form of a resolved value,
// and a Resolve function that asynchronously turns the raw segment into
// the full domain object. Routes then reference the descriptor by name
// and receive domain objects instead of raw strings.
//
// The package provides:
//   - Descriptor, the per-type contract implemented by applications
//   - Registry, which installs a codec for each descriptor into the
//     host router's parameter-type system
//   - Resolver, which resolves every typed parameter of an in-flight
//     transition before the navigation is allowed to complete
//   - Install, the one-call bootstrap wiring both into a Host
//
// # Deferred resolution
//
// Decoding a URL never calls Resolve. It produces a DecodedValue that
// carries the canonical string form plus a deferred resolution thunk.
// Building an href or comparing parameter values therefore stays cheap
// and synchronous; the (possibly expensive) Resolve runs only when a
// navigation actually starts. Values that are already domain objects
// short-circuit: their thunk returns the object unchanged.
//
// # Usage
//
//	num := urltype.Descriptor{
//	    Name:    "Num",
//	    Pattern: `\d+`,
//	    Represent: func(v any) string { ... },
//	    Resolve: func(ctx context.Context, raw string) (any, error) {
//	        return api.FetchItem(ctx, raw)
//	    },
//	    Bindable: true,
//	}
//
//	reg, err := urltype.Install(host, []urltype.Descriptor{num})
//
// With a route declared as /item/{p:Num}, navigating to /item/7 resolves
// p to the fetched item, and href construction from either the raw
// primitive or the resolved object yields /item/7 without fetching.
package urltype
