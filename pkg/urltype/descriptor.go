package urltype

import (
	"context"
	"errors"
	"reflect"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ResolveFunc produces the full domain object for a raw matched URL
// segment. It may block; transitions wait for every typed parameter's
// ResolveFunc before completing. Retrying is the function's own
// responsibility, the resolver never retries.
type ResolveFunc func(ctx context.Context, raw string) (any, error)

// Descriptor defines one custom parameter type. It is pure data plus
// two functions and must not change after registration.
type Descriptor struct {
	// Name uniquely identifies the type. Routes reference it in path
	// patterns ({p:Num}).
	Name string

	// Pattern is a regular expression recognizing the raw segment in a
	// URL. It is anchored to the full segment at registration.
	Pattern string

	// Represent produces the canonical string form of a resolved value,
	// used for URL construction and equality fallback.
	Represent func(v any) string

	// Resolve turns the raw matched segment into the domain object.
	Resolve ResolveFunc

	// Bindable exposes the resolved value as a per-transition resolvable
	// so the destination view can receive it as a declared input.
	Bindable bool
}

// Validate checks that the descriptor is complete and its pattern
// compiles. Register calls this before anything else.
func (d Descriptor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Pattern, validation.Required, validation.By(patternCompiles)),
		validation.Field(&d.Represent, validation.By(funcRequired)),
		validation.Field(&d.Resolve, validation.By(funcRequired)),
	)
}

func patternCompiles(v any) error {
	s, _ := v.(string)
	if s == "" {
		return nil // Required reports the empty case
	}
	if _, err := regexp.Compile(s); err != nil {
		return errors.New("must be a valid regular expression")
	}
	return nil
}

func funcRequired(v any) error {
	if v == nil || reflect.ValueOf(v).IsNil() {
		return errors.New("cannot be blank")
	}
	return nil
}

// compileSegment anchors the descriptor pattern to a whole path segment.
func compileSegment(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + pattern + ")$")
}
