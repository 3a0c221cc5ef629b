package urltype_test

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/atomic"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// Item is the domain object produced by the Num test type.
type Item struct {
	PK    int
	Label string
}

// numType matches decimal segments and resolves them into Items.
// calls counts Resolve invocations; pass nil to ignore.
func numType(calls *atomic.Int64) urltype.Descriptor {
	return urltype.Descriptor{
		Name:      "Num",
		Pattern:   `\d+`,
		Represent: representItem,
		Resolve: func(ctx context.Context, raw string) (any, error) {
			if calls != nil {
				calls.Inc()
			}
			pk, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}
			return Item{PK: pk, Label: "x" + raw}, nil
		},
		Bindable: true,
	}
}

func representItem(v any) string {
	switch x := v.(type) {
	case Item:
		return strconv.Itoa(x.PK)
	case *Item:
		return strconv.Itoa(x.PK)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", v)
	}
}
