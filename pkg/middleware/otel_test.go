package middleware

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

type fakeState struct{ name string }

func (s *fakeState) Name() string                  { return s.name }
func (s *fakeState) PathNodes() []urltype.PathNode { return nil }

type fakeTransition struct{ to *fakeState }

func (t *fakeTransition) To() urltype.State                        { return t.to }
func (t *fakeTransition) Param(string) (any, bool)                 { return nil, false }
func (t *fakeTransition) TreeNodes() []urltype.TreeNode            { return nil }
func (t *fakeTransition) AddResolvable(string, urltype.Resolvable) {}

func fakeInfo() urltype.ResolveInfo {
	return urltype.ResolveInfo{
		Transition: &fakeTransition{to: &fakeState{name: "item"}},
		ParamID:    "p",
		TypeName:   "Num",
	}
}

func TestOpenTelemetryCallsNext(t *testing.T) {
	mw := OpenTelemetry(
		WithTracerName("test"),
		WithAttributeExtractor(func(urltype.ResolveInfo) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)

	called := false
	err := mw.Handle(context.Background(), fakeInfo(), func(ctx context.Context) error {
		called = true
		if ctx == nil {
			t.Error("next received nil context")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !called {
		t.Error("next was not called")
	}
}

func TestOpenTelemetryPropagatesError(t *testing.T) {
	mw := OpenTelemetry()

	cause := errors.New("backend down")
	err := mw.Handle(context.Background(), fakeInfo(), func(context.Context) error {
		return cause
	})
	if !errors.Is(err, cause) {
		t.Errorf("Handle() error = %v, want the original cause", err)
	}
}

func TestOpenTelemetryFilterSkipsTracing(t *testing.T) {
	mw := OpenTelemetry(WithFilter(func(urltype.ResolveInfo) bool {
		return false
	}))

	called := false
	err := mw.Handle(context.Background(), fakeInfo(), func(context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !called {
		t.Error("next was not called when filtered out")
	}
}
