package integration_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/anexia-it/go-urltype/internal/hostrouter"
	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// Item is the domain object the Num type resolves into.
type Item struct {
	PK    int
	Label string
}

func newItemHost(t *testing.T) *hostrouter.Router {
	t.Helper()

	num := urltype.Descriptor{
		Name:    "Num",
		Pattern: `\d+`,
		Represent: func(v any) string {
			switch x := v.(type) {
			case Item:
				return strconv.Itoa(x.PK)
			case int:
				return strconv.Itoa(x)
			default:
				return ""
			}
		},
		Resolve: func(ctx context.Context, raw string) (any, error) {
			pk, err := strconv.Atoi(raw)
			if err != nil {
				return nil, err
			}
			return Item{PK: pk, Label: "x" + raw}, nil
		},
		Bindable: true,
	}

	host := hostrouter.New()
	if _, err := urltype.Install(host, []urltype.Descriptor{num}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if err := host.AddState("item", "/item/{p:Num}"); err != nil {
		t.Fatalf("AddState() error: %v", err)
	}
	return host
}

// TestChiNavigationIntegration drives the typed-parameter engine from
// plain HTTP requests routed through chi.
func TestChiNavigationIntegration(t *testing.T) {
	host := newItemHost(t)

	r := chi.NewRouter()
	r.Get("/item/{id}", func(w http.ResponseWriter, req *http.Request) {
		if err := host.NavigateURL(req.Context(), req.URL.Path); err != nil {
			if errors.Is(err, hostrouter.ErrNoRoute) {
				http.NotFound(w, req)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		_, params := host.Current()
		item, ok := params["p"].(Item)
		if !ok {
			http.Error(w, "parameter not resolved", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(item.Label))
	})

	t.Run("typed segment resolves", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/item/7", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != "x7" {
			t.Errorf("body = %q, want %q", rec.Body.String(), "x7")
		}
	})

	t.Run("segment failing the pattern is not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/item/abc", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("href round-trips through the same codec", func(t *testing.T) {
		href, err := host.Href("item", map[string]any{"p": Item{PK: 7, Label: "x7"}})
		if err != nil {
			t.Fatalf("Href() error: %v", err)
		}

		req := httptest.NewRequest("GET", href, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if rec.Body.String() != "x7" {
			t.Errorf("body = %q, want %q", rec.Body.String(), "x7")
		}
	})
}
