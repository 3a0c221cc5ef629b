package urltype

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ResolveInfo describes one parameter resolution to middleware.
type ResolveInfo struct {
	Transition Transition
	ParamID    string
	TypeName   string
}

// Middleware wraps the resolution of a single typed parameter.
// Return an error to abort the navigation without calling next.
type Middleware interface {
	Handle(ctx context.Context, info ResolveInfo, next func(context.Context) error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(ctx context.Context, info ResolveInfo, next func(context.Context) error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, info ResolveInfo, next func(context.Context) error) error {
	return f(ctx, info, next)
}

// Resolver finalizes every typed parameter of an in-flight transition
// before the navigation completes.
type Resolver struct {
	registry   *Registry
	middleware []Middleware
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMiddleware wraps each per-parameter resolution with mw, outermost
// first.
func WithMiddleware(mw ...Middleware) ResolverOption {
	return func(r *Resolver) {
		r.middleware = append(r.middleware, mw...)
	}
}

// NewResolver creates a resolver backed by the given registry.
func NewResolver(reg *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{registry: reg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resolves all typed parameters on the transition's destination
// concurrently and returns once every one has settled. On success each
// resolved object is written back into every tree node that holds its
// parameter id, so the whole path sees the same final value. The first
// failure aborts with a *ResolveError; sibling resolutions are not
// cancelled, their results are simply discarded with the transition.
//
// Bindable parameters additionally get a per-transition resolvable,
// named by the parameter id, whose producer reads the resolved value
// off the transition.
func (r *Resolver) Run(ctx context.Context, t Transition) error {
	typed := r.registry.TypedParams(t.To(), false)
	if len(typed) == 0 {
		return nil
	}

	bindable := make(map[string]struct{})
	for _, p := range r.registry.TypedParams(t.To(), true) {
		bindable[p.ID()] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, p := range typed {
		id, typeName := p.ID(), p.Type()

		g.Go(func() error {
			return r.resolveOne(gctx, t, id, typeName)
		})

		if _, ok := bindable[id]; ok {
			// The producer is lazy: it runs only after the transition
			// completed, so the value it reads is the resolved one.
			t.AddResolvable(id, func(context.Context) (any, error) {
				v, _ := t.Param(id)
				return v, nil
			})
		}
	}
	return g.Wait()
}

// resolveOne resolves a single parameter and writes the result back,
// running the configured middleware chain around the work.
func (r *Resolver) resolveOne(ctx context.Context, t Transition, id, typeName string) error {
	resolve := func(ctx context.Context) error {
		v, ok := t.Param(id)
		if !ok {
			return nil
		}
		dv, ok := v.(*DecodedValue)
		if !ok {
			// Already final, nothing deferred to invoke.
			return nil
		}

		resolved, err := dv.Resolve(ctx)
		if err != nil {
			return &ResolveError{Param: id, Err: err}
		}

		// Ancestor nodes may hold a stale decoded copy of the same id;
		// overwrite every node that references it.
		for _, node := range t.TreeNodes() {
			if node.Has(id) {
				node.Set(id, resolved)
			}
		}
		return nil
	}

	if len(r.middleware) == 0 {
		return resolve(ctx)
	}

	info := ResolveInfo{Transition: t, ParamID: id, TypeName: typeName}
	next := resolve
	for i := len(r.middleware) - 1; i >= 0; i-- {
		mw, inner := r.middleware[i], next
		next = func(ctx context.Context) error {
			return mw.Handle(ctx, info, inner)
		}
	}
	return next(ctx)
}
