// Package hostrouter is an in-memory state-based router implementing
// the urltype host contract: parameter-type registration, state
// definitions with typed path segments, URL matching and construction,
// and a transition lifecycle with on-start hooks.
//
// It exists to exercise the typed-parameter engine end to end in tests;
// it is not a general-purpose router.
package hostrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// ErrNoRoute reports that no URL could be produced or matched for the
// given input.
var ErrNoRoute = errors.New("hostrouter: no matching route")

// ErrSuperseded reports that a later navigation replaced this one
// before it could commit.
var ErrSuperseded = errors.New("hostrouter: transition superseded")

type startHook struct {
	match func(to urltype.State) bool
	hook  urltype.TransitionHook
}

// Router is the host. States are registered up front; navigations run
// the transition lifecycle and commit the destination's parameters on
// success.
type Router struct {
	mu         sync.Mutex
	paramTypes map[string]*urltype.ParamType
	states     map[string]*State
	order      []string
	hooks      []startHook

	active        *Transition
	last          *Transition
	currentState  string
	currentParams map[string]any
}

// New creates an empty router.
func New() *Router {
	return &Router{
		paramTypes: make(map[string]*urltype.ParamType),
		states:     make(map[string]*State),
	}
}

// RegisterParamType installs a parameter-type codec under name.
func (r *Router) RegisterParamType(name string, pt *urltype.ParamType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.paramTypes[name]; exists {
		return fmt.Errorf("hostrouter: param type %q already registered", name)
	}
	r.paramTypes[name] = pt
	return nil
}

// OnTransitionStart registers a hook fired when a transition whose
// destination satisfies match begins.
func (r *Router) OnTransitionStart(match func(to urltype.State) bool, hook urltype.TransitionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, startHook{match: match, hook: hook})
}

// AddState registers a state. Dotted names nest: "parent.child" appends
// its path node to the parent's, and the child's transitions span both.
func (r *Router) AddState(name, path string) error {
	node, err := parsePath(path)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[name]; exists {
		return fmt.Errorf("hostrouter: state %q already registered", name)
	}

	var nodes []*PathNode
	if idx := strings.LastIndex(name, "."); idx != -1 {
		parent, ok := r.states[name[:idx]]
		if !ok {
			return fmt.Errorf("hostrouter: parent state %q not registered", name[:idx])
		}
		nodes = append(nodes, parent.nodes...)
	}
	nodes = append(nodes, node)

	r.states[name] = &State{name: name, nodes: nodes}
	r.order = append(r.order, name)
	return nil
}

// Href builds the URL for a state from the given parameter values. A
// typed value that does not satisfy its type's pattern produces no URL
// and fails with ErrNoRoute.
func (r *Router) Href(stateName string, params map[string]any) (string, error) {
	r.mu.Lock()
	state, ok := r.states[stateName]
	r.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("hostrouter: unknown state %q", stateName)
	}

	var parts []string
	for _, seg := range state.segments() {
		if seg.param == nil {
			parts = append(parts, seg.literal)
			continue
		}

		v, ok := params[seg.param.id]
		if !ok {
			return "", fmt.Errorf("hostrouter: missing parameter %q for state %q", seg.param.id, stateName)
		}

		pt := r.paramType(seg.param.typeName)
		if pt == nil {
			parts = append(parts, fmt.Sprintf("%v", v))
			continue
		}

		encoded := pt.Encode(v)
		if !pt.Pattern.MatchString(encoded) {
			return "", fmt.Errorf("%w: %q does not satisfy type %q", ErrNoRoute, encoded, seg.param.typeName)
		}
		parts = append(parts, encoded)
	}
	return "/" + strings.Join(parts, "/"), nil
}

// Navigate runs a transition to the named state with the given
// parameter values. Typed values pass through their type's decode, so
// raw strings defer resolution and already-resolved objects
// short-circuit.
func (r *Router) Navigate(ctx context.Context, stateName string, params map[string]any) error {
	r.mu.Lock()
	state, ok := r.states[stateName]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("hostrouter: unknown state %q", stateName)
	}

	values := make(map[string]any)
	for _, decl := range state.decls() {
		v, ok := params[decl.id]
		if !ok {
			return fmt.Errorf("hostrouter: missing parameter %q for state %q", decl.id, stateName)
		}
		if pt := r.paramType(decl.typeName); pt != nil {
			v = pt.Decode(v)
		}
		values[decl.id] = v
	}
	return r.runTransition(ctx, state, values)
}

// NavigateURL matches a URL path against the registered states and runs
// the transition for the first state that accepts it.
func (r *Router) NavigateURL(ctx context.Context, path string) error {
	segs := splitPath(path)

	r.mu.Lock()
	names := append([]string(nil), r.order...)
	r.mu.Unlock()

	for _, name := range names {
		r.mu.Lock()
		state := r.states[name]
		r.mu.Unlock()

		values, ok := r.matchState(state, segs)
		if !ok {
			continue
		}
		return r.runTransition(ctx, state, values)
	}
	return fmt.Errorf("%w: %q", ErrNoRoute, path)
}

// matchState matches path segments against a state's full segment list,
// decoding typed segments through their codec.
func (r *Router) matchState(state *State, segs []string) (map[string]any, bool) {
	pattern := state.segments()
	if len(pattern) != len(segs) {
		return nil, false
	}

	values := make(map[string]any)
	for i, seg := range pattern {
		if seg.param == nil {
			if seg.literal != segs[i] {
				return nil, false
			}
			continue
		}

		pt := r.paramType(seg.param.typeName)
		if pt == nil {
			values[seg.param.id] = segs[i]
			continue
		}
		if !pt.Pattern.MatchString(segs[i]) {
			return nil, false
		}
		values[seg.param.id] = pt.Decode(segs[i])
	}
	return values, true
}

// runTransition fires the matching start hooks and commits the
// destination unless a later navigation superseded this one.
func (r *Router) runTransition(ctx context.Context, to *State, values map[string]any) error {
	t := newTransition(to, values)

	r.mu.Lock()
	if r.active != nil {
		r.active.superseded.Store(true)
	}
	r.active = t
	hooks := append([]startHook(nil), r.hooks...)
	r.mu.Unlock()

	for _, h := range hooks {
		if h.match != nil && !h.match(to) {
			continue
		}
		if err := h.hook(ctx, t); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t.superseded.Load() {
		return ErrSuperseded
	}
	r.currentState = to.name
	r.currentParams = t.finalParams()
	r.last = t
	return nil
}

// State returns a registered state by name.
func (r *Router) State(name string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.states[name]
	return s, ok
}

// Current returns the committed state name and its parameter values.
func (r *Router) Current() (string, map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	params := make(map[string]any, len(r.currentParams))
	for k, v := range r.currentParams {
		params[k] = v
	}
	return r.currentState, params
}

// LastTransition returns the most recently committed transition.
func (r *Router) LastTransition() *Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

func (r *Router) paramType(name string) *urltype.ParamType {
	if name == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paramTypes[name]
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
