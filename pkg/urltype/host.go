package urltype

import "context"

// This file is the contract with the host router. The host owns URL
// matching, state definitions and transition lifecycles; this package
// only registers parameter-type codecs and intercepts transition start.

// ParamTypeRegistrar accepts a parameter-type codec keyed by type name.
type ParamTypeRegistrar interface {
	RegisterParamType(name string, pt *ParamType) error
}

// TransitionHook runs when a matching transition starts. Returning an
// error aborts the navigation.
type TransitionHook func(ctx context.Context, t Transition) error

// Host is the surface the bootstrap wires into: parameter-type
// registration plus the transition-start lifecycle hook.
type Host interface {
	ParamTypeRegistrar

	// OnTransitionStart registers a hook fired when a transition whose
	// destination satisfies match begins.
	OnTransitionStart(match func(to State) bool, hook TransitionHook)
}

// State describes the destination of a navigation: an ordered list of
// path nodes, each contributing declared parameters.
type State interface {
	Name() string
	PathNodes() []PathNode
}

// PathNode is one node of a state's path. Params returns only the
// parameters declared at this node.
type PathNode interface {
	Params() []ParamDecl
}

// ParamDecl is a declared route parameter: a stable id and the name of
// its parameter type.
type ParamDecl interface {
	ID() string
	Type() string
}

// Resolvable lazily produces the value for a per-transition binding. It
// is evaluated by the host after the transition completes, never before.
type Resolvable func(ctx context.Context) (any, error)

// Transition is one in-flight navigation owned by the host router.
type Transition interface {
	// To returns the destination state.
	To() State

	// Param reports the current target value for a parameter id. Writes
	// made through TreeNodes must be visible here.
	Param(id string) (any, bool)

	// TreeNodes returns the target change-set in path order. Node Set
	// must be safe for concurrent use with distinct ids.
	TreeNodes() []TreeNode

	// AddResolvable registers a named, lazily-evaluated binding scoped
	// to this transition.
	AddResolvable(id string, fn Resolvable)
}

// TreeNode is one path node's parameter-value mapping on a transition.
type TreeNode interface {
	Has(id string) bool
	Set(id string, v any)
}
