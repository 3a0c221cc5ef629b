package hostrouter

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// TreeNode is one path node's parameter-value mapping on a transition.
// Set is safe for concurrent use; the resolver writes distinct ids from
// distinct goroutines.
type TreeNode struct {
	mu     sync.RWMutex
	values map[string]any
}

// Has reports whether the node's mapping contains id.
func (n *TreeNode) Has(id string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.values[id]
	return ok
}

// Set overwrites the node's value for id.
func (n *TreeNode) Set(id string, v any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.values[id] = v
}

// Value returns the node's value for id.
func (n *TreeNode) Value(id string) (any, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.values[id]
	return v, ok
}

// Transition is one in-flight navigation.
type Transition struct {
	to    *State
	nodes []*TreeNode

	mu          sync.Mutex
	resolvables map[string]urltype.Resolvable

	superseded atomic.Bool
}

// newTransition builds the target change-set. Each node's mapping holds
// the values of every parameter declared at or above it, so ancestors
// and descendants reference shared ids until resolution rewrites them.
func newTransition(to *State, values map[string]any) *Transition {
	t := &Transition{
		to:          to,
		resolvables: make(map[string]urltype.Resolvable),
	}

	accum := make(map[string]any)
	for _, pathNode := range to.nodes {
		for _, decl := range pathNode.params {
			if v, ok := values[decl.id]; ok {
				accum[decl.id] = v
			}
		}
		node := &TreeNode{values: make(map[string]any, len(accum))}
		for id, v := range accum {
			node.values[id] = v
		}
		t.nodes = append(t.nodes, node)
	}
	return t
}

// To returns the destination state.
func (t *Transition) To() urltype.State { return t.to }

// Param returns the target value for id, preferring the most specific
// node. Writes through TreeNodes are visible immediately.
func (t *Transition) Param(id string) (any, bool) {
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if v, ok := t.nodes[i].Value(id); ok {
			return v, true
		}
	}
	return nil, false
}

// TreeNodes returns the target change-set in path order.
func (t *Transition) TreeNodes() []urltype.TreeNode {
	out := make([]urltype.TreeNode, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n
	}
	return out
}

// AddResolvable registers a named binding scoped to this transition.
func (t *Transition) AddResolvable(id string, fn urltype.Resolvable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resolvables[id] = fn
}

// Resolvable returns the binding registered under id. This stands in
// for the view-input injection a full host would perform.
func (t *Transition) Resolvable(id string) (urltype.Resolvable, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn, ok := t.resolvables[id]
	return fn, ok
}

// Superseded reports whether a later navigation replaced this one.
func (t *Transition) Superseded() bool {
	return t.superseded.Load()
}

// finalParams flattens the tree into the committed parameter state,
// leaf values winning.
func (t *Transition) finalParams() map[string]any {
	out := make(map[string]any)
	for _, n := range t.nodes {
		n.mu.RLock()
		for id, v := range n.values {
			out[id] = v
		}
		n.mu.RUnlock()
	}
	return out
}
