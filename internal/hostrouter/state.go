package hostrouter

import (
	"fmt"
	"strings"

	"github.com/anexia-it/go-urltype/pkg/urltype"
)

// segment is one piece of a state's path: a static literal or a
// parameter declaration.
type segment struct {
	literal string
	param   *ParamDecl
}

// ParamDecl is a declared route parameter.
type ParamDecl struct {
	id       string
	typeName string
}

// ID returns the parameter's stable id.
func (p *ParamDecl) ID() string { return p.id }

// Type returns the parameter's type name. Empty means a plain string
// segment with no codec attached.
func (p *ParamDecl) Type() string { return p.typeName }

// PathNode is one node of a state's path. Nested states contribute one
// node per ancestor plus their own.
type PathNode struct {
	segments []segment
	params   []*ParamDecl
}

// Params returns the parameters declared at this node.
func (n *PathNode) Params() []urltype.ParamDecl {
	out := make([]urltype.ParamDecl, len(n.params))
	for i, p := range n.params {
		out[i] = p
	}
	return out
}

// State is a registered navigation target.
type State struct {
	name  string
	nodes []*PathNode // root-first, ancestors included
}

// Name returns the state's dotted name.
func (s *State) Name() string { return s.name }

// PathNodes returns the state's path nodes in root-first order.
func (s *State) PathNodes() []urltype.PathNode {
	out := make([]urltype.PathNode, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n
	}
	return out
}

// segments returns the full flattened segment list of the state's path.
func (s *State) segments() []segment {
	var out []segment
	for _, n := range s.nodes {
		out = append(out, n.segments...)
	}
	return out
}

// decls returns every declared parameter across the state's path.
func (s *State) decls() []*ParamDecl {
	var out []*ParamDecl
	for _, n := range s.nodes {
		out = append(out, n.params...)
	}
	return out
}

// parsePath turns "/item/{p:Num}" into one path node. Parameter
// segments use braces: {name} for a plain string, {name:Type} for a
// typed parameter.
func parsePath(path string) (*PathNode, error) {
	node := &PathNode{}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return node, nil
	}

	for _, raw := range strings.Split(trimmed, "/") {
		if !strings.HasPrefix(raw, "{") {
			node.segments = append(node.segments, segment{literal: raw})
			continue
		}
		if !strings.HasSuffix(raw, "}") {
			return nil, fmt.Errorf("hostrouter: malformed segment %q in %q", raw, path)
		}

		inner := raw[1 : len(raw)-1]
		name, typeName := inner, ""
		if idx := strings.Index(inner, ":"); idx != -1 {
			name, typeName = inner[:idx], inner[idx+1:]
		}
		if name == "" {
			return nil, fmt.Errorf("hostrouter: unnamed parameter in %q", path)
		}

		decl := &ParamDecl{id: name, typeName: typeName}
		node.params = append(node.params, decl)
		node.segments = append(node.segments, segment{param: decl})
	}
	return node, nil
}
