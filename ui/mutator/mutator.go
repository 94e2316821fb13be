// Package mutator holds the mutable runtime counterpart of a schema tree.
//
// A Mutator is built once from a schema and owns one Node per schema node,
// in the same shape. Per-node state (hover, focus, press, animation) can change
// freely; the schema itself is only referenced and never modified.
package mutator

import (
	"strconv"

	"github.com/agiangrant/framehost/ui/schema"
)

// State is the mutable per-node state.
type State struct {
	Hovered   bool
	Focused   bool
	Pressed   bool
	Animation float64 // Progress of the node's current animation in [0, 1]
}

// Node is the mutable counterpart of a single schema node.
type Node struct {
	Path     string
	Kind     schema.Kind
	State    State
	Children []*Node

	schema schema.Node
	parent *Node
}

// Schema returns the schema node this node was built from.
func (n *Node) Schema() schema.Node {
	return n.schema
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// SetHovered sets the hover state.
func (n *Node) SetHovered(v bool) { n.State.Hovered = v }

// SetFocused sets the focus state.
func (n *Node) SetFocused(v bool) { n.State.Focused = v }

// SetPressed sets the pressed state.
func (n *Node) SetPressed(v bool) { n.State.Pressed = v }

// SetAnimation sets animation progress, clamped to [0, 1].
func (n *Node) SetAnimation(progress float64) {
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}
	n.State.Animation = progress
}

// Mutator is the mutable projection of a schema.
// It is not safe for concurrent use; the main loop owns it.
type Mutator struct {
	root *Node

	// Registry for path lookups
	nodes map[string]*Node
	order []string
}

// FromSchema builds a mutator with one node per node of root.
func FromSchema(root *schema.Root) *Mutator {
	m := &Mutator{nodes: make(map[string]*Node)}
	m.root = m.build(*root, nil, "/")
	return m
}

func (m *Mutator) build(sn schema.Node, parent *Node, path string) *Node {
	n := &Node{
		Path:   path,
		Kind:   sn.Kind(),
		schema: sn,
		parent: parent,
	}
	m.nodes[path] = n
	m.order = append(m.order, path)

	children := sn.Children()
	if len(children) > 0 {
		n.Children = make([]*Node, len(children))
	}
	for i, child := range children {
		n.Children[i] = m.build(child, n, childPath(path, i))
	}
	return n
}

func childPath(parent string, index int) string {
	if parent == "/" {
		return "/" + strconv.Itoa(index)
	}
	return parent + "/" + strconv.Itoa(index)
}

// Root returns the root node.
func (m *Mutator) Root() *Node {
	return m.root
}

// Len returns the number of nodes.
func (m *Mutator) Len() int {
	return len(m.nodes)
}

// Get returns the node at a structural path such as "/" or "/0/1".
func (m *Mutator) Get(path string) (*Node, bool) {
	n, ok := m.nodes[path]
	return n, ok
}

// Paths returns every node path in depth-first order.
func (m *Mutator) Paths() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Walk traverses the tree depth-first, calling fn for each node.
// If fn returns false, traversal stops.
func (m *Mutator) Walk(fn func(n *Node) bool) {
	walkNode(m.root, fn)
}

func walkNode(n *Node, fn func(n *Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !walkNode(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node matching the predicate.
func (m *Mutator) Find(pred func(n *Node) bool) *Node {
	var found *Node
	m.Walk(func(n *Node) bool {
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ClearState resets the state of every node.
func (m *Mutator) ClearState() {
	m.Walk(func(n *Node) bool {
		n.State = State{}
		return true
	})
}
