package mutator

import (
	"io"

	"github.com/agiangrant/framehost/ui/schema"
	"github.com/davecgh/go-spew/spew"
)

// NodeSnapshot is a flat, pointer-free view of one node used for read-out.
type NodeSnapshot struct {
	Path  string
	Kind  schema.Kind
	Depth int
	State State
}

// Snapshot returns every node in depth-first order.
func (m *Mutator) Snapshot() []NodeSnapshot {
	out := make([]NodeSnapshot, 0, len(m.order))
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		out = append(out, NodeSnapshot{Path: n.Path, Kind: n.Kind, Depth: depth, State: n.State})
		for _, child := range n.Children {
			visit(child, depth+1)
		}
	}
	visit(m.root, 0)
	return out
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Dump writes a human-readable dump of the mutator state to w.
func (m *Mutator) Dump(w io.Writer) {
	dumpConfig.Fdump(w, m.Snapshot())
}
