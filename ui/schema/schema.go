// Package schema describes UI layout as an immutable tree.
//
// Builders use value receivers and return modified copies, so a node that has
// been handed to a parent (or to mutator.FromSchema) can no longer change.
//
//	root := schema.NewRoot(ui.NewSize(800, 500)).
//		WithContainer(schema.NewPaneLeft(40).WithBgColor(ui.NewColor(0.5, 0.1, 0.1)))
package schema

import "github.com/agiangrant/framehost/ui"

// Kind identifies the type of a schema node.
type Kind string

const (
	// Root of every schema tree
	KindRoot Kind = "Root"

	// Layout containers
	KindPaneLeft  Kind = "PaneLeft"
	KindPaneRight Kind = "PaneRight"
	KindColumn    Kind = "Column"

	// Leaf widgets
	KindLabel Kind = "Label"
)

// Node is any element of a schema tree.
type Node interface {
	Kind() Kind
	// Children returns a copy of the node's children in declaration order.
	Children() []Node
}

// Container is a node that lays out other nodes. Only containers can be
// attached directly to a Root.
type Container interface {
	Node
	isContainer()
}

// Root is the sized top-level node of a schema.
type Root struct {
	size       ui.Size
	containers []Container
}

// NewRoot creates an empty root canvas of the given size.
func NewRoot(size ui.Size) Root {
	return Root{size: size}
}

// WithContainer returns a copy of the root with c appended.
func (r Root) WithContainer(c Container) Root {
	r.containers = appendCopy(r.containers, c)
	return r
}

// Size returns the canvas size.
func (r Root) Size() ui.Size { return r.size }

// Kind implements Node.
func (r Root) Kind() Kind { return KindRoot }

// Children implements Node.
func (r Root) Children() []Node {
	out := make([]Node, len(r.containers))
	for i, c := range r.containers {
		out[i] = c
	}
	return out
}

// PaneLeft is a fixed-width pane docked to the left edge of its parent.
type PaneLeft struct {
	width    ui.Length
	bg       ui.Color
	hasBg    bool
	children []Node
}

// NewPaneLeft creates a left pane of the given width.
func NewPaneLeft(width ui.Length) PaneLeft {
	return PaneLeft{width: width}
}

// WithBgColor returns a copy of the pane with a background color.
func (p PaneLeft) WithBgColor(c ui.Color) PaneLeft {
	p.bg, p.hasBg = c, true
	return p
}

// WithChild returns a copy of the pane with n appended.
func (p PaneLeft) WithChild(n Node) PaneLeft {
	p.children = appendCopy(p.children, n)
	return p
}

// Width returns the pane width.
func (p PaneLeft) Width() ui.Length { return p.width }

// BgColor returns the background color and whether one was set.
func (p PaneLeft) BgColor() (ui.Color, bool) { return p.bg, p.hasBg }

func (p PaneLeft) Kind() Kind       { return KindPaneLeft }
func (p PaneLeft) Children() []Node { return appendCopy[Node](nil, p.children...) }
func (PaneLeft) isContainer()       {}

// PaneRight is a fixed-width pane docked to the right edge of its parent.
type PaneRight struct {
	width    ui.Length
	bg       ui.Color
	hasBg    bool
	children []Node
}

// NewPaneRight creates a right pane of the given width.
func NewPaneRight(width ui.Length) PaneRight {
	return PaneRight{width: width}
}

// WithBgColor returns a copy of the pane with a background color.
func (p PaneRight) WithBgColor(c ui.Color) PaneRight {
	p.bg, p.hasBg = c, true
	return p
}

// WithChild returns a copy of the pane with n appended.
func (p PaneRight) WithChild(n Node) PaneRight {
	p.children = appendCopy(p.children, n)
	return p
}

func (p PaneRight) Width() ui.Length          { return p.width }
func (p PaneRight) BgColor() (ui.Color, bool) { return p.bg, p.hasBg }
func (p PaneRight) Kind() Kind                { return KindPaneRight }
func (p PaneRight) Children() []Node          { return appendCopy[Node](nil, p.children...) }
func (PaneRight) isContainer()                {}

// Column stacks its children vertically with a fixed gap.
type Column struct {
	gap      ui.Length
	children []Node
}

// NewColumn creates a column from the given children.
func NewColumn(children ...Node) Column {
	return Column{children: appendCopy[Node](nil, children...)}
}

// WithGap returns a copy of the column with the given gap.
func (c Column) WithGap(gap ui.Length) Column {
	c.gap = gap
	return c
}

func (c Column) Gap() ui.Length   { return c.gap }
func (c Column) Kind() Kind       { return KindColumn }
func (c Column) Children() []Node { return appendCopy[Node](nil, c.children...) }
func (Column) isContainer()       {}

// Label is a leaf widget showing a line of text.
type Label struct {
	text string
}

// NewLabel creates a label.
func NewLabel(text string) Label {
	return Label{text: text}
}

func (l Label) Text() string   { return l.text }
func (l Label) Kind() Kind     { return KindLabel }
func (Label) Children() []Node { return nil }

// appendCopy appends to a fresh backing array so that copies of a node
// never share children storage.
func appendCopy[T any](dst []T, items ...T) []T {
	out := make([]T, 0, len(dst)+len(items))
	out = append(out, dst...)
	return append(out, items...)
}
