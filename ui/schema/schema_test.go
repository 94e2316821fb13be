package schema

import (
	"testing"

	"github.com/agiangrant/framehost/ui"
)

func TestNodeKinds(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		wantKind Kind
	}{
		{name: "Root", node: NewRoot(ui.NewSize(800, 500)), wantKind: KindRoot},
		{name: "PaneLeft", node: NewPaneLeft(40), wantKind: KindPaneLeft},
		{name: "PaneRight", node: NewPaneRight(40), wantKind: KindPaneRight},
		{name: "Column", node: NewColumn(), wantKind: KindColumn},
		{name: "Label", node: NewLabel("hello"), wantKind: KindLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestPaneLeftWithBgColor(t *testing.T) {
	pane := NewPaneLeft(40).WithBgColor(ui.NewColor(0.5, 0.1, 0.1))

	if pane.Width() != 40 {
		t.Errorf("Width() = %v, want 40", pane.Width())
	}
	c, ok := pane.BgColor()
	if !ok {
		t.Fatal("expected background color to be set")
	}
	if c != (ui.Color{R: 0.5, G: 0.1, B: 0.1}) {
		t.Errorf("BgColor() = %+v", c)
	}

	if _, ok := NewPaneLeft(40).BgColor(); ok {
		t.Error("expected no background color on a fresh pane")
	}
}

func TestBuildersDoNotMutateOriginal(t *testing.T) {
	base := NewRoot(ui.NewSize(800, 500))
	withPane := base.WithContainer(NewPaneLeft(40))
	withTwo := withPane.WithContainer(NewPaneRight(20))

	if n := len(base.Children()); n != 0 {
		t.Errorf("base root has %d children, want 0", n)
	}
	if n := len(withPane.Children()); n != 1 {
		t.Errorf("root with pane has %d children, want 1", n)
	}
	if n := len(withTwo.Children()); n != 2 {
		t.Errorf("root with two panes has %d children, want 2", n)
	}

	pane := NewPaneLeft(40).WithChild(NewLabel("a"))
	extended := pane.WithChild(NewLabel("b"))
	if n := len(pane.Children()); n != 1 {
		t.Errorf("original pane has %d children, want 1", n)
	}
	if n := len(extended.Children()); n != 2 {
		t.Errorf("extended pane has %d children, want 2", n)
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	col := NewColumn(NewLabel("a"), NewLabel("b"))
	children := col.Children()
	children[0] = NewLabel("changed")

	if got := col.Children()[0].(Label).Text(); got != "a" {
		t.Errorf("first child text = %q, want %q", got, "a")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int
	}{
		{name: "empty root", node: NewRoot(ui.NewSize(1, 1)), want: 1},
		{
			name: "root with pane",
			node: NewRoot(ui.NewSize(800, 500)).WithContainer(NewPaneLeft(40)),
			want: 2,
		},
		{
			name: "nested",
			node: NewRoot(ui.NewSize(800, 500)).
				WithContainer(NewPaneLeft(40).WithChild(NewColumn(NewLabel("a"), NewLabel("b")))).
				WithContainer(NewPaneRight(60).WithChild(NewLabel("c"))),
			want: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.node); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWalkStopsEarly(t *testing.T) {
	root := NewRoot(ui.NewSize(800, 500)).
		WithContainer(NewPaneLeft(40).WithChild(NewLabel("a"))).
		WithContainer(NewPaneRight(40))

	visited := 0
	Walk(root, func(n Node, depth int) bool {
		visited++
		return n.Kind() != KindLabel
	})
	if visited != 3 {
		t.Errorf("visited %d nodes, want 3", visited)
	}
}
