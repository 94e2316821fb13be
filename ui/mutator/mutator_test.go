package mutator

import (
	"bytes"
	"testing"

	"github.com/agiangrant/framehost/ui"
	"github.com/agiangrant/framehost/ui/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonSchema() schema.Root {
	return schema.NewRoot(ui.NewSize(800, 500)).
		WithContainer(schema.NewPaneLeft(40).WithBgColor(ui.NewColor(0.5, 0.1, 0.1)))
}

func TestFromSchemaSinglePane(t *testing.T) {
	root := lessonSchema()
	m := FromSchema(&root)

	require.Equal(t, 2, m.Len())

	r, ok := m.Get("/")
	require.True(t, ok)
	assert.Equal(t, schema.KindRoot, r.Kind)
	assert.Nil(t, r.Parent())

	pane, ok := m.Get("/0")
	require.True(t, ok)
	assert.Equal(t, schema.KindPaneLeft, pane.Kind)
	assert.Same(t, r, pane.Parent())

	// Every schema node has a counterpart.
	schema.Walk(root, func(n schema.Node, _ int) bool {
		found := m.Find(func(mn *Node) bool { return mn.Kind == n.Kind() })
		assert.NotNil(t, found, "no mutator node for %s", n.Kind())
		return true
	})
}

// schemaShape and mutatorShape render a tree as nested kinds for structural comparison.
func schemaShape(n schema.Node) []any {
	out := []any{n.Kind()}
	for _, c := range n.Children() {
		out = append(out, schemaShape(c))
	}
	return out
}

func mutatorShape(n *Node) []any {
	out := []any{n.Kind}
	for _, c := range n.Children {
		out = append(out, mutatorShape(c))
	}
	return out
}

func TestFromSchemaPreservesShape(t *testing.T) {
	tests := []struct {
		name string
		root schema.Root
	}{
		{name: "empty", root: schema.NewRoot(ui.NewSize(10, 10))},
		{name: "single pane", root: lessonSchema()},
		{
			name: "nested",
			root: schema.NewRoot(ui.NewSize(1280, 720)).
				WithContainer(schema.NewPaneLeft(200).
					WithChild(schema.NewColumn(schema.NewLabel("a"), schema.NewLabel("b")).WithGap(4))).
				WithContainer(schema.NewPaneRight(120).
					WithChild(schema.NewLabel("c")).
					WithChild(schema.NewColumn())),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromSchema(&tt.root)
			assert.Equal(t, schema.Count(tt.root), m.Len())
			assert.Equal(t, schemaShape(tt.root), mutatorShape(m.Root()))
			assert.Len(t, m.Paths(), m.Len())
		})
	}
}

func TestPaths(t *testing.T) {
	root := schema.NewRoot(ui.NewSize(800, 500)).
		WithContainer(schema.NewPaneLeft(40).WithChild(schema.NewLabel("a")).WithChild(schema.NewLabel("b"))).
		WithContainer(schema.NewPaneRight(40))
	m := FromSchema(&root)

	assert.Equal(t, []string{"/", "/0", "/0/0", "/0/1", "/1"}, m.Paths())

	label, ok := m.Get("/0/1")
	require.True(t, ok)
	assert.Equal(t, "b", label.Schema().(schema.Label).Text())

	_, ok = m.Get("/2")
	assert.False(t, ok)
}

func TestStateChangesLeaveSchemaUntouched(t *testing.T) {
	root := lessonSchema()
	m := FromSchema(&root)

	pane, _ := m.Get("/0")
	pane.SetHovered(true)
	pane.SetFocused(true)
	pane.SetPressed(true)
	pane.SetAnimation(1.5)

	assert.Equal(t, State{Hovered: true, Focused: true, Pressed: true, Animation: 1}, pane.State)

	pane.SetAnimation(-1)
	assert.Zero(t, pane.State.Animation)

	// Building again from the same schema yields fresh state.
	again := FromSchema(&root)
	fresh, _ := again.Get("/0")
	assert.Equal(t, State{}, fresh.State)
	assert.Equal(t, 2, schema.Count(root))

	m.ClearState()
	assert.Equal(t, State{}, pane.State)
}

func TestDump(t *testing.T) {
	root := lessonSchema()
	m := FromSchema(&root)
	pane, _ := m.Get("/0")
	pane.SetHovered(true)

	var buf bytes.Buffer
	m.Dump(&buf)

	out := buf.String()
	assert.Contains(t, out, "PaneLeft")
	assert.Contains(t, out, "Root")
	assert.Contains(t, out, `"/0"`)
	assert.Contains(t, out, "Hovered: (bool) true")
}
