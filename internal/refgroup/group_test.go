package refgroup

import (
	"testing"

	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(c interface{ Events() *param.Emitter }) *[]param.Event {
	var events []param.Event
	c.Events().Subscribe(func(e param.Event) { events = append(events, e) })
	return &events
}

func ref(path string) *paramref.Reference {
	return &paramref.Reference{Path: path}
}

func TestGroup_AddContentSuppressesDuplicates(t *testing.T) {
	g := NewGroup("Group A", "")
	events := record(g)

	assert.True(t, g.AddContent(ref("node1/x")))
	assert.False(t, g.AddContent(ref("node1/x")))
	assert.False(t, g.AddContent(&paramref.Reference{Path: "node1/x", CustomName: "Other"}), "equality is by path")
	assert.False(t, g.AddContent(nil))

	assert.Equal(t, 1, g.Len())
	assert.Len(t, *events, 1)
}

func TestGroup_AddContentsEmitsOnce(t *testing.T) {
	g := NewGroup("Group A", "")
	g.AddContent(ref("node1/x"))
	events := record(g)

	added := g.AddContents(ref("node1/x"), ref("node1/y"), ref("node2/z"), ref("node1/y"))
	assert.Equal(t, 2, added)
	require.Len(t, *events, 1)
	assert.Equal(t, param.StructureChanged, (*events)[0].Kind)
	assert.Equal(t, param.Collection(g), (*events)[0].Source)

	assert.Zero(t, g.AddContents(ref("node1/x")))
	assert.Len(t, *events, 1, "no event when nothing was added")

	var paths []string
	for _, r := range g.Content() {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"node1/x", "node1/y", "node2/z"}, paths)
}

func TestGroup_RemoveAndSetContent(t *testing.T) {
	g := NewGroup("Group A", "")
	g.AddContents(ref("a"), ref("b"))
	events := record(g)

	assert.True(t, g.RemoveContent(ref("a")))
	assert.False(t, g.RemoveContent(ref("a")))
	assert.Len(t, *events, 1)

	g.SetContent([]*paramref.Reference{ref("c"), ref("d"), ref("c")})
	assert.Len(t, *events, 2)
	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Contains(ref("d")))
	assert.False(t, g.Contains(ref("b")))
}

func TestGroup_NameIsAParameter(t *testing.T) {
	g := NewGroup("Group A", "first")
	events := record(g)

	name, ok := param.Lookup(g, "name")
	require.True(t, ok)
	assert.Equal(t, "Group A", name.Get())
	assert.Equal(t, param.Collection(g), name.Source())

	require.NoError(t, name.Set("Renamed"))
	assert.Equal(t, "Renamed", g.Name())
	require.NoError(t, g.SetDescription("second"))
	assert.Equal(t, "second", g.Description())

	require.Len(t, *events, 2)
	assert.Equal(t, param.ValueChanged, (*events)[0].Kind)
	assert.Equal(t, "name", (*events)[0].Key)
}

func TestGroup_SetCustomName(t *testing.T) {
	g := NewGroup("Group A", "")
	r := ref("node1/x")
	g.AddContent(r)
	events := record(g)

	assert.True(t, g.SetCustomName("node1/x", "Threshold"))
	assert.True(t, g.SetCustomDescription("node1/x", "Cutoff"))
	assert.False(t, g.SetCustomName("node9/x", "Missing"))

	assert.Equal(t, "Threshold", r.CustomName)
	assert.Equal(t, "Cutoff", r.CustomDescription)
	require.Len(t, *events, 2)
	assert.Equal(t, param.UIChanged, (*events)[0].Kind)
	assert.Equal(t, "node1/x", (*events)[0].Key)
}

func TestGroup_CloneIsDeep(t *testing.T) {
	g := NewGroup("Group A", "desc")
	g.AddContent(&paramref.Reference{Path: "node1/x", CustomName: "One"})

	c := g.Clone()
	c.SetCustomName("node1/x", "Two")
	require.NoError(t, c.SetName("Copy"))

	assert.Equal(t, "One", g.Content()[0].CustomName)
	assert.Equal(t, "Group A", g.Name())
	assert.Equal(t, "desc", c.Description())
}
