package refgroup

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramref"
)

// DefaultGroupName is the name given to groups created by AddNewGroup.
const DefaultGroupName = "New group"

// Group is a named, ordered set of references, unique by path.
type Group struct {
	params      *param.Set
	name        string
	description string
	content     []*paramref.Reference
}

// NewGroup creates an empty group.
func NewGroup(name, description string) *Group {
	g := &Group{name: name, description: description}
	g.initParams()
	return g
}

func (g *Group) initParams() {
	g.params = param.NewSet(param.WithOwner(g))
	g.params.MustAdd("name", param.Field(&g.name), param.Meta{
		Name:        "Name",
		Description: "Name of the group, also used for its exported key",
		UIOrder:     -100,
		Important:   true,
	})
	g.params.MustAdd("description", param.Field(&g.description), param.Meta{
		Name:    "Description",
		UIOrder: -90,
	})
}

func (g *Group) Name() string        { return g.name }
func (g *Group) Description() string { return g.description }

// SetName changes the name through its parameter.
func (g *Group) SetName(name string) error {
	v, _ := g.params.Get("name")
	return v.Set(name)
}

// SetDescription changes the description through its parameter.
func (g *Group) SetDescription(description string) error {
	v, _ := g.params.Get("description")
	return v.Set(description)
}

// Parameters implements param.Collection.
func (g *Group) Parameters() []param.Access { return g.params.Parameters() }

// Children implements param.Collection. Groups have no child collections.
func (g *Group) Children() []param.Child { return nil }

// Events implements param.Collection. Content edits are reported here too.
func (g *Group) Events() *param.Emitter { return g.params.Events() }

// Content returns the references in order. The references are shared with
// the group; edit their overrides through SetCustomName and
// SetCustomDescription so observers are notified.
func (g *Group) Content() []*paramref.Reference {
	return append([]*paramref.Reference(nil), g.content...)
}

// Len returns the number of references.
func (g *Group) Len() int { return len(g.content) }

// Contains reports whether a reference with the same path is present.
func (g *Group) Contains(ref *paramref.Reference) bool {
	return g.indexOf(ref) >= 0
}

// AddContent appends ref unless a reference with the same path exists.
func (g *Group) AddContent(ref *paramref.Reference) bool {
	if !g.add(ref) {
		return false
	}
	g.emitStructure()
	return true
}

// AddContents appends every new reference and emits a single event. It
// returns the number of references actually added.
func (g *Group) AddContents(refs ...*paramref.Reference) int {
	added := 0
	for _, ref := range refs {
		if g.add(ref) {
			added++
		}
	}
	if added > 0 {
		g.emitStructure()
	}
	return added
}

// RemoveContent removes the reference with the same path as ref.
func (g *Group) RemoveContent(ref *paramref.Reference) bool {
	i := g.indexOf(ref)
	if i < 0 {
		return false
	}
	g.content = append(g.content[:i], g.content[i+1:]...)
	g.emitStructure()
	return true
}

// SetContent replaces all references. Duplicates in refs are dropped.
func (g *Group) SetContent(refs []*paramref.Reference) {
	g.content = nil
	for _, ref := range refs {
		g.add(ref)
	}
	g.emitStructure()
}

// SetCustomName overrides the display name of the reference at path.
func (g *Group) SetCustomName(path, name string) bool {
	return g.editReference(path, func(r *paramref.Reference) { r.CustomName = name })
}

// SetCustomDescription overrides the display description of the reference
// at path.
func (g *Group) SetCustomDescription(path, description string) bool {
	return g.editReference(path, func(r *paramref.Reference) { r.CustomDescription = description })
}

// Clone returns a deep copy with no subscribers.
func (g *Group) Clone() *Group {
	c := NewGroup(g.name, g.description)
	for _, ref := range g.content {
		c.content = append(c.content, ref.Clone())
	}
	return c
}

func (g *Group) add(ref *paramref.Reference) bool {
	if ref == nil || g.Contains(ref) {
		return false
	}
	g.content = append(g.content, ref)
	return true
}

func (g *Group) indexOf(ref *paramref.Reference) int {
	if ref == nil {
		return -1
	}
	for i, cur := range g.content {
		if cur.Equal(ref) {
			return i
		}
	}
	return -1
}

func (g *Group) editReference(path string, edit func(*paramref.Reference)) bool {
	i := g.indexOf(&paramref.Reference{Path: path})
	if i < 0 {
		return false
	}
	edit(g.content[i])
	g.Events().Emit(param.Event{Kind: param.UIChanged, Key: path, Source: g})
	return true
}

func (g *Group) emitStructure() {
	g.Events().Emit(param.Event{Kind: param.StructureChanged, Source: g})
}
