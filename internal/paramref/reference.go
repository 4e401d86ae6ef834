package paramref

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
)

// NoName is reported by Name for a reference that resolves to nothing and has
// no custom name.
const NoName = "[No name]"

// Reference points to a parameter by its global key.
type Reference struct {
	Path              string `json:"path" yaml:"path"`
	CustomName        string `json:"custom-name,omitempty" yaml:"custom-name,omitempty"`
	CustomDescription string `json:"custom-description,omitempty" yaml:"custom-description,omitempty"`
}

// New captures the current global key of access in tree.
func New(access param.Access, tree *paramtree.Tree) *Reference {
	return &Reference{Path: tree.UniqueKey(access)}
}

// Resolve looks the path up in tree.
func (r *Reference) Resolve(tree *paramtree.Tree) (param.Access, bool) {
	if r == nil || tree == nil || r.Path == "" {
		return nil, false
	}
	return tree.Get(r.Path)
}

// Name returns the custom name, the resolved parameter's name, or NoName.
func (r *Reference) Name(tree *paramtree.Tree) string {
	if r.CustomName != "" {
		return r.CustomName
	}
	if a, ok := r.Resolve(tree); ok {
		return a.Name()
	}
	return NoName
}

// Description returns the custom description or the resolved parameter's
// description. It reports false when neither exists.
func (r *Reference) Description(tree *paramtree.Tree) (string, bool) {
	if r.CustomDescription != "" {
		return r.CustomDescription, true
	}
	if a, ok := r.Resolve(tree); ok {
		return a.Description(), true
	}
	return "", false
}

// Equal compares references by path only; display overrides are ignored.
func (r *Reference) Equal(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Path == other.Path
}

// Clone returns an independent copy.
func (r *Reference) Clone() *Reference {
	c := *r
	return &c
}
