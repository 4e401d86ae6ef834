package refadapter

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
	"github.com/zclconf/go-cty/cty"
)

// Forward is an access that delegates to a parameter of another collection.
type Forward struct {
	key         string
	ref         *paramref.Reference
	tree        *paramtree.Tree
	target      param.Access
	persistence param.Persistence
	surface     *Surface
	sub         *param.Subscription
}

func newForward(s *Surface, key string, ref *paramref.Reference, tree *paramtree.Tree, target param.Access, persistence param.Persistence) *Forward {
	f := &Forward{
		key:         key,
		ref:         ref,
		tree:        tree,
		target:      target,
		persistence: persistence,
		surface:     s,
	}
	if src := target.Source(); src != nil {
		f.sub = src.Events().SubscribeWeak(f.relay)
	}
	return f
}

// relay re-emits value changes of the target under the forward key.
func (f *Forward) relay(e param.Event) {
	if e.Kind != param.ValueChanged || e.Key != f.target.Key() || e.Source != f.target.Source() {
		return
	}
	f.surface.events.Emit(param.Event{Kind: param.ValueChanged, Key: f.key, Source: f.surface})
}

// Key implements param.Access.
func (f *Forward) Key() string { return f.key }

// Name returns the reference's custom name, or the original's name.
func (f *Forward) Name() string { return f.ref.Name(f.tree) }

// Description returns the reference's custom description, or the original's.
func (f *Forward) Description() string {
	d, _ := f.ref.Description(f.tree)
	return d
}

func (f *Forward) FieldType() cty.Type { return f.target.FieldType() }
func (f *Forward) Hidden() bool        { return f.target.Hidden() }
func (f *Forward) Important() bool     { return f.target.Important() }
func (f *Forward) UIOrder() int        { return f.target.UIOrder() }

// Persistence is the value chosen when the adapter was built, independent of
// the original's.
func (f *Forward) Persistence() param.Persistence { return f.persistence }

func (f *Forward) Get() any { return f.target.Get() }

// Set writes to the original. The change notification arrives through the
// original's emitter, so exactly one event reaches the surface.
func (f *Forward) Set(value any) error { return f.target.Set(value) }

// Source returns the surface holding the forward.
func (f *Forward) Source() param.Collection { return f.surface }

// Target returns the original access.
func (f *Forward) Target() param.Access { return f.target }

// Reference returns the reference the forward was built from.
func (f *Forward) Reference() *paramref.Reference { return f.ref }

func (f *Forward) close() {
	if f.sub != nil {
		f.sub.Unsubscribe()
	}
}
