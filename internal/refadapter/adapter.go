package refadapter

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
	"github.com/specialistvlad/paramgrid/internal/refgroup"
)

// Surface is the synthetic collection built for one group.
type Surface struct {
	key      string
	group    *refgroup.Group
	forwards []*Forward
	events   param.Emitter
}

// Key returns the surface's key under the adapter.
func (s *Surface) Key() string { return s.key }

// Group returns the group the surface was built from.
func (s *Surface) Group() *refgroup.Group { return s.group }

// Forwards returns the forwarding accesses in reference order.
func (s *Surface) Forwards() []*Forward {
	return append([]*Forward(nil), s.forwards...)
}

// Parameters implements param.Collection.
func (s *Surface) Parameters() []param.Access {
	out := make([]param.Access, len(s.forwards))
	for i, f := range s.forwards {
		out[i] = f
	}
	return out
}

// Children implements param.Collection. Surfaces are flat.
func (s *Surface) Children() []param.Child { return nil }

// Events implements param.Collection.
func (s *Surface) Events() *param.Emitter { return &s.events }

// Adapter is the root of the synthetic hierarchy.
type Adapter struct {
	surfaces    []*Surface
	subs        []*param.Subscription
	events      param.Emitter
	fingerprint uint64
	closed      bool
}

// Build creates an adapter exposing the references of groups that resolve in
// tree. Every forward reports the given persistence.
func Build(groups *refgroup.Collection, tree *paramtree.Tree, persistence param.Persistence) *Adapter {
	a := &Adapter{}
	if tree != nil {
		a.fingerprint = tree.Fingerprint()
	}
	if groups == nil {
		return a
	}

	// Natural keys are reserved up front so that a suffixed duplicate never
	// takes the key another group or parameter would get on its own.
	groupList := groups.Groups()
	surfaceKeys := paramkey.NewUniquer()
	for _, g := range groupList {
		surfaceKeys.Reserve(paramkey.Slug(g.Name()))
	}
	claimed := make(map[param.Access]struct{})
	for _, g := range groupList {
		s := &Surface{key: surfaceKeys.Claim(paramkey.Slug(g.Name())), group: g}

		var refs []*paramref.Reference
		var targets []param.Access
		for _, ref := range g.Content() {
			target, ok := ref.Resolve(tree)
			if !ok {
				continue
			}
			if _, taken := claimed[target]; taken {
				continue
			}
			claimed[target] = struct{}{}
			refs = append(refs, ref)
			targets = append(targets, target)
		}

		localKeys := paramkey.NewUniquer()
		for _, target := range targets {
			localKeys.Reserve(target.Key())
		}
		for i, target := range targets {
			s.forwards = append(s.forwards, newForward(s, localKeys.Claim(target.Key()), refs[i], tree, target, persistence))
		}
		a.surfaces = append(a.surfaces, s)
		a.subs = append(a.subs, s.events.Subscribe(a.events.Emit))
	}
	return a
}

// Surfaces returns the surfaces in group order.
func (a *Adapter) Surfaces() []*Surface {
	return append([]*Surface(nil), a.surfaces...)
}

// Surface looks a surface up by key.
func (a *Adapter) Surface(key string) (*Surface, bool) {
	for _, s := range a.surfaces {
		if s.key == key {
			return s, true
		}
	}
	return nil, false
}

// Parameters implements param.Collection. The adapter has no own parameters.
func (a *Adapter) Parameters() []param.Access { return nil }

// Children implements param.Collection with one slot per surface.
func (a *Adapter) Children() []param.Child {
	out := make([]param.Child, len(a.surfaces))
	for i, s := range a.surfaces {
		out[i] = param.Child{
			Key:         s.key,
			Name:        s.group.Name(),
			Description: s.group.Description(),
			Resolve:     func() (param.Collection, error) { return s, nil },
		}
	}
	return out
}

// Events republishes the events of every surface.
func (a *Adapter) Events() *param.Emitter { return &a.events }

// Fingerprint returns the fingerprint of the tree the adapter was built from.
func (a *Adapter) Fingerprint() uint64 { return a.fingerprint }

// Close detaches every forward from its original. It is safe to call more
// than once.
func (a *Adapter) Close() {
	if a.closed {
		return
	}
	a.closed = true
	for _, s := range a.surfaces {
		for _, f := range s.forwards {
			f.close()
		}
	}
	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
}
