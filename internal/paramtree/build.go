package paramtree

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
)

// TraversalError reports a collaborator fault raised while visiting one
// collection or resolving one child slot.
type TraversalError struct {
	Path string
	Err  error
}

func (e *TraversalError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	return fmt.Sprintf("parameter collection '%s': %v", path, e.Err)
}

func (e *TraversalError) Unwrap() error { return e.Err }

type pendingKey struct {
	natural string
	access  param.Access
	node    NodeID
}

type builder struct {
	tree    *Tree
	pending []pendingKey
	errs    []error
}

// Build flattens the collection graph rooted at root.
//
// Faults raised by collaborators are collected and returned joined, next to a
// tree that is complete for everything else. A missing child is skipped. A
// collection reached a second time in the same build is attached only at its
// first position.
func Build(root param.Collection) (*Tree, error) {
	t := newTree()
	b := &builder{tree: t}
	id := b.addNode(noParent, param.Child{}, root)
	if root != nil {
		b.visit(id)
	}
	b.assignKeys()
	return t, errors.Join(b.errs...)
}

// assignKeys hands out global keys in visit order once every natural key is
// known, so a suffixed duplicate never takes the key of a later parameter.
func (b *builder) assignKeys() {
	unique := paramkey.NewUniquer()
	for _, p := range b.pending {
		unique.Reserve(p.natural)
	}
	for _, p := range b.pending {
		key := unique.Claim(p.natural)
		b.tree.keys = append(b.tree.keys, key)
		b.tree.params[key] = p.access
		b.tree.byAccess[p.access] = indexEntry{key: key, node: p.node}
	}
}

func (b *builder) addNode(parent NodeID, slot param.Child, c param.Collection) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, &Node{
		tree:        b.tree,
		id:          id,
		parent:      parent,
		key:         slot.Key,
		collection:  c,
		name:        slot.Name,
		description: slot.Description,
		hidden:      slot.Hidden,
		uiOrder:     slot.UIOrder,
	})
	if parent != noParent {
		p := b.tree.nodes[parent]
		p.children = append(p.children, id)
	}
	if c != nil {
		b.tree.bySource[c] = id
	}
	return id
}

func (b *builder) visit(id NodeID) {
	n := b.tree.nodes[id]
	path := n.Path()

	var accesses []param.Access
	if err := guard(func() { accesses = n.collection.Parameters() }); err != nil {
		b.fault(path, err)
	}
	for _, a := range accesses {
		if a == nil {
			continue
		}
		if _, seen := b.tree.byAccess[a]; seen {
			continue
		}
		b.tree.byAccess[a] = indexEntry{node: id}
		b.pending = append(b.pending, pendingKey{natural: paramkey.Join(append(path, a.Key())...), access: a, node: id})
		n.params = append(n.params, a)
	}

	var slots []param.Child
	if err := guard(func() { slots = n.collection.Children() }); err != nil {
		b.fault(path, err)
	}
	for _, slot := range slots {
		childPath := append(append([]string(nil), path...), slot.Key)
		child, err := resolve(slot)
		if err != nil {
			b.fault(childPath, err)
		}
		if child == nil {
			continue
		}
		if _, seen := b.tree.bySource[child]; seen {
			continue
		}
		b.visit(b.addNode(id, slot, child))
	}
}

func (b *builder) fault(path []string, err error) {
	b.errs = append(b.errs, &TraversalError{Path: paramkey.Join(path...), Err: err})
}

func resolve(slot param.Child) (param.Collection, error) {
	if slot.Resolve == nil {
		return nil, nil
	}
	var c param.Collection
	var resolveErr error
	if err := guard(func() { c, resolveErr = slot.Resolve() }); err != nil {
		return nil, err
	}
	return c, resolveErr
}

// guard runs fn and turns a panic into an error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}
