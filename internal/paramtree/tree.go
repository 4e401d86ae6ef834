package paramtree

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
)

type indexEntry struct {
	key  string
	node NodeID
}

// Tree is a flattened, uniquely keyed snapshot of a collection graph.
type Tree struct {
	nodes    []*Node
	keys     []string
	params   map[string]param.Access
	byAccess map[param.Access]indexEntry
	bySource map[param.Collection]NodeID
}

func newTree() *Tree {
	return &Tree{
		params:   make(map[string]param.Access),
		byAccess: make(map[param.Access]indexEntry),
		bySource: make(map[param.Collection]NodeID),
	}
}

// Root returns the node of the collection the tree was built from.
func (t *Tree) Root() *Node {
	return t.nodes[0]
}

// Node returns the node with the given arena index.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[id], true
}

// Nodes returns all nodes in visit order, root first.
func (t *Tree) Nodes() []*Node {
	return append([]*Node(nil), t.nodes...)
}

// Parameters returns a copy of the flat key → access map.
func (t *Tree) Parameters() map[string]param.Access {
	out := make(map[string]param.Access, len(t.params))
	for k, v := range t.params {
		out[k] = v
	}
	return out
}

// Keys returns the global keys in visit order.
func (t *Tree) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of parameters in the tree.
func (t *Tree) Len() int {
	return len(t.keys)
}

// Get resolves a global key.
func (t *Tree) Get(key string) (param.Access, bool) {
	a, ok := t.params[key]
	return a, ok
}

// UniqueKey returns the global key of access, or "" if the access is not
// part of this tree.
func (t *Tree) UniqueKey(access param.Access) string {
	if access == nil {
		return ""
	}
	return t.byAccess[access].key
}

// SourceNode returns the node that visited collection c.
func (t *Tree) SourceNode(c param.Collection) (*Node, bool) {
	id, ok := t.bySource[c]
	if !ok {
		return nil, false
	}
	return t.nodes[id], true
}

// SourceOf returns the node owning access.
func (t *Tree) SourceOf(access param.Access) (*Node, bool) {
	if access == nil {
		return nil, false
	}
	entry, ok := t.byAccess[access]
	if !ok {
		return nil, false
	}
	return t.nodes[entry.node], true
}

// SourceKey returns the path of the node that visited c.
func (t *Tree) SourceKey(c param.Collection) string {
	n, ok := t.SourceNode(c)
	if !ok {
		return ""
	}
	return paramkey.Join(n.Path()...)
}

// SourceName returns the display name of the node that visited c.
func (t *Tree) SourceName(c param.Collection) string {
	n, ok := t.SourceNode(c)
	if !ok {
		return ""
	}
	return n.Name()
}

// SourceGroup is the list of accesses owned by one node.
type SourceGroup struct {
	Node       *Node
	Parameters []param.Access
}

// GroupedBySource returns every node with its own accesses, in visit order.
// Nodes without parameters are included with an empty list.
func (t *Tree) GroupedBySource() []SourceGroup {
	out := make([]SourceGroup, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = SourceGroup{Node: n, Parameters: n.Parameters()}
	}
	return out
}

// AllChildParameters returns the accesses of n and of all its descendants,
// depth-first in visit order.
func (t *Tree) AllChildParameters(n *Node) []param.Access {
	var out []param.Access
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur.Parameters()...)
		for _, child := range cur.Children() {
			walk(child)
		}
	}
	walk(n)
	return out
}
