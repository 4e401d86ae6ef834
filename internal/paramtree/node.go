package paramtree

import (
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
)

// NodeID addresses a Node inside its Tree's arena.
type NodeID int

// noParent marks the root.
const noParent NodeID = -1

// Node is one visited collection.
type Node struct {
	tree *Tree

	id          NodeID
	parent      NodeID
	key         string
	collection  param.Collection
	name        string
	description string
	hidden      bool
	uiOrder     int

	params   []param.Access
	children []NodeID
}

// ID returns the node's arena index.
func (n *Node) ID() NodeID { return n.id }

// Key returns the child key under which the collection was reached. The root
// has an empty key.
func (n *Node) Key() string { return n.key }

// Collection returns the visited collection.
func (n *Node) Collection() param.Collection { return n.collection }

// Name returns the display name given by the parent slot, or the node path.
func (n *Node) Name() string {
	if n.name != "" {
		return n.name
	}
	return paramkey.Join(n.Path()...)
}

func (n *Node) Description() string { return n.description }
func (n *Node) Hidden() bool        { return n.hidden }
func (n *Node) UIOrder() int        { return n.uiOrder }

// IsRoot reports whether n is the tree root.
func (n *Node) IsRoot() bool { return n.parent == noParent }

// Parent returns the enclosing node.
func (n *Node) Parent() (*Node, bool) {
	if n.parent == noParent {
		return nil, false
	}
	return n.tree.nodes[n.parent], true
}

// Children returns the child nodes in visit order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, id := range n.children {
		out[i] = n.tree.nodes[id]
	}
	return out
}

// Parameters returns the node's own accesses in visit order.
func (n *Node) Parameters() []param.Access {
	return append([]param.Access(nil), n.params...)
}

// Path returns the child keys from the root down to n.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur.parent != noParent; cur = n.tree.nodes[cur.parent] {
		path = append(path, cur.key)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
