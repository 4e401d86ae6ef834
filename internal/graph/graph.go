package graph

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
)

// Node is one pipeline node.
type Node struct {
	// ID is the node's key in the parameter tree. It is assigned when empty.
	ID   string
	Name string
	// Description is shown for the node's slot in the tree.
	Description string
	Parameters  param.Collection
}

// Graph is an ordered set of nodes.
type Graph struct {
	nodes  []*Node
	byID   map[string]*Node
	subs   map[string]*param.Subscription
	events param.Emitter
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byID: make(map[string]*Node),
		subs: make(map[string]*param.Subscription),
	}
}

// AddNode appends n. An empty ID is replaced by a random UUID.
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("node cannot be nil")
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if strings.Contains(n.ID, paramkey.Separator) {
		return fmt.Errorf("node id '%s' must not contain '%s'", n.ID, paramkey.Separator)
	}
	if _, exists := g.byID[n.ID]; exists {
		return fmt.Errorf("node '%s' already exists in graph", n.ID)
	}

	g.nodes = append(g.nodes, n)
	g.byID[n.ID] = n
	if n.Parameters != nil {
		g.subs[n.ID] = n.Parameters.Events().Subscribe(g.events.Emit)
	}
	g.events.Emit(param.Event{Kind: param.StructureChanged, Source: g})
	return nil
}

// RemoveNode deletes the node with the given ID.
func (g *Graph) RemoveNode(id string) bool {
	n, ok := g.byID[id]
	if !ok {
		return false
	}
	for i, cur := range g.nodes {
		if cur == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			break
		}
	}
	delete(g.byID, id)
	if sub, ok := g.subs[id]; ok {
		sub.Unsubscribe()
		delete(g.subs, id)
	}
	g.events.Emit(param.Event{Kind: param.StructureChanged, Source: g})
	return true
}

// Node looks a node up by ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return append([]*Node(nil), g.nodes...)
}

// Parameters implements param.Collection. A graph has no own parameters.
func (g *Graph) Parameters() []param.Access { return nil }

// Children implements param.Collection with one slot per node.
func (g *Graph) Children() []param.Child {
	out := make([]param.Child, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = param.Child{
			Key:         n.ID,
			Name:        n.Name,
			Description: n.Description,
			Resolve:     func() (param.Collection, error) { return n.Parameters, nil },
		}
	}
	return out
}

// Events implements param.Collection.
func (g *Graph) Events() *param.Emitter { return &g.events }

// ParameterTree builds a fresh tree for the current graph state.
func (g *Graph) ParameterTree() (*paramtree.Tree, error) {
	return paramtree.Build(g)
}
