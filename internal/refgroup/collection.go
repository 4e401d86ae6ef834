package refgroup

import (
	"context"
	"errors"
	"fmt"
	"weak"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/graph"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
	"github.com/specialistvlad/paramgrid/internal/validation"
)

// ErrUnbound is returned by ReportValidity when no graph was given and the
// bound graph is gone or was never set.
var ErrUnbound = errors.New("reference group collection is not bound to a graph")

// Remediation is the suggested fix attached to every dangling reference.
const Remediation = "the referenced parameter no longer exists; remove this item"

// Collection is an ordered list of groups.
type Collection struct {
	groups []*Group
	subs   map[*Group]*param.Subscription
	events param.Emitter
	graph  weak.Pointer[graph.Graph]
}

// NewCollection creates a collection holding groups.
func NewCollection(groups ...*Group) *Collection {
	c := &Collection{}
	c.AddGroups(groups...)
	return c
}

// Events is the single subscription point for the collection and every
// group in it.
func (c *Collection) Events() *param.Emitter { return &c.events }

// Groups returns the groups in order.
func (c *Collection) Groups() []*Group {
	return append([]*Group(nil), c.groups...)
}

func (c *Collection) Len() int { return len(c.groups) }

// AddNewGroup appends an empty group with the default name.
func (c *Collection) AddNewGroup() *Group {
	g := NewGroup(DefaultGroupName, "")
	c.AddGroups(g)
	return g
}

// AddGroups appends groups that are not already part of the collection.
func (c *Collection) AddGroups(groups ...*Group) {
	added := 0
	for _, g := range groups {
		if c.attach(g) {
			c.groups = append(c.groups, g)
			added++
		}
	}
	if added > 0 {
		c.emitStructure()
	}
}

// RemoveGroup removes g and stops observing it.
func (c *Collection) RemoveGroup(g *Group) bool {
	for i, cur := range c.groups {
		if cur == g {
			c.groups = append(c.groups[:i], c.groups[i+1:]...)
			c.detach(g)
			c.emitStructure()
			return true
		}
	}
	return false
}

// SetGroups replaces all groups.
func (c *Collection) SetGroups(groups []*Group) {
	for _, g := range c.groups {
		c.detach(g)
	}
	c.groups = nil
	for _, g := range groups {
		if c.attach(g) {
			c.groups = append(c.groups, g)
		}
	}
	c.emitStructure()
}

// Bind records the graph the references point into. Only a weak pointer is
// kept; the collection never keeps a graph alive.
func (c *Collection) Bind(g *graph.Graph) {
	if g == nil {
		c.graph = weak.Pointer[graph.Graph]{}
		return
	}
	c.graph = weak.Make(g)
}

// Graph returns the bound graph, or nil if it is gone.
func (c *Collection) Graph() *graph.Graph {
	return c.graph.Value()
}

// ReportValidity checks every reference against a fresh tree of g, or of the
// bound graph when g is nil. A fault while building the tree is returned next
// to the report, which still covers everything that could be visited.
func (c *Collection) ReportValidity(ctx context.Context, g *graph.Graph) (*validation.Report, error) {
	if g == nil {
		g = c.Graph()
	}
	if g == nil {
		return nil, ErrUnbound
	}
	logger := ctxlog.FromContext(ctx)

	tree, buildErr := g.ParameterTree()
	report := c.ValidateTree(tree)
	logger.Debug("Checked exported parameter references.", "groups", len(c.groups), "invalid", report.Len())
	if buildErr != nil {
		logger.Warn("Parameter tree was built with faults.", "error", buildErr)
		return report, fmt.Errorf("failed to build parameter tree: %w", buildErr)
	}
	return report, nil
}

// ValidateTree reports every reference that does not resolve in tree.
func (c *Collection) ValidateTree(tree *paramtree.Tree) *validation.Report {
	report := &validation.Report{}
	for _, g := range c.groups {
		for _, ref := range g.content {
			if _, ok := ref.Resolve(tree); ok {
				continue
			}
			report.Add(validation.Entry{
				Level:       validation.LevelError,
				Context:     g.Name(),
				Path:        ref.Path,
				Message:     "invalid parameter reference",
				Explanation: fmt.Sprintf("group '%s' references '%s', which is not part of the pipeline", g.Name(), ref.Path),
				Solution:    Remediation,
			})
		}
	}
	return report
}

// Clone deep-copies every group. The copy is bound to the same graph.
func (c *Collection) Clone() *Collection {
	out := &Collection{graph: c.graph}
	for _, g := range c.groups {
		clone := g.Clone()
		out.attach(clone)
		out.groups = append(out.groups, clone)
	}
	return out
}

func (c *Collection) attach(g *Group) bool {
	if g == nil {
		return false
	}
	if c.subs == nil {
		c.subs = make(map[*Group]*param.Subscription)
	}
	if _, exists := c.subs[g]; exists {
		return false
	}
	c.subs[g] = g.Events().Subscribe(c.events.Emit)
	return true
}

func (c *Collection) detach(g *Group) {
	if sub, ok := c.subs[g]; ok {
		sub.Unsubscribe()
		delete(c.subs, g)
	}
}

func (c *Collection) emitStructure() {
	c.events.Emit(param.Event{Kind: param.StructureChanged})
}
