package config

import (
	"context"
	"fmt"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/graph"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/refgroup"
)

// Pipeline is a model turned into live objects.
type Pipeline struct {
	Graph    *graph.Graph
	Exported *refgroup.Collection
}

// NewPipeline builds the graph described by m and the exported groups bound
// to it.
func NewPipeline(ctx context.Context, m *Model) (*Pipeline, error) {
	logger := ctxlog.FromContext(ctx)

	g := graph.New()
	for _, n := range m.Nodes {
		set, err := buildSet(n.Parameters, n.Collections)
		if err != nil {
			return nil, fmt.Errorf("in node '%s': %w", n.ID, err)
		}
		if err := g.AddNode(&graph.Node{ID: n.ID, Name: n.Name, Description: n.Description, Parameters: set}); err != nil {
			return nil, err
		}
	}

	exported := refgroup.NewCollection()
	for _, eg := range m.Exported {
		group := refgroup.NewGroup(eg.Name, eg.Description)
		if added := group.AddContents(eg.References...); added < len(eg.References) {
			logger.Warn("Dropped duplicate references from exported group.", "group", eg.Name, "dropped", len(eg.References)-added)
		}
		exported.AddGroups(group)
	}
	exported.Bind(g)

	logger.Debug("Pipeline built.", "nodes", len(m.Nodes), "exported_groups", exported.Len())
	return &Pipeline{Graph: g, Exported: exported}, nil
}

func buildSet(params []*Parameter, collections []*Collection) (*param.Set, error) {
	set := param.NewSet()
	for _, p := range params {
		persistence := param.Persistent
		if p.Transient {
			persistence = param.Transient
		}
		_, err := set.Add(p.Key, param.CtyValue(p.Default, p.Type), param.Meta{
			Name:        p.Name,
			Description: p.Description,
			Type:        p.Type,
			Hidden:      p.Hidden,
			Important:   p.Important,
			UIOrder:     p.UIOrder,
			Persistence: persistence,
		})
		if err != nil {
			return nil, err
		}
	}
	for _, c := range collections {
		child, err := buildSet(c.Parameters, c.Collections)
		if err != nil {
			return nil, fmt.Errorf("in collection '%s': %w", c.Key, err)
		}
		set.AddChildSlot(param.Child{
			Key:         c.Key,
			Name:        c.Name,
			Description: c.Description,
			Hidden:      c.Hidden,
			UIOrder:     c.UIOrder,
			Resolve:     func() (param.Collection, error) { return child, nil },
		})
	}
	return set, nil
}
