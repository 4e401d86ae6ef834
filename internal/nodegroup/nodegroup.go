package nodegroup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/graph"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/refadapter"
	"github.com/specialistvlad/paramgrid/internal/refgroup"
	"github.com/specialistvlad/paramgrid/internal/validation"
)

// ExportedKey is the child key of the exported parameter surface.
const ExportedKey = "exported"

// NodeGroup wraps an inner graph.
type NodeGroup struct {
	params   *param.Set
	inner    *graph.Graph
	exported *refgroup.Collection
	logger   *slog.Logger

	continueOnFailure     bool
	showLimitedParameters bool

	adapter    *refadapter.Adapter
	adapterSub *param.Subscription
	dirty      bool
	subs       []*param.Subscription
}

// New creates a node group over inner exposing the references in exported.
// Nil arguments are replaced with empty ones. exported is bound to inner.
func New(ctx context.Context, inner *graph.Graph, exported *refgroup.Collection) *NodeGroup {
	if inner == nil {
		inner = graph.New()
	}
	if exported == nil {
		exported = refgroup.NewCollection()
	}
	exported.Bind(inner)

	ng := &NodeGroup{
		inner:    inner,
		exported: exported,
		logger:   ctxlog.FromContext(ctx),
		dirty:    true,
	}
	ng.params = param.NewSet(param.WithOwner(ng))
	ng.params.MustAdd("continue-on-failure", param.Field(&ng.continueOnFailure), param.Meta{
		Name:        "Continue on failure",
		Description: "Keep running the remaining inner nodes when one of them fails",
	})
	ng.params.MustAdd("show-limited-parameters", param.Field(&ng.showLimitedParameters), param.Meta{
		Name:        "Show limited parameter set",
		Description: "Only show the exported parameters in editors",
		Hidden:      true,
	})
	ng.params.AddChildSlot(param.Child{
		Key:         ExportedKey,
		Name:        "Exported parameters",
		Description: "Parameters of the inner pipeline exposed by this group",
		Resolve: func() (param.Collection, error) {
			a, err := ng.Adapter()
			return a, err
		},
	})

	ng.subs = append(ng.subs,
		exported.Events().Subscribe(func(e param.Event) {
			if e.Kind == param.StructureChanged || e.Kind == param.ValueChanged {
				ng.markDirty()
			}
		}),
		inner.Events().Subscribe(func(e param.Event) {
			if e.Kind == param.StructureChanged {
				ng.markDirty()
			}
		}),
	)
	return ng
}

func (ng *NodeGroup) markDirty() {
	if ng.dirty {
		return
	}
	ng.dirty = true
	ng.params.Events().Emit(param.Event{Kind: param.StructureChanged, Source: ng})
}

// Adapter returns the exported surface, rebuilding it when stale. When part
// of the inner graph faults, the surface still forwards to every parameter
// that could be visited and the fault is returned next to it.
func (ng *NodeGroup) Adapter() (*refadapter.Adapter, error) {
	tree, treeErr := ng.inner.ParameterTree()
	if treeErr != nil {
		treeErr = fmt.Errorf("failed to build inner parameter tree: %w", treeErr)
	}
	if ng.adapter != nil && !ng.dirty && ng.adapter.Fingerprint() == tree.Fingerprint() {
		return ng.adapter, treeErr
	}

	next := refadapter.Build(ng.exported, tree, param.Transient)
	if ng.adapter != nil {
		ng.adapterSub.Unsubscribe()
		ng.adapter.Close()
	}
	ng.adapter = next
	ng.adapterSub = next.Events().Subscribe(ng.params.Events().Emit)
	ng.dirty = false
	ng.logger.Debug("Rebuilt exported parameter surface.", "groups", ng.exported.Len(), "parameters", tree.Len())
	if treeErr != nil {
		ng.logger.Warn("Exported parameter surface is partial.", "error", treeErr)
	}
	return next, treeErr
}

// ReportValidity checks the exported references against the inner graph.
func (ng *NodeGroup) ReportValidity(ctx context.Context) (*validation.Report, error) {
	return ng.exported.ReportValidity(ctx, ng.inner)
}

func (ng *NodeGroup) Inner() *graph.Graph            { return ng.inner }
func (ng *NodeGroup) Exported() *refgroup.Collection { return ng.exported }
func (ng *NodeGroup) ContinueOnFailure() bool        { return ng.continueOnFailure }
func (ng *NodeGroup) ShowLimitedParameters() bool    { return ng.showLimitedParameters }
func (ng *NodeGroup) Parameters() []param.Access     { return ng.params.Parameters() }
func (ng *NodeGroup) Children() []param.Child        { return ng.params.Children() }
func (ng *NodeGroup) Events() *param.Emitter         { return ng.params.Events() }

// Close stops observing the inner graph and the exported groups and closes
// the cached adapter.
func (ng *NodeGroup) Close() {
	for _, sub := range ng.subs {
		sub.Unsubscribe()
	}
	ng.subs = nil
	if ng.adapter != nil {
		ng.adapterSub.Unsubscribe()
		ng.adapter.Close()
		ng.adapter = nil
	}
	ng.dirty = true
}
