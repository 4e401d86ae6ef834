package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/hcl_adapter"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
	"github.com/specialistvlad/paramgrid/internal/refadapter"
)

// ExportedGroup is one group of the exported parameter surface.
type ExportedGroup struct {
	Key         string              `json:"key" yaml:"key"`
	Name        string              `json:"name" yaml:"name"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Parameters  []ExportedParameter `json:"parameters" yaml:"parameters"`
}

// ExportedParameter is one forwarding parameter and the value it currently
// reads from its target.
type ExportedParameter struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Type        string `json:"type" yaml:"type"`
	Target      string `json:"target" yaml:"target"`
	Value       any    `json:"value" yaml:"value"`
}

// Export builds the exported parameter surface over the current graph.
// Overrides map surface keys such as "group-a/x" to raw values that are
// written through the forwarding parameters before the surface is read.
func (a *App) Export(ctx context.Context, overrides map[string]string) ([]ExportedGroup, error) {
	_, logger := ctxlog.With(a.Context(ctx), "operation", "export")

	tree, err := a.pipeline.Graph.ParameterTree()
	if err != nil {
		return nil, fmt.Errorf("failed to build parameter tree: %w", err)
	}
	adapter := refadapter.Build(a.pipeline.Exported, tree, param.Transient)
	defer adapter.Close()

	if len(overrides) > 0 {
		if err := applyOverrides(adapter, overrides); err != nil {
			return nil, err
		}
		logger.Debug("Applied overrides through exported parameters.", "count", len(overrides))
	}

	surfaces := adapter.Surfaces()
	out := make([]ExportedGroup, 0, len(surfaces))
	for _, s := range surfaces {
		group := ExportedGroup{
			Key:         s.Key(),
			Name:        s.Group().Name(),
			Description: s.Group().Description(),
			Parameters:  []ExportedParameter{},
		}
		for _, f := range s.Forwards() {
			group.Parameters = append(group.Parameters, ExportedParameter{
				Key:         paramkey.Join(s.Key(), f.Key()),
				Name:        f.Name(),
				Description: f.Description(),
				Type:        f.FieldType().FriendlyName(),
				Target:      f.Reference().Path,
				Value:       plainValue(f),
			})
		}
		out = append(out, group)
	}
	logger.Debug("Built exported parameter surface.", "groups", len(out))
	return out, nil
}

// ExportHCL renders the exported groups as an exported_parameters block.
func (a *App) ExportHCL() []byte {
	return hcl_adapter.WriteExported(a.pipeline.Exported)
}

func applyOverrides(adapter *refadapter.Adapter, overrides map[string]string) error {
	surface, err := paramtree.Build(adapter)
	if err != nil {
		return fmt.Errorf("failed to build exported parameter tree: %w", err)
	}
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		access, ok := surface.Get(key)
		if !ok {
			return fmt.Errorf("unknown exported parameter '%s'", key)
		}
		if err := access.Set(overrides[key]); err != nil {
			return fmt.Errorf("failed to set '%s': %w", key, err)
		}
	}
	return nil
}
