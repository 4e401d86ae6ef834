package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramtree"
)

// KeyInfo describes one parameter of the pipeline by its global key.
type KeyInfo struct {
	Key         string `json:"key" yaml:"key"`
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Source      string `json:"source" yaml:"source"`
	Persistence string `json:"persistence" yaml:"persistence"`
	Value       any    `json:"value" yaml:"value"`
}

// Keys lists every parameter of the pipeline graph in traversal order. When
// part of the graph could not be visited, the keys that were reached are
// returned together with the error.
func (a *App) Keys(ctx context.Context) ([]KeyInfo, error) {
	_, logger := ctxlog.With(a.Context(ctx), "operation", "keys")

	tree, err := a.pipeline.Graph.ParameterTree()
	infos := describe(tree)
	logger.Debug("Listed parameter keys.", "count", len(infos))
	if err != nil {
		logger.Warn("Parameter tree was built with faults.", "error", err)
		return infos, fmt.Errorf("failed to build parameter tree: %w", err)
	}
	return infos, nil
}

func describe(tree *paramtree.Tree) []KeyInfo {
	if tree == nil {
		return nil
	}
	params := tree.Parameters()
	out := make([]KeyInfo, 0, len(params))
	for _, key := range tree.Keys() {
		access := params[key]
		out = append(out, KeyInfo{
			Key:         key,
			Name:        access.Name(),
			Type:        access.FieldType().FriendlyName(),
			Source:      sourceKey(tree, access),
			Persistence: access.Persistence().String(),
			Value:       plainValue(access),
		})
	}
	return out
}

func sourceKey(tree *paramtree.Tree, access param.Access) string {
	n, ok := tree.SourceOf(access)
	if !ok {
		return ""
	}
	return paramkey.Join(n.Path()...)
}
