// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/paramgrid/internal/config"
	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/paramkey"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/specialistvlad/paramgrid/internal/schema"
)

// translateNode converts the HCL-specific node schema into the agnostic model.
func translateNode(ctx context.Context, n *schema.Node) (*config.Node, error) {
	ctx, logger := ctxlog.With(ctx, "node", n.ID)
	logger.Debug("Translating HCL node to internal config model.")

	params, err := translateParameters(ctx, n.Parameters)
	if err != nil {
		return nil, fmt.Errorf("in node '%s': %w", n.ID, err)
	}
	collections, err := translateCollections(ctx, n.Collections)
	if err != nil {
		return nil, fmt.Errorf("in node '%s': %w", n.ID, err)
	}
	return &config.Node{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Parameters:  params,
		Collections: collections,
	}, nil
}

func translateCollections(ctx context.Context, in []*schema.Collection) ([]*config.Collection, error) {
	var out []*config.Collection
	for _, c := range in {
		params, err := translateParameters(ctx, c.Parameters)
		if err != nil {
			return nil, fmt.Errorf("in collection '%s': %w", c.Key, err)
		}
		children, err := translateCollections(ctx, c.Collections)
		if err != nil {
			return nil, fmt.Errorf("in collection '%s': %w", c.Key, err)
		}
		out = append(out, &config.Collection{
			Key:         c.Key,
			Name:        c.Name,
			Description: c.Description,
			Hidden:      c.Hidden,
			UIOrder:     c.UIOrder,
			Parameters:  params,
			Collections: children,
		})
	}
	return out, nil
}

func translateParameters(ctx context.Context, in []*schema.Parameter) ([]*config.Parameter, error) {
	var out []*config.Parameter
	for _, p := range in {
		ty, def, err := parameterType(ctx, p.Type, p.Default)
		if err != nil {
			return nil, fmt.Errorf("parameter '%s': %w", p.Key, err)
		}
		out = append(out, &config.Parameter{
			Key:         p.Key,
			Name:        p.Name,
			Description: p.Description,
			Type:        ty,
			Default:     def,
			Hidden:      p.Hidden,
			Important:   p.Important,
			UIOrder:     p.UIOrder,
			Transient:   p.Transient,
		})
	}
	return out, nil
}

// translateGroup converts an exported group schema into the agnostic model.
func translateGroup(g *schema.Group) (*config.ExportedGroup, error) {
	out := &config.ExportedGroup{Name: g.Name, Description: g.Description}
	for _, r := range g.References {
		key, err := paramkey.Parse(r.Path)
		if err != nil {
			return nil, fmt.Errorf("in exported group '%s': invalid reference path: %w", g.Name, err)
		}
		out.References = append(out.References, &paramref.Reference{
			Path:              key.String(),
			CustomName:        r.CustomName,
			CustomDescription: r.CustomDescription,
		})
	}
	return out, nil
}
