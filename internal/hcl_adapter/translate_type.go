// This file contains the logic for parsing HCL type expressions (e.g., `string`,
// `list(number)`) into their corresponding cty.Type objects.

package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToCtyType converts an HCL type expression into its cty.Type equivalent.
func typeExprToCtyType(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	if expr == nil {
		ctxlog.FromContext(ctx).Debug("Type expression is nil, defaulting to any.")
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		if v.Name == "object" {
			return parseObjectType(ctx, v)
		}
		return parseCollectionType(ctx, v)
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		return parsePrimitiveType(v.Traversal.RootName())
	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

func parsePrimitiveType(keyword string) (cty.Type, error) {
	switch keyword {
	case "string":
		return cty.String, nil
	case "number":
		return cty.Number, nil
	case "bool":
		return cty.Bool, nil
	case "any":
		return cty.DynamicPseudoType, nil
	default:
		return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", keyword)
	}
}

// parseCollectionType handles list(T), map(T) and set(T).
func parseCollectionType(ctx context.Context, call *hclsyntax.FunctionCallExpr) (cty.Type, error) {
	var wrap func(cty.Type) cty.Type
	switch call.Name {
	case "list":
		wrap = cty.List
	case "map":
		wrap = cty.Map
	case "set":
		wrap = cty.Set
	default:
		return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", call.Name)
	}
	if len(call.Args) != 1 {
		return cty.DynamicPseudoType, fmt.Errorf("type constructor %s() requires exactly one argument, got %d", call.Name, len(call.Args))
	}

	elementType, err := typeExprToCtyType(ctx, call.Args[0])
	if err != nil {
		return cty.DynamicPseudoType, fmt.Errorf("in %s(): %w", call.Name, err)
	}
	if elementType.Equals(cty.DynamicPseudoType) {
		return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
	}
	ctxlog.FromContext(ctx).Debug("Parsed collection type.", "constructor", call.Name, "element_type", elementType.FriendlyName())
	return wrap(elementType), nil
}

// parseObjectType handles object({ key = type, ... }).
func parseObjectType(ctx context.Context, call *hclsyntax.FunctionCallExpr) (cty.Type, error) {
	if len(call.Args) != 1 {
		return cty.DynamicPseudoType, fmt.Errorf("the object() type constructor requires exactly one argument (the object definition), got %d", len(call.Args))
	}
	objExpr, ok := call.Args[0].(*hclsyntax.ObjectConsExpr)
	if !ok {
		return cty.DynamicPseudoType, fmt.Errorf("the argument to object() must be an object literal like { key = type, ... }, got %T", call.Args[0])
	}

	attrTypes := make(map[string]cty.Type, len(objExpr.Items))
	for _, item := range objExpr.Items {
		key := objectKeyName(item.KeyExpr)
		if key == "" {
			return cty.DynamicPseudoType, fmt.Errorf("invalid key in object type definition: keys must be simple identifiers or quoted strings, not complex expressions")
		}
		valueType, err := typeExprToCtyType(ctx, item.ValueExpr)
		if err != nil {
			return cty.DynamicPseudoType, fmt.Errorf("in object attribute '%s': %w", key, err)
		}
		attrTypes[key] = valueType
	}
	return cty.Object(attrTypes), nil
}

// objectKeyName extracts a literal attribute name from an object key, or ""
// if the key is not a plain identifier or string.
func objectKeyName(expr hclsyntax.Expression) string {
	keyExpr, ok := expr.(*hclsyntax.ObjectConsKeyExpr)
	if !ok {
		return ""
	}
	switch k := keyExpr.Wrapped.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(k.Traversal) == 1 {
			return k.Traversal.RootName()
		}
	case *hclsyntax.TemplateExpr:
		if len(k.Parts) == 1 {
			if lit, isLit := k.Parts[0].(*hclsyntax.LiteralValueExpr); isLit && lit.Val.Type().Equals(cty.String) {
				return lit.Val.AsString()
			}
		}
	}
	return ""
}
