package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional expression fields with
// zero-width placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// parameterType resolves the declared type and default of a parameter. A
// missing type is implied from the default, or `any` without one. A missing
// default is null of the resolved type.
func parameterType(ctx context.Context, typeExpr, defaultExpr hcl.Expression) (cty.Type, cty.Value, error) {
	hasType := isExprDefined(ctx, typeExpr, "type")
	hasDefault := isExprDefined(ctx, defaultExpr, "default")

	ty := cty.DynamicPseudoType
	if hasType {
		parsed, err := typeExprToCtyType(ctx, typeExpr)
		if err != nil {
			return cty.NilType, cty.NilVal, err
		}
		ty = parsed
	}

	if !hasDefault {
		return ty, cty.NullVal(ty), nil
	}
	val, diags := defaultExpr.Value(nil)
	if diags.HasErrors() {
		return cty.NilType, cty.NilVal, fmt.Errorf("invalid default value: %w", diags)
	}
	if !hasType {
		if val.IsNull() {
			return ty, cty.NullVal(ty), nil
		}
		return val.Type(), val, nil
	}
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return cty.NilType, cty.NilVal, fmt.Errorf("default value is not a valid %s: %w", ty.FriendlyName(), err)
	}
	return ty, converted, nil
}
