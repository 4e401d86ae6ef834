package app

import (
	"context"

	"github.com/specialistvlad/paramgrid/internal/validation"
)

// Validate checks every exported reference against the current graph.
func (a *App) Validate(ctx context.Context) (*validation.Report, error) {
	ctx = a.Context(ctx)
	report, err := a.pipeline.Exported.ReportValidity(ctx, a.pipeline.Graph)
	if report != nil && !report.IsValid() {
		a.logger.Warn("Exported parameters reference missing parameters.", "invalid", report.Len())
	}
	return report, err
}
