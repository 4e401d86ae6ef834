package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/paramgrid/internal/config"
	"github.com/specialistvlad/paramgrid/internal/ctxlog"
	"github.com/specialistvlad/paramgrid/internal/graph"
	"github.com/specialistvlad/paramgrid/internal/refgroup"
)

// App encapsulates a loaded pipeline and the logger used to report on it.
type App struct {
	logger   *slog.Logger
	model    *config.Model
	pipeline *config.Pipeline
}

// NewApp loads the pipeline named by cfg through loader. Log records are
// written to logW.
func NewApp(logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.Paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}
	logger.Debug("Pipeline files loaded.", "nodes", len(model.Nodes), "exported_groups", len(model.Exported))

	pipeline, err := config.NewPipeline(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to build pipeline: %w", err)
	}

	return &App{logger: logger, model: model, pipeline: pipeline}, nil
}

// Context returns ctx carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

func (a *App) Graph() *graph.Graph { return a.pipeline.Graph }

func (a *App) Exported() *refgroup.Collection { return a.pipeline.Exported }

// FormatVersion is the highest format_version declared by the loaded files.
func (a *App) FormatVersion() string {
	if a.model.FormatVersion == nil {
		return ""
	}
	return a.model.FormatVersion.String()
}
