package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/depgraph/internal/ctxlog"
	"github.com/specialistvlad/depgraph/internal/graph"
	"github.com/specialistvlad/depgraph/internal/manifest"
	"github.com/specialistvlad/depgraph/internal/visitor"
	"github.com/zclconf/go-cty/cty"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger  *slog.Logger
	loader  *manifest.Loader
	config  *Config
	keyMode visitor.KeyMode
}

// Resolution is the outcome of resolving a project's manifests.
type Resolution struct {
	// Project is the name of the manifest's project block.
	Project string
	// Root is the dependency-less node whose children are the project's
	// direct dependencies.
	Root *graph.Node
	// Dependencies are the distinct dependencies in preorder, resolved or not.
	Dependencies []*graph.Dependency
	// ClassPath joins the storage of every resolved dependency.
	ClassPath string
}

// New is the constructor for the main application. Logs are written to outW
// with the configured level and format. cfg must come from NewConfig.
func New(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	// NewConfig has already validated the mode.
	keyMode, _ := visitor.ParseKeyMode(cfg.KeyMode)

	vars := make(map[string]cty.Value, len(cfg.Variables))
	for k, v := range cfg.Variables {
		vars[k] = cty.StringVal(v)
	}

	return &App{
		logger:  logger,
		loader:  manifest.NewLoader(manifest.WithVariables(vars)),
		config:  cfg,
		keyMode: keyMode,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Resolve loads the configured manifests, builds the dependency graph and
// flattens it in preorder.
func (a *App) Resolve(ctx context.Context) (*Resolution, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Resolve method started.", "paths", a.config.ManifestPaths)

	m, err := a.loader.Load(ctx, a.config.ManifestPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}

	root, err := m.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	gen := visitor.NewPreorderGenerator(visitor.WithKeyMode(a.keyMode))
	if err := root.Accept(ctx, gen); err != nil {
		return nil, fmt.Errorf("failed to flatten dependency graph: %w", err)
	}

	res := &Resolution{
		Project:      m.Project,
		Root:         root,
		Dependencies: gen.Dependencies(true),
		ClassPath:    gen.ClassPath(),
	}
	a.logger.Info("Dependencies resolved.",
		"project", res.Project,
		"dependencies", len(res.Dependencies),
		"resolved", len(gen.Storages()),
		"key_mode", a.keyMode.String())
	return res, nil
}

// WriteTree writes the resolved graph to w as an indented tree.
func (r *Resolution) WriteTree(ctx context.Context, w io.Writer) error {
	d := visitor.NewTreeDumper(w)
	if err := r.Root.Accept(ctx, d); err != nil {
		return err
	}
	return d.Err()
}
