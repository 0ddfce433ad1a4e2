// Package app implements the application layer for crucible.
package app

import (
	"context"

	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/crucible/internal/engine/generator"
	"go.trai.ch/zerr"
)

// RunOptions carries per-invocation settings from the CLI layer.
type RunOptions struct {
	// ManifestName selects the manifest file within the suite directory.
	// Empty uses the loader's default name.
	ManifestName string

	// Parallelism bounds the number of concurrently generated descriptors.
	// Zero keeps the default.
	Parallelism int

	// ReportPath redirects the generation report. Empty keeps the sink's
	// default destination.
	ReportPath string
}

// App represents the main application logic.
type App struct {
	manifests ports.ManifestLoader
	batch     *generator.Batch
}

// New creates a new App instance.
func New(manifests ports.ManifestLoader, batch *generator.Batch) *App {
	return &App{
		manifests: manifests,
		batch:     batch,
	}
}

// Run synthesizes a build descriptor for every benchmark case declared in
// the suite manifest found in dir.
func (a *App) Run(ctx context.Context, dir string, opts RunOptions) error {
	// 1. Load the suite manifest
	requests, err := a.manifests.Load(dir, opts.ManifestName)
	if err != nil {
		return zerr.Wrap(err, "failed to load suite manifest")
	}

	// 2. Apply invocation options
	if opts.Parallelism > 0 {
		a.batch.SetParallelism(opts.Parallelism)
	}
	if opts.ReportPath != "" {
		a.batch.SetReportPath(opts.ReportPath)
	}

	// 3. Generate every descriptor
	if err := a.batch.GenerateAll(ctx, requests); err != nil {
		return zerr.Wrap(err, "descriptor generation failed")
	}

	return nil
}
