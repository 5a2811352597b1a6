// Package app implements the application layer for xcsync.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/xcsync/internal/core/ports"
	"go.trai.ch/xcsync/internal/engine/integrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	projects   ports.ProjectStore
	manifests  ports.ManifestLoader
	integrator *integrator.Integrator
	telemetry  ports.Telemetry
}

// New creates a new App instance.
func New(projects ports.ProjectStore, manifests ports.ManifestLoader, in *integrator.Integrator, telemetry ports.Telemetry) *App {
	return &App{
		projects:   projects,
		manifests:  manifests,
		integrator: in,
		telemetry:  telemetry,
	}
}

// Result summarizes a completed integration run.
type Result struct {
	// Targets is the number of integration targets reconciled.
	Targets int
}

// Run reconciles every target declared in the manifest at manifestPath onto
// the project snapshot at projectPath, then writes the converged snapshot
// back. Targets are processed sequentially; the project graph is a single
// shared mutable structure.
func (a *App) Run(ctx context.Context, projectPath, manifestPath string) (*Result, error) {
	defer func() { _ = a.telemetry.Close() }()

	// 1. Load the project snapshot
	project, err := a.projects.Load(projectPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}

	// 2. Load the integration manifest
	targets, err := a.manifests.Load(manifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	// 3. Converge each target, one telemetry vertex per target
	for _, target := range targets {
		vctx, vertex := a.telemetry.Record(ctx, fmt.Sprintf("integrate %s", target.Name))
		err := a.integrator.Integrate(vctx, project, target)
		vertex.Complete(err)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to integrate target"), "target", target.Name)
		}
	}

	// 4. Persist the converged snapshot
	if err := a.projects.Save(projectPath, project); err != nil {
		return nil, zerr.Wrap(err, "failed to save project")
	}

	return &Result{Targets: len(targets)}, nil
}
