// Package integrator implements the reconciliation engine that converges the
// build phases of native targets onto the declared state of an integration
// target: embed-frameworks and copy-resources phases, the lockfile
// consistency guard, user-declared script phases and on-demand resource
// groups. Repeated runs are idempotent.
package integrator

import (
	"context"
	"fmt"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/xcsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Base names of the phases owned by the reconciler. The on-target phase name
// is the current owned prefix plus the base name; lookup tolerates legacy
// prefixes (see domain.MatchesOwnedPhase).
const (
	EmbedFrameworksPhase = "Embed Frameworks"
	CopyResourcesPhase   = "Copy Resources"
	ManifestLockPhase    = "Check Manifest.lock"
)

// obsoletePhases are owned base names from earlier releases whose function
// was folded into other phases. They are deleted on every run.
var obsoletePhases = []string{"Prepare Artifacts", "Copy XCFrameworks"}

// Integrator reconciles one integration target against its native targets.
type Integrator struct {
	log      ports.Logger
	files    ports.FileListWriter
	settings ports.SettingsIntegrator
}

// New creates an Integrator. settings may be nil when the surrounding
// installer performs build-setting integration itself.
func New(log ports.Logger, files ports.FileListWriter, settings ports.SettingsIntegrator) *Integrator {
	return &Integrator{log: log, files: files, settings: settings}
}

// Integrate makes every user target of the integration target match its
// declared state. Steps run in a fixed order per target; the first error
// aborts the remaining steps. On-demand resource grouping runs last and
// mutates the group tree and the project tag registry.
func (in *Integrator) Integrate(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget) error {
	for _, id := range target.UserTargetIDs {
		native, err := project.Target(id)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "unknown user target"), "target", target.Name)
		}
		if err := in.integrateTarget(ctx, project, target, native); err != nil {
			return zerr.With(zerr.Wrap(err, "integration aborted"), "native_target", native.Name)
		}
	}
	return in.groupOnDemandResources(ctx, project, target)
}

func (in *Integrator) integrateTarget(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget, native *domain.NativeTarget) error {
	in.removeObsoletePhases(native)

	if in.settings != nil {
		if err := in.settings.Apply(project, target); err != nil {
			return zerr.Wrap(err, "build-setting integration failed")
		}
	}

	in.addProductReference(ctx, project, target, native)

	if err := in.integrateEmbedFrameworks(ctx, project, target, native); err != nil {
		return err
	}
	if err := in.integrateCopyResources(ctx, project, target, native); err != nil {
		return err
	}
	in.integrateManifestLockGuard(ctx, target, native)
	return in.syncUserPhases(ctx, target, native)
}

// removeObsoletePhases deletes owned phases left behind by earlier releases.
func (in *Integrator) removeObsoletePhases(native *domain.NativeTarget) {
	for _, base := range obsoletePhases {
		in.RemovePhase(native, base)
	}
}

// addProductReference ensures the product framework is referenced from the
// Frameworks group and linked in the target's frameworks phase.
func (in *Integrator) addProductReference(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget, native *domain.NativeTarget) {
	path := target.ProductName + ".framework"

	group := project.ChildGroup(project.MainGroup, "Frameworks")
	if group == nil {
		// The main group always exists, so this cannot fail.
		group, _ = project.AddGroup(project.MainGroup, "Frameworks")
	}

	ref := project.FindFileReference(group.ID, path)
	if ref == nil {
		ref, _ = project.AddFileReference(group.ID, path)
		in.step(ctx, fmt.Sprintf("Referencing product %s", path))
	}
	native.FrameworksPhase().AddFile(ref.ID)
}

// step logs a progress message to both the logger and the telemetry vertex
// attached to the context, if any.
func (in *Integrator) step(ctx context.Context, msg string) {
	in.log.Info(msg)
	if v := ports.VertexFromContext(ctx); v != nil {
		v.Log(msg)
	}
}
