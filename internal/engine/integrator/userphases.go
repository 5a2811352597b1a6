package integrator

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// syncUserPhases diffs the declared user script phases against the target's
// user-namespace phases: phases absent from the declared set are deleted,
// every declared spec is created or updated with its fields set verbatim,
// and final placement follows each spec's execution position.
func (in *Integrator) syncUserPhases(ctx context.Context, target *domain.IntegrationTarget, native *domain.NativeTarget) error {
	declared := make(map[string]struct{}, len(target.UserScriptPhases))
	for _, spec := range target.UserScriptPhases {
		declared[spec.Name] = struct{}{}
	}

	for _, phase := range slices.Clone(native.Phases) {
		if phase.Kind != domain.PhaseScript || !domain.IsUserPhaseName(phase.Name) {
			continue
		}
		if _, ok := declared[domain.UserPhaseBase(phase.Name)]; ok {
			continue
		}
		native.RemovePhase(phase)
		in.step(ctx, fmt.Sprintf("Removing user build phase %q from target %q", phase.Name, native.Name))
	}

	for _, spec := range target.UserScriptPhases {
		if err := spec.Position.Validate(); err != nil {
			return zerr.With(err, "phase", spec.Name)
		}

		phase := in.ensureScriptPhase(ctx, native, domain.UserPhaseName(spec.Name), func(name string) bool {
			return domain.MatchesUserPhase(name, spec.Name)
		})
		phase.ShellScript = spec.Script
		if spec.Shell != "" {
			phase.ShellPath = spec.Shell
		} else {
			phase.ShellPath = domain.DefaultShellPath
		}
		phase.InputPaths = spec.InputPaths
		phase.OutputPaths = spec.OutputPaths
		phase.InputFileListPaths = spec.InputFileLists
		phase.OutputFileListPaths = spec.OutputFileLists
		phase.DependencyFile = spec.DependencyFile
		phase.ShowEnvVarsInLog = spec.ShowEnvVarsInLog()

		if err := Reorder(native, phase, spec.Position); err != nil {
			return zerr.With(err, "phase", spec.Name)
		}
	}
	return nil
}
