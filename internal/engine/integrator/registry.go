package integrator

import (
	"context"
	"fmt"

	"go.trai.ch/xcsync/internal/core/domain"
)

// CreateOrUpdatePhase returns the owned script phase with the given base
// name, creating it at the end of the phase list if absent. A phase found
// under a legacy prefix is renamed to the current one. Calling this twice
// with the same base yields the same phase object, never a duplicate.
func (in *Integrator) CreateOrUpdatePhase(ctx context.Context, native *domain.NativeTarget, base string) *domain.BuildPhase {
	current := domain.OwnedPhaseName(base)
	return in.ensureScriptPhase(ctx, native, current, func(name string) bool {
		return domain.MatchesOwnedPhase(name, base)
	})
}

// RemovePhase deletes the owned script phase with the given base name,
// matching across legacy prefixes. Removing an absent phase is not an error.
func (in *Integrator) RemovePhase(native *domain.NativeTarget, base string) {
	phase := native.ScriptPhase(func(p *domain.BuildPhase) bool {
		return domain.MatchesOwnedPhase(p.Name, base)
	})
	if phase == nil {
		return
	}
	native.RemovePhase(phase)
}

func (in *Integrator) ensureScriptPhase(ctx context.Context, native *domain.NativeTarget, current string, matches func(string) bool) *domain.BuildPhase {
	phase := native.ScriptPhase(func(p *domain.BuildPhase) bool { return matches(p.Name) })
	if phase == nil {
		phase = domain.NewScriptPhase(current)
		native.AppendPhase(phase)
		in.step(ctx, fmt.Sprintf("Adding build phase %q to target %q", current, native.Name))
		return phase
	}
	if phase.Name != current {
		phase.Name = current
	}
	return phase
}
