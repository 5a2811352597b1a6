package integrator

import (
	"slices"

	"go.trai.ch/xcsync/internal/core/domain"
)

// Reorder positions a script phase relative to its anchor compiler stage.
// PositionAny and the empty position leave the phase where it is. A missing
// anchor phase or a phase not present on the target is a normal state for
// some target kinds and is a no-op. The phase is moved only when its current
// index violates the requested side, so repeated runs produce no diff.
// An unknown position is a contract violation and returns an error.
func Reorder(native *domain.NativeTarget, phase *domain.BuildPhase, position domain.ExecutionPosition) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if position == "" || position == domain.PositionAny {
		return nil
	}

	var anchor int
	switch position {
	case domain.PositionBeforeCompile, domain.PositionAfterCompile:
		anchor = native.SourcesPhaseIndex()
	case domain.PositionBeforeHeaders, domain.PositionAfterHeaders:
		anchor = native.HeadersPhaseIndex()
	}
	if anchor < 0 {
		return nil
	}

	current := slices.Index(native.Phases, phase)
	if current < 0 {
		return nil
	}

	switch position {
	case domain.PositionBeforeCompile, domain.PositionBeforeHeaders:
		if current > anchor {
			native.MovePhase(phase, anchor)
		}
	case domain.PositionAfterCompile, domain.PositionAfterHeaders:
		if current < anchor {
			// Removing the phase from before the anchor shifts the
			// anchor left by one, so the target index is the anchor's
			// original position.
			native.MovePhase(phase, anchor)
		}
	}
	return nil
}
