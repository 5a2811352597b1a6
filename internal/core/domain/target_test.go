package domain_test

import (
	"testing"

	"go.trai.ch/xcsync/internal/core/domain"
)

func TestNativeTarget_MoveToFront(t *testing.T) {
	a := &domain.BuildPhase{Kind: domain.PhaseSources}
	b := domain.NewScriptPhase("[XS] Check Manifest.lock")
	c := &domain.BuildPhase{Kind: domain.PhaseFrameworks}
	target := &domain.NativeTarget{Phases: []*domain.BuildPhase{a, b, c}}

	target.MoveToFront(b)
	if target.Phases[0] != b {
		t.Fatalf("expected phase at front, got %v", target.Phases[0])
	}

	// Already first: no churn.
	target.MoveToFront(b)
	if target.Phases[0] != b || len(target.Phases) != 3 {
		t.Fatalf("expected stable front placement, got %d phases", len(target.Phases))
	}

	// Absent phase: no-op.
	target.MoveToFront(domain.NewScriptPhase("ghost"))
	if len(target.Phases) != 3 {
		t.Fatalf("expected phase list unchanged, got %d phases", len(target.Phases))
	}
}

func TestNativeTarget_MovePhase(t *testing.T) {
	a := &domain.BuildPhase{Kind: domain.PhaseSources}
	b := domain.NewScriptPhase("s")
	target := &domain.NativeTarget{Phases: []*domain.BuildPhase{a, b}}

	target.MovePhase(b, 0)
	if target.Phases[0] != b || target.Phases[1] != a {
		t.Fatal("expected script phase moved before sources")
	}

	// Out-of-range index clamps instead of panicking.
	target.MovePhase(b, 10)
	if target.Phases[len(target.Phases)-1] != b {
		t.Fatal("expected phase clamped to end")
	}
}

func TestNativeTarget_FrameworksPhase_Idempotent(t *testing.T) {
	target := &domain.NativeTarget{}
	first := target.FrameworksPhase()
	second := target.FrameworksPhase()
	if first != second {
		t.Error("expected the same frameworks phase on repeat calls")
	}
	if len(target.Phases) != 1 {
		t.Errorf("expected exactly one phase, got %d", len(target.Phases))
	}
}

func TestBuildPhase_AddFile_Dedup(t *testing.T) {
	p := &domain.BuildPhase{Kind: domain.PhaseResources}
	id := domain.NewObjectID()
	p.AddFile(id)
	p.AddFile(id)
	if len(p.Files) != 1 {
		t.Fatalf("expected one file reference, got %d", len(p.Files))
	}
	p.RemoveFile(id)
	p.RemoveFile(id) // absent removal is fine
	if len(p.Files) != 0 {
		t.Fatalf("expected no file references, got %d", len(p.Files))
	}
}

func TestTargetKind_EmbedsProducts(t *testing.T) {
	cases := []struct {
		kind         domain.TargetKind
		requiresHost bool
		want         bool
	}{
		{domain.KindApplication, false, true},
		{domain.KindApplication, true, true},
		{domain.KindUnitTestBundle, false, true},
		{domain.KindAppExtension, false, true},
		{domain.KindAppExtension, true, false},
		{domain.KindWatchExtension, true, false},
		{domain.KindStaticLibrary, false, false},
		{domain.KindFramework, false, false},
	}

	for _, tc := range cases {
		if got := tc.kind.EmbedsProducts(tc.requiresHost); got != tc.want {
			t.Errorf("%s (requiresHost=%v): got %v, want %v", tc.kind, tc.requiresHost, got, tc.want)
		}
	}
}
