package integrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcsync/internal/core/domain"
)

func TestCreateOrUpdatePhase(t *testing.T) {
	in, _ := newIntegrator()
	native := &domain.NativeTarget{Name: "App", Kind: domain.KindApplication}

	phase := in.CreateOrUpdatePhase(context.Background(), native, "Embed Frameworks")
	require.NotNil(t, phase)
	assert.Equal(t, "[XS] Embed Frameworks", phase.Name)
	assert.Equal(t, domain.PhaseScript, phase.Kind)
	assert.Equal(t, domain.DefaultShellPath, phase.ShellPath)

	// A second call returns the same phase, never a duplicate.
	again := in.CreateOrUpdatePhase(context.Background(), native, "Embed Frameworks")
	assert.Same(t, phase, again)
	assert.Len(t, native.Phases, 1)
}

func TestCreateOrUpdatePhase_RenamesLegacyPrefix(t *testing.T) {
	in, _ := newIntegrator()
	native := &domain.NativeTarget{Name: "App", Kind: domain.KindApplication}

	legacy := domain.NewScriptPhase("[xcsync] Embed Frameworks")
	native.AppendPhase(legacy)

	phase := in.CreateOrUpdatePhase(context.Background(), native, "Embed Frameworks")
	assert.Same(t, legacy, phase)
	assert.Equal(t, "[XS] Embed Frameworks", phase.Name)
	assert.Len(t, native.Phases, 1)
}

func TestCreateOrUpdatePhase_AdoptsBareLegacyName(t *testing.T) {
	in, _ := newIntegrator()
	native := &domain.NativeTarget{Name: "App", Kind: domain.KindApplication}

	bare := domain.NewScriptPhase("Copy Resources")
	native.AppendPhase(bare)

	phase := in.CreateOrUpdatePhase(context.Background(), native, "Copy Resources")
	assert.Same(t, bare, phase)
	assert.Equal(t, "[XS] Copy Resources", phase.Name)
}

func TestRemovePhase(t *testing.T) {
	in, _ := newIntegrator()
	native := &domain.NativeTarget{Name: "App", Kind: domain.KindApplication}
	native.AppendPhase(domain.NewScriptPhase("[xcsync] Check Manifest.lock"))

	in.RemovePhase(native, "Check Manifest.lock")
	assert.Empty(t, native.Phases)

	// Removing an absent phase is not an error.
	in.RemovePhase(native, "Check Manifest.lock")
	assert.Empty(t, native.Phases)
}

func TestRemovePhase_IgnoresForeignPhases(t *testing.T) {
	in, _ := newIntegrator()
	native := &domain.NativeTarget{Name: "App", Kind: domain.KindApplication}
	foreign := domain.NewScriptPhase("[CP] Check Manifest.lock")
	native.AppendPhase(foreign)

	in.RemovePhase(native, "Check Manifest.lock")
	assert.Equal(t, []*domain.BuildPhase{foreign}, native.Phases)
}
