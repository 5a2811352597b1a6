package integrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcsync/internal/core/domain"
)

func TestIntegrate_ManifestLockGuard(t *testing.T) {
	in, _ := newIntegrator()
	project := newLegacyProject()
	native := newAppTarget(project, "App")

	target := newIntegrationTarget("Pods-App", native)
	target.Libraries = []domain.Library{{Name: "Alamofire"}}

	require.NoError(t, in.Integrate(context.Background(), project, target))

	phase := findPhase(native, "[XS] Check Manifest.lock")
	require.NotNil(t, phase)

	// The guard runs before anything else.
	assert.Same(t, phase, native.Phases[0])

	assert.Contains(t, phase.ShellScript, `diff "${PODS_PODFILE_DIR_PATH}/Podfile.lock" "${PODS_ROOT}/Manifest.lock"`)
	assert.Contains(t, phase.ShellScript, "exit 1")
	assert.Equal(t, []string{
		"$(DERIVED_FILE_DIR)/Pods-App-checkManifestLockResult.txt",
	}, phase.OutputPaths)
	assert.Empty(t, phase.InputPaths)
}

func TestIntegrate_ManifestLockGuard_FirstAfterRepeatedRuns(t *testing.T) {
	in, _ := newIntegrator()
	project := newLegacyProject()
	native := newAppTarget(project, "App")

	target := newIntegrationTarget("Pods-App", native)
	target.Libraries = []domain.Library{{Name: "Alamofire"}}

	require.NoError(t, in.Integrate(context.Background(), project, target))
	require.NoError(t, in.Integrate(context.Background(), project, target))

	assert.Equal(t, "[XS] Check Manifest.lock", native.Phases[0].Name)
	// Still exactly one guard phase.
	count := 0
	for _, p := range native.Phases {
		if domain.MatchesOwnedPhase(p.Name, "Check Manifest.lock") {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestIntegrate_ManifestLockGuard_NoLibrariesRemoves(t *testing.T) {
	in, _ := newIntegrator()
	project := newLegacyProject()
	native := newAppTarget(project, "App")
	native.AppendPhase(domain.NewScriptPhase("[xcsync] Check Manifest.lock"))

	target := newIntegrationTarget("Pods-App", native)

	require.NoError(t, in.Integrate(context.Background(), project, target))
	assert.Nil(t, findPhase(native, "[xcsync] Check Manifest.lock"))
	assert.Nil(t, findPhase(native, "[XS] Check Manifest.lock"))
}
