package integrator

import (
	"context"
	"fmt"

	"go.trai.ch/xcsync/internal/core/domain"
)

// manifestLockScript diffs the dependency lockfile against the sandbox
// manifest written by the last installation. A mismatch is a build-time
// failure with remediation text on stderr; the reconciler itself never
// fails for it. On success a sentinel is written to the declared output so
// the build system can skip the phase when nothing changed.
const manifestLockScript = `diff "%s" "%s" > /dev/null
if [ $? != 0 ] ; then
    # print error to STDERR
    echo "error: The sandbox is not in sync with the lockfile. Run the dependency installation and try again." >&2
    exit 1
fi
# This output is used by the build system to avoid re-running this phase.
echo "SUCCESS" > "${SCRIPT_OUTPUT_FILE_0}"
`

// integrateManifestLockGuard converges the lockfile consistency phase.
// Present whenever the target has dependencies, and always first in the
// phase list so a stale sandbox fails the build before any compilation.
func (in *Integrator) integrateManifestLockGuard(ctx context.Context, target *domain.IntegrationTarget, native *domain.NativeTarget) {
	if len(target.Libraries) == 0 {
		in.RemovePhase(native, ManifestLockPhase)
		return
	}

	phase := in.CreateOrUpdatePhase(ctx, native, ManifestLockPhase)
	phase.ShellScript = fmt.Sprintf(manifestLockScript, target.LockfilePath, target.SandboxManifestPath)
	phase.InputPaths = nil
	phase.OutputPaths = []string{
		"$(DERIVED_FILE_DIR)/" + target.Name + "-checkManifestLockResult.txt",
	}
	phase.ClearFileListPaths()

	native.MoveToFront(phase)
}
