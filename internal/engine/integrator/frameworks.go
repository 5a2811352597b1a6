package integrator

import (
	"context"

	"go.trai.ch/xcsync/internal/core/domain"
)

// integrateEmbedFrameworks converges the embed-frameworks phase. The phase
// exists only on targets that embed their own products and only when the
// integration target contributes frameworks or dynamic cross-platform
// bundles; in every other case an existing phase is removed. Embedding for
// host-dependent extension kinds is delegated to the host target.
func (in *Integrator) integrateEmbedFrameworks(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget, native *domain.NativeTarget) error {
	if !target.HasFrameworks() || !native.Kind.EmbedsProducts(target.RequiresHost) {
		in.RemovePhase(native, EmbedFrameworksPhase)
		return nil
	}

	phase := in.CreateOrUpdatePhase(ctx, native, EmbedFrameworksPhase)
	phase.ShellScript = "\"" + target.FrameworksScriptPath + "\"\n"

	inputs := domain.ConfigPathLists{}
	outputs := domain.ConfigPathLists{}
	if !target.PathTrackingDisabled {
		inKeys := fileListKeys(target, "frameworks", "input")
		outKeys := fileListKeys(target, "frameworks", "output")
		for _, config := range target.Configurations {
			inputs[inKeys[config]] = embedInputPaths(target, config)
			outputs[outKeys[config]] = embedOutputPaths(target, config)
		}
	}
	return in.PlanPaths(project, phase, inputs, outputs)
}

// embedInputPaths lists the embed script, every framework source path and,
// for dynamic cross-platform bundles, the intermediate slice selected at
// build time.
func embedInputPaths(target *domain.IntegrationTarget, config string) []string {
	paths := []string{target.FrameworksScriptPath}
	for _, fw := range target.Frameworks[config] {
		paths = domain.AppendUnique(paths, fw.Path)
	}
	for _, xc := range target.XCFrameworks[config] {
		if !xc.Dynamic {
			continue
		}
		slice := "${XCFRAMEWORKS_BUILD_DIR}/" + xc.Name + "/" + xc.Name + ".framework/" + xc.Name
		paths = domain.AppendUnique(paths, slice)
	}
	return paths
}

// embedOutputPaths lists one destination per framework and per dynamic
// cross-platform bundle. Static bundles are linked, not copied, and produce
// no output path.
func embedOutputPaths(target *domain.IntegrationTarget, config string) []string {
	const root = "${TARGET_BUILD_DIR}/${FRAMEWORKS_FOLDER_PATH}/"
	var paths []string
	for _, fw := range target.Frameworks[config] {
		paths = domain.AppendUnique(paths, root+domain.Basename(fw.Path))
	}
	for _, xc := range target.XCFrameworks[config] {
		if !xc.Dynamic {
			continue
		}
		paths = domain.AppendUnique(paths, root+xc.Name+".framework")
	}
	return paths
}
