package integrator

import (
	"context"
	"path"
	"strings"

	"go.trai.ch/xcsync/internal/core/domain"
)

// resourceOutputExtensions maps compilable resource formats to the extension
// of their built artifact. Formats outside the map keep their basename.
var resourceOutputExtensions = map[string]string{
	".storyboard":     ".storyboardc",
	".xib":            ".nib",
	".xcdatamodel":    ".mom",
	".xcdatamodeld":   ".momd",
	".xcmappingmodel": ".cdm",
}

// integrateCopyResources converges the copy-resources phase. Targets without
// declared resources lose any existing phase, and static libraries never
// receive one: resources cannot be embedded in a static archive.
func (in *Integrator) integrateCopyResources(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget, native *domain.NativeTarget) error {
	if !target.HasResources() || native.Kind == domain.KindStaticLibrary {
		in.RemovePhase(native, CopyResourcesPhase)
		return nil
	}

	phase := in.CreateOrUpdatePhase(ctx, native, CopyResourcesPhase)
	phase.ShellScript = "\"" + target.ResourcesScriptPath + "\"\n"

	inputs := domain.ConfigPathLists{}
	outputs := domain.ConfigPathLists{}
	if !target.PathTrackingDisabled {
		inKeys := fileListKeys(target, "resources", "input")
		outKeys := fileListKeys(target, "resources", "output")
		for _, config := range target.Configurations {
			in := []string{target.ResourcesScriptPath}
			var out []string
			for _, res := range target.Resources[config] {
				in = domain.AppendUnique(in, res)
				out = domain.AppendUnique(out, resourceOutputPath(res))
			}
			inputs[inKeys[config]] = in
			outputs[outKeys[config]] = out
		}
	}
	return in.PlanPaths(project, phase, inputs, outputs)
}

// resourceOutputPath derives the built destination of one resource. Asset
// catalogs collapse to a single canonical archive; other formats keep their
// basename with the built extension.
func resourceOutputPath(resource string) string {
	const root = "${TARGET_BUILD_DIR}/${UNLOCALIZED_RESOURCES_FOLDER_PATH}/"

	ext := path.Ext(resource)
	if ext == ".xcassets" {
		return root + "Assets.car"
	}

	base := domain.Basename(resource)
	if mapped, ok := resourceOutputExtensions[ext]; ok {
		base = strings.TrimSuffix(base, ext) + mapped
	}
	return root + base
}
