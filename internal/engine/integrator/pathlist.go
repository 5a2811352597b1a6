package integrator

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// MaxPathCount caps the combined inline input+output path count of a
	// script phase. Beyond it both lists are cleared: the phase loses
	// incremental-build tracking but keeps a valid execution environment.
	MaxPathCount = 1000

	// minFileListCompatibility is the lowest IDE compatibility version that
	// supports file-list references on script phases.
	minFileListCompatibility = 9.3

	// minFileListObjectVersion is the object-model fallback threshold used
	// when the compatibility version does not parse.
	minFileListObjectVersion = 50
)

// UsesFileLists decides the path encoding mode for the whole project: file
// lists when the compatibility version parses to at least 9.3, or, when it
// does not parse, when the object version is at least 50. All script phases
// on a project share one mode.
func UsesFileLists(project *domain.Project) bool {
	version, ok := parseCompatibilityVersion(project.CompatibilityVersion)
	if ok {
		return version >= minFileListCompatibility
	}
	return project.ObjectVersion >= minFileListObjectVersion
}

func parseCompatibilityVersion(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// PlanPaths applies the per-configuration input and output path lists to a
// script phase in the project's encoding mode.
//
// File-list mode: each configuration's list is written to its designated
// file (skipped when unchanged) and the phase references the de-duplicated
// file paths; inline arrays are cleared. Inline mode: lists are flattened
// and de-duplicated; when the combined count exceeds MaxPathCount both
// arrays are cleared rather than partially truncated; file-list references
// are cleared.
func (in *Integrator) PlanPaths(project *domain.Project, phase *domain.BuildPhase, inputs, outputs domain.ConfigPathLists) error {
	if UsesFileLists(project) {
		inRefs, err := in.writeFileLists(inputs)
		if err != nil {
			return err
		}
		outRefs, err := in.writeFileLists(outputs)
		if err != nil {
			return err
		}
		phase.InputFileListPaths = inRefs
		phase.OutputFileListPaths = outRefs
		phase.ClearInlinePaths()
		return nil
	}

	ins := inputs.Flatten()
	outs := outputs.Flatten()
	if len(ins)+len(outs) > MaxPathCount {
		in.log.Warn("path list exceeds the limit, incremental tracking disabled for this phase")
		ins, outs = nil, nil
	}
	phase.InputPaths = ins
	phase.OutputPaths = outs
	phase.ClearFileListPaths()
	return nil
}

func (in *Integrator) writeFileLists(lists domain.ConfigPathLists) ([]string, error) {
	var refs []string
	for _, key := range lists.SortedKeys() {
		if _, err := in.files.Write(key.DiskPath, lists[key]); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write file list"), "path", key.DiskPath)
		}
		refs = domain.AppendUnique(refs, key.ProjectPath)
	}
	return refs, nil
}

// fileListKeys builds one ConfigKey per configuration for the given phase
// artifact and role ("input" or "output"). File names follow
// <target>-<artifact>-<configuration>-<role>-files.xcfilelist under the
// target's support directory.
func fileListKeys(target *domain.IntegrationTarget, artifact, role string) map[string]domain.ConfigKey {
	keys := make(map[string]domain.ConfigKey, len(target.Configurations))
	for _, config := range target.Configurations {
		name := target.Name + "-" + artifact + "-" + config + "-" + role + "-files.xcfilelist"
		keys[config] = domain.ConfigKey{
			Config:      config,
			DiskPath:    filepath.Join(target.SupportDir, name),
			ProjectPath: target.SupportProjectPath + "/" + name,
		}
	}
	return keys
}
