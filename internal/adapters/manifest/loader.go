// Package manifest provides the loader for the integration manifest.
package manifest

import (
	"os"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a manifest from the given path and returns the integration
// targets in declaration order.
func (l *Loader) Load(path string) ([]*domain.IntegrationTarget, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	targets := make([]*domain.IntegrationTarget, 0, len(m.Targets))
	for _, dto := range m.Targets {
		target, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func toDomain(dto TargetDTO) (*domain.IntegrationTarget, error) {
	if dto.Name == "" {
		return nil, zerr.New("target name is required")
	}
	if len(dto.UserTargets) == 0 {
		return nil, zerr.With(zerr.New("target declares no user targets"), "target", dto.Name)
	}

	target := &domain.IntegrationTarget{
		Name:                 dto.Name,
		ProductName:          dto.ProductName,
		RequiresHost:         dto.RequiresHost,
		PathTrackingDisabled: dto.DisablePathTracking,
		Configurations:       dto.Configurations,
		SupportDir:           dto.SupportDir,
		SupportProjectPath:   dto.SupportProjectPath,
		FrameworksScriptPath: dto.FrameworksScript,
		ResourcesScriptPath:  dto.ResourcesScript,
		LockfilePath:         dto.Lockfile,
		SandboxManifestPath:  dto.SandboxManifest,
		Resources:            dto.Resources,
	}
	if target.ProductName == "" {
		target.ProductName = dto.Name
	}

	known := make(map[string]bool, len(dto.Configurations))
	for _, c := range dto.Configurations {
		known[c] = true
	}
	for config := range dto.Frameworks {
		if !known[config] {
			return nil, unknownConfig(dto.Name, config)
		}
	}
	for config := range dto.XCFrameworks {
		if !known[config] {
			return nil, unknownConfig(dto.Name, config)
		}
	}
	for config := range dto.Resources {
		if !known[config] {
			return nil, unknownConfig(dto.Name, config)
		}
	}

	if len(dto.Frameworks) > 0 {
		target.Frameworks = make(map[string][]domain.FrameworkPath, len(dto.Frameworks))
		for config, fws := range dto.Frameworks {
			for _, fw := range fws {
				target.Frameworks[config] = append(target.Frameworks[config],
					domain.FrameworkPath{Path: fw.Path, Dynamic: fw.Dynamic})
			}
		}
	}
	if len(dto.XCFrameworks) > 0 {
		target.XCFrameworks = make(map[string][]domain.XCFramework, len(dto.XCFrameworks))
		for config, xcs := range dto.XCFrameworks {
			for _, xc := range xcs {
				target.XCFrameworks[config] = append(target.XCFrameworks[config],
					domain.XCFramework{Name: xc.Name, Path: xc.Path, Dynamic: xc.Dynamic})
			}
		}
	}

	for _, phase := range dto.UserScriptPhases {
		position := domain.ExecutionPosition(phase.Position)
		if err := position.Validate(); err != nil {
			return nil, zerr.With(err, "target", dto.Name)
		}
		target.UserScriptPhases = append(target.UserScriptPhases, domain.ScriptPhaseSpec{
			Name:            phase.Name,
			Script:          phase.Script,
			Shell:           phase.Shell,
			InputPaths:      phase.InputPaths,
			OutputPaths:     phase.OutputPaths,
			InputFileLists:  phase.InputFileLists,
			OutputFileLists: phase.OutputFileLists,
			DependencyFile:  phase.DependencyFile,
			ShowEnvVars:     phase.ShowEnvVars,
			Position:        position,
		})
	}

	for _, lib := range dto.Libraries {
		target.Libraries = append(target.Libraries, domain.Library{
			Name:              lib.Name,
			OnDemandResources: lib.OnDemandResources,
		})
	}

	for _, id := range dto.UserTargets {
		target.UserTargetIDs = append(target.UserTargetIDs, domain.ObjectID(id))
	}
	return target, nil
}

func unknownConfig(target, config string) error {
	err := zerr.With(zerr.New("unknown configuration"), "target", target)
	return zerr.With(err, "configuration", config)
}
