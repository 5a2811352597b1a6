package manifest

// Manifest represents the structure of the integration manifest file emitted
// by the installation pass.
type Manifest struct {
	Version string      `yaml:"version"`
	Targets []TargetDTO `yaml:"targets"`
}

// TargetDTO represents one integration target definition.
type TargetDTO struct {
	Name                string                      `yaml:"name"`
	ProductName         string                      `yaml:"productName"`
	RequiresHost        bool                        `yaml:"requiresHost"`
	DisablePathTracking bool                        `yaml:"disablePathTracking"`
	Configurations      []string                    `yaml:"configurations"`
	SupportDir          string                      `yaml:"supportDir"`
	SupportProjectPath  string                      `yaml:"supportProjectPath"`
	FrameworksScript    string                      `yaml:"frameworksScript"`
	ResourcesScript     string                      `yaml:"resourcesScript"`
	Lockfile            string                      `yaml:"lockfile"`
	SandboxManifest     string                      `yaml:"sandboxManifest"`
	Frameworks          map[string][]FrameworkDTO   `yaml:"frameworks"`
	XCFrameworks        map[string][]XCFrameworkDTO `yaml:"xcframeworks"`
	Resources           map[string][]string         `yaml:"resources"`
	UserScriptPhases    []ScriptPhaseDTO            `yaml:"userScriptPhases"`
	Libraries           []LibraryDTO                `yaml:"libraries"`
	UserTargets         []string                    `yaml:"userTargets"`
}

// FrameworkDTO represents one framework contributed to a configuration.
type FrameworkDTO struct {
	Path    string `yaml:"path"`
	Dynamic bool   `yaml:"dynamic"`
}

// XCFrameworkDTO represents one cross-platform framework bundle.
type XCFrameworkDTO struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Dynamic bool   `yaml:"dynamic"`
}

// ScriptPhaseDTO represents a user-declared script phase.
type ScriptPhaseDTO struct {
	Name            string   `yaml:"name"`
	Script          string   `yaml:"script"`
	Shell           string   `yaml:"shell"`
	InputPaths      []string `yaml:"inputPaths"`
	OutputPaths     []string `yaml:"outputPaths"`
	InputFileLists  []string `yaml:"inputFileLists"`
	OutputFileLists []string `yaml:"outputFileLists"`
	DependencyFile  string   `yaml:"dependencyFile"`
	ShowEnvVars     *bool    `yaml:"showEnvVars"`
	Position        string   `yaml:"position"`
}

// LibraryDTO represents a dependent library with its tagged resources.
type LibraryDTO struct {
	Name              string              `yaml:"name"`
	OnDemandResources map[string][]string `yaml:"onDemandResources"`
}
