package project

// ProjectDTO represents the on-disk snapshot of the project graph.
type ProjectDTO struct {
	CompatibilityVersion string      `yaml:"compatibilityVersion"`
	ObjectVersion        int         `yaml:"objectVersion"`
	KnownAssetTags       []string    `yaml:"knownAssetTags,omitempty"`
	MainGroup            GroupDTO    `yaml:"mainGroup"`
	Targets              []TargetDTO `yaml:"targets"`
}

// GroupDTO represents one group with its ordered children.
type GroupDTO struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name"`
	Children []ChildDTO `yaml:"children,omitempty"`
}

// ChildDTO is either a nested group or a file reference, preserving the
// parent's child order.
type ChildDTO struct {
	Group *GroupDTO   `yaml:"group,omitempty"`
	File  *FileRefDTO `yaml:"file,omitempty"`
}

// FileRefDTO represents a file reference.
type FileRefDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// TargetDTO represents a native target and its ordered build phases.
type TargetDTO struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Kind   string     `yaml:"kind"`
	Phases []PhaseDTO `yaml:"phases,omitempty"`
}

// PhaseDTO represents one build phase.
type PhaseDTO struct {
	Kind                string   `yaml:"kind"`
	Name                string   `yaml:"name,omitempty"`
	Files               []string `yaml:"files,omitempty"`
	ShellScript         string   `yaml:"shellScript,omitempty"`
	ShellPath           string   `yaml:"shellPath,omitempty"`
	InputPaths          []string `yaml:"inputPaths,omitempty"`
	OutputPaths         []string `yaml:"outputPaths,omitempty"`
	InputFileListPaths  []string `yaml:"inputFileListPaths,omitempty"`
	OutputFileListPaths []string `yaml:"outputFileListPaths,omitempty"`
	ShowEnvVarsInLog    bool     `yaml:"showEnvVarsInLog,omitempty"`
	DependencyFile      string   `yaml:"dependencyFile,omitempty"`
}
