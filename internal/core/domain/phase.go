package domain

import "slices"

// PhaseKind is the tagged variant of a build phase.
type PhaseKind string

const (
	// PhaseSources is the compile-sources phase.
	PhaseSources PhaseKind = "sources"
	// PhaseHeaders is the copy-headers phase.
	PhaseHeaders PhaseKind = "headers"
	// PhaseFrameworks is the link-frameworks phase.
	PhaseFrameworks PhaseKind = "frameworks"
	// PhaseResources is the copy-bundle-resources phase.
	PhaseResources PhaseKind = "resources"
	// PhaseCopyFiles is a copy-files phase.
	PhaseCopyFiles PhaseKind = "copy-files"
	// PhaseScript is a shell-script phase.
	PhaseScript PhaseKind = "script"
)

// DefaultShellPath is the interpreter used for script phases that do not
// declare one.
const DefaultShellPath = "/bin/sh"

// BuildPhase is one ordered step in a target's build recipe.
//
// Script phases carry either inline input/output path arrays or file-list
// path references, never both. Non-script phases carry file references.
type BuildPhase struct {
	Kind PhaseKind
	Name string

	// Files are the file references attached to a non-script phase.
	Files []ObjectID

	ShellScript         string
	ShellPath           string
	InputPaths          []string
	OutputPaths         []string
	InputFileListPaths  []string
	OutputFileListPaths []string
	ShowEnvVarsInLog    bool
	DependencyFile      string
}

// NewScriptPhase creates a script phase with the default interpreter.
func NewScriptPhase(name string) *BuildPhase {
	return &BuildPhase{
		Kind:      PhaseScript,
		Name:      name,
		ShellPath: DefaultShellPath,
	}
}

// AddFile attaches a file reference to the phase if not already present.
func (p *BuildPhase) AddFile(id ObjectID) {
	if slices.Contains(p.Files, id) {
		return
	}
	p.Files = append(p.Files, id)
}

// RemoveFile detaches a file reference from the phase.
// Removing an absent reference is not an error.
func (p *BuildPhase) RemoveFile(id ObjectID) {
	p.Files = slices.DeleteFunc(p.Files, func(f ObjectID) bool { return f == id })
}

// ClearInlinePaths empties the inline input/output path arrays.
func (p *BuildPhase) ClearInlinePaths() {
	p.InputPaths = nil
	p.OutputPaths = nil
}

// ClearFileListPaths empties the file-list path references.
func (p *BuildPhase) ClearFileListPaths() {
	p.InputFileListPaths = nil
	p.OutputFileListPaths = nil
}
