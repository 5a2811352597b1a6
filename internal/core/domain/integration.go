package domain

import "go.trai.ch/zerr"

// ExecutionPosition places a script phase relative to a compiler stage.
type ExecutionPosition string

const (
	// PositionAny leaves the phase wherever it currently is.
	PositionAny ExecutionPosition = "any"
	// PositionBeforeCompile places the phase before the compile-sources phase.
	PositionBeforeCompile ExecutionPosition = "before_compile"
	// PositionAfterCompile places the phase after the compile-sources phase.
	PositionAfterCompile ExecutionPosition = "after_compile"
	// PositionBeforeHeaders places the phase before the headers phase.
	PositionBeforeHeaders ExecutionPosition = "before_headers"
	// PositionAfterHeaders places the phase after the headers phase.
	PositionAfterHeaders ExecutionPosition = "after_headers"
)

// Validate returns ErrUnknownExecutionPosition for positions outside the
// supported set. The empty position is equivalent to PositionAny.
func (p ExecutionPosition) Validate() error {
	switch p {
	case "", PositionAny, PositionBeforeCompile, PositionAfterCompile,
		PositionBeforeHeaders, PositionAfterHeaders:
		return nil
	default:
		return zerr.With(ErrUnknownExecutionPosition, "position", string(p))
	}
}

// FrameworkPath is one framework product contributed to a configuration.
type FrameworkPath struct {
	// Path is the framework source path, typically rooted at a build
	// setting reference such as ${BUILT_PRODUCTS_DIR}.
	Path string
	// Dynamic reports whether the framework is dynamically linked and must
	// be copied into the product bundle.
	Dynamic bool
}

// XCFramework is one cross-platform framework bundle contributed to a
// configuration.
type XCFramework struct {
	// Name is the bundle name without the .xcframework extension.
	Name string
	// Path is the bundle source path.
	Path string
	// Dynamic reports whether the selected slice is dynamically linked.
	Dynamic bool
}

// ScriptPhaseSpec is a user-declared script phase, reproduced verbatim on
// the native target under the user-phase namespace.
type ScriptPhaseSpec struct {
	Name            string
	Script          string
	Shell           string
	InputPaths      []string
	OutputPaths     []string
	InputFileLists  []string
	OutputFileLists []string
	DependencyFile  string
	// ShowEnvVars defaults to true when nil.
	ShowEnvVars *bool
	Position    ExecutionPosition
}

// ShowEnvVarsInLog resolves the spec's show-environment-variables flag,
// which is on unless explicitly disabled.
func (s ScriptPhaseSpec) ShowEnvVarsInLog() bool {
	return s.ShowEnvVars == nil || *s.ShowEnvVars
}

// Library is a dependent library target with its tagged on-demand resources.
type Library struct {
	Name string
	// OnDemandResources maps asset-tag names to resource paths.
	OnDemandResources map[string][]string
}

// IntegrationTarget is the logical build unit being integrated. It is
// produced by the installation pass and is read-only to the reconciler.
type IntegrationTarget struct {
	// Name is the logical target name, also used to derive phase artifact
	// names such as the on-demand resources group.
	Name string

	// ProductName is the name of the built product.
	ProductName string

	// RequiresHost reports that the target's products are embedded by a
	// host target, so no embed phase is created on the target itself.
	RequiresHost bool

	// PathTrackingDisabled turns off per-configuration input/output
	// tracking. Phases are still created but with empty path plans, so
	// they run on every build.
	PathTrackingDisabled bool

	// Configurations are the build configuration names, e.g. Debug, Release.
	Configurations []string

	// SupportDir is the on-disk directory holding generated support files
	// (scripts, file lists). SupportProjectPath is its project-relative
	// form as referenced from build phases.
	SupportDir         string
	SupportProjectPath string

	// Frameworks and XCFrameworks are the per-configuration framework
	// products to embed. Resources are the per-configuration resource
	// paths to copy.
	Frameworks   map[string][]FrameworkPath
	XCFrameworks map[string][]XCFramework
	Resources    map[string][]string

	// FrameworksScriptPath and ResourcesScriptPath are the project-relative
	// paths of the generated embed/copy scripts executed by the phases.
	FrameworksScriptPath string
	ResourcesScriptPath  string

	// LockfilePath and SandboxManifestPath are the two lock files compared
	// by the manifest guard phase.
	LockfilePath        string
	SandboxManifestPath string

	// UserScriptPhases are the declared user phases, in declaration order.
	UserScriptPhases []ScriptPhaseSpec

	// Libraries are the dependent library targets.
	Libraries []Library

	// UserTargetIDs are the native targets this logical target maps to.
	UserTargetIDs []ObjectID
}

// HasFrameworks reports whether any configuration contributes a framework or
// a dynamically linked cross-platform bundle, i.e. whether an embed phase is
// warranted at all.
func (t *IntegrationTarget) HasFrameworks() bool {
	for _, fws := range t.Frameworks {
		if len(fws) > 0 {
			return true
		}
	}
	for _, xcs := range t.XCFrameworks {
		for _, xc := range xcs {
			if xc.Dynamic {
				return true
			}
		}
	}
	return false
}

// HasResources reports whether any configuration contributes resources.
func (t *IntegrationTarget) HasResources() bool {
	for _, rs := range t.Resources {
		if len(rs) > 0 {
			return true
		}
	}
	return false
}

// OnDemandResourcesGroupName returns the name of the on-demand resources
// subtree for a dependent library.
func OnDemandResourcesGroupName(library string) string {
	return library + "-OnDemandResources"
}
