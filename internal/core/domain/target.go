package domain

import "slices"

// TargetKind classifies a native target by the product it builds.
type TargetKind string

const (
	// KindApplication is an application bundle.
	KindApplication TargetKind = "application"
	// KindAppClip is an application clip bundle.
	KindAppClip TargetKind = "app-clip"
	// KindAppExtension is an application extension hosted by another target.
	KindAppExtension TargetKind = "app-extension"
	// KindWatchExtension is a watch extension hosted by a watch application.
	KindWatchExtension TargetKind = "watch-extension"
	// KindMessagesExtension is a messages extension hosted by an application.
	KindMessagesExtension TargetKind = "messages-extension"
	// KindFramework is a framework bundle.
	KindFramework TargetKind = "framework"
	// KindStaticLibrary is a static library archive.
	KindStaticLibrary TargetKind = "static-library"
	// KindDynamicLibrary is a dynamic library.
	KindDynamicLibrary TargetKind = "dynamic-library"
	// KindUnitTestBundle is a unit test bundle.
	KindUnitTestBundle TargetKind = "unit-test"
	// KindUITestBundle is a UI test bundle.
	KindUITestBundle TargetKind = "ui-test"
)

// hostDelegated reports whether the kind is an extension whose products are
// embedded by a host target rather than by the target itself.
func (k TargetKind) hostDelegated() bool {
	switch k {
	case KindAppExtension, KindWatchExtension, KindMessagesExtension:
		return true
	default:
		return false
	}
}

// EmbedsProducts reports whether a target of this kind embeds framework
// products into its own bundle. Extension kinds embed their own products
// only when no host target takes over embedding (requiresHost is false).
func (k TargetKind) EmbedsProducts(requiresHost bool) bool {
	switch k {
	case KindApplication, KindAppClip, KindUnitTestBundle, KindUITestBundle:
		return true
	default:
		return k.hostDelegated() && !requiresHost
	}
}

// NativeTarget is a concrete build target inside the project graph. It owns
// an ordered sequence of build phases.
type NativeTarget struct {
	ID     ObjectID
	Name   string
	Kind   TargetKind
	Phases []*BuildPhase
}

// PhaseIndex returns the index of the first phase matching the predicate,
// or -1 if none matches.
func (t *NativeTarget) PhaseIndex(match func(*BuildPhase) bool) int {
	return slices.IndexFunc(t.Phases, match)
}

// SourcesPhaseIndex returns the index of the compile-sources phase, or -1.
func (t *NativeTarget) SourcesPhaseIndex() int {
	return t.PhaseIndex(func(p *BuildPhase) bool { return p.Kind == PhaseSources })
}

// HeadersPhaseIndex returns the index of the headers phase, or -1.
func (t *NativeTarget) HeadersPhaseIndex() int {
	return t.PhaseIndex(func(p *BuildPhase) bool { return p.Kind == PhaseHeaders })
}

// ScriptPhase returns the first script phase matching the predicate, or nil.
func (t *NativeTarget) ScriptPhase(match func(*BuildPhase) bool) *BuildPhase {
	for _, p := range t.Phases {
		if p.Kind == PhaseScript && match(p) {
			return p
		}
	}
	return nil
}

// AppendPhase appends a phase to the end of the phase list.
func (t *NativeTarget) AppendPhase(p *BuildPhase) {
	t.Phases = append(t.Phases, p)
}

// InsertPhase inserts a phase at the given index.
func (t *NativeTarget) InsertPhase(i int, p *BuildPhase) {
	t.Phases = slices.Insert(t.Phases, i, p)
}

// RemovePhase deletes the phase from the phase list by identity.
// Removing an absent phase is not an error.
func (t *NativeTarget) RemovePhase(p *BuildPhase) {
	t.Phases = slices.DeleteFunc(t.Phases, func(q *BuildPhase) bool { return q == p })
}

// MoveToFront moves the phase to index 0. If the phase is already first or
// not present, the phase list is unchanged.
func (t *NativeTarget) MoveToFront(p *BuildPhase) {
	i := slices.Index(t.Phases, p)
	if i <= 0 {
		return
	}
	t.Phases = slices.Delete(t.Phases, i, i+1)
	t.Phases = slices.Insert(t.Phases, 0, p)
}

// MovePhase moves the phase to the given index, clamping to the valid range.
func (t *NativeTarget) MovePhase(p *BuildPhase, to int) {
	i := slices.Index(t.Phases, p)
	if i < 0 {
		return
	}
	t.Phases = slices.Delete(t.Phases, i, i+1)
	if to > len(t.Phases) {
		to = len(t.Phases)
	}
	if to < 0 {
		to = 0
	}
	t.Phases = slices.Insert(t.Phases, to, p)
}

// FrameworksPhase returns the link-frameworks phase, creating one at the end
// of the phase list if the target has none.
func (t *NativeTarget) FrameworksPhase() *BuildPhase {
	for _, p := range t.Phases {
		if p.Kind == PhaseFrameworks {
			return p
		}
	}
	p := &BuildPhase{Kind: PhaseFrameworks}
	t.AppendPhase(p)
	return p
}

// ResourcesPhase returns the copy-bundle-resources phase, creating one at the
// end of the phase list if the target has none.
func (t *NativeTarget) ResourcesPhase() *BuildPhase {
	for _, p := range t.Phases {
		if p.Kind == PhaseResources {
			return p
		}
	}
	p := &BuildPhase{Kind: PhaseResources}
	t.AppendPhase(p)
	return p
}
