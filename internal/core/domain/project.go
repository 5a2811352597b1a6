// Package domain contains the core domain model for the project graph:
// an arena of targets, groups and file references addressed by stable
// identifiers, plus the integration-target input model.
package domain

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// ObjectID is the stable identifier of a node in the project graph arena.
type ObjectID string

// NewObjectID generates a new 24-character hexadecimal object identifier.
func NewObjectID() ObjectID {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return ObjectID(hex[:24])
}

// Project is the in-memory project graph. Groups and file references live in
// flat arenas keyed by ObjectID; containment is expressed through each
// group's ordered Children slice, never through back-pointers.
type Project struct {
	// CompatibilityVersion is the declared IDE compatibility version,
	// e.g. "Xcode 9.3". It drives the path-list encoding decision.
	CompatibilityVersion string

	// ObjectVersion is the project object-model version, used as a
	// fallback when CompatibilityVersion does not parse.
	ObjectVersion int

	// KnownAssetTags is the project-wide registry of on-demand resource
	// tags. It is a sorted set and only ever grows.
	KnownAssetTags []string

	// MainGroup is the root of the group tree.
	MainGroup ObjectID

	// Targets are the native targets, in declaration order.
	Targets []*NativeTarget

	groups   map[ObjectID]*Group
	fileRefs map[ObjectID]*FileReference
}

// Group is a named container of groups and file references.
type Group struct {
	ID       ObjectID
	Name     string
	Children []ObjectID
}

// FileReference points at a file by its project-relative path.
type FileReference struct {
	ID   ObjectID
	Name string
	Path string
}

// NewProject creates an empty project with a main group.
func NewProject() *Project {
	p := &Project{
		groups:   make(map[ObjectID]*Group),
		fileRefs: make(map[ObjectID]*FileReference),
	}
	main := &Group{ID: NewObjectID(), Name: "Main"}
	p.groups[main.ID] = main
	p.MainGroup = main.ID
	return p
}

// Group returns the group with the given ID, or nil.
func (p *Project) Group(id ObjectID) *Group {
	return p.groups[id]
}

// FileReference returns the file reference with the given ID, or nil.
func (p *Project) FileReference(id ObjectID) *FileReference {
	return p.fileRefs[id]
}

// Target returns the native target with the given ID.
// It returns ErrTargetNotFound if no such target exists.
func (p *Project) Target(id ObjectID) (*NativeTarget, error) {
	for _, t := range p.Targets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, zerr.With(ErrTargetNotFound, "target_id", string(id))
}

// AddTarget appends a native target to the project.
func (p *Project) AddTarget(t *NativeTarget) {
	if t.ID == "" {
		t.ID = NewObjectID()
	}
	p.Targets = append(p.Targets, t)
}

// AddGroup creates a new group under the given parent and returns it.
// It returns ErrGroupNotFound if the parent does not exist.
func (p *Project) AddGroup(parent ObjectID, name string) (*Group, error) {
	pg := p.groups[parent]
	if pg == nil {
		return nil, zerr.With(ErrGroupNotFound, "group_id", string(parent))
	}
	g := &Group{ID: NewObjectID(), Name: name}
	p.groups[g.ID] = g
	pg.Children = append(pg.Children, g.ID)
	return g, nil
}

// ChildGroup returns the direct child group of parent with the given name,
// or nil if absent.
func (p *Project) ChildGroup(parent ObjectID, name string) *Group {
	pg := p.groups[parent]
	if pg == nil {
		return nil
	}
	for _, id := range pg.Children {
		if g := p.groups[id]; g != nil && g.Name == name {
			return g
		}
	}
	return nil
}

// AddFileReference creates a file reference for the given project-relative
// path under the given parent group.
func (p *Project) AddFileReference(parent ObjectID, path string) (*FileReference, error) {
	pg := p.groups[parent]
	if pg == nil {
		return nil, zerr.With(ErrGroupNotFound, "group_id", string(parent))
	}
	ref := &FileReference{ID: NewObjectID(), Name: Basename(path), Path: path}
	p.fileRefs[ref.ID] = ref
	pg.Children = append(pg.Children, ref.ID)
	return ref, nil
}

// AttachGroup inserts an existing group node under the given parent,
// preserving its ID. Used when rehydrating a snapshot.
func (p *Project) AttachGroup(parent ObjectID, g *Group) error {
	pg := p.groups[parent]
	if pg == nil {
		return zerr.With(ErrGroupNotFound, "group_id", string(parent))
	}
	p.groups[g.ID] = g
	pg.Children = append(pg.Children, g.ID)
	return nil
}

// AttachFileReference inserts an existing file reference under the given
// parent, preserving its ID. Used when rehydrating a snapshot.
func (p *Project) AttachFileReference(parent ObjectID, ref *FileReference) error {
	pg := p.groups[parent]
	if pg == nil {
		return zerr.With(ErrGroupNotFound, "group_id", string(parent))
	}
	p.fileRefs[ref.ID] = ref
	pg.Children = append(pg.Children, ref.ID)
	return nil
}

// FindFileReference returns the file reference with the given path anywhere
// under the group subtree rooted at root, or nil if absent.
func (p *Project) FindFileReference(root ObjectID, path string) *FileReference {
	g := p.groups[root]
	if g == nil {
		return nil
	}
	for _, id := range g.Children {
		if ref := p.fileRefs[id]; ref != nil && ref.Path == path {
			return ref
		}
		if found := p.FindFileReference(id, path); found != nil {
			return found
		}
	}
	return nil
}

// FileReferencesUnder returns the IDs of all file references in the subtree
// rooted at root, depth first.
func (p *Project) FileReferencesUnder(root ObjectID) []ObjectID {
	g := p.groups[root]
	if g == nil {
		return nil
	}
	var refs []ObjectID
	for _, id := range g.Children {
		if _, ok := p.fileRefs[id]; ok {
			refs = append(refs, id)
			continue
		}
		refs = append(refs, p.FileReferencesUnder(id)...)
	}
	return refs
}

// RemoveFileReference deletes a file reference from the arena and detaches it
// from every group. Removing an absent reference is not an error.
func (p *Project) RemoveFileReference(id ObjectID) {
	delete(p.fileRefs, id)
	for _, g := range p.groups {
		g.Children = slices.DeleteFunc(g.Children, func(c ObjectID) bool { return c == id })
	}
}

// RemoveGroup deletes a group subtree, including all nested groups and file
// references, and detaches the root from its parent. Removing an absent
// group is not an error.
func (p *Project) RemoveGroup(id ObjectID) {
	g := p.groups[id]
	if g == nil {
		return
	}
	// The recursive call compacts Children slices across the arena, including
	// this group's own; iterate over a snapshot.
	for _, child := range slices.Clone(g.Children) {
		if _, ok := p.fileRefs[child]; ok {
			delete(p.fileRefs, child)
			continue
		}
		p.RemoveGroup(child)
	}
	delete(p.groups, id)
	for _, parent := range p.groups {
		parent.Children = slices.DeleteFunc(parent.Children, func(c ObjectID) bool { return c == id })
	}
}

// Groups returns all group IDs currently in the arena. Order is unspecified.
func (p *Project) Groups() []ObjectID {
	ids := make([]ObjectID, 0, len(p.groups))
	for id := range p.groups {
		ids = append(ids, id)
	}
	return ids
}

// MergeAssetTags unions the given tags into KnownAssetTags, keeping the set
// sorted. An empty tag list leaves the registry untouched; the registry is
// never overwritten with a smaller set.
func (p *Project) MergeAssetTags(tags []string) {
	if len(tags) == 0 {
		return
	}
	merged := append(slices.Clone(p.KnownAssetTags), tags...)
	slices.Sort(merged)
	p.KnownAssetTags = slices.Compact(merged)
}

// Basename returns the final element of a slash-separated path, with build
// setting references like ${SRCROOT} left intact.
func Basename(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
