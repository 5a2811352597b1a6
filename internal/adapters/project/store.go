// Package project implements the YAML snapshot store for the project graph.
// The snapshot is a transport for the in-memory model, not the IDE's native
// file format.
package project

import (
	"os"
	"path/filepath"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/xcsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectStore = (*Store)(nil)

// Store implements ports.ProjectStore backed by a YAML file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads a project snapshot from the given path.
func (s *Store) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project snapshot")
	}

	var dto ProjectDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse project snapshot")
	}

	p := domain.NewProject()
	p.CompatibilityVersion = dto.CompatibilityVersion
	p.ObjectVersion = dto.ObjectVersion
	p.MergeAssetTags(dto.KnownAssetTags)

	main := p.Group(p.MainGroup)
	if dto.MainGroup.Name != "" {
		main.Name = dto.MainGroup.Name
	}
	if err := attachChildren(p, p.MainGroup, dto.MainGroup.Children); err != nil {
		return nil, err
	}

	for _, t := range dto.Targets {
		target := &domain.NativeTarget{
			ID:   domain.ObjectID(t.ID),
			Name: t.Name,
			Kind: domain.TargetKind(t.Kind),
		}
		for _, ph := range t.Phases {
			target.AppendPhase(phaseFromDTO(ph))
		}
		p.AddTarget(target)
	}
	return p, nil
}

// Save writes the project snapshot to the given path.
func (s *Store) Save(path string, p *domain.Project) error {
	dto := ProjectDTO{
		CompatibilityVersion: p.CompatibilityVersion,
		ObjectVersion:        p.ObjectVersion,
		KnownAssetTags:       p.KnownAssetTags,
		MainGroup:            groupToDTO(p, p.MainGroup),
	}
	for _, t := range p.Targets {
		target := TargetDTO{
			ID:   string(t.ID),
			Name: t.Name,
			Kind: string(t.Kind),
		}
		for _, ph := range t.Phases {
			target.Phases = append(target.Phases, phaseToDTO(ph))
		}
		dto.Targets = append(dto.Targets, target)
	}

	data, err := yaml.Marshal(&dto)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal project snapshot")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for project snapshot")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write project snapshot")
	}
	return nil
}

func attachChildren(p *domain.Project, parent domain.ObjectID, children []ChildDTO) error {
	for _, child := range children {
		switch {
		case child.Group != nil:
			g := &domain.Group{ID: domain.ObjectID(child.Group.ID), Name: child.Group.Name}
			if g.ID == "" {
				g.ID = domain.NewObjectID()
			}
			if err := p.AttachGroup(parent, g); err != nil {
				return err
			}
			if err := attachChildren(p, g.ID, child.Group.Children); err != nil {
				return err
			}
		case child.File != nil:
			ref := &domain.FileReference{
				ID:   domain.ObjectID(child.File.ID),
				Name: child.File.Name,
				Path: child.File.Path,
			}
			if ref.ID == "" {
				ref.ID = domain.NewObjectID()
			}
			if ref.Name == "" {
				ref.Name = domain.Basename(ref.Path)
			}
			if err := p.AttachFileReference(parent, ref); err != nil {
				return err
			}
		}
	}
	return nil
}

func groupToDTO(p *domain.Project, id domain.ObjectID) GroupDTO {
	g := p.Group(id)
	dto := GroupDTO{ID: string(g.ID), Name: g.Name}
	for _, child := range g.Children {
		if ref := p.FileReference(child); ref != nil {
			dto.Children = append(dto.Children, ChildDTO{File: &FileRefDTO{
				ID:   string(ref.ID),
				Name: ref.Name,
				Path: ref.Path,
			}})
			continue
		}
		sub := groupToDTO(p, child)
		dto.Children = append(dto.Children, ChildDTO{Group: &sub})
	}
	return dto
}

func phaseFromDTO(dto PhaseDTO) *domain.BuildPhase {
	phase := &domain.BuildPhase{
		Kind:                domain.PhaseKind(dto.Kind),
		Name:                dto.Name,
		ShellScript:         dto.ShellScript,
		ShellPath:           dto.ShellPath,
		InputPaths:          dto.InputPaths,
		OutputPaths:         dto.OutputPaths,
		InputFileListPaths:  dto.InputFileListPaths,
		OutputFileListPaths: dto.OutputFileListPaths,
		ShowEnvVarsInLog:    dto.ShowEnvVarsInLog,
		DependencyFile:      dto.DependencyFile,
	}
	if phase.Kind == domain.PhaseScript && phase.ShellPath == "" {
		phase.ShellPath = domain.DefaultShellPath
	}
	for _, f := range dto.Files {
		phase.Files = append(phase.Files, domain.ObjectID(f))
	}
	return phase
}

func phaseToDTO(phase *domain.BuildPhase) PhaseDTO {
	dto := PhaseDTO{
		Kind:                string(phase.Kind),
		Name:                phase.Name,
		ShellScript:         phase.ShellScript,
		ShellPath:           phase.ShellPath,
		InputPaths:          phase.InputPaths,
		OutputPaths:         phase.OutputPaths,
		InputFileListPaths:  phase.InputFileListPaths,
		OutputFileListPaths: phase.OutputFileListPaths,
		ShowEnvVarsInLog:    phase.ShowEnvVarsInLog,
		DependencyFile:      phase.DependencyFile,
	}
	for _, f := range phase.Files {
		dto.Files = append(dto.Files, string(f))
	}
	return dto
}
