package integrator

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"go.trai.ch/xcsync/internal/core/domain"
	"go.trai.ch/zerr"
)

// groupOnDemandResources converges the on-demand resource subtrees, one per
// dependent library, organized as <library>-OnDemandResources/<tag>/<file>.
// File references are registered with every user target's resources phase;
// references and tag subgroups no longer contributed are swept afterwards.
// The accumulated tags are unioned into the project tag registry, which only
// ever grows.
func (in *Integrator) groupOnDemandResources(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget) error {
	var tags []string

	for _, lib := range target.Libraries {
		groupName := domain.OnDemandResourcesGroupName(lib.Name)
		existing := project.ChildGroup(project.MainGroup, groupName)

		if len(lib.OnDemandResources) == 0 {
			if existing != nil {
				in.removeOnDemandSubtree(ctx, project, target, existing)
			}
			continue
		}

		group := existing
		if group == nil {
			var err error
			group, err = project.AddGroup(project.MainGroup, groupName)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create on-demand resources group"), "library", lib.Name)
			}
			in.step(ctx, fmt.Sprintf("Adding on-demand resources group %q", groupName))
		}

		added := make(map[domain.ObjectID]struct{})
		for _, tag := range sortedTags(lib.OnDemandResources) {
			sub := project.ChildGroup(group.ID, tag)
			if sub == nil {
				var err error
				sub, err = project.AddGroup(group.ID, tag)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to create tag group"), "tag", tag)
				}
			}

			for _, res := range lib.OnDemandResources[tag] {
				ref := project.FindFileReference(group.ID, res)
				if ref == nil {
					var err error
					ref, err = project.AddFileReference(sub.ID, res)
					if err != nil {
						return zerr.With(zerr.Wrap(err, "failed to reference resource"), "path", res)
					}
				}
				added[ref.ID] = struct{}{}
				if err := in.registerWithUserTargets(project, target, ref.ID); err != nil {
					return err
				}
			}
			tags = append(tags, tag)
		}

		in.sweepOnDemandSubtree(project, target, group, added)
	}

	project.MergeAssetTags(tags)
	return nil
}

// removeOnDemandSubtree deletes a library's whole subtree and unregisters
// its file references from every user target's resources phase.
func (in *Integrator) removeOnDemandSubtree(ctx context.Context, project *domain.Project, target *domain.IntegrationTarget, group *domain.Group) {
	refs := project.FileReferencesUnder(group.ID)
	for _, id := range target.UserTargetIDs {
		native, err := project.Target(id)
		if err != nil {
			continue
		}
		phase := native.ResourcesPhase()
		for _, ref := range refs {
			phase.RemoveFile(ref)
		}
	}
	project.RemoveGroup(group.ID)
	in.step(ctx, fmt.Sprintf("Removing on-demand resources group %q", group.Name))
}

// sweepOnDemandSubtree removes references not contributed in this run and
// tag subgroups left empty by the removal.
func (in *Integrator) sweepOnDemandSubtree(project *domain.Project, target *domain.IntegrationTarget, group *domain.Group, added map[domain.ObjectID]struct{}) {
	for _, refID := range project.FileReferencesUnder(group.ID) {
		if _, ok := added[refID]; ok {
			continue
		}
		for _, id := range target.UserTargetIDs {
			if native, err := project.Target(id); err == nil {
				native.ResourcesPhase().RemoveFile(refID)
			}
		}
		project.RemoveFileReference(refID)
	}

	for _, child := range slices.Clone(group.Children) {
		if sub := project.Group(child); sub != nil && len(sub.Children) == 0 {
			project.RemoveGroup(child)
		}
	}
}

func (in *Integrator) registerWithUserTargets(project *domain.Project, target *domain.IntegrationTarget, ref domain.ObjectID) error {
	for _, id := range target.UserTargetIDs {
		native, err := project.Target(id)
		if err != nil {
			return zerr.Wrap(err, "unknown user target")
		}
		native.ResourcesPhase().AddFile(ref)
	}
	return nil
}

func sortedTags(byTag map[string][]string) []string {
	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
