package domain_test

import (
	"testing"

	"go.trai.ch/xcsync/internal/core/domain"
)

func TestProject_GroupTree(t *testing.T) {
	p := domain.NewProject()

	g, err := p.AddGroup(p.MainGroup, "Frameworks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := p.ChildGroup(p.MainGroup, "Frameworks"); got == nil || got.ID != g.ID {
		t.Fatalf("expected to find child group, got %v", got)
	}

	if got := p.ChildGroup(p.MainGroup, "Missing"); got != nil {
		t.Errorf("expected nil for missing group, got %v", got)
	}
}

func TestProject_AddGroup_MissingParent(t *testing.T) {
	p := domain.NewProject()

	_, err := p.AddGroup(domain.ObjectID("DEADBEEF"), "orphan")
	if err == nil {
		t.Fatal("expected error for missing parent, got nil")
	}
}

func TestProject_FindFileReference(t *testing.T) {
	p := domain.NewProject()
	g, err := p.AddGroup(p.MainGroup, "Pets-OnDemandResources")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub, err := p.AddGroup(g.ID, "cats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref, err := p.AddFileReference(sub.ID, "Pets/cats/whiskers.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if found := p.FindFileReference(g.ID, "Pets/cats/whiskers.png"); found == nil || found.ID != ref.ID {
		t.Fatalf("expected to find nested file reference, got %v", found)
	}
	if found := p.FindFileReference(g.ID, "Pets/cats/missing.png"); found != nil {
		t.Errorf("expected nil for missing path, got %v", found)
	}
	if ref.Name != "whiskers.png" {
		t.Errorf("expected basename whiskers.png, got %q", ref.Name)
	}
}

func TestProject_RemoveGroup_Recursive(t *testing.T) {
	p := domain.NewProject()
	g, _ := p.AddGroup(p.MainGroup, "root")
	sub, _ := p.AddGroup(g.ID, "sub")
	ref, _ := p.AddFileReference(sub.ID, "a.png")

	p.RemoveGroup(g.ID)

	if p.Group(g.ID) != nil || p.Group(sub.ID) != nil {
		t.Error("expected groups to be removed")
	}
	if p.FileReference(ref.ID) != nil {
		t.Error("expected nested file reference to be removed")
	}
	if got := len(p.Group(p.MainGroup).Children); got != 0 {
		t.Errorf("expected main group to be empty, got %d children", got)
	}

	// Removing again must be a no-op, not an error.
	p.RemoveGroup(g.ID)
}

func TestProject_RemoveGroup_MultipleSubgroups(t *testing.T) {
	p := domain.NewProject()
	root, _ := p.AddGroup(p.MainGroup, "Maps-OnDemandResources")
	city, _ := p.AddGroup(root.ID, "city")
	cityRef, _ := p.AddFileReference(city.ID, "Maps/city.json")
	rural, _ := p.AddGroup(root.ID, "rural")
	ruralRef, _ := p.AddFileReference(rural.ID, "Maps/rural.json")
	coast, _ := p.AddGroup(root.ID, "coast")
	coastRef, _ := p.AddFileReference(coast.ID, "Maps/coast.json")

	p.RemoveGroup(root.ID)

	// Every subgroup must go, not just the first sibling.
	for _, g := range []*domain.Group{root, city, rural, coast} {
		if p.Group(g.ID) != nil {
			t.Errorf("expected group %q to be removed", g.Name)
		}
	}
	for _, ref := range []*domain.FileReference{cityRef, ruralRef, coastRef} {
		if p.FileReference(ref.ID) != nil {
			t.Errorf("expected file reference %q to be removed", ref.Path)
		}
	}
	if got := len(p.Groups()); got != 1 {
		t.Errorf("expected only the main group to remain, got %d groups", got)
	}
}

func TestProject_RemoveFileReference_Absent(t *testing.T) {
	p := domain.NewProject()
	// Tolerant of already-absent references.
	p.RemoveFileReference(domain.ObjectID("DEADBEEF"))
}

func TestProject_MergeAssetTags(t *testing.T) {
	p := domain.NewProject()

	p.MergeAssetTags([]string{"cats", "birds"})
	if got := p.KnownAssetTags; len(got) != 2 || got[0] != "birds" || got[1] != "cats" {
		t.Fatalf("expected sorted tag set, got %v", got)
	}

	// The registry only grows; merging an empty set never clears it.
	p.MergeAssetTags(nil)
	if len(p.KnownAssetTags) != 2 {
		t.Fatalf("expected registry untouched, got %v", p.KnownAssetTags)
	}

	p.MergeAssetTags([]string{"cats", "dogs"})
	if got := p.KnownAssetTags; len(got) != 3 || got[2] != "dogs" {
		t.Fatalf("expected union of tags, got %v", got)
	}
}

func TestNewObjectID_Format(t *testing.T) {
	id := domain.NewObjectID()
	if len(id) != 24 {
		t.Fatalf("expected 24-character identifier, got %q", id)
	}
	if id == domain.NewObjectID() {
		t.Error("expected identifiers to be unique")
	}
}
