package world

import (
	"errors"
	"testing"
)

func TestLocationIDsAreUniqueAndRoundTrip(t *testing.T) {
	_, locations := mustCatalogs(t)
	ids := locations.AllIDs()
	if len(ids) != len(DefaultLocations()) {
		t.Fatalf("AllIDs has %d entries, catalog %d", len(ids), len(DefaultLocations()))
	}
	seen := map[int64]LocationName{}
	for name, id := range ids {
		if prev, ok := seen[id]; ok {
			t.Fatalf("id %d used by %q and %q", id, prev, name)
		}
		seen[id] = name
		got, err := locations.ByID(id)
		if err != nil {
			t.Fatalf("ByID(%d): %v", id, err)
		}
		if got.Name != name {
			t.Fatalf("ByID(%d) = %q, want %q", id, got.Name, name)
		}
	}
}

func TestLocationsSitInKnownRegions(t *testing.T) {
	known := map[RegionName]bool{}
	for _, r := range DefaultRegions() {
		known[r] = true
	}
	for _, l := range DefaultLocations() {
		if !known[l.Region] || l.Region == Menu {
			t.Fatalf("location %q in region %q", l.Name, l.Region)
		}
	}
}

func TestAllIDsIgnoresConfiguration(t *testing.T) {
	_, locations := mustCatalogs(t)
	active := locations.Active(DefaultOptions().ActiveGroups())
	if active.Len() >= len(locations.AllIDs()) {
		t.Fatalf("defaults should leave some locations inactive: %d of %d", active.Len(), len(locations.AllIDs()))
	}
	if _, ok := locations.AllIDs()[ExtraScales]; !ok {
		t.Fatalf("inactive extra task missing from AllIDs")
	}
}

func TestActiveGetDistinguishesInactiveFromUnknown(t *testing.T) {
	_, locations := mustCatalogs(t)
	active := locations.Active(DefaultOptions().ActiveGroups())

	if _, err := active.Get(TaskPicnic); err != nil {
		t.Fatalf("main task should be active: %v", err)
	}
	_, err := active.Get(ExtraScales)
	if !errors.Is(err, ErrLocationNotActive) {
		t.Fatalf("expected ErrLocationNotActive, got %v", err)
	}
	_, err = active.Get("Pick up the Moon")
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownNameError, got %v", err)
	}
}

func TestActiveGroupsFollowOptions(t *testing.T) {
	cases := []struct {
		name  string
		tweak func(*Options)
		on    []LocationGroup
		off   []LocationGroup
	}{
		{
			name:  "defaults",
			tweak: func(*Options) {},
			on:    []LocationGroup{GroupMainTask, GroupVictory, GroupPickup, GroupMilestone, GroupChurchFirstPecks, GroupGoalModelVillage},
			off:   []LocationGroup{GroupExtraTask, GroupSpeedrunTask, GroupChurchAllPecks, GroupMilestoneExtra, GroupMilestoneAll},
		},
		{
			name: "everything",
			tweak: func(o *Options) {
				*o = everything()
				o.Goal = GoalAllTasks
			},
			on:  []LocationGroup{GroupExtraTask, GroupSpeedrunTask, GroupChurchAllPecks, GroupMilestoneAll, GroupGoalAllTasks},
			off: []LocationGroup{GroupChurchFirstPecks, GroupGoalModelVillage},
		},
		{
			name: "find bell has no goal location",
			tweak: func(o *Options) {
				o.Goal = GoalFindBell
				o.IncludeMilestoneLocations = false
			},
			off: []LocationGroup{GroupGoalModelVillage, GroupGoalAllMain, GroupMilestone},
		},
	}
	for _, tc := range cases {
		opts := DefaultOptions()
		tc.tweak(&opts)
		groups := opts.ActiveGroups()
		for _, g := range tc.on {
			if !groups[g] {
				t.Fatalf("%s: expected %s on", tc.name, g)
			}
		}
		for _, g := range tc.off {
			if groups[g] {
				t.Fatalf("%s: expected %s off", tc.name, g)
			}
		}
	}
}

func TestLocationCatalogRejectsDuplicateID(t *testing.T) {
	_, err := NewLocationCatalog([]Location{
		{Name: "A", ID: 1, Region: Hub, Group: GroupPickup},
		{Name: "B", ID: 1, Region: Hub, Group: GroupPickup},
	})
	var dup *DuplicateError
	if !errors.As(err, &dup) || dup.Other != "A" {
		t.Fatalf("expected id collision with A, got %v", err)
	}
}
