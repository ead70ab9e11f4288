package world

import (
	"errors"
	"testing"
)

func TestConnectRejectsUnknownRegion(t *testing.T) {
	g := NewRegionGraph()
	if err := g.AddRegion(Hub); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := g.Connect(Hub, "Moon", "", nil)
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) || unknown.Name != "Moon" {
		t.Fatalf("expected unknown region, got %v", err)
	}
}

func TestAddRegionRejectsDuplicate(t *testing.T) {
	g := NewRegionGraph()
	_ = g.AddRegion(Hub)
	var dup *DuplicateError
	if err := g.AddRegion(Hub); !errors.As(err, &dup) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestEntrancesAreOneWay(t *testing.T) {
	g := NewRegionGraph()
	for _, r := range []RegionName{Menu, Hub, Garden} {
		_ = g.AddRegion(r)
	}
	_ = g.Connect(Menu, Hub, "", nil)
	_ = g.Connect(Garden, Hub, "", nil)

	seen := g.reachable(tokenState{})
	if !seen[Hub] || seen[Garden] {
		t.Fatalf("expected Hub only, got %v", seen)
	}
}

func TestStandardGraph(t *testing.T) {
	rs := mustRules(t, DefaultOptions())
	cases := []struct {
		tokens []TokenName
		want   map[RegionName]bool
	}{
		{nil, map[RegionName]bool{Hub: true, Garden: false, ModelVillage: false}},
		{[]TokenName{GardenAccess}, map[RegionName]bool{Garden: true, HighStreet: false}},
		{[]TokenName{ModelVillageAccess}, map[RegionName]bool{ModelVillage: false, Pub: false}},
		{[]TokenName{ModelVillageAccess, PubAccess}, map[RegionName]bool{ModelVillage: true, Pub: true}},
	}
	for _, tc := range cases {
		s := NewSnapshot(rs, tc.tokens...)
		for region, want := range tc.want {
			if got := s.CanReachRegion(region); got != want {
				t.Fatalf("tokens %v: reach %s = %v, want %v", tc.tokens, region, got, want)
			}
		}
	}
}

func TestEveryLocationIsPlaced(t *testing.T) {
	rs := mustRules(t, everything())
	for _, l := range DefaultLocations() {
		region, err := rs.Graph().RegionOf(l.Name)
		if err != nil {
			t.Fatalf("RegionOf(%q): %v", l.Name, err)
		}
		if region != l.Region {
			t.Fatalf("%q placed in %s, want %s", l.Name, region, l.Region)
		}
	}
}

// tokenState holds tokens and nothing else.
type tokenState map[TokenName]bool

func (s tokenState) Has(t TokenName) bool { return s[t] }

func (s tokenState) CanReachRegion(RegionName) bool { return false }

func (s tokenState) CanReachLocation(LocationName) bool { return false }
