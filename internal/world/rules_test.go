package world

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

func TestBuildRulesForEveryValidCombo(t *testing.T) {
	combos := validCombos()
	if len(combos) == 0 {
		t.Fatalf("no valid option combinations")
	}
	for _, opts := range combos {
		rs := mustRules(t, opts)
		for _, name := range rs.Locations().Names() {
			if _, err := rs.Rule(name); err != nil {
				t.Fatalf("goal %s: rule for %q: %v", opts.Goal, name, err)
			}
		}
		for _, c := range rs.Capstones() {
			if c.Threshold < 1 || c.Threshold > len(c.Components) {
				t.Fatalf("capstone %q threshold %d of %d", c.Name, c.Threshold, len(c.Components))
			}
		}
	}
}

func TestRuleForInactiveLocation(t *testing.T) {
	rs := mustRules(t, DefaultOptions())
	if _, err := rs.Rule(ExtraScales); !errors.Is(err, ErrLocationNotActive) {
		t.Fatalf("expected ErrLocationNotActive, got %v", err)
	}
}

func TestCapstoneThresholdsAreAuthored(t *testing.T) {
	rs := mustRules(t, everything())
	want := map[string]int{
		string(TaskHammerThumb):     5,
		string(TaskTrapShopkeeper):  5,
		string(TaskPruneRose):       5,
		string(TaskDropBucket):      6,
		string(SpeedrunBackGardens): 5,
	}
	got := map[string]int{}
	for _, c := range rs.Capstones() {
		got[c.Name] = c.Threshold
	}
	for name, k := range want {
		if got[name] != k {
			t.Fatalf("capstone %q threshold = %d, want %d", name, got[name], k)
		}
	}
}

// Adding a token must never make a reachable location unreachable.
func TestRulesAreMonotonic(t *testing.T) {
	opts := everything()
	opts.Goal = GoalAllTasks
	opts.LogicallyRequireNPCSouls = true
	rs := mustRules(t, opts)
	tokens, _ := mustCatalogs(t)
	all := tokens.All()
	names := rs.Locations().Names()
	rng := NewRNG(7, "monotonic")

	for trial := 0; trial < 25; trial++ {
		var held []TokenName
		for _, tok := range all {
			if rng.IntN(2) == 0 {
				held = append(held, tok.Name)
			}
		}
		before := NewSnapshot(rs, held...)
		for step := 0; step < 8; step++ {
			after := before.With(all[rng.IntN(len(all))].Name)
			for _, name := range names {
				p := mustAccess(t, rs, name)
				if p(before) && !p(after) {
					t.Fatalf("%q lost reachability after adding a token", name)
				}
			}
			if rs.Completion(before) && !rs.Completion(after) {
				t.Fatalf("completion lost after adding a token")
			}
			before = after
		}
	}
}

func TestEverythingReachableWithAllTokens(t *testing.T) {
	tokens, _ := mustCatalogs(t)
	var every []TokenName
	for _, tok := range tokens.All() {
		every = append(every, tok.Name)
	}
	opts := everything()
	opts.LogicallyRequireNPCSouls = true
	rs := mustRules(t, opts)
	s := NewSnapshot(rs, every...)
	for _, name := range rs.Locations().Names() {
		if !mustAccess(t, rs, name)(s) {
			t.Fatalf("%q unreachable with every token", name)
		}
	}
}

func TestGatesOffOnlyNeedAccessAndBellSouls(t *testing.T) {
	opts := everything()
	opts.IncludeNPCSouls = false
	opts.IncludePropSouls = false
	rs := mustRules(t, opts)
	s := NewSnapshot(rs, append(allAccess(), SoulTimberHandle, SoulGoldenBell)...)
	for _, name := range rs.Locations().Names() {
		if !mustAccess(t, rs, name)(s) {
			t.Fatalf("%q unreachable with gating off", name)
		}
	}
}

func TestStartingRegionReachableAlone(t *testing.T) {
	opts := DefaultOptions()
	opts.StartingArea = StartGarden
	rs := mustRules(t, opts)
	tokens, _ := mustCatalogs(t)
	pool, err := BuildPool(opts, rs.Locations(), tokens, NewRNG(1, "pool"))
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	s := NewSnapshot(rs, pool.Precollected...)
	if !s.CanReachRegion(Garden) {
		t.Fatalf("start region not reachable")
	}
	if s.CanReachRegion(HighStreet) {
		t.Fatalf("high street reachable without access")
	}
}

func TestNPCGateOffNeedsNoNPCSoul(t *testing.T) {
	for _, gated := range []bool{false, true} {
		opts := DefaultOptions()
		opts.IncludeNPCSouls = gated
		rs := mustRules(t, opts)
		s := NewSnapshot(rs, HighStreetAccess, GardenAccess)
		for _, name := range []LocationName{TaskPhoneBooth, TaskGroundskeeperWet} {
			got := mustAccess(t, rs, name)(s)
			if got == gated {
				t.Fatalf("npc gating %v: %q reachable = %v", gated, name, got)
			}
		}
	}
}

func TestHammerThumbNeedsFiveOfSix(t *testing.T) {
	rs := mustRules(t, DefaultOptions())
	p := mustAccess(t, rs, TaskHammerThumb)
	base := NewSnapshot(rs, GardenAccess, SoulGroundskeeper, SoulMallet)

	four := base.With(SoulRake)
	if p(four) {
		t.Fatalf("4 of 6 tasks should not be enough")
	}
	five := four.With(SoulStrawHat, SoulTulip)
	if !p(five) {
		t.Fatalf("5 of 6 tasks should be enough")
	}
	withoutRake := base.With(SoulStrawHat, SoulTulip)
	if p(withoutRake) {
		t.Fatalf("dropping the rake leaves 4 of 6")
	}
	noMallet := NewSnapshot(rs, GardenAccess, SoulGroundskeeper, SoulRake, SoulStrawHat, SoulTulip)
	if p(noMallet) {
		t.Fatalf("mallet is a hard requirement")
	}
}

func TestVictoryNeedsSevenTokens(t *testing.T) {
	seven := append(allAccess(), SoulTimberHandle, SoulGoldenBell)
	for _, npc := range []bool{false, true} {
		for _, prop := range []bool{false, true} {
			opts := DefaultOptions()
			opts.IncludeNPCSouls = npc
			opts.IncludePropSouls = prop
			rs := mustRules(t, opts)
			steal, err := rs.Rule(TaskStealBell)
			if err != nil {
				t.Fatalf("rule: %v", err)
			}

			if !steal(NewSnapshot(rs, seven...)) {
				t.Fatalf("npc=%v prop=%v: bell not stealable with all seven", npc, prop)
			}
			if !rs.Completion(NewSnapshot(rs, append(seven, GoldenBell)...)) {
				t.Fatalf("npc=%v prop=%v: not complete with bell", npc, prop)
			}
			for i := range seven {
				missing := append(append([]TokenName{}, seven[:i]...), seven[i+1:]...)
				if steal(NewSnapshot(rs, missing...)) {
					t.Fatalf("bell stealable without %q", seven[i])
				}
				if rs.Completion(NewSnapshot(rs, append(missing, GoldenBell)...)) {
					t.Fatalf("complete without %q", seven[i])
				}
			}
		}
	}
}

func TestTaskGoalsNeedGoalToken(t *testing.T) {
	opts := DefaultOptions()
	opts.Goal = GoalFourFinalTasks
	rs := mustRules(t, opts)
	held := append(allAccess(), SoulTimberHandle, SoulGoldenBell, GoldenBell)
	if rs.Completion(NewSnapshot(rs, held...)) {
		t.Fatalf("four final tasks goal complete without its token")
	}
	if !rs.Completion(NewSnapshot(rs, append(held, FourFinalGoalsComplete)...)) {
		t.Fatalf("goal token should complete the goal")
	}
}

func TestScalesTipOnWeight(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeExtraTasks = true
	rs := mustRules(t, opts)
	p := mustAccess(t, rs, ExtraScales)

	cases := []struct {
		name   string
		tokens []TokenName
		want   bool
	}{
		{"carrots alone", []TokenName{SoulCarrot}, true},
		{"two light items", []TokenName{SoulToothbrush, SoulHairbrush}, false},
		{"three light items", []TokenName{SoulToothbrush, SoulHairbrush, SoulToyCar}, true},
		{"heavy plus light", []TokenName{SoulWeedTool, SoulTennisBall}, true},
		{"garden items need the garden", []TokenName{SoulApple, SoulJam}, false},
		{"garden items in the garden", []TokenName{SoulApple, SoulJam, GardenAccess}, true},
	}
	for _, tc := range cases {
		s := NewSnapshot(rs, append([]TokenName{HighStreetAccess}, tc.tokens...)...)
		if got := p(s); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBuildRulesReportsUnknownTokens(t *testing.T) {
	defs := DefaultTokens()
	var trimmed []Token
	for _, tok := range defs {
		if tok.Name != SoulChalk && tok.Name != SoulRake {
			trimmed = append(trimmed, tok)
		}
	}
	tokens, err := NewTokenCatalog(trimmed)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	_, locations := mustCatalogs(t)
	_, err = BuildRules(DefaultOptions(), tokens, locations)
	var unknown *UnknownNameError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownNameError, got %v", err)
	}
	seen := map[string]bool{}
	for _, e := range multierr.Errors(err) {
		if errors.As(e, &unknown) {
			seen[unknown.Name] = true
		}
	}
	if !seen[string(SoulChalk)] || !seen[string(SoulRake)] {
		t.Fatalf("expected both missing souls reported, got %v", seen)
	}
}
