package world

import "testing"

func mustCatalogs(t *testing.T) (*TokenCatalog, *LocationCatalog) {
	t.Helper()
	tokens, err := TokenCatalogue()
	if err != nil {
		t.Fatalf("token catalog: %v", err)
	}
	locations, err := LocationCatalogue()
	if err != nil {
		t.Fatalf("location catalog: %v", err)
	}
	return tokens, locations
}

func mustRules(t *testing.T, opts Options) *RuleSet {
	t.Helper()
	tokens, locations := mustCatalogs(t)
	rs, err := BuildRules(opts, tokens, locations)
	if err != nil {
		t.Fatalf("build rules: %v", err)
	}
	return rs
}

func everything() Options {
	opts := DefaultOptions()
	opts.IncludeExtraTasks = true
	opts.IncludeSpeedrunTasks = true
	opts.IncludeModelChurchPecks = PecksAll
	return opts
}

func allAccess() []TokenName {
	return []TokenName{GardenAccess, HighStreetAccess, BackGardensAccess, PubAccess, ModelVillageAccess}
}

func mustAccess(t *testing.T, rs *RuleSet, name LocationName) Predicate {
	t.Helper()
	p, err := rs.Access(name)
	if err != nil {
		t.Fatalf("access %q: %v", name, err)
	}
	return p
}

// validCombos enumerates option sets that pass validation, varying the
// switches that change which locations and tokens exist.
func validCombos() []Options {
	var out []Options
	for goal := GoalOnlySteal; goal <= GoalFourFinalTasks; goal++ {
		for mask := 0; mask < 1<<6; mask++ {
			for pecks := PecksNone; pecks <= PecksAll; pecks++ {
				opts := DefaultOptions()
				opts.Goal = goal
				opts.IncludeExtraTasks = mask&1 != 0
				opts.IncludeSpeedrunTasks = mask&2 != 0
				opts.IncludeNPCSouls = mask&4 != 0
				opts.IncludePropSouls = mask&8 != 0
				opts.IncludeMilestoneLocations = mask&16 != 0
				opts.LogicallyRequireNPCSouls = mask&32 != 0
				opts.IncludeModelChurchPecks = pecks
				if opts.Validate() != nil {
					continue
				}
				out = append(out, opts)
			}
		}
	}
	return out
}
