package world

import (
	"fmt"
	"sort"
	"strings"
)

type StartingArea int

const (
	StartGarden StartingArea = iota
	StartHighStreet
	StartBackGardens
	StartPub
	StartRandom
)

var startingAreaNames = []string{"garden", "high_street", "back_gardens", "pub", "random"}

func (a StartingArea) String() string { return enumName(startingAreaNames, int(a)) }

func ParseStartingArea(s string) (StartingArea, error) {
	i, err := parseEnum("starting_area", startingAreaNames, s)
	return StartingArea(i), err
}

type Goal int

const (
	GoalOnlySteal Goal = iota
	GoalFindBell
	GoalAllMainTasks
	GoalOnlySpeedrunTasks
	GoalAllTasksNoSpeedrun
	GoalAllTasks
	GoalFourFinalTasks
)

var goalNames = []string{
	"only_steal",
	"find_bell",
	"all_main_tasks",
	"only_speedrun_tasks",
	"all_tasks_no_speedrun",
	"all_tasks",
	"four_final_tasks",
}

func (g Goal) String() string { return enumName(goalNames, int(g)) }

func ParseGoal(s string) (Goal, error) {
	i, err := parseEnum("goal", goalNames, s)
	return Goal(i), err
}

type ChurchPecks int

const (
	PecksNone ChurchPecks = iota
	PecksFirstOnly
	PecksAll
)

var churchPeckNames = []string{"none", "first_pecks_only", "all_pecks"}

func (p ChurchPecks) String() string { return enumName(churchPeckNames, int(p)) }

func ParseChurchPecks(s string) (ChurchPecks, error) {
	i, err := parseEnum("include_model_church_pecks", churchPeckNames, s)
	return ChurchPecks(i), err
}

// Options is the resolved player configuration. It is fixed before any
// predicate is built and never changes afterwards.
type Options struct {
	StartingArea StartingArea
	Goal         Goal

	IncludeNPCSouls          bool
	LogicallyRequireNPCSouls bool
	IncludePropSouls         bool

	IncludeExtraTasks         bool
	IncludeSpeedrunTasks      bool
	IncludeItemPickups        bool
	IncludeDragItems          bool
	IncludeInteractions       bool
	IncludeModelChurchPecks   ChurchPecks
	IncludeMilestoneLocations bool

	MegaHonkAmount   int
	SpeedyFeetAmount int
	SilentSteps      bool
	GooseDayAmount   int

	CoinWeight            int
	TiredGooseWeight      int
	ConfusedFeetWeight    int
	ButterbeakWeight      int
	SuspiciousGooseWeight int

	DeathLink bool
}

func DefaultOptions() Options {
	return Options{
		StartingArea:              StartRandom,
		Goal:                      GoalOnlySteal,
		IncludeNPCSouls:           true,
		IncludePropSouls:          true,
		IncludeItemPickups:        true,
		IncludeDragItems:          true,
		IncludeInteractions:       true,
		IncludeModelChurchPecks:   PecksFirstOnly,
		IncludeMilestoneLocations: true,
		MegaHonkAmount:            3,
		SpeedyFeetAmount:          10,
		SilentSteps:               true,
		GooseDayAmount:            3,
		CoinWeight:                80,
		TiredGooseWeight:          5,
		ConfusedFeetWeight:        5,
		ButterbeakWeight:          5,
		SuspiciousGooseWeight:     5,
	}
}

// ActiveGroups returns the location groups these options switch on.
func (o Options) ActiveGroups() GroupSet {
	set := GroupSet{
		GroupMainTask: true,
		GroupVictory:  true,
	}
	set[GroupExtraTask] = o.IncludeExtraTasks
	set[GroupSpeedrunTask] = o.IncludeSpeedrunTasks
	set[GroupPickup] = o.IncludeItemPickups
	set[GroupDrag] = o.IncludeDragItems
	set[GroupInteraction] = o.IncludeInteractions
	set[GroupChurchFirstPecks] = o.IncludeModelChurchPecks == PecksFirstOnly
	set[GroupChurchAllPecks] = o.IncludeModelChurchPecks == PecksAll
	set[GroupMilestone] = o.IncludeMilestoneLocations
	set[GroupMilestoneExtra] = o.IncludeMilestoneLocations && o.IncludeExtraTasks
	set[GroupMilestoneSpeedrun] = o.IncludeMilestoneLocations && o.IncludeSpeedrunTasks
	set[GroupMilestoneAll] = o.IncludeMilestoneLocations && o.IncludeExtraTasks && o.IncludeSpeedrunTasks
	if g, ok := goalLocationGroup(o.Goal); ok {
		set[g] = true
	}
	for g, on := range set {
		if !on {
			delete(set, g)
		}
	}
	return set
}

// values exposes the options under their configuration names. Enumerations
// are reported by index so range checks can compare them numerically.
func (o Options) values() map[string]any {
	return map[string]any{
		"starting_area":               int64(o.StartingArea),
		"goal":                        int64(o.Goal),
		"include_npc_souls":           o.IncludeNPCSouls,
		"logically_require_npc_souls": o.LogicallyRequireNPCSouls,
		"include_prop_souls":          o.IncludePropSouls,
		"include_extra_tasks":         o.IncludeExtraTasks,
		"include_speedrun_tasks":      o.IncludeSpeedrunTasks,
		"include_item_pickups":        o.IncludeItemPickups,
		"include_drag_items":          o.IncludeDragItems,
		"include_interactions":        o.IncludeInteractions,
		"include_model_church_pecks":  int64(o.IncludeModelChurchPecks),
		"include_milestone_locations": o.IncludeMilestoneLocations,
		"mega_honk_amount":            int64(o.MegaHonkAmount),
		"speedy_feet_amount":          int64(o.SpeedyFeetAmount),
		"silent_steps":                o.SilentSteps,
		"goose_day_amount":            int64(o.GooseDayAmount),
		"coin_weight":                 int64(o.CoinWeight),
		"tired_goose_weight":          int64(o.TiredGooseWeight),
		"confused_feet_weight":        int64(o.ConfusedFeetWeight),
		"butterbeak_weight":           int64(o.ButterbeakWeight),
		"suspicious_goose_weight":     int64(o.SuspiciousGooseWeight),
		"death_link":                  o.DeathLink,
	}
}

// OptionInfo describes one option under its configuration name.
type OptionInfo struct {
	Name    string
	Default string
	Allowed string
}

// DescribeOptions lists every option with its default and accepted values,
// sorted by name.
func DescribeOptions() []OptionInfo {
	enums := map[string][]string{
		"starting_area":              startingAreaNames,
		"goal":                       goalNames,
		"include_model_church_pecks": churchPeckNames,
	}
	ranges := make(map[string]optionRange, len(optionRanges))
	for _, r := range optionRanges {
		ranges[r.name] = r
	}

	values := DefaultOptions().values()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]OptionInfo, 0, len(names))
	for _, name := range names {
		v := values[name]
		info := OptionInfo{Name: name, Default: fmt.Sprint(v)}
		if table, ok := enums[name]; ok {
			info.Default = enumName(table, int(v.(int64)))
			info.Allowed = strings.Join(table, ", ")
		} else if r, ok := ranges[name]; ok {
			info.Allowed = fmt.Sprintf("%d..%d", r.min, r.max)
		} else {
			info.Allowed = "true, false"
		}
		out = append(out, info)
	}
	return out
}

func enumName(table []string, i int) string {
	if i < 0 || i >= len(table) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return table[i]
}

func parseEnum(option string, table []string, raw string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	for i, name := range table {
		if name == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q (want one of %s)", option, raw, strings.Join(table, ", "))
}
