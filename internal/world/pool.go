package world

import (
	"fmt"
	"math/rand/v2"
)

// Placement pins a token to a location ahead of the host's fill.
type Placement struct {
	Location LocationName `json:"location"`
	Token    TokenName    `json:"token"`
}

// Pool is everything the host needs to fill one world.
type Pool struct {
	Start        RegionName
	Precollected []TokenName
	Progression  []TokenName
	Locked       []Placement
	Filler       []TokenName
}

// Size is the number of tokens that will occupy locations.
func (p *Pool) Size() int {
	return len(p.Progression) + len(p.Locked) + len(p.Filler)
}

var startingRegions = []RegionName{Garden, HighStreet, BackGardens, Pub}

// ChooseStartingRegion resolves the starting area option. The model village
// is never a start.
func ChooseStartingRegion(opts Options, rng *rand.Rand) RegionName {
	switch opts.StartingArea {
	case StartGarden:
		return Garden
	case StartHighStreet:
		return HighStreet
	case StartBackGardens:
		return BackGardens
	case StartPub:
		return Pub
	default:
		return startingRegions[rng.IntN(len(startingRegions))]
	}
}

// BuildProgressionPool lists the progression tokens to shuffle. The start's
// access token is precollected instead.
func BuildProgressionPool(opts Options, start RegionName, tokens *TokenCatalog) []TokenName {
	var out []TokenName
	for _, r := range areaRegions {
		if r == start {
			continue
		}
		t, _ := areaAccess(r)
		out = append(out, t)
	}
	if opts.IncludeNPCSouls {
		for _, t := range tokens.InGroup(TokenGroupNPC) {
			out = append(out, t.Name)
		}
	}
	for _, t := range tokens.InGroup(TokenGroupProp) {
		if opts.IncludePropSouls || alwaysShuffled(t.Name) {
			out = append(out, t.Name)
		}
	}
	return out
}

// alwaysShuffled reports the souls the bell theft needs whatever the options.
func alwaysShuffled(t TokenName) bool {
	return t == SoulTimberHandle || t == SoulGoldenBell
}

func goalToken(g Goal) (TokenName, bool) {
	switch g {
	case GoalAllMainTasks:
		return AllMainGoalsComplete, true
	case GoalOnlySpeedrunTasks:
		return AllSpeedrunGoalsComplete, true
	case GoalAllTasksNoSpeedrun:
		return AllNonSpeedrunGoalsComplete, true
	case GoalAllTasks:
		return AllGoalsComplete, true
	case GoalFourFinalTasks:
		return FourFinalGoalsComplete, true
	default:
		return "", false
	}
}

func goalLocation(g Goal) (LocationName, bool) {
	switch g {
	case GoalAllMainTasks:
		return ObjectiveAllMain, true
	case GoalOnlySpeedrunTasks:
		return ObjectiveSpeedrun, true
	case GoalAllTasksNoSpeedrun:
		return ObjectiveNonSpeedrun, true
	case GoalAllTasks:
		return ObjectiveCompleteAll, true
	case GoalFourFinalTasks:
		return ObjectiveFourFinal, true
	default:
		return "", false
	}
}

// LockedPlacements pins the victory token and, for task goals, the goal
// token to their locations.
func LockedPlacements(opts Options) []Placement {
	out := []Placement{{Location: TaskCompleteGame, Token: GoldenBell}}
	if t, ok := goalToken(opts.Goal); ok {
		loc, _ := goalLocation(opts.Goal)
		out = append(out, Placement{Location: loc, Token: t})
	}
	return out
}

type weightedFiller struct {
	token  TokenName
	weight int
}

// FillRemainder produces n filler tokens. Capped filler comes first in a
// fixed order; the rest is drawn by weight from coins and traps.
func FillRemainder(opts Options, n int, rng *rand.Rand) ([]TokenName, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d more tokens than locations", ErrPoolMismatch, -n)
	}
	out := make([]TokenName, 0, n)
	capped := []struct {
		token TokenName
		count int
	}{
		{MegaHonk, opts.MegaHonkAmount},
		{SpeedyFeet, opts.SpeedyFeetAmount},
		{SilentSteps, boolCount(opts.SilentSteps)},
		{AGooseDay, opts.GooseDayAmount},
	}
	for _, c := range capped {
		for i := 0; i < c.count && len(out) < n; i++ {
			out = append(out, c.token)
		}
	}

	table := []weightedFiller{
		{Coin, opts.CoinWeight},
		{TiredGoose, opts.TiredGooseWeight},
		{ConfusedFeet, opts.ConfusedFeetWeight},
		{Butterbeak, opts.ButterbeakWeight},
		{SuspiciousGoose, opts.SuspiciousGooseWeight},
	}
	total := 0
	for _, w := range table {
		total += max(w.weight, 0)
	}
	for len(out) < n {
		if total == 0 {
			out = append(out, Coin)
			continue
		}
		out = append(out, pickWeighted(table, total, rng))
	}
	return out, nil
}

func pickWeighted(table []weightedFiller, total int, rng *rand.Rand) TokenName {
	roll := rng.IntN(total)
	for _, w := range table {
		if w.weight <= 0 {
			continue
		}
		if roll < w.weight {
			return w.token
		}
		roll -= w.weight
	}
	return table[len(table)-1].token
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

// BuildPool assembles the full pool for the active locations. The pool
// always holds exactly one token per active location.
func BuildPool(opts Options, active *ActiveLocations, tokens *TokenCatalog, rng *rand.Rand) (*Pool, error) {
	start := ChooseStartingRegion(opts, rng)
	access, _ := areaAccess(start)
	p := &Pool{
		Start:        start,
		Precollected: []TokenName{access},
		Progression:  BuildProgressionPool(opts, start, tokens),
		Locked:       LockedPlacements(opts),
	}
	for _, l := range p.Locked {
		if !active.Contains(l.Location) {
			return nil, fmt.Errorf("locked placement %q: %w", l.Location, ErrLocationNotActive)
		}
	}
	filler, err := FillRemainder(opts, active.Len()-len(p.Progression)-len(p.Locked), rng)
	if err != nil {
		return nil, err
	}
	p.Filler = filler
	if p.Size() != active.Len() {
		return nil, fmt.Errorf("%w: %d tokens for %d locations", ErrPoolMismatch, p.Size(), active.Len())
	}
	return p, nil
}
