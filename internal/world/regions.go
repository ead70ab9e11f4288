package world

import (
	"fmt"
)

type RegionName string

const (
	Menu         RegionName = "Menu"
	Hub          RegionName = "Hub"
	Garden       RegionName = "Garden"
	HighStreet   RegionName = "High Street"
	BackGardens  RegionName = "Back Gardens"
	Pub          RegionName = "Pub"
	ModelVillage RegionName = "Model Village"
)

// StartRegion is where every traversal begins.
const StartRegion = Menu

func DefaultRegions() []RegionName {
	return []RegionName{Menu, Hub, Garden, HighStreet, BackGardens, Pub, ModelVillage}
}

type Entrance struct {
	Name string
	From RegionName
	To   RegionName
	Rule Predicate
}

// RegionGraph is a directed graph of regions. Entrances are one-way; travel
// back needs its own entrance.
type RegionGraph struct {
	regions   map[RegionName]bool
	order     []RegionName
	entrances []Entrance
	byName    map[string]int
	placement map[LocationName]RegionName
	contents  map[RegionName][]LocationName
}

func NewRegionGraph() *RegionGraph {
	return &RegionGraph{
		regions:   make(map[RegionName]bool),
		byName:    make(map[string]int),
		placement: make(map[LocationName]RegionName),
		contents:  make(map[RegionName][]LocationName),
	}
}

func (g *RegionGraph) AddRegion(name RegionName) error {
	if name == "" {
		return fmt.Errorf("region name is empty")
	}
	if g.regions[name] {
		return &DuplicateError{Kind: "region", Name: string(name)}
	}
	g.regions[name] = true
	g.order = append(g.order, name)
	return nil
}

func (g *RegionGraph) HasRegion(name RegionName) bool {
	return g.regions[name]
}

func (g *RegionGraph) Connect(from, to RegionName, entrance string, rule Predicate) error {
	if !g.regions[from] {
		return &UnknownNameError{Kind: "region", Name: string(from)}
	}
	if !g.regions[to] {
		return &UnknownNameError{Kind: "region", Name: string(to)}
	}
	if entrance == "" {
		entrance = fmt.Sprintf("%s -> %s", from, to)
	}
	if _, ok := g.byName[entrance]; ok {
		return &DuplicateError{Kind: "entrance", Name: entrance}
	}
	if rule == nil {
		rule = Always
	}
	g.byName[entrance] = len(g.entrances)
	g.entrances = append(g.entrances, Entrance{Name: entrance, From: from, To: to, Rule: rule})
	return nil
}

// Place binds a location to the region that holds it.
func (g *RegionGraph) Place(location LocationName, region RegionName) error {
	if !g.regions[region] {
		return &UnknownNameError{Kind: "region", Name: string(region)}
	}
	if prev, ok := g.placement[location]; ok {
		return fmt.Errorf("location %q already placed in %s", location, prev)
	}
	g.placement[location] = region
	g.contents[region] = append(g.contents[region], location)
	return nil
}

func (g *RegionGraph) RegionOf(location LocationName) (RegionName, error) {
	region, ok := g.placement[location]
	if !ok {
		return "", &UnknownNameError{Kind: "location", Name: string(location)}
	}
	return region, nil
}

func (g *RegionGraph) LocationsIn(region RegionName) []LocationName {
	out := make([]LocationName, len(g.contents[region]))
	copy(out, g.contents[region])
	return out
}

func (g *RegionGraph) Regions() []RegionName {
	out := make([]RegionName, len(g.order))
	copy(out, g.order)
	return out
}

func (g *RegionGraph) Entrances() []Entrance {
	out := make([]Entrance, len(g.entrances))
	copy(out, g.entrances)
	return out
}

func (g *RegionGraph) Entrance(name string) (Entrance, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Entrance{}, false
	}
	return g.entrances[i], true
}

// reachable returns every region connected to StartRegion through entrances
// whose rule holds for s. It is a plain closure over the graph: tokens are
// taken as given and never collected from locations.
func (g *RegionGraph) reachable(s State) map[RegionName]bool {
	seen := map[RegionName]bool{}
	if !g.regions[StartRegion] {
		return seen
	}
	seen[StartRegion] = true
	for changed := true; changed; {
		changed = false
		for _, e := range g.entrances {
			if !seen[e.From] || seen[e.To] {
				continue
			}
			if e.Rule(s) {
				seen[e.To] = true
				changed = true
			}
		}
	}
	return seen
}

// areaRegions are the regions that sit behind an access token.
var areaRegions = []RegionName{Garden, HighStreet, BackGardens, Pub, ModelVillage}

func areaAccess(region RegionName) (TokenName, bool) {
	switch region {
	case Garden:
		return GardenAccess, true
	case HighStreet:
		return HighStreetAccess, true
	case BackGardens:
		return BackGardensAccess, true
	case Pub:
		return PubAccess, true
	case ModelVillage:
		return ModelVillageAccess, true
	default:
		return "", false
	}
}

// buildRegionGraph lays out the hub and its five areas. Every area hangs off
// the hub; the Model Village entrance also needs pub access because the
// village is only reached through the pub.
func buildRegionGraph(b *ruleBuilder) (*RegionGraph, error) {
	g := NewRegionGraph()
	for _, r := range DefaultRegions() {
		if err := g.AddRegion(r); err != nil {
			return nil, err
		}
	}
	b.regions = g

	links := []struct {
		from, to RegionName
		name     string
		rule     Predicate
	}{
		{Menu, Hub, "Start", Always},
		{Hub, Garden, "To Garden", b.has(GardenAccess)},
		{Hub, HighStreet, "To High Street", b.has(HighStreetAccess)},
		{Hub, BackGardens, "To Back Gardens", b.has(BackGardensAccess)},
		{Hub, Pub, "To Pub", b.has(PubAccess)},
		{Hub, ModelVillage, "To Model Village", AllOf(b.has(PubAccess), b.has(ModelVillageAccess))},
	}
	for _, l := range links {
		if err := g.Connect(l.from, l.to, l.name, l.rule); err != nil {
			return nil, err
		}
	}
	return g, nil
}
