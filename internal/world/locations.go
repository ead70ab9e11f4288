package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/appengine-ltd/goose-world/internal/names"
)

type LocationName string

type LocationGroup string

const (
	GroupMainTask          LocationGroup = "main_task"
	GroupVictory           LocationGroup = "victory"
	GroupExtraTask         LocationGroup = "extra_task"
	GroupSpeedrunTask      LocationGroup = "speedrun_task"
	GroupPickup            LocationGroup = "pickup"
	GroupDrag              LocationGroup = "drag"
	GroupInteraction       LocationGroup = "interaction"
	GroupChurchFirstPecks  LocationGroup = "church_first_pecks"
	GroupChurchAllPecks    LocationGroup = "church_all_pecks"
	GroupMilestone         LocationGroup = "milestone"
	GroupMilestoneExtra    LocationGroup = "milestone_extra"
	GroupMilestoneSpeedrun LocationGroup = "milestone_speedrun"
	GroupMilestoneAll      LocationGroup = "milestone_all"

	GroupGoalModelVillage LocationGroup = "goal_model_village"
	GroupGoalAllMain      LocationGroup = "goal_all_main"
	GroupGoalSpeedrun     LocationGroup = "goal_speedrun"
	GroupGoalNonSpeedrun  LocationGroup = "goal_non_speedrun"
	GroupGoalAllTasks     LocationGroup = "goal_all_tasks"
	GroupGoalFourFinal    LocationGroup = "goal_four_final"
)

// GroupSet is the set of location groups switched on for a configuration.
type GroupSet map[LocationGroup]bool

func goalLocationGroup(g Goal) (LocationGroup, bool) {
	switch g {
	case GoalOnlySteal:
		return GroupGoalModelVillage, true
	case GoalAllMainTasks:
		return GroupGoalAllMain, true
	case GoalOnlySpeedrunTasks:
		return GroupGoalSpeedrun, true
	case GoalAllTasksNoSpeedrun:
		return GroupGoalNonSpeedrun, true
	case GoalAllTasks:
		return GroupGoalAllTasks, true
	case GoalFourFinalTasks:
		return GroupGoalFourFinal, true
	default:
		return "", false
	}
}

type Location struct {
	Name   LocationName
	ID     int64
	Region RegionName
	Group  LocationGroup
}

type LocationCatalog struct {
	byName map[LocationName]Location
	byID   map[int64]LocationName
	order  []Location
	index  *names.Index
}

func NewLocationCatalog(defs []Location) (*LocationCatalog, error) {
	c := &LocationCatalog{
		byName: make(map[LocationName]Location, len(defs)),
		byID:   make(map[int64]LocationName, len(defs)),
		index:  names.NewIndex(),
	}
	for _, l := range defs {
		if err := c.Define(l); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *LocationCatalog) Define(l Location) error {
	if l.Name == "" {
		return fmt.Errorf("location with id %d has empty name", l.ID)
	}
	if l.ID <= 0 {
		return fmt.Errorf("location %q has non-positive id %d", l.Name, l.ID)
	}
	if l.Region == "" {
		return fmt.Errorf("location %q has no region", l.Name)
	}
	if l.Group == "" {
		return fmt.Errorf("location %q has no group", l.Name)
	}
	if _, ok := c.byName[l.Name]; ok {
		return &DuplicateError{Kind: "location", Name: string(l.Name), ID: l.ID}
	}
	if other, ok := c.byID[l.ID]; ok {
		return &DuplicateError{Kind: "location", Name: string(l.Name), ID: l.ID, Other: string(other)}
	}
	c.byName[l.Name] = l
	c.byID[l.ID] = l.Name
	c.order = append(c.order, l)
	c.index.Add(string(l.Name))
	return nil
}

func (c *LocationCatalog) Lookup(name LocationName) (Location, error) {
	l, ok := c.byName[name]
	if !ok {
		return Location{}, unknownName("location", string(name), c.index)
	}
	return l, nil
}

func (c *LocationCatalog) ByID(id int64) (Location, error) {
	name, ok := c.byID[id]
	if !ok {
		return Location{}, fmt.Errorf("unknown location id %d", id)
	}
	return c.byName[name], nil
}

func (c *LocationCatalog) Resolve(raw string) (Location, error) {
	if name, ok := c.index.Resolve(raw); ok {
		return c.byName[LocationName(name)], nil
	}
	return Location{}, unknownName("location", raw, c.index)
}

func (c *LocationCatalog) All() []Location {
	out := make([]Location, len(c.order))
	copy(out, c.order)
	return out
}

// AllIDs covers every catalogued location whatever the configuration, so a
// client can decode any id the host sends.
func (c *LocationCatalog) AllIDs() map[LocationName]int64 {
	out := make(map[LocationName]int64, len(c.order))
	for _, l := range c.order {
		out[l.Name] = l.ID
	}
	return out
}

// Groups lists the distinct groups in the catalog, sorted by name.
func (c *LocationCatalog) Groups() []LocationGroup {
	seen := map[LocationGroup]bool{}
	var out []LocationGroup
	for _, l := range c.order {
		if !seen[l.Group] {
			seen[l.Group] = true
			out = append(out, l.Group)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Active selects the locations whose group is in groups. Catalog order is
// preserved.
func (c *LocationCatalog) Active(groups GroupSet) *ActiveLocations {
	a := &ActiveLocations{
		catalog: c,
		byName:  make(map[LocationName]Location),
	}
	for _, l := range c.order {
		if !groups[l.Group] {
			continue
		}
		a.order = append(a.order, l)
		a.byName[l.Name] = l
	}
	return a
}

// ActiveLocations is the subset of a catalog in play for one configuration.
type ActiveLocations struct {
	catalog *LocationCatalog
	order   []Location
	byName  map[LocationName]Location
}

func (a *ActiveLocations) Get(name LocationName) (Location, error) {
	if l, ok := a.byName[name]; ok {
		return l, nil
	}
	if _, err := a.catalog.Lookup(name); err != nil {
		return Location{}, err
	}
	return Location{}, fmt.Errorf("location %q: %w", name, ErrLocationNotActive)
}

func (a *ActiveLocations) Contains(name LocationName) bool {
	_, ok := a.byName[name]
	return ok
}

func (a *ActiveLocations) Len() int { return len(a.order) }

func (a *ActiveLocations) All() []Location {
	out := make([]Location, len(a.order))
	copy(out, a.order)
	return out
}

func (a *ActiveLocations) Names() []LocationName {
	out := make([]LocationName, len(a.order))
	for i, l := range a.order {
		out[i] = l.Name
	}
	return out
}

var defaultLocationCatalog = sync.OnceValues(func() (*LocationCatalog, error) {
	return NewLocationCatalog(DefaultLocations())
})

// LocationCatalogue returns the process-wide catalog built from
// DefaultLocations.
func LocationCatalogue() (*LocationCatalog, error) {
	return defaultLocationCatalog()
}
