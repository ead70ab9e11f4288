package world

import (
	"fmt"

	"go.uber.org/multierr"
)

// ruleBuilder assembles predicates for one configuration. Every token,
// region and location a rule names is checked against the catalogs as the
// rule is built; problems are collected and reported once at the end.
type ruleBuilder struct {
	opts      Options
	tokens    *TokenCatalog
	locations *LocationCatalog
	regions   *RegionGraph

	rules     map[LocationName]Predicate
	capstones []Capstone
	err       error
}

func (b *ruleBuilder) fail(err error) {
	b.err = multierr.Append(b.err, err)
}

func (b *ruleBuilder) token(t TokenName) {
	if _, err := b.tokens.Lookup(t); err != nil {
		b.fail(err)
	}
}

func (b *ruleBuilder) has(t TokenName) Predicate {
	b.token(t)
	return Has(t)
}

// npc requires an NPC soul, or nothing when NPC souls are not shuffled.
func (b *ruleBuilder) npc(t TokenName) Predicate {
	b.token(t)
	return OptionGate(b.opts.IncludeNPCSouls, t)
}

// prop requires a prop soul, or nothing when prop souls are not shuffled.
func (b *ruleBuilder) prop(t TokenName) Predicate {
	b.token(t)
	return OptionGate(b.opts.IncludePropSouls, t)
}

func (b *ruleBuilder) in(r RegionName) Predicate {
	if b.regions != nil && !b.regions.HasRegion(r) {
		b.fail(&UnknownNameError{Kind: "region", Name: string(r)})
	}
	return Reach(r)
}

// set records the rule for a location. A location may only be set once.
func (b *ruleBuilder) set(name LocationName, p Predicate) {
	if _, err := b.locations.Lookup(name); err != nil {
		b.fail(err)
		return
	}
	if _, ok := b.rules[name]; ok {
		b.fail(fmt.Errorf("location %q has more than one rule", name))
		return
	}
	b.rules[name] = p
}

func (b *ruleBuilder) setAll(names []LocationName, p Predicate) {
	for _, n := range names {
		b.set(n, p)
	}
}

// task returns a rule recorded earlier so later tasks can depend on it.
func (b *ruleBuilder) task(name LocationName) Predicate {
	p, ok := b.rules[name]
	if !ok {
		b.fail(fmt.Errorf("rule for %q used before it was built", name))
		return func(State) bool { return false }
	}
	return p
}

func (b *ruleBuilder) tasks(names ...LocationName) []Predicate {
	out := make([]Predicate, len(names))
	for i, n := range names {
		out[i] = b.task(n)
	}
	return out
}

func (b *ruleBuilder) capstone(c Capstone) Predicate {
	if err := c.validate(); err != nil {
		b.fail(err)
	}
	b.capstones = append(b.capstones, c)
	return c.Predicate()
}

// RuleSet holds the predicates built for one configuration. It is read-only
// once built and safe for concurrent use.
type RuleSet struct {
	opts      Options
	graph     *RegionGraph
	active    *ActiveLocations
	rules     map[LocationName]Predicate
	capstones []Capstone

	// Completion is the victory condition.
	Completion Predicate
}

// BuildRules builds every predicate for opts. All rule errors found are
// returned together.
func BuildRules(opts Options, tokens *TokenCatalog, locations *LocationCatalog) (*RuleSet, error) {
	b := &ruleBuilder{
		opts:      opts,
		tokens:    tokens,
		locations: locations,
		rules:     make(map[LocationName]Predicate),
	}
	graph, err := buildRegionGraph(b)
	if err != nil {
		return nil, fmt.Errorf("build regions: %w", err)
	}
	for _, l := range locations.All() {
		if err := graph.Place(l.Name, l.Region); err != nil {
			b.fail(err)
		}
	}

	b.gardenRules()
	b.highStreetRules()
	b.backGardensRules()
	b.pubRules()
	b.extraRules()
	b.speedrunRules()
	b.victoryRules()
	b.milestoneRules()
	b.pickupRules()
	b.dragRules()
	b.interactionRules()
	completion := b.completion()

	active := locations.Active(opts.ActiveGroups())
	for _, l := range locations.All() {
		if _, ok := b.rules[l.Name]; !ok {
			b.fail(fmt.Errorf("location %q has no rule", l.Name))
		}
	}
	if b.err != nil {
		return nil, b.err
	}

	rs := &RuleSet{
		opts:       opts,
		graph:      graph,
		active:     active,
		rules:      make(map[LocationName]Predicate, active.Len()),
		capstones:  b.capstones,
		Completion: completion,
	}
	for _, name := range active.Names() {
		rs.rules[name] = b.rules[name]
	}
	return rs, nil
}

// Rule returns the location's own predicate, without the requirement of
// reaching its region.
func (rs *RuleSet) Rule(name LocationName) (Predicate, error) {
	p, ok := rs.rules[name]
	if !ok {
		_, err := rs.active.Get(name)
		return nil, err
	}
	return p, nil
}

// Access combines the location's rule with reaching the region that holds it.
func (rs *RuleSet) Access(name LocationName) (Predicate, error) {
	p, err := rs.Rule(name)
	if err != nil {
		return nil, err
	}
	region, err := rs.graph.RegionOf(name)
	if err != nil {
		return nil, err
	}
	return AllOf(Reach(region), p), nil
}

func (rs *RuleSet) Capstones() []Capstone {
	out := make([]Capstone, len(rs.capstones))
	copy(out, rs.capstones)
	return out
}

func (rs *RuleSet) Graph() *RegionGraph { return rs.graph }

func (rs *RuleSet) Locations() *ActiveLocations { return rs.active }

func (rs *RuleSet) Options() Options { return rs.opts }
