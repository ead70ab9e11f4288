package world

import "fmt"

// State is the host's view of a search in progress. Implementations must not
// change while a predicate is being evaluated against them.
type State interface {
	Has(token TokenName) bool
	CanReachRegion(region RegionName) bool
	CanReachLocation(location LocationName) bool
}

// Predicate gates a location, an entrance or victory. Predicates must be
// monotonic: adding a token to the state never turns true into false.
type Predicate func(s State) bool

func Always(State) bool { return true }

func Has(token TokenName) Predicate {
	return func(s State) bool { return s.Has(token) }
}

func Reach(region RegionName) Predicate {
	return func(s State) bool { return s.CanReachRegion(region) }
}

func ReachLocation(location LocationName) Predicate {
	return func(s State) bool { return s.CanReachLocation(location) }
}

// OptionGate requires token only while the gating option is enabled.
func OptionGate(enabled bool, token TokenName) Predicate {
	if !enabled {
		return Always
	}
	return Has(token)
}

func AllOf(ps ...Predicate) Predicate {
	switch len(ps) {
	case 0:
		return Always
	case 1:
		return ps[0]
	}
	return func(s State) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func AnyOf(ps ...Predicate) Predicate {
	if len(ps) == 1 {
		return ps[0]
	}
	return func(s State) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// AtLeast holds when k or more of ps hold.
func AtLeast(k int, ps ...Predicate) Predicate {
	if k <= 0 {
		return Always
	}
	return func(s State) bool {
		n := 0
		for _, p := range ps {
			if p(s) {
				n++
				if n >= k {
					return true
				}
			}
		}
		return false
	}
}

type Weighted struct {
	Weight int
	When   Predicate
}

// WeightAtLeast sums the weights of the entries that hold and compares the
// total with k. Weights must be positive to keep the sum monotonic.
func WeightAtLeast(k int, ws ...Weighted) Predicate {
	if k <= 0 {
		return Always
	}
	return func(s State) bool {
		total := 0
		for _, w := range ws {
			if w.When(s) {
				total += w.Weight
				if total >= k {
					return true
				}
			}
		}
		return false
	}
}

// Capstone is a task unlocked by finishing enough of its sibling tasks.
// Threshold is authored per capstone and is not derived from the length of
// Components; editing Components means reviewing Threshold by hand.
type Capstone struct {
	Name       string
	Components []Predicate
	Threshold  int
	Required   Predicate
}

func (c Capstone) validate() error {
	if c.Threshold < 1 || c.Threshold > len(c.Components) {
		return fmt.Errorf("capstone %q: threshold %d outside 1..%d", c.Name, c.Threshold, len(c.Components))
	}
	return nil
}

func (c Capstone) Predicate() Predicate {
	required := c.Required
	if required == nil {
		required = Always
	}
	return AllOf(required, AtLeast(c.Threshold, c.Components...))
}

// Completed counts the components that hold in s.
func (c Capstone) Completed(s State) int {
	n := 0
	for _, p := range c.Components {
		if p(s) {
			n++
		}
	}
	return n
}
