package world

import "sort"

// Snapshot is a fixed token set plus the regions it opens. It never collects
// tokens from locations; sweeping is the host's job.
type Snapshot struct {
	rules   *RuleSet
	tokens  map[TokenName]bool
	reached map[RegionName]bool
}

func NewSnapshot(rules *RuleSet, tokens ...TokenName) *Snapshot {
	s := &Snapshot{
		rules:  rules,
		tokens: make(map[TokenName]bool, len(tokens)),
	}
	for _, t := range tokens {
		s.tokens[t] = true
	}
	s.reached = rules.graph.reachable(s)
	return s
}

// With returns a new snapshot holding the receiver's tokens plus extra.
func (s *Snapshot) With(extra ...TokenName) *Snapshot {
	return NewSnapshot(s.rules, append(s.Tokens(), extra...)...)
}

func (s *Snapshot) Has(t TokenName) bool { return s.tokens[t] }

func (s *Snapshot) CanReachRegion(r RegionName) bool { return s.reached[r] }

func (s *Snapshot) CanReachLocation(l LocationName) bool {
	p, err := s.rules.Access(l)
	if err != nil {
		return false
	}
	return p(s)
}

func (s *Snapshot) Tokens() []TokenName {
	out := make([]TokenName, 0, len(s.tokens))
	for t := range s.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s *Snapshot) Reached() []RegionName {
	var out []RegionName
	for _, r := range s.rules.graph.Regions() {
		if s.reached[r] {
			out = append(out, r)
		}
	}
	return out
}
