package names

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type entry struct {
	canonical  string
	normalised string
	tokens     []string
}

// Index resolves loosely typed names against a fixed set of canonical names
// and proposes near misses for names it cannot resolve.
type Index struct {
	byNormalised map[string]string
	entries      []entry
}

func NewIndex(canonical ...string) *Index {
	idx := &Index{byNormalised: make(map[string]string, len(canonical))}
	for _, name := range canonical {
		idx.Add(name)
	}
	return idx
}

func (i *Index) Add(canonical string) {
	n := Normalise(canonical)
	if n == "" {
		return
	}
	if _, ok := i.byNormalised[n]; ok {
		return
	}
	i.byNormalised[n] = canonical
	i.entries = append(i.entries, entry{
		canonical:  canonical,
		normalised: n,
		tokens:     tokenise(n),
	})
}

func (i *Index) Len() int {
	return len(i.entries)
}

// Resolve returns the canonical name whose normalised form equals raw's.
func (i *Index) Resolve(raw string) (string, bool) {
	name, ok := i.byNormalised[Normalise(raw)]
	return name, ok
}

type candidate struct {
	canonical string
	score     float64
}

// Suggest returns up to limit canonical names close to raw, best first.
// Exact normalised matches are returned alone.
func (i *Index) Suggest(raw string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	in := Normalise(raw)
	if in == "" {
		return nil
	}
	if name, ok := i.byNormalised[in]; ok {
		return []string{name}
	}

	inTokens := tokenise(in)
	cands := make([]candidate, 0, 8)
	for _, e := range i.entries {
		if strings.HasPrefix(e.normalised, in) && len(in) >= 3 {
			cands = append(cands, candidate{canonical: e.canonical, score: 0.9 - 0.001*float64(len(e.normalised)-len(in))})
			continue
		}
		dist := levenshtein.ComputeDistance(in, e.normalised)
		if dist <= levenshteinLimit(len(e.normalised)) {
			cands = append(cands, candidate{canonical: e.canonical, score: 0.8 - 0.08*float64(dist)})
			continue
		}
		// Token overlap catches reordered or partially typed names.
		shared := sharedTokens(inTokens, e.tokens)
		if shared > 0 && shared*2 >= len(e.tokens) {
			cands = append(cands, candidate{canonical: e.canonical, score: 0.4 + 0.05*float64(shared)})
		}
	}

	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].score == cands[b].score {
			return cands[a].canonical < cands[b].canonical
		}
		return cands[a].score > cands[b].score
	})
	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.canonical)
	}
	return out
}

func sharedTokens(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}
	n := 0
	for _, t := range a {
		if set[t] {
			n++
			delete(set, t)
		}
	}
	return n
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
