package world

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Result struct {
	Location  LocationName
	Reachable bool
}

// EvaluateLocations checks every active location against s using up to
// workers goroutines. Results keep the catalog order.
func EvaluateLocations(ctx context.Context, rules *RuleSet, s State, workers int) ([]Result, error) {
	names := rules.active.Names()
	out := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := rules.Access(name)
			if err != nil {
				return err
			}
			out[i] = Result{Location: name, Reachable: p(s)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func ReachableLocations(results []Result) []LocationName {
	var out []LocationName
	for _, r := range results {
		if r.Reachable {
			out = append(out, r.Location)
		}
	}
	return out
}
