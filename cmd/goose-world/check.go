package main

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/goose-world/internal/world"
)

type checkReport struct {
	Tokens    []world.TokenName    `json:"tokens"`
	Regions   []world.RegionName   `json:"regions"`
	Reachable []world.LocationName `json:"reachable"`
	Total     int                  `json:"total"`
	Complete  bool                 `json:"complete"`
}

func (a *app) checkCmd() *cobra.Command {
	var (
		workers int
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "check [token...]",
		Short: "List the locations reachable with a set of tokens",
		Long: `Evaluates every active location against the given tokens. Token names
are matched loosely, so "groundskeeper soul" finds "Groundskeeper Soul".

Example:
  goose-world check "Garden Access" "Groundskeeper Soul" "Mallet Soul"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options()
			if err != nil {
				return err
			}
			rules, err := world.DefaultRules(opts)
			if err != nil {
				return err
			}
			tokens, err := world.TokenCatalogue()
			if err != nil {
				return err
			}
			held := make([]world.TokenName, 0, len(args))
			for _, raw := range args {
				t, err := tokens.Resolve(raw)
				if err != nil {
					return err
				}
				held = append(held, t.Name)
			}

			s := world.NewSnapshot(rules, held...)
			results, err := world.EvaluateLocations(cmd.Context(), rules, s, workers)
			if err != nil {
				return err
			}
			report := checkReport{
				Tokens:    s.Tokens(),
				Regions:   s.Reached(),
				Reachable: world.ReachableLocations(results),
				Total:     len(results),
				Complete:  rules.Completion(s),
			}
			a.logger.Debug("check finished",
				zap.Int("tokens", len(report.Tokens)),
				zap.Int("reachable", len(report.Reachable)),
				zap.Int("total", report.Total),
			)

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			for _, name := range report.Reachable {
				fmt.Fprintln(w, name)
			}
			fmt.Fprintf(w, "%d/%d locations reachable, goal complete: %t\n",
				len(report.Reachable), report.Total, report.Complete)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel evaluators")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report")
	return cmd
}
