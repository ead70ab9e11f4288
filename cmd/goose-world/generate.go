package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/goose-world/internal/world"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		seed int64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a world and write its manifest as JSON",
		Long: `Builds the pool for the configured options and writes a JSON manifest
holding the start region, the precollected, progression, locked and
filler tokens, the active locations and the slot data.

Without --seed (or GOOSE_WORLD_SEED) a seed is taken from the clock and logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = a.settings.Seed
				if seed == 0 {
					seed = time.Now().UnixNano()
					a.logger.Info("no seed given", zap.Int64("seed", seed))
				}
			}
			if !cmd.Flags().Changed("output") {
				out = a.settings.Output
			}

			opts, err := a.options()
			if err != nil {
				return err
			}
			w, err := world.Generate(opts, seed, a.logger)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(w.Manifest(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode manifest: %w", err)
			}

			dst, closeFn, err := output(cmd, out)
			if err != nil {
				return err
			}
			if _, err := dst.Write(append(data, '\n')); err != nil {
				_ = closeFn()
				return fmt.Errorf("write manifest: %w", err)
			}
			return closeFn()
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "generation seed")
	cmd.Flags().StringVarP(&out, "output", "o", "-", "manifest path, - for stdout")
	return cmd
}
