package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/goose-world/internal/world"
)

type idMaps struct {
	Tokens    map[world.TokenName]int64    `json:"tokens"`
	Locations map[world.LocationName]int64 `json:"locations"`
}

func (a *app) idsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids",
		Short: "Print every token and location id as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := world.TokenCatalogue()
			if err != nil {
				return err
			}
			locations, err := world.LocationCatalogue()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(idMaps{
				Tokens:    tokens.NameToID(),
				Locations: locations.AllIDs(),
			})
		},
	}
}
