// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/usecase/spotsuc"
	"github.com/spf13/cobra"
)

var nearbyFlags struct {
	lat, lng, radius float64
	unit             string
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Search for the jamón spots around a center",
	Long: `Search for the jamón spots around a center and print the
ranked result as JSON, exactly like the REST API does. Missing flags
take their default values from the configuration file. The catalog
provider is also selected by the configuration file.`,
	RunE: nearby,
	Args: cobra.NoArgs,
}

func nearby(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, closeCatalog, err := c.Catalog.Provider(ctx)
	if err != nil {
		return fmt.Errorf("creating %s catalog provider: %w", c.Catalog.Source, err)
	}
	defer closeCatalog()
	spots, err := c.Usecases.Spots.NewUseCase(catalog)
	if err != nil {
		return fmt.Errorf("creating spots use case: %w", err)
	}
	q := spotsuc.Query{}
	flags := cmd.Flags()
	if flags.Changed("lat") || flags.Changed("lng") {
		center := spots.DefaultCenter()
		if flags.Changed("lat") {
			center.Lat = nearbyFlags.lat
		}
		if flags.Changed("lng") {
			center.Lon = nearbyFlags.lng
		}
		q.Center = &center
	}
	if flags.Changed("radius") {
		q.Radius = &nearbyFlags.radius
	}
	if nearbyFlags.unit != "" {
		u, err := geo.ParseUnit(nearbyFlags.unit)
		if err != nil {
			return err
		}
		q.Unit = u
	}
	res, err := spots.Nearby(ctx, q)
	if err != nil {
		return fmt.Errorf("searching nearby spots: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func init() {
	flags := nearbyCmd.Flags()
	flags.Float64Var(&nearbyFlags.lat, "lat", 0, "latitude of the search center")
	flags.Float64Var(&nearbyFlags.lng, "lng", 0, "longitude of the search center")
	flags.Float64Var(&nearbyFlags.radius, "radius", 0, "search radius")
	flags.StringVar(&nearbyFlags.unit, "unit", "", "unit of the radius, mi or km")
	rootCmd.AddCommand(nearbyCmd)
}
