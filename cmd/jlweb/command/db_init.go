// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/momeni/jamon-locator/pkg/adapter/db/static/spotsrp"
	"github.com/momeni/jamon-locator/pkg/core/log"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/repo"
	"github.com/spf13/cobra"
)

var initFrom string

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Replace the catalog store contents with a seed catalog",
	Long: `Replace the catalog store contents with a seed catalog.
The embedded seed catalog is used by default, while a YAML catalog file
may be given by the --from flag. All spots are validated before the
store is modified. The postgres store is replaced in one transaction
(creating the spots table if it is missing), the redis store is
replaced in one MULTI/EXEC block, and the mongo store is replaced by
deleting and then inserting all documents.`,
	RunE: dbInit,
	Args: cobra.NoArgs,
}

func dbInit(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	var spots []model.Spot
	if initFrom == "" {
		spots, err = spotsrp.Seed()
	} else {
		spots, err = spotsrp.LoadFile(initFrom)
	}
	if err != nil {
		return fmt.Errorf("loading the seed catalog: %w", err)
	}
	catalog, closeCatalog, err := c.Catalog.Provider(ctx)
	if err != nil {
		return fmt.Errorf("creating %s catalog provider: %w", c.Catalog.Source, err)
	}
	defer closeCatalog()
	r, ok := catalog.(repo.SpotsReplacer)
	if !ok {
		return fmt.Errorf("the %s catalog source is read-only", c.Catalog.Source)
	}
	if err = r.Replace(ctx, spots); err != nil {
		return fmt.Errorf("replacing %s catalog: %w", c.Catalog.Source, err)
	}
	attrs := []slog.Attr{
		slog.String("source", c.Catalog.Source),
		slog.Int("spots", len(spots)),
	}
	if sc, ok := catalog.(spotsCounter); ok {
		n, err := sc.Count(ctx)
		if err != nil {
			return fmt.Errorf("counting %s catalog: %w", c.Catalog.Source, err)
		}
		attrs = append(attrs, slog.Int64("stored", n))
	}
	log.Info(ctx, "catalog is initialized", attrs...)
	return nil
}

// spotsCounter is implemented by stores which can report their size
// without loading the whole catalog.
type spotsCounter interface {
	Count(ctx context.Context) (int64, error)
}

func init() {
	dbInitCmd.Flags().StringVar(
		&initFrom, "from", "", "YAML catalog file (default: embedded seed)",
	)
	dbCmd.AddCommand(dbInitCmd)
}
