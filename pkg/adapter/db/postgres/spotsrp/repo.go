// Package spotsrp provides a PostgreSQL backed spots catalog.
// The spots are stored in the spots table, ordered by their position
// column, while their list attributes are kept as JSON arrays.
package spotsrp

import (
	"context"
	"fmt"

	"github.com/momeni/jamon-locator/pkg/adapter/db/postgres"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/repo"
)

// Repo implements the repo.Spots and repo.SpotsReplacer interfaces.
type Repo struct {
	pool repo.Pool
}

func New(pool repo.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) Catalog(ctx context.Context) (spots []model.Spot, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		spots, err = Catalog(ctx, c.(*postgres.Conn))
		return err
	})
	return
}

func (r *Repo) Replace(ctx context.Context, spots []model.Spot) error {
	return r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return Replace(ctx, tx.(*postgres.Tx), spots)
		})
	})
}

// Count returns the number of stored spots.
func (r *Repo) Count(ctx context.Context) (n int64, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		n, err = Count(ctx, c.(*postgres.Conn))
		if err != nil {
			return fmt.Errorf("counting spots: %w", err)
		}
		return nil
	})
	return
}
