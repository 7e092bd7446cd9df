package spotsrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/jamon-locator/pkg/adapter/db/postgres"
	"github.com/momeni/jamon-locator/pkg/core/model"
)

type gSpot struct {
	ID         string           `gorm:"primaryKey;column:id"`
	Position   int              `gorm:"not null;index"`
	Name       string           `gorm:"not null"`
	Coordinate model.Coordinate `gorm:"embedded"`
	Rating     float64
	Reviews    int
	JamonScore int        `gorm:"not null"`
	JamonTypes stringList `gorm:"type:text"`
	PriceRange string
	Address    string
	Highlights stringList `gorm:"type:text"`
	Source     string
}

func (gs *gSpot) TableName() string {
	return "spots"
}

func newGSpot(pos int, s *model.Spot) gSpot {
	return gSpot{
		ID:         s.ID,
		Position:   pos,
		Name:       s.Name,
		Coordinate: s.Coordinate,
		Rating:     s.Rating,
		Reviews:    s.Reviews,
		JamonScore: int(s.Score),
		JamonTypes: stringList(s.Types),
		PriceRange: s.PriceRange,
		Address:    s.Address,
		Highlights: stringList(s.Highlights),
		Source:     s.Source,
	}
}

func (gs *gSpot) Model() model.Spot {
	return model.Spot{
		ID:         gs.ID,
		Name:       gs.Name,
		Coordinate: gs.Coordinate,
		Rating:     gs.Rating,
		Reviews:    gs.Reviews,
		Score:      model.Score(gs.JamonScore),
		Types:      []string(gs.JamonTypes),
		PriceRange: gs.PriceRange,
		Address:    gs.Address,
		Highlights: []string(gs.Highlights),
		Source:     gs.Source,
	}
}

// Migrate creates or updates the spots table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	if err := q.GORM(ctx).AutoMigrate(&gSpot{}); err != nil {
		return fmt.Errorf("auto-migrating spots table: %w", err)
	}
	return nil
}

// undefinedTable is the SQLSTATE of a missing relation.
const undefinedTable = "42P01"

// isMissingTable reports whether err was caused by querying the spots
// table before it was created by Migrate.
func isMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == undefinedTable
}

// Catalog fetches all spots, in their stored order. A database which
// has no spots table yet holds an empty catalog.
func Catalog[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Spot, error) {
	var gs []gSpot
	err := q.GORM(ctx).Order("position").Order("id").Find(&gs).Error
	if isMissingTable(err) {
		return []model.Spot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	spots := make([]model.Spot, 0, len(gs))
	for i := range gs {
		spots = append(spots, gs[i].Model())
	}
	return spots, nil
}

// Count returns the number of stored spots, i.e., zero when the
// spots table is not created yet.
func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	rows, err := q.Query(ctx, "SELECT count(*) FROM spots")
	if isMissingTable(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	var n int64
	if rows.Next() {
		if err = rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("scan: %w", err)
		}
	}
	return n, rows.Err()
}

// Replace deletes all stored spots and inserts the given spots, in
// their given order. It should be called within a transaction.
func Replace(ctx context.Context, tx *postgres.Tx, spots []model.Spot) error {
	if err := Migrate(ctx, tx); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, "DELETE FROM spots"); err != nil {
		return fmt.Errorf("deleting spots: %w", err)
	}
	if len(spots) == 0 {
		return nil
	}
	gs := make([]gSpot, 0, len(spots))
	for i := range spots {
		gs = append(gs, newGSpot(i, &spots[i]))
	}
	if err := tx.GORM(ctx).CreateInBatches(gs, 100).Error; err != nil {
		return fmt.Errorf("inserting spots: %w", err)
	}
	return nil
}
