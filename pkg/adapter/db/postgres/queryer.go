package postgres

import (
	"context"

	"github.com/momeni/jamon-locator/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer is the type constraint of the repository functions which
// may run either on a connection or within a transaction.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer
	GORM(ctx context.Context) *gorm.DB
}
