package postgres

import (
	"database/sql"
)

type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	if ra.Rows == nil {
		return
	}
	// returned error may be checked by calling the Err() method
	_ = ra.Rows.Close()
}
