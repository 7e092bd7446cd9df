// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package postgres

import (
	"context"

	"github.com/momeni/jamon-locator/pkg/core/repo"
	"gorm.io/gorm"
)

// Tx is an ongoing transaction which is passed to the TxHandler
// of Conn.Tx. A catalog replacement deletes and inserts all spots
// in one Tx, so readers never observe a half-written catalog.
// Tx is unsafe to be used concurrently.
type Tx struct {
	*gorm.DB
}

// Exec runs sql with args and returns the number of affected rows.
// Placeholders may be given as $1, ? or @name.
func (tx *Tx) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	return exec(tx.DB.WithContext(ctx), sql, args...)
}

// Query runs a single sql statement with args. Another statement may
// not be issued on tx until the returned Rows is closed.
func (tx *Tx) Query(ctx context.Context, sql string, args ...any) (repo.Rows, error) {
	return query(tx.DB.WithContext(ctx), sql, args...)
}

// IsTx method prevents a non-Tx object (such as a Conn) to
// mistakenly implement the Tx interface.
func (tx *Tx) IsTx() {
}

// GORM returns the embedded *gorm.DB in a session bound to ctx.
func (tx *Tx) GORM(ctx context.Context) *gorm.DB {
	return tx.DB.WithContext(ctx)
}

func exec(db *gorm.DB, sql string, args ...any) (int64, error) {
	db = db.Exec(sql, args...)
	if err := db.Error; err != nil {
		return 0, err
	}
	return db.RowsAffected, nil
}

func query(db *gorm.DB, sql string, args ...any) (repo.Rows, error) {
	rows, err := db.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	return rowsAdapter{rows}, nil
}
