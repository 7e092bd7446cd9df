// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts a PostgreSQL connections pool, managed by
// GORM with the pgx driver, to the repo.Pool, repo.Conn, and repo.Tx
// interfaces. Repository packages (such as the spotsrp) may use the
// embedded *gorm.DB in order to run their queries.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/momeni/jamon-locator/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SlowThreshold is the minimum duration of a query which causes it to
// be logged as a slow query.
const SlowThreshold = 200 * time.Millisecond

// Pool is a connections pool, implementing the repo.Pool interface.
// It is safe to be used concurrently.
type Pool struct {
	*gorm.DB
}

// NewPool connects to the url PostgreSQL database and tests the
// connection before returning the pool. GORM logs are written to the
// default slog logger at the warning level.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             SlowThreshold,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
				// Set to false in order to log with replaced vars
				ParameterizedQueries: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

type ConnHandler = repo.ConnHandler

// NoOpConnHandler acquires a connection and releases it immediately,
// so it may be used for checking the database availability.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn acquires a connection from the pool and passes it to the f
// handler. The connection is released when f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
