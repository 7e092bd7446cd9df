// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrp provides a Redis backed spots catalog.
// The catalog is kept as a list of JSON encoded spots, so their
// order is preserved. A missing list is served as an empty catalog.
package spotsrp

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/redis/go-redis/v9"
)

// DefaultKey is the name of the list which keeps the catalog.
const DefaultKey = "jlweb:spots"

// Repo implements the repo.Spots and repo.SpotsReplacer interfaces.
type Repo struct {
	rdb redis.UniversalClient
	key string
}

// New instantiates a Repo which keeps the catalog in the key list.
// If key is empty, DefaultKey will be used.
func New(rdb redis.UniversalClient, key string) *Repo {
	if key == "" {
		key = DefaultKey
	}
	return &Repo{rdb: rdb, key: key}
}

// Dial connects to the addr Redis server and pings it.
func Dial(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis at %q: %w", addr, err)
	}
	return rdb, nil
}

func (r *Repo) Catalog(ctx context.Context) ([]model.Spot, error) {
	items, err := r.rdb.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("LRANGE %s: %w", r.key, err)
	}
	spots := make([]model.Spot, len(items))
	for i, item := range items {
		if err := json.Unmarshal([]byte(item), &spots[i]); err != nil {
			return nil, fmt.Errorf("decoding %s[%d]: %w", r.key, i, err)
		}
	}
	return spots, nil
}

// Replace stores spots as the whole catalog, atomically.
func (r *Repo) Replace(ctx context.Context, spots []model.Spot) error {
	items := make([]any, 0, len(spots))
	for i := range spots {
		b, err := json.Marshal(&spots[i])
		if err != nil {
			return fmt.Errorf("encoding spot %q: %w", spots[i].ID, err)
		}
		items = append(items, string(b))
	}
	_, err := r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key)
		if len(items) > 0 {
			pipe.RPush(ctx, r.key, items...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replacing %s: %w", r.key, err)
	}
	return nil
}
