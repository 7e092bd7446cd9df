// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrp provides a MongoDB backed spots catalog.
// Each spot is stored as a document, keyed by its identity, with an
// extra position field which keeps the catalog order.
package spotsrp

import (
	"context"
	"fmt"

	"github.com/momeni/jamon-locator/pkg/core/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default database and collection names.
const (
	DefaultDatabase   = "jlweb"
	DefaultCollection = "spots"
)

type mSpot struct {
	model.Spot `bson:",inline"`
	Position   int `bson:"position"`
}

// Repo implements the repo.Spots and repo.SpotsReplacer interfaces.
type Repo struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Repo {
	return &Repo{coll: coll}
}

// Connect connects to the uri MongoDB deployment and pings it.
// Caller should disconnect the returned client when it is done.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

func (r *Repo) Catalog(ctx context.Context) ([]model.Spot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding spots: %w", err)
	}
	var docs []mSpot
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding spots: %w", err)
	}
	spots := make([]model.Spot, 0, len(docs))
	for i := range docs {
		spots = append(spots, docs[i].Spot)
	}
	return spots, nil
}

// Replace deletes all spots and inserts the given spots in order.
// It is not atomic, so readers may observe an empty or partially
// inserted catalog during a replacement.
func (r *Repo) Replace(ctx context.Context, spots []model.Spot) error {
	if _, err := r.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("deleting spots: %w", err)
	}
	if len(spots) == 0 {
		return nil
	}
	docs := make([]any, 0, len(spots))
	for i := range spots {
		docs = append(docs, mSpot{Spot: spots[i], Position: i})
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("inserting spots: %w", err)
	}
	return nil
}
