// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo contains the interfaces which must be implemented by the
// repository packages in the adapter layer. Use cases depend on these
// interfaces alone, so the catalog data source may be replaced without
// changing the core layer.
package repo

import (
	"context"

	"github.com/momeni/jamon-locator/pkg/core/model"
)

// Spots is the catalog provider. It returns the full current catalog
// as a sequence of spots. The returned slice must be treated as
// read-only by callers. Subsets and pagination are never requested.
// Implementations must be safe for concurrent use.
type Spots interface {
	Catalog(ctx context.Context) ([]model.Spot, error)
}

// SpotsReplacer is implemented by the writable catalog data sources.
// Replace drops the current catalog and stores the given spots in
// their given order, atomically if the data source supports it.
// It is only used by the administrative commands; the ranking use
// cases never mutate a catalog.
type SpotsReplacer interface {
	Replace(ctx context.Context, spots []model.Spot) error
}
