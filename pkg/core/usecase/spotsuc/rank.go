// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"cmp"
	"slices"

	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/model"
)

// Rank computes the distance of every catalog spot from the center
// coordinate (in the u unit), keeps those spots which are at most
// radius far from the center, and orders them by their score
// (descending) and then by their distance (ascending).
// Spots with equal scores and distances keep their catalog order.
//
// The catalog is not modified and the returned slice shares no memory
// with it. An empty (but non-nil) slice is returned when no spot
// matches. A negative or NaN radius matches nothing. The zero unit
// is taken as geo.DefaultUnit, while other unsupported units match
// nothing.
// Rank is a pure function and may be called concurrently.
func Rank(
	catalog []model.Spot,
	center model.Coordinate,
	radius float64,
	u geo.Unit,
) []model.RankedSpot {
	if u == "" {
		u = geo.DefaultUnit
	}
	if u.Validate() != nil {
		return []model.RankedSpot{}
	}
	ranked := make([]model.RankedSpot, 0, len(catalog))
	for i := range catalog {
		d := u.Distance(center, catalog[i].Coordinate)
		if d <= radius {
			ranked = append(ranked, model.RankedSpot{
				Spot:     catalog[i].Clone(),
				Distance: d,
			})
		}
	}
	slices.SortStableFunc(ranked, compareRanked)
	return ranked
}

func compareRanked(a, b model.RankedSpot) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Distance, b.Distance)
}
