// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsuc contains the spots UseCase which supports the
// spots related use cases. Currently, two use cases are supported:
//  1. Searching for spots near a coordinate, ranked by their score,
//  2. Fetching a single spot by its identity.
//
// The catalog is obtained from a repo.Spots provider on every request
// and is never cached or modified by this package.
package spotsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/momeni/jamon-locator/pkg/core/cerr"
	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/log"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/momeni/jamon-locator/pkg/core/repo"
)

// Defaults which are used when their corresponding options are not
// passed to the New function. The default center is in San Juan
// Capistrano, CA. DefaultRadius is expressed in the DefaultUnit.
var (
	DefaultCenter = model.Coordinate{Lat: 33.5017, Lon: -117.6625}
	DefaultRadius = 50.0
)

// Errors which may be wrapped by the Nearby and Spot use cases.
// They are wrapped by a *cerr.Error too, so the adapter layer can
// find their expected HTTP status code.
var (
	ErrCatalogUnavailable = errors.New("spots catalog is unavailable")
	ErrSpotNotFound       = errors.New("spot not found")
	ErrInvalidRadius      = errors.New("radius must be a non-negative number")
	ErrRadiusTooLarge     = errors.New("radius is too large")
	ErrUnitMismatch       = errors.New("mismatching distance unit")
)

// UseCase represents a spots use case. It holds the catalog provider
// and the spots use case specific settings. A UseCase is immutable
// after creation and may be used by concurrent requests.
type UseCase struct {
	catalog repo.Spots

	unit          geo.Unit
	defaultCenter *model.Coordinate
	defaultRadius float64
	maxRadius     float64
}

// Query describes a nearby search. A nil Center or Radius is replaced
// by its configured default value. An empty Unit means that Radius is
// expressed in the unit of the use case; otherwise, it must match that
// unit.
type Query struct {
	Center *model.Coordinate
	Radius *float64
	Unit   geo.Unit
}

// Result is the outcome of a nearby search. It contains the ranked
// spots and the resolved search parameters.
type Result struct {
	Spots        []model.RankedSpot `json:"spots"`
	Count        int                `json:"count"`
	SearchCenter model.Coordinate   `json:"searchCenter"`
	Radius       float64            `json:"radius"`
	Unit         geo.Unit           `json:"unit"`
}

// New instantiates a spots use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(s repo.Spots, opts ...Option) (*UseCase, error) {
	if s == nil {
		return nil, errors.New("spots catalog provider is nil")
	}
	uc := &UseCase{catalog: s}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.unit == "" {
		uc.unit = geo.DefaultUnit
	}
	if uc.defaultCenter == nil {
		c := DefaultCenter
		uc.defaultCenter = &c
	}
	if uc.defaultRadius == 0 {
		uc.defaultRadius = DefaultRadius
	}
	if uc.maxRadius == 0 {
		// half of the circumference covers the whole globe
		uc.maxRadius = math.Pi * uc.unit.EarthRadius()
	}
	if uc.defaultRadius > uc.maxRadius {
		return nil, fmt.Errorf(
			"default radius (%g) exceeds the max radius (%g)",
			uc.defaultRadius, uc.maxRadius,
		)
	}
	return uc, nil
}

// Unit returns the distance unit of radius and distance values.
func (spots *UseCase) Unit() geo.Unit {
	return spots.unit
}

// DefaultCenter returns the center which is searched around when a
// query has no center.
func (spots *UseCase) DefaultCenter() model.Coordinate {
	return *spots.defaultCenter
}

// Nearby use case resolves the q query parameters, fetches the full
// catalog, and ranks its spots which are within the resolved radius
// of the resolved center. Invalid query parameters cause a bad request
// error, while a catalog provider failure causes an unavailable error
// (wrapping ErrCatalogUnavailable). Finding no spot is not an error.
func (spots *UseCase) Nearby(ctx context.Context, q Query) (*Result, error) {
	center, radius, err := spots.resolve(q)
	if err != nil {
		return nil, cerr.BadRequest(err)
	}
	catalog, err := spots.load(ctx)
	if err != nil {
		return nil, err
	}
	ranked := Rank(catalog, center, radius, spots.unit)
	log.Debug(
		ctx, "ranked nearby spots",
		log.Coordinate("center", center),
		slog.Float64("radius", radius),
		slog.Int("catalog", len(catalog)),
		slog.Int("count", len(ranked)),
	)
	return &Result{
		Spots:        ranked,
		Count:        len(ranked),
		SearchCenter: center,
		Radius:       radius,
		Unit:         spots.unit,
	}, nil
}

// Spot use case finds the spot with the given sid identity in the
// catalog. A not found error (wrapping ErrSpotNotFound) is returned
// if there is no such spot.
func (spots *UseCase) Spot(ctx context.Context, sid string) (*model.Spot, error) {
	catalog, err := spots.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range catalog {
		if catalog[i].ID == sid {
			s := catalog[i].Clone()
			return &s, nil
		}
	}
	return nil, cerr.NotFound(fmt.Errorf("%w: %q", ErrSpotNotFound, sid))
}

func (spots *UseCase) resolve(q Query) (model.Coordinate, float64, error) {
	center := *spots.defaultCenter
	if q.Center != nil {
		center = *q.Center
	}
	if err := center.Validate(); err != nil {
		return center, 0, fmt.Errorf("center: %w", err)
	}
	if q.Unit != "" && q.Unit != spots.unit {
		return center, 0, fmt.Errorf(
			"%w: radius must be expressed in %s, not %s",
			ErrUnitMismatch, spots.unit, q.Unit,
		)
	}
	radius := spots.defaultRadius
	if q.Radius != nil {
		radius = *q.Radius
	}
	switch {
	case math.IsNaN(radius) || radius < 0:
		return center, 0, ErrInvalidRadius
	case radius > spots.maxRadius:
		return center, 0, fmt.Errorf(
			"%w: %g exceeds %g %s",
			ErrRadiusTooLarge, radius, spots.maxRadius, spots.unit,
		)
	}
	return center, radius, nil
}

func (spots *UseCase) load(ctx context.Context) ([]model.Spot, error) {
	catalog, err := spots.catalog.Catalog(ctx)
	if err != nil {
		log.Error(
			ctx, "failed to load spots catalog", log.Err("err", err),
		)
		return nil, cerr.Unavailable(
			fmt.Errorf("%w: %w", ErrCatalogUnavailable, err),
		)
	}
	return catalog, nil
}
