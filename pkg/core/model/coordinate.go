// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Coordinate represents a geographical location with a latitude and
// longitude in decimal degrees. It is a value type and is embedded in
// the Spot struct, so its fields are flattened when a Spot is encoded.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat" bson:"lat"` // in [-90, 90]
	Lon float64 `json:"lng" yaml:"lng" bson:"lng"` // in [-180, 180]
}

// Errors which may be wrapped by a CoordinateError.
var (
	ErrNonFiniteCoordinate = errors.New("coordinate is not finite")
	ErrLatitudeOutOfRange  = errors.New("latitude is out of [-90, 90]")
	ErrLongitudeOutOfRange = errors.New("longitude is out of [-180, 180]")
)

// CoordinateError indicates an invalid coordinate. It keeps the
// offending coordinate because it is usually found while iterating
// over a catalog, so the caller may not know about it beforehand.
type CoordinateError struct {
	Coordinate Coordinate
	Err        error
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	return fmt.Sprintf(
		"invalid coordinate (%g, %g): %v",
		e.Coordinate.Lat, e.Coordinate.Lon, e.Err,
	)
}

// Unwrap returns the wrapped sentinel error, so errors.Is may be used.
func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// Validate returns nil if c is a finite coordinate with its latitude
// and longitude in their acceptable ranges. Otherwise, a
// *CoordinateError will be returned.
func (c Coordinate) Validate() error {
	var err error
	switch {
	case !finite(c.Lat) || !finite(c.Lon):
		err = ErrNonFiniteCoordinate
	case c.Lat < -90 || c.Lat > 90:
		err = ErrLatitudeOutOfRange
	case c.Lon < -180 || c.Lon > 180:
		err = ErrLongitudeOutOfRange
	default:
		return nil
	}
	return &CoordinateError{Coordinate: c, Err: err}
}

// LogValue implements slog.LogValuer, so a Coordinate may be logged as
// a group of lat and lng attributes.
func (c Coordinate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat", c.Lat),
		slog.Float64("lng", c.Lon),
	)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
