// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package geo computes great-circle distances between coordinates
// using the haversine formula. It also defines the distance units.
// A distance is always compared against a caller supplied radius, so
// both of them must be expressed in the same Unit. Miles is the
// default unit of the whole system.
package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/momeni/jamon-locator/pkg/core/model"
)

// Unit is a distance unit. Its string value is the unit symbol which
// is accepted in requests and echoed in responses.
type Unit string

// Supported distance units.
const (
	Miles      Unit = "mi"
	Kilometers Unit = "km"

	DefaultUnit = Miles
)

// Mean radius of the Earth in each supported unit.
const (
	EarthRadiusMiles      = 3959.0
	EarthRadiusKilometers = 6371.0
)

// ErrUnknownUnit indicates a string which is not a known unit name.
var ErrUnknownUnit = fmt.Errorf(
	"unknown distance unit (expected %s or %s)", Miles, Kilometers,
)

// ParseUnit parses a case-insensitive unit symbol or name.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mi", "mile", "miles":
		return Miles, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	default:
		return "", ErrUnknownUnit
	}
}

// Validate returns nil if u is a supported unit.
func (u Unit) Validate() error {
	switch u {
	case Miles, Kilometers:
		return nil
	default:
		return fmt.Errorf("%q: %w", string(u), ErrUnknownUnit)
	}
}

// EarthRadius returns the mean radius of the Earth in the u unit.
// The zero Unit stands for DefaultUnit. Other unsupported units cause
// a panic, so u should be validated first.
func (u Unit) EarthRadius() float64 {
	switch u {
	case Miles, "":
		return EarthRadiusMiles
	case Kilometers:
		return EarthRadiusKilometers
	default:
		panic(fmt.Sprintf("unsupported distance unit: %q", string(u)))
	}
}

// Distance returns the great-circle distance between a and b in the u
// unit. Result is non-negative, symmetric in its arguments, and zero
// when a equals b. Inputs must be finite; there is no range check.
func (u Unit) Distance(a, b model.Coordinate) float64 {
	return u.EarthRadius() * centralAngle(a, b)
}

// Distance returns the great-circle distance between a and b in miles.
func Distance(a, b model.Coordinate) float64 {
	return Miles.Distance(a, b)
}

// centralAngle returns the angle (in radians) between a and b as seen
// from the center of a spherical Earth.
func centralAngle(a, b model.Coordinate) float64 {
	lat1, lat2 := radians(a.Lat), radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)
	sLat, sLon := math.Sin(dLat/2), math.Sin(dLon/2)
	h := sLat*sLat + math.Cos(lat1)*math.Cos(lat2)*sLon*sLon
	h = math.Min(1, math.Max(0, h)) // rounding may leave [0, 1]
	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
