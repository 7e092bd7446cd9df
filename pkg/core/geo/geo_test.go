// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package geo_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomCoordinate(r *rand.Rand) model.Coordinate {
	return model.Coordinate{
		Lat: r.Float64()*180 - 90,
		Lon: r.Float64()*360 - 180,
	}
}

func TestSelfDistanceIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	points := []model.Coordinate{
		{}, {Lat: 90, Lon: 180}, {Lat: -90, Lon: -180},
		{Lat: 33.5017, Lon: -117.6625},
	}
	for i := 0; i < 200; i++ {
		points = append(points, randomCoordinate(r))
	}
	for _, p := range points {
		assert.Zero(t, geo.Distance(p, p), "point=%v", p)
		assert.Zero(t, geo.Kilometers.Distance(p, p), "point=%v", p)
	}
}

func TestSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		a, b := randomCoordinate(r), randomCoordinate(r)
		ab, ba := geo.Distance(a, b), geo.Distance(b, a)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.InEpsilon(t, ab, ba, 1e-9, "a=%v b=%v", a, b)
	}
}

func TestKnownDistances(t *testing.T) {
	// one degree of latitude along a meridian is R*pi/180
	a := model.Coordinate{Lat: 10, Lon: 20}
	b := model.Coordinate{Lat: 11, Lon: 20}
	assert.InDelta(t, geo.EarthRadiusMiles*math.Pi/180,
		geo.Distance(a, b), 1e-9)
	assert.InDelta(t, geo.EarthRadiusKilometers*math.Pi/180,
		geo.Kilometers.Distance(a, b), 1e-9)

	// antipodal points are half of the circumference apart
	n := model.Coordinate{Lat: 90}
	s := model.Coordinate{Lat: -90}
	assert.InDelta(t, geo.EarthRadiusMiles*math.Pi,
		geo.Distance(n, s), 1e-6)

	// Costa Mesa to San Juan Capistrano, roughly 16 miles
	cm := model.Coordinate{Lat: 33.6846, Lon: -117.8262}
	sjc := model.Coordinate{Lat: 33.5017, Lon: -117.6625}
	d := geo.Distance(cm, sjc)
	assert.Greater(t, d, 15.0)
	assert.Less(t, d, 20.0)
}

func TestParseUnit(t *testing.T) {
	for s, expected := range map[string]geo.Unit{
		"mi": geo.Miles, "Miles": geo.Miles, " mile ": geo.Miles,
		"km": geo.Kilometers, "KILOMETERS": geo.Kilometers,
	} {
		u, err := geo.ParseUnit(s)
		require.NoError(t, err, "s=%q", s)
		assert.Equal(t, expected, u, "s=%q", s)
	}
	_, err := geo.ParseUnit("furlong")
	assert.ErrorIs(t, err, geo.ErrUnknownUnit)
	assert.ErrorIs(t, geo.Unit("nm").Validate(), geo.ErrUnknownUnit)
	assert.NoError(t, geo.DefaultUnit.Validate())
	assert.Panics(t, func() { geo.Unit("nm").EarthRadius() })
	assert.Equal(t, geo.EarthRadiusMiles, geo.Unit("").EarthRadius())
	a, b := model.Coordinate{Lat: 1, Lon: 2}, model.Coordinate{Lat: 3, Lon: 4}
	assert.Equal(t, geo.Distance(a, b), geo.Unit("").Distance(a, b))
}

func ExampleDistance() {
	sevilla := model.Coordinate{Lat: 32.7157, Lon: -117.1611}
	barrio := model.Coordinate{Lat: 32.7503, Lon: -117.1303}
	fmt.Printf("%.2f %s\n", geo.Distance(sevilla, barrio), geo.Miles)
	// Output:
	// 2.99 mi
}
