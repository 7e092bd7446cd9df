// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/jamon-locator/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCoordinateValidate(t *testing.T) {
	for _, c := range []model.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
		{Lat: 33.5017, Lon: -117.6625},
	} {
		assert.NoError(t, c.Validate(), "coordinate: %v", c)
	}
	for _, tc := range []struct {
		c        model.Coordinate
		expected error
	}{
		{model.Coordinate{Lat: 90.0001}, model.ErrLatitudeOutOfRange},
		{model.Coordinate{Lat: -91}, model.ErrLatitudeOutOfRange},
		{model.Coordinate{Lon: 180.5}, model.ErrLongitudeOutOfRange},
		{model.Coordinate{Lat: math.NaN()}, model.ErrNonFiniteCoordinate},
		{model.Coordinate{Lon: math.Inf(-1)}, model.ErrNonFiniteCoordinate},
	} {
		err := tc.c.Validate()
		assert.ErrorIs(t, err, tc.expected)
		var ce *model.CoordinateError
		if assert.ErrorAs(t, err, &ce) {
			assert.Equal(t, fmt.Sprint(tc.c), fmt.Sprint(ce.Coordinate))
		}
	}
}

func TestScoreValidate(t *testing.T) {
	for s := model.MinScore; s <= model.MaxScore; s++ {
		assert.NoError(t, s.Validate())
	}
	err := model.Score(6).Validate()
	assert.Equal(t, model.ScoreError(6), err)
	assert.EqualError(t, err, "score 6 is out of [1, 5]")
	assert.Error(t, model.Score(0).Validate())
}

func validSpot() model.Spot {
	return model.Spot{
		ID:         "15",
		Name:       "El Adobe de Capistrano",
		Coordinate: model.Coordinate{Lat: 33.5017, Lon: -117.6621},
		Rating:     4.1,
		Reviews:    1654,
		Score:      3,
		Types:      []string{"Jamón Serrano"},
		PriceRange: "$$",
		Address:    "31891 Camino Capistrano, San Juan Capistrano, CA 92675",
		Highlights: []string{"Historic setting", "Mission-era atmosphere"},
		Source:     "Yelp",
	}
}

func TestSpotValidate(t *testing.T) {
	s := validSpot()
	require.NoError(t, s.Validate())

	s.ID = ""
	assert.ErrorIs(t, s.Validate(), model.ErrEmptySpotID)

	s = validSpot()
	s.Lat = 95
	assert.ErrorIs(t, s.Validate(), model.ErrLatitudeOutOfRange)

	s = validSpot()
	s.Score = 9
	var se model.ScoreError
	assert.ErrorAs(t, s.Validate(), &se)

	s = validSpot()
	s.Name, s.Address, s.Types, s.Highlights = "", "", nil, nil
	assert.NoError(t, s.Validate(), "descriptive fields are optional")
}

func TestSpotClone(t *testing.T) {
	s := validSpot()
	c := s.Clone()
	assert.Equal(t, s, c)
	c.Types[0] = "Jamón Ibérico"
	c.Highlights = append(c.Highlights[:1], "x")
	assert.Equal(t, "Jamón Serrano", s.Types[0])
	assert.Equal(t, "Mission-era atmosphere", s.Highlights[1])
}

func TestRankedSpotJSON(t *testing.T) {
	rs := model.RankedSpot{Spot: validSpot(), Distance: 0.0231}
	b, err := json.Marshal(rs)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "15", m["id"])
	assert.Equal(t, 33.5017, m["lat"])
	assert.Equal(t, -117.6621, m["lng"])
	assert.Equal(t, 3.0, m["jamonScore"])
	assert.Equal(t, "$$", m["priceRange"])
	assert.Equal(t, 0.0231, m["distance"])
	assert.NotContains(t, m, "Coordinate")
}

func TestSpotYAML(t *testing.T) {
	var s model.Spot
	err := yaml.Unmarshal([]byte(`
id: "7"
name: Taberna Arros Y Vi
lat: 34.0417
lng: -118.5139
jamon-score: 5
jamon-types: [Jamón Ibérico]
`), &s)
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 34.0417, Lon: -118.5139}, s.Coordinate)
	assert.Equal(t, model.Score(5), s.Score)
	assert.Equal(t, []string{"Jamón Ibérico"}, s.Types)
}

func ExampleSpot_DirectionsURL() {
	s := model.Spot{
		ID:         "1",
		Coordinate: model.Coordinate{Lat: 33.6846, Lon: -117.8262},
	}
	fmt.Println(s.DirectionsURL())
	// Output: https://www.google.com/maps/dir/?api=1&destination=33.6846%2C-117.8262
}
