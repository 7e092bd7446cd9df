// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
)

// DirectionsBaseURL is the maps endpoint which is used by the
// Spot.DirectionsURL method.
const DirectionsBaseURL = "https://www.google.com/maps/dir/"

// ErrEmptySpotID indicates that a Spot has no identity.
var ErrEmptySpotID = errors.New("spot id is empty")

// Spot models a catalog entry, a place which serves jamón.
// Only the ID, Coordinate, and Score fields are used for searching and
// ranking. Other fields are descriptive attributes which are carried
// through unchanged and are never interpreted by the use cases.
type Spot struct {
	ID         string `json:"id" yaml:"id" bson:"_id"`
	Name       string `json:"name" yaml:"name" bson:"name"`
	Coordinate `yaml:",inline" bson:",inline"`
	Rating     float64  `json:"rating" yaml:"rating" bson:"rating"`
	Reviews    int      `json:"reviews" yaml:"reviews" bson:"reviews"`
	Score      Score    `json:"jamonScore" yaml:"jamon-score" bson:"jamon_score"`
	Types      []string `json:"jamonTypes" yaml:"jamon-types" bson:"jamon_types"`
	PriceRange string   `json:"priceRange" yaml:"price-range" bson:"price_range"`
	Address    string   `json:"address" yaml:"address" bson:"address"`
	Highlights []string `json:"highlights" yaml:"highlights" bson:"highlights"`
	Source     string   `json:"source" yaml:"source" bson:"source"`
}

// Validate checks the fields which are used by the ranking use case,
// i.e., ID, Coordinate, and Score. Descriptive attributes are not
// checked.
func (s *Spot) Validate() error {
	if s.ID == "" {
		return ErrEmptySpotID
	}
	if err := s.Coordinate.Validate(); err != nil {
		return fmt.Errorf("spot %q: %w", s.ID, err)
	}
	if err := s.Score.Validate(); err != nil {
		return fmt.Errorf("spot %q: %w", s.ID, err)
	}
	return nil
}

// Clone returns a deep copy of s, so the returned Spot shares no
// slices with s.
func (s Spot) Clone() Spot {
	s.Types = slices.Clone(s.Types)
	s.Highlights = slices.Clone(s.Highlights)
	return s
}

// DirectionsURL returns a link which opens driving directions towards
// the s spot in the maps web application.
func (s *Spot) DirectionsURL() string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination",
		strconv.FormatFloat(s.Lat, 'f', -1, 64)+","+
			strconv.FormatFloat(s.Lon, 'f', -1, 64),
	)
	return DirectionsBaseURL + "?" + q.Encode()
}

// RankedSpot is a Spot which is augmented with its distance from the
// center of a search. Distance is expressed in the same unit as the
// search radius. RankedSpot instances are computed per query and are
// never stored.
type RankedSpot struct {
	Spot     `yaml:",inline"`
	Distance float64 `json:"distance" yaml:"distance"`
}
