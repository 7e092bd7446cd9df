// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"errors"
	"fmt"
	"math"

	"github.com/momeni/jamon-locator/pkg/core/geo"
	"github.com/momeni/jamon-locator/pkg/core/model"
)

// Option is a functional option for the spots use case.
type Option func(uc *UseCase) error

// WithDefaultCenter option configures a spots UseCase instance in
// order to search around the c coordinate when a query has no center.
// This option may be passed to the New() function.
func WithDefaultCenter(c model.Coordinate) Option {
	return func(uc *UseCase) error {
		if err := c.Validate(); err != nil {
			return err
		}
		if uc.defaultCenter != nil {
			return errors.New("default center is already configured")
		}
		uc.defaultCenter = &c
		return nil
	}
}

// WithDefaultRadius option configures a spots UseCase instance in
// order to use r as the search radius when a query has no radius.
// The r radius is expressed in the unit of the use case.
func WithDefaultRadius(r float64) Option {
	return func(uc *UseCase) error {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("radius (%g) is not a positive number", r)
		}
		if uc.defaultRadius != 0 {
			return errors.New("default radius is already configured")
		}
		uc.defaultRadius = r
		return nil
	}
}

// WithMaxRadius option configures the inclusive upper bound of the
// acceptable search radius values. It must not be smaller than the
// default radius.
func WithMaxRadius(r float64) Option {
	return func(uc *UseCase) error {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("radius (%g) is not a positive number", r)
		}
		if uc.maxRadius != 0 {
			return errors.New("max radius is already configured")
		}
		uc.maxRadius = r
		return nil
	}
}

// WithUnit option configures the distance unit of a spots UseCase.
// Radius values (including the default and max radius) and computed
// distances are expressed in this unit.
func WithUnit(u geo.Unit) Option {
	return func(uc *UseCase) error {
		if err := u.Validate(); err != nil {
			return err
		}
		if uc.unit != "" {
			return errors.New("unit is already configured")
		}
		uc.unit = u
		return nil
	}
}
