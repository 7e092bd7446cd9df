// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "fmt"

// Score is the quality signal of a Spot, i.e., how good its jamón is.
// It is the primary ranking key and higher scores are ranked first.
type Score int

// Acceptable range of Score values (both inclusive).
const (
	MinScore Score = 1
	MaxScore Score = 5
)

// ScoreError indicates a score which is out of the [MinScore, MaxScore]
// range. It contains the invalid score as an integer.
type ScoreError int

// Error implements the error interface, returning a string
// representation of the ScoreError.
func (e ScoreError) Error() string {
	return fmt.Sprintf(
		"score %d is out of [%d, %d]", int(e), MinScore, MaxScore,
	)
}

// Validate returns nil if Score value is valid. For invalid values, an
// instance of the ScoreError will be returned.
func (s Score) Validate() error {
	if s < MinScore || s > MaxScore {
		return ScoreError(s)
	}
	return nil
}
