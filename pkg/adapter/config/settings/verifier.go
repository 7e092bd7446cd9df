// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// Bound is an inclusive limit of a setting. Name is empty for
// literal limits and holds the limiting setting name otherwise,
// e.g., max-radius limits default-radius.
type Bound[T cmp.Ordered] struct {
	Name  string
	Value T
}

// Min returns an unnamed lower bound.
func Min[T cmp.Ordered](v T) *Bound[T] {
	return &Bound[T]{Value: v}
}

// Max returns a named upper bound which follows another setting,
// or nil if that setting is missing.
func Max[T cmp.Ordered](name string, v *T) *Bound[T] {
	if v == nil {
		return nil
	}
	return &Bound[T]{Name: name, Value: *v}
}

func (b Bound[T]) String() string {
	if b.Name == "" {
		return fmt.Sprint(b.Value)
	}
	return fmt.Sprintf("%s (%v)", b.Name, b.Value)
}

// OutOfRangeError indicates that the Setting value was violating
// the Bound limit.
type OutOfRangeError[T cmp.Ordered] struct {
	Setting string
	Value   T
	Bound   Bound[T]
	Below   bool // Value is less than the Bound (instead of greater)
}

func (e *OutOfRangeError[T]) Error() string {
	rel := "greater than"
	if e.Below {
		rel = "less than"
	}
	return fmt.Sprintf("%s %v is %s %s", e.Setting, e.Value, rel, e.Bound)
}

// VerifyRange ensures that the setting value is either nil or within
// the minb and maxb inclusive bounds. A nil bound is not checked.
// The value is not modified, so callers may reject the configuration.
func VerifyRange[T cmp.Ordered](
	setting string, value *T, minb, maxb *Bound[T],
) error {
	if value == nil {
		return nil
	}
	switch v := *value; {
	case minb != nil && v < minb.Value:
		return &OutOfRangeError[T]{
			Setting: setting, Value: v, Bound: *minb, Below: true,
		}
	case maxb != nil && v > maxb.Value:
		return &OutOfRangeError[T]{
			Setting: setting, Value: v, Bound: *maxb,
		}
	}
	return nil
}
