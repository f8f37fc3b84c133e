// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timespan - precise real durations in abstract seconds
//
// A Timespan is a duration in seconds-equivalent units with no
// assumption of being true SI seconds; the scale is defined by
// whatever clock the caller measures against.  Values may be
// negative, meaning time before the epoch.
package timespan

import (
	"github.com/bitmark-inc/timescale/precise"
)

// Timespan - a precise real number of abstract seconds
type Timespan = precise.Real

// Zero - the zero-length span
var Zero Timespan

// New - span from whole seconds and an optional fraction
//
// when frac is exactly zero the result is the exact integer value,
// avoiding any floating-point representation error
func New(seconds int64, frac float64) Timespan {
	s := precise.FromInt64(seconds)
	if 0.0 == frac {
		return s
	}
	return s.Add(precise.FromFloat64(frac))
}

// FromFloat - span from a real-valued second count
func FromFloat(seconds float64) Timespan {
	return precise.FromFloat64(seconds)
}

// Div - precise division of two spans
//
// precision is reserved for future precision control and currently
// has no effect: the underlying quotient is exact
//
// a zero divisor returns fault.ErrDivisionByZero
func Div(x Timespan, y Timespan, precision int) (Timespan, error) {
	return x.Quo(y)
}
