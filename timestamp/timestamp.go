// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"github.com/bitmark-inc/timescale/precise"
	"github.com/bitmark-inc/timescale/timespan"
)

// Timestamp - an instant as elapsed time from the epoch
//
// since excludes any inserted leap seconds; leapAdjust counts how
// many extra leap seconds beyond the nominal boundary the instant is
// currently inside.  It is not a running total of all leap seconds
// ever inserted.
type Timestamp struct {
	since      timespan.Timespan
	leapAdjust int64
}

// Zero - the epoch itself
var Zero Timestamp

// New - timestamp from an elapsed span, not inside a leap second
func New(span timespan.Timespan) Timestamp {
	return Timestamp{since: span}
}

// FromSeconds - timestamp from whole seconds and an optional fraction
//
// frac of exactly zero keeps the value exactly integral
func FromSeconds(seconds int64, frac float64) Timestamp {
	return Timestamp{since: timespan.New(seconds, frac)}
}

// FromFloat - timestamp from a real-valued second count
func FromFloat(seconds float64) Timestamp {
	return Timestamp{since: timespan.FromFloat(seconds)}
}

// WithLeapAdjust - same instant boundary with a given leap counter
//
// the counter is conventionally non-negative; nothing here enforces
// that, matching the constructors' no-validation contract
func (ts Timestamp) WithLeapAdjust(leapAdjust int64) Timestamp {
	return Timestamp{since: ts.since, leapAdjust: leapAdjust}
}

// Seconds - total elapsed time including the leap adjustment
func (ts Timestamp) Seconds() timespan.Timespan {
	if 0 == ts.leapAdjust {
		return ts.since
	}
	return ts.since.Add(precise.FromInt64(ts.leapAdjust))
}

// Span - alias for Seconds
func (ts Timestamp) Span() timespan.Timespan {
	return ts.Seconds()
}

// UnadjustedSeconds - elapsed time excluding the leap adjustment
func (ts Timestamp) UnadjustedSeconds() timespan.Timespan {
	return ts.since
}

// LeapAdjust - the leap second counter
func (ts Timestamp) LeapAdjust() int64 {
	return ts.leapAdjust
}

// RoundToPrec - round the elapsed span to prec decimal digits
//
// the leap counter passes through untouched: leap seconds are
// integral by definition and never need fractional rounding
func (ts Timestamp) RoundToPrec(prec int) Timestamp {
	return Timestamp{
		since:      ts.since.Round(prec),
		leapAdjust: ts.leapAdjust,
	}
}

// AdjustLeapSeconds - absorb an inserted span of leap time
//
// a calendar layer applies this once per entry of a chronologically
// ordered leap second table; the composition is order-sensitive
//
// the branch structure matters: first entry into a leap second
// rewinds the nominal second count by one whole second and raises
// the counter to one, with the sub-second position carried in since;
// any further adjustment, or a whole-second one, accumulates whole
// seconds into the counter and only the fractional remainder into
// since
func (ts Timestamp) AdjustLeapSeconds(leaps timespan.Timespan) Timestamp {
	if leaps.Sign() <= 0 {
		return ts
	}

	one := precise.FromInt64(1)
	if 0 == ts.leapAdjust && leaps.Cmp(one) < 0 {
		return Timestamp{
			since:      ts.since.Sub(one).Add(leaps),
			leapAdjust: 1,
		}
	}

	return Timestamp{
		since:      ts.since.Add(leaps.Frac()),
		leapAdjust: ts.leapAdjust + leaps.Trunc(),
	}
}

// CalendarSeconds - decomposition for calendar formatting
//
// returns the floor of the unadjusted span, its fractional part and
// the leap counter; the fraction is always in [0, 1) whatever the
// sign of the span, so a negative instant pairs a non-negative
// fraction with a smaller integer part
//
// a formatter renders the :60 second whenever the leap counter is
// non-zero
func (ts Timestamp) CalendarSeconds() (int64, float64, int64) {
	return ts.since.FloorInt64(), ts.since.Frac().Float64(), ts.leapAdjust
}

// Add - shift an instant later by a span
func (ts Timestamp) Add(span timespan.Timespan) Timestamp {
	return Timestamp{
		since:      ts.since.Add(span),
		leapAdjust: ts.leapAdjust,
	}
}

// Subtract - shift an instant earlier by a span
//
// there is deliberately no subtraction of one Timestamp from
// another: the result would need a policy for counting leap seconds
// inserted between the two instants, which the two-field model does
// not decide.  Convert both ends to TAI spans and subtract those
// when a difference is required.
func (ts Timestamp) Subtract(span timespan.Timespan) Timestamp {
	return Timestamp{
		since:      ts.since.Sub(span),
		leapAdjust: ts.leapAdjust,
	}
}
