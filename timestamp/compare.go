// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

// Cmp - three way comparison, -1, 0, +1
//
// the leap-exclusive spans are compared first and the leap counter
// only breaks ties.  Comparing Seconds directly would be wrong: two
// instants with equal since but different counters are genuinely
// distinct, one inside a leap second and one not, and folding the
// counter into the span first could make them coincide.
func (ts Timestamp) Cmp(other Timestamp) int {
	c := ts.since.Cmp(other.since)
	if 0 != c {
		return c
	}
	switch {
	case ts.leapAdjust < other.leapAdjust:
		return -1
	case ts.leapAdjust > other.leapAdjust:
		return 1
	default:
		return 0
	}
}

// Equal - same instant
func (ts Timestamp) Equal(other Timestamp) bool {
	return 0 == ts.Cmp(other)
}

// LessThan - strictly earlier instant
func (ts Timestamp) LessThan(other Timestamp) bool {
	return ts.Cmp(other) < 0
}

// LessOrEqual - not a later instant
func (ts Timestamp) LessOrEqual(other Timestamp) bool {
	return ts.Cmp(other) <= 0
}

// GreaterThan - strictly later instant
func (ts Timestamp) GreaterThan(other Timestamp) bool {
	return ts.Cmp(other) > 0
}

// GreaterOrEqual - not an earlier instant
func (ts Timestamp) GreaterOrEqual(other Timestamp) bool {
	return ts.Cmp(other) >= 0
}

// Min - the earlier of two instants, a on a tie
func Min(a Timestamp, b Timestamp) Timestamp {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max - the later of two instants, a on a tie
func Max(a Timestamp, b Timestamp) Timestamp {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
