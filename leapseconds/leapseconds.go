// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package leapseconds

import (
	"time"

	"github.com/bitmark-inc/timescale/precise"
	"github.com/bitmark-inc/timescale/timespan"
	"github.com/bitmark-inc/timescale/timestamp"
)

// Leap - one insertion from the UTC leap second table
type Leap struct {
	Since  timespan.Timespan // boundary the inserted second precedes, leap-excluded seconds from the epoch
	Offset int64             // cumulative TAI−UTC after the insertion
}

// initialOffset - TAI−UTC before the first tabulated insertion
const initialOffset = 10

// all leap seconds inserted since the 1972 alignment of UTC
//
// each entry is the instant the new offset takes effect; the
// inserted :60 second is the civil second immediately before it
var table = []Leap{
	{boundary(1972, time.July), 11},
	{boundary(1973, time.January), 12},
	{boundary(1974, time.January), 13},
	{boundary(1975, time.January), 14},
	{boundary(1976, time.January), 15},
	{boundary(1977, time.January), 16},
	{boundary(1978, time.January), 17},
	{boundary(1979, time.January), 18},
	{boundary(1980, time.January), 19},
	{boundary(1981, time.July), 20},
	{boundary(1982, time.July), 21},
	{boundary(1983, time.July), 22},
	{boundary(1985, time.July), 23},
	{boundary(1988, time.January), 24},
	{boundary(1990, time.January), 25},
	{boundary(1991, time.January), 26},
	{boundary(1992, time.July), 27},
	{boundary(1993, time.July), 28},
	{boundary(1994, time.July), 29},
	{boundary(1996, time.January), 30},
	{boundary(1997, time.July), 31},
	{boundary(1999, time.January), 32},
	{boundary(2006, time.January), 33},
	{boundary(2009, time.January), 34},
	{boundary(2012, time.July), 35},
	{boundary(2015, time.July), 36},
	{boundary(2017, time.January), 37},
}

// boundary - midnight starting the given month as a span from the epoch
func boundary(year int, month time.Month) timespan.Timespan {
	return timespan.New(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Unix(), 0)
}

// List - chronological copy of the table
func List() []Leap {
	leaps := make([]Leap, len(table))
	copy(leaps, table)
	return leaps
}

// OffsetAt - TAI−UTC offset in effect at a leap-excluded instant
func OffsetAt(span timespan.Timespan) int64 {
	for i := len(table) - 1; i >= 0; i-- {
		if span.Cmp(table[i].Since) >= 0 {
			return table[i].Offset
		}
	}
	return initialOffset
}

// ToTAI - exact elapsed TAI seconds since the epoch
//
// every second ever elapsed is counted: the leap-excluded span, one
// second per insertion passed, the current leap adjustment and the
// ten second offset UTC already carried in 1972
func ToTAI(ts timestamp.Timestamp) timespan.Timespan {
	passed := int64(0)
	since := ts.UnadjustedSeconds()
	for _, leap := range table {
		if since.Cmp(leap.Since) < 0 {
			break
		}
		passed += 1
	}
	return ts.Seconds().Add(precise.FromInt64(passed + initialOffset))
}

// FromTAI - timestamp for an elapsed TAI second count
//
// the inverse of ToTAI: instants that fall within an inserted second
// come back with a leap adjustment of one, everything else with zero
func FromTAI(tai timespan.Timespan) timestamp.Timestamp {
	one := precise.FromInt64(1)

	// elapsed civil seconds, counting inserted leap seconds
	x := tai.Sub(precise.FromInt64(initialOffset))

	for i := len(table) - 1; i >= 0; i-- {
		// the inserted second of entry i begins after i earlier insertions
		begin := table[i].Since.Add(precise.FromInt64(int64(i)))
		if x.Cmp(begin) < 0 {
			continue
		}

		inLeap := x.Sub(begin)
		if inLeap.Cmp(one) >= 0 {
			// past this insertion entirely
			return timestamp.New(x.Sub(precise.FromInt64(int64(i + 1))))
		}

		// inside the inserted second itself
		ts := timestamp.New(table[i].Since)
		if 0 == inLeap.Sign() {
			return ts.Subtract(one).WithLeapAdjust(1)
		}
		return ts.AdjustLeapSeconds(inLeap)
	}

	return timestamp.New(x)
}
