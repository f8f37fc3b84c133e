// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package leapseconds - the historical UTC leap second table
//
// The calendar layer drives timestamp.AdjustLeapSeconds from this
// table, one adjustment per insertion, in chronological order.  The
// table fixes the epoch of this package to 1970-01-01 UTC and spans
// are UTC seconds excluding inserted leap seconds, matching the
// timestamp model.
//
// TAI conversion is the sanctioned way to take a difference between
// two timestamps: TAI counts every elapsed second, so the leap
// policy is explicit in the conversion rather than hidden in a
// subtraction.
package leapseconds
