// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timestamp - leap-second-aware time-since-epoch values
//
// A Timestamp pairs a precise elapsed span with a leap second
// adjustment counter so that a non-monotonic civil time scale, where
// a day may contain 86401 seconds, can be represented and compared
// correctly.  The since field excludes inserted leap seconds; the
// leapAdjust field marks an instant that falls inside the Nth extra
// second beyond the nominal second boundary.
//
// The epoch is scale-defined: nothing here fixes it to any calendar
// date.  Calendar decomposition, duration formatting and instant
// APIs are expected to be built on top of this package.
//
// Note: values are immutable; every operation returns a new
//       Timestamp, so sharing between go routines needs no locking.
package timestamp
