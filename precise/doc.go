// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package precise - immutable extended-precision real numbers
//
// A thin value wrapper over exact rational arithmetic so that
// integer-valued construction, addition, subtraction and
// multiplication never lose precision, no matter how large the
// magnitude or how long a chain of operations.
//
// Note: every operation returns a new value; a Real is never
//       modified in place, so values can be shared between go
//       routines without locking.
package precise
