// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"fmt"
	"strings"
)

// display defaults
const (
	defaultMaxPrec   = 9
	defaultSecsWidth = 1
)

// Show - fixed-point decimal rendering of the unadjusted span
//
// the integer part is left-padded with zeros to at least secsWidth
// characters; a non-empty fraction is truncated to at most maxPrec
// digits and right-padded with zeros to the next multiple of three,
// milli/micro/nano style; a non-zero leap counter appends a
// " (+N leap)" suffix
func (ts Timestamp) Show(maxPrec int, secsWidth int) string {
	s := ts.since.FixedString(maxPrec)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	if len(intPart) < secsWidth {
		intPart = strings.Repeat("0", secsWidth-len(intPart)) + intPart
	}

	result := sign + intPart
	if "" != fracPart {
		if n := len(fracPart) % 3; 0 != n {
			fracPart += strings.Repeat("0", 3-n)
		}
		result += "." + fracPart
	}

	if 0 != ts.leapAdjust {
		result += fmt.Sprintf(" (+%d leap)", ts.leapAdjust)
	}

	return result
}

// String - rendering with nanosecond precision and no width padding
func (ts Timestamp) String() string {
	return ts.Show(defaultMaxPrec, defaultSecsWidth)
}
