// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precise_test

import (
	"testing"

	"github.com/bitmark-inc/timescale/fault"
	"github.com/bitmark-inc/timescale/precise"
)

// test exact integer arithmetic
func TestExactIntegers(t *testing.T) {
	testList := []struct {
		a int64
		b int64
	}{
		{0, 0},
		{1, 2},
		{-5, 5},
		{1234567890123456789, 987654321},
		{-9223372036854775807, 1},
	}

	for i, item := range testList {
		sum := precise.FromInt64(item.a).Add(precise.FromInt64(item.b))
		expected := precise.FromInt64(item.a + item.b)
		if 0 != sum.Cmp(expected) {
			t.Errorf("%d: %d + %d: actual: %s  expected: %s", i, item.a, item.b, sum, expected)
		}
	}
}

// test the zero value behaves as zero
func TestZeroValue(t *testing.T) {
	var z precise.Real

	if !z.IsZero() {
		t.Errorf("zero value is not zero: %s", z)
	}
	if 0 != z.Sign() {
		t.Errorf("zero value sign: %d", z.Sign())
	}

	one := precise.FromInt64(1)
	if 0 != z.Add(one).Cmp(one) {
		t.Errorf("0 + 1: actual: %s", z.Add(one))
	}
	if "0" != z.String() {
		t.Errorf("zero rendering: %q", z.String())
	}
}

// test floor, fraction and truncation on both signs
func TestDecomposition(t *testing.T) {
	testList := []struct {
		value float64
		floor int64
		trunc int64
		frac  float64
	}{
		{0.0, 0, 0, 0.0},
		{5.25, 5, 5, 0.25},
		{-0.5, -1, 0, 0.5},
		{-5.25, -6, -5, 0.75},
		{3.0, 3, 3, 0.0},
		{-3.0, -3, -3, 0.0},
	}

	for i, item := range testList {
		x := precise.FromFloat64(item.value)
		if item.floor != x.FloorInt64() {
			t.Errorf("%d: floor(%g): actual: %d  expected: %d", i, item.value, x.FloorInt64(), item.floor)
		}
		if item.trunc != x.Trunc() {
			t.Errorf("%d: trunc(%g): actual: %d  expected: %d", i, item.value, x.Trunc(), item.trunc)
		}
		frac := x.Frac()
		if 0 != frac.Cmp(precise.FromFloat64(item.frac)) {
			t.Errorf("%d: frac(%g): actual: %s  expected: %g", i, item.value, frac, item.frac)
		}
		if frac.Sign() < 0 {
			t.Errorf("%d: frac(%g) is negative: %s", i, item.value, frac)
		}
	}
}

// test rounding to decimal digits, ties away from zero
func TestRound(t *testing.T) {
	testList := []struct {
		value    float64
		prec     int
		expected string
	}{
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{2.4375, 2, "2.44"},
		{-2.4375, 2, "-2.44"},
		{1.0, 3, "1"},
		{0.0625, 1, "0.1"},
	}

	for i, item := range testList {
		actual := precise.FromFloat64(item.value).Round(item.prec).FixedString(9)
		if item.expected != actual {
			t.Errorf("%d: round(%g, %d): actual: %q  expected: %q", i, item.value, item.prec, actual, item.expected)
		}
	}
}

// test fixed-point rendering
func TestFixedString(t *testing.T) {
	testList := []struct {
		value    float64
		maxPrec  int
		expected string
	}{
		{5.25, 9, "5.25"},
		{-5.25, 9, "-5.25"},
		{5.0, 9, "5"},
		{-0.5, 9, "-0.5"},
		{0.0, 9, "0"},
		{5.25, 1, "5.2"},   // truncated, not rounded
		{5.25, 0, "5"},     // no fractional digits at all
		{0.0625, 2, "0.06"},
		{0.0625, 1, "0"},   // fraction truncates to nothing
	}

	for i, item := range testList {
		actual := precise.FromFloat64(item.value).FixedString(item.maxPrec)
		if item.expected != actual {
			t.Errorf("%d: fixed(%g, %d): actual: %q  expected: %q", i, item.value, item.maxPrec, actual, item.expected)
		}
	}
}

// test quotient including the zero divisor error
func TestQuo(t *testing.T) {
	ten := precise.FromInt64(10)
	four := precise.FromInt64(4)

	q, err := ten.Quo(four)
	if nil != err {
		t.Fatalf("quo error: %s", err)
	}
	if 0 != q.Cmp(precise.FromFloat64(2.5)) {
		t.Errorf("10/4: actual: %s  expected: 2.5", q)
	}

	_, err = ten.Quo(precise.Real{})
	if fault.ErrDivisionByZero != err {
		t.Errorf("division by zero: actual error: %v", err)
	}
}

// test no precision loss over an astronomical range
func TestLongSpanPrecision(t *testing.T) {
	// a billion years of seconds plus a sub-nanosecond remainder
	big := precise.FromInt64(31557600000000000)
	tiny, err := precise.FromInt64(1).Quo(precise.FromInt64(1000000000000))
	if nil != err {
		t.Fatalf("quo error: %s", err)
	}

	sum := big.Add(tiny)
	back := sum.Sub(big)
	if 0 != back.Cmp(tiny) {
		t.Errorf("sub-picosecond lost over long span: actual: %s  expected: %s", back, tiny)
	}
}
