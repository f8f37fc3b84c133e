// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timespan_test

import (
	"testing"

	"github.com/bitmark-inc/timescale/fault"
	"github.com/bitmark-inc/timescale/precise"
	"github.com/bitmark-inc/timescale/timespan"
)

// test exact construction when no fraction is supplied
func TestNewExactIntegers(t *testing.T) {
	testList := []int64{0, 1, -1, 86400, -86400, 253402300800}

	for i, seconds := range testList {
		span := timespan.New(seconds, 0.0)
		if !span.IsInteger() {
			t.Errorf("%d: span %d is not exactly integral: %s", i, seconds, span)
		}
		if 0 != span.Cmp(precise.FromInt64(seconds)) {
			t.Errorf("%d: span: actual: %s  expected: %d", i, span, seconds)
		}
	}
}

// test construction with a fraction
func TestNewWithFraction(t *testing.T) {
	span := timespan.New(5, 0.25)
	expected := precise.FromFloat64(5.25)
	if 0 != span.Cmp(expected) {
		t.Errorf("span: actual: %s  expected: %s", span, expected)
	}

	negative := timespan.New(-1, 0.5)
	if 0 != negative.Cmp(precise.FromFloat64(-0.5)) {
		t.Errorf("span: actual: %s  expected: -0.5", negative)
	}
}

// test the zero span
func TestZero(t *testing.T) {
	if !timespan.Zero.IsZero() {
		t.Errorf("zero span is not zero: %s", timespan.Zero)
	}
}

// test division including the zero divisor error
func TestDiv(t *testing.T) {
	x := timespan.New(10, 0.0)
	y := timespan.New(4, 0.0)

	q, err := timespan.Div(x, y, 0)
	if nil != err {
		t.Fatalf("div error: %s", err)
	}
	if 0 != q.Cmp(precise.FromFloat64(2.5)) {
		t.Errorf("10/4: actual: %s  expected: 2.5", q)
	}

	// the precision argument is a reserved hook and must not change anything
	q2, err := timespan.Div(x, y, 12)
	if nil != err {
		t.Fatalf("div error: %s", err)
	}
	if 0 != q.Cmp(q2) {
		t.Errorf("precision changed the quotient: %s vs %s", q, q2)
	}

	_, err = timespan.Div(x, timespan.Zero, 0)
	if fault.ErrDivisionByZero != err {
		t.Errorf("division by zero: actual error: %v", err)
	}
}
