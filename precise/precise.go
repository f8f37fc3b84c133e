// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package precise

import (
	"math"
	"math/big"
	"strings"

	"github.com/bitmark-inc/timescale/fault"
)

// Real - an immutable extended-precision real number
//
// the zero value is usable and represents zero
type Real struct {
	r *big.Rat
}

// shared constants for internal use, never mutated
var (
	ratZero = new(big.Rat)
	intTen  = big.NewInt(10)
	intTwo  = big.NewInt(2)
)

// FromInt64 - exact conversion from an integer
func FromInt64(n int64) Real {
	return Real{r: new(big.Rat).SetInt64(n)}
}

// FromFloat64 - exact conversion from the binary expansion of a float
//
// the domain is the finite reals, so NaN and the infinities are
// rejected outright rather than mapped to a sentinel
func FromFloat64(f float64) Real {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic("precise: not a finite real number")
	}
	return Real{r: new(big.Rat).SetFloat64(f)}
}

// rat - internal access, mapping the usable zero value
func (x Real) rat() *big.Rat {
	if nil == x.r {
		return ratZero
	}
	return x.r
}

// Add - sum of two reals
func (x Real) Add(y Real) Real {
	return Real{r: new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub - difference of two reals
func (x Real) Sub(y Real) Real {
	return Real{r: new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul - product of two reals
func (x Real) Mul(y Real) Real {
	return Real{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Neg - negated value
func (x Real) Neg() Real {
	return Real{r: new(big.Rat).Neg(x.rat())}
}

// Quo - exact quotient
//
// a zero divisor is a domain error, never a sentinel result
func (x Real) Quo(y Real) (Real, error) {
	if 0 == y.Sign() {
		return Real{}, fault.ErrDivisionByZero
	}
	return Real{r: new(big.Rat).Quo(x.rat(), y.rat())}, nil
}

// Cmp - three way comparison, -1, 0, +1
func (x Real) Cmp(y Real) int {
	return x.rat().Cmp(y.rat())
}

// Sign - -1, 0 or +1
func (x Real) Sign() int {
	return x.rat().Sign()
}

// IsZero - check for exact zero
func (x Real) IsZero() bool {
	return 0 == x.rat().Sign()
}

// IsInteger - check for an exactly integral value
func (x Real) IsInteger() bool {
	return x.rat().IsInt()
}

// Floor - largest integral real not greater than x
func (x Real) Floor() Real {
	return Real{r: new(big.Rat).SetInt(x.floorInt())}
}

// FloorInt64 - floor as a machine integer
//
// only valid while the value fits in 64 bits
func (x Real) FloorInt64() int64 {
	return x.floorInt().Int64()
}

// floorInt - floor as a big integer
//
// the denominator of a big.Rat is always positive so Euclidean
// division of the numerator gives the floor for either sign
func (x Real) floorInt() *big.Int {
	r := x.rat()
	return new(big.Int).Div(r.Num(), r.Denom())
}

// Frac - floor-based fractional part, always in [0, 1)
//
// negative values produce a non-negative fraction paired with a
// correspondingly smaller floor
func (x Real) Frac() Real {
	return x.Sub(x.Floor())
}

// Trunc - integer part truncated toward zero
func (x Real) Trunc() int64 {
	r := x.rat()
	return new(big.Int).Quo(r.Num(), r.Denom()).Int64()
}

// Round - round to prec fractional decimal digits
//
// ties round away from zero; a negative precision is treated as zero
func (x Real) Round(prec int) Real {
	if prec < 0 {
		prec = 0
	}
	pow := pow10(prec)
	v := new(big.Rat).Mul(x.rat(), new(big.Rat).SetInt(pow))

	n := new(big.Int).Mul(v.Num(), intTwo)
	if v.Num().Sign() < 0 {
		n.Sub(n, v.Denom())
	} else {
		n.Add(n, v.Denom())
	}
	d := new(big.Int).Mul(v.Denom(), intTwo)
	n.Quo(n, d)

	return Real{r: new(big.Rat).SetFrac(n, pow)}
}

// Float64 - nearest machine float, losing precision
func (x Real) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// FixedString - fixed-point decimal rendering
//
// shows a sign only when negative; the fraction is truncated to at
// most maxPrec digits and carries no padding - alignment belongs to
// the display layer
func (x Real) FixedString(maxPrec int) string {
	if maxPrec < 0 {
		maxPrec = 0
	}

	r := x.rat()
	sign := ""
	if r.Sign() < 0 {
		sign = "-"
		r = new(big.Rat).Neg(r)
	}

	ip := new(big.Int).Quo(r.Num(), r.Denom())
	s := sign + ip.String()

	if 0 == maxPrec {
		return s
	}

	fr := new(big.Rat).Sub(r, new(big.Rat).SetInt(ip))
	if 0 == fr.Sign() {
		return s
	}

	digits := new(big.Int).Mul(fr.Num(), pow10(maxPrec))
	digits.Quo(digits, fr.Denom())
	ds := digits.String()
	if len(ds) < maxPrec {
		ds = strings.Repeat("0", maxPrec-len(ds)) + ds
	}
	ds = strings.TrimRight(ds, "0")
	if "" == ds {
		return s
	}

	return s + "." + ds
}

// String - decimal rendering with a nanosecond-scale default precision
func (x Real) String() string {
	return x.FixedString(9)
}

// pow10 - 10^n as a big integer
func pow10(n int) *big.Int {
	return new(big.Int).Exp(intTen, big.NewInt(int64(n)), nil)
}
