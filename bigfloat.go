// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// BigFloat is an arbitrary-precision binary float: an unsigned BigInt
// mantissa paired with a signed binary exponent, value = Mant *
// 2**Exp. It exists solely to let atof_slow.go compare two values
// scaled to different binary exponents (the parsed decimal mantissa
// against the moderate path's candidate/neighbour) without first
// forcing them to a common scale by hand at every call site.
type BigFloat struct {
	Mant BigInt
	Exp  int32
}

// SetExtendedFloat sets z to the exact value of e and returns z.
func (z *BigFloat) SetExtendedFloat(e ExtendedFloat) *BigFloat {
	z.Mant.SetUint64(e.Mant)
	z.Exp = e.Exp
	return z
}

// SetUint64 sets z to x (Exp 0) and returns z.
func (z *BigFloat) SetUint64(x uint64) *BigFloat {
	z.Mant.SetUint64(x)
	z.Exp = 0
	return z
}

// Cmp compares z and y as exact values, scaling a copy of whichever
// operand has the smaller exponent up to match the other before
// delegating to BigInt.Cmp. Neither z nor y is modified.
func (z *BigFloat) Cmp(y *BigFloat) int {
	a, b := z.Mant, y.Mant // BigInt is a fixed-size value type: this copies, it doesn't alias
	switch {
	case z.Exp < y.Exp:
		a.MulPow2(uint(y.Exp - z.Exp))
	case y.Exp < z.Exp:
		b.MulPow2(uint(z.Exp - y.Exp))
	}
	return a.Cmp(&b)
}

// IsZero reports whether z == 0.
func (z *BigFloat) IsZero() bool { return z.Mant.IsZero() }
