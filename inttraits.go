// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer, Hi*2**64 + Lo. It exists
// only to carry the handful of operations atoi.go's overflow-checked
// accumulation and itoa.go's digit extraction need for the u128/i128
// primitives; it is not a general-purpose bignum type (BigInt already
// covers that role for the float parser).
type Uint128 struct {
	Hi, Lo uint64
}

// Cmp compares a and b as unsigned 128-bit integers.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// AddUint64 returns a+x and whether the addition overflowed 128 bits.
func (a Uint128) AddUint64(x uint64) (Uint128, bool) {
	lo, c := bits.Add64(a.Lo, x, 0)
	hi, c2 := bits.Add64(a.Hi, 0, c)
	return Uint128{Hi: hi, Lo: lo}, c2 != 0
}

// MulUint64 returns a*m and whether the product overflowed 128 bits.
// atoi.go's 128-bit digit loop calls it once per digit with m = radix;
// mirrors the widening-multiply style of ParseUint64 in the fastfloat
// reference.
func (a Uint128) MulUint64(m uint64) (Uint128, bool) {
	hiHi, hiLo := bits.Mul64(a.Hi, m)
	if hiHi != 0 {
		return Uint128{}, true
	}
	loHi, loLo := bits.Mul64(a.Lo, m)
	sum, c := bits.Add64(hiLo, loHi, 0)
	if c != 0 {
		return Uint128{}, true
	}
	return Uint128{Hi: sum, Lo: loLo}, false
}

// Sub returns a-b, assuming a >= b.
func (a Uint128) Sub(b Uint128) Uint128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// IsZero reports whether a == 0.
func (a Uint128) IsZero() bool { return a.Hi == 0 && a.Lo == 0 }

// DivModUint64 returns a/d and a%d via schoolbook long division: divide
// the high limb first, then feed its remainder into a single 128/64
// division step via bits.Div64 (valid because that remainder is
// always < d). Used by itoa.go's digit-peeling writer for the 128-bit
// primitives.
func (a Uint128) DivModUint64(d uint64) (q Uint128, r uint64) {
	if a.Hi == 0 {
		return Uint128{Lo: a.Lo / d}, a.Lo % d
	}
	qHi, rHi := a.Hi/d, a.Hi%d
	qLo, rLo := bits.Div64(rHi, a.Lo, d)
	return Uint128{Hi: qHi, Lo: qLo}, rLo
}

// Big converts a to a math/big.Int, used only by itoa.go's
// formattedSize bookkeeping (computing the longest possible rendering
// of a width's maximum magnitude in a given radix), never on the hot
// write path.
func (a Uint128) Big() *big.Int {
	z := new(big.Int).SetUint64(a.Hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(a.Lo))
	return z
}

var (
	maxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
	// maxInt128Mag is the magnitude of math.MaxInt128.
	maxInt128Mag = Uint128{Hi: 1<<63 - 1, Lo: ^uint64(0)}
	// minInt128Mag is the magnitude of math.MinInt128 (one more than
	// maxInt128Mag: two's complement has one extra negative value).
	minInt128Mag = Uint128{Hi: 1 << 63, Lo: 0}
)

// intWidth describes the bit width and sign of one of the integer
// primitives this package parses and writes, plus the unsigned
// magnitude bounds the accumulator in atoi.go must enforce. It plays
// the role the ancestor decimal library fills with MaxBase/MaxPrec
// constants in stdlib.go, generalized from "one arbitrary-precision
// type" to "five fixed-width integer types, signed and unsigned".
type intWidth struct {
	bits     uint
	signed   bool
	maxMag   Uint128 // largest representable magnitude for a positive (or unsigned) value
	minMag   Uint128 // largest representable magnitude for a negative value (signed only)
	byteSize int     // sizeof(T) in bytes, for FORMATTED_SIZE bookkeeping in itoa.go
}

func uintWidth(bits uint) intWidth {
	if bits == 128 {
		return intWidth{bits: 128, maxMag: maxUint128, byteSize: 16}
	}
	return intWidth{bits: bits, maxMag: Uint128{Lo: 1<<bits - 1}, byteSize: int(bits / 8)}
}

func intWidthSigned(bits uint) intWidth {
	if bits == 128 {
		return intWidth{bits: 128, signed: true, maxMag: maxInt128Mag, minMag: minInt128Mag, byteSize: 16}
	}
	max := uint64(1)<<(bits-1) - 1
	return intWidth{bits: bits, signed: true, maxMag: Uint128{Lo: max}, minMag: Uint128{Lo: max + 1}, byteSize: int(bits / 8)}
}

var (
	widthU8   = uintWidth(8)
	widthU16  = uintWidth(16)
	widthU32  = uintWidth(32)
	widthU64  = uintWidth(64)
	widthU128 = uintWidth(128)

	widthI8   = intWidthSigned(8)
	widthI16  = intWidthSigned(16)
	widthI32  = intWidthSigned(32)
	widthI64  = intWidthSigned(64)
	widthI128 = intWidthSigned(128)
)
