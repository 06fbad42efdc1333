// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/big"
	"math/bits"
	"sync"
)

// pow10F64 and pow10F32 hold the powers of ten that fit exactly in
// each float type: the well-known fast-path tables referenced
// throughout SPEC_FULL.md (F64_POW10/F32_POW10), computed at init
// time by repeated exact multiplication rather than transcribed as
// literals, since every intermediate product in these ranges is
// itself exactly representable (the odd part of 10**k stays within
// the type's mantissa width for k up to 22 resp. 10). Grounded in the
// float64pow10 array built the same way in the fastfloat reference.
var (
	pow10F64 [23]float64
	pow10F32 [11]float32
)

func init() {
	pow10F64[0] = 1
	for i := 1; i < len(pow10F64); i++ {
		pow10F64[i] = pow10F64[i-1] * 10
	}
	pow10F32[0] = 1
	for i := 1; i < len(pow10F32); i++ {
		pow10F32[i] = pow10F32[i-1] * 10
	}
}

// maxUint64Digits[radix] is the largest number of base-radix digits
// guaranteed to fit a uint64 accumulator without overflow, i.e. the
// largest n such that radix**n - 1 <= math.MaxUint64. Computed once at
// init by repeated widening multiplication rather than a
// log-of-radix formula, since an off-by-one here lets moderatePath's
// mantissa accumulator silently wrap. Index 10 matches the well-known
// 19-decimal-digit bound; other radices follow the same derivation.
var maxUint64Digits [37]int

func init() {
	for radix := 2; radix <= 36; radix++ {
		var v uint64
		n := 0
		for {
			hi, lo := bits.Mul64(v, uint64(radix))
			lo2, carry := bits.Add64(lo, uint64(radix-1), 0)
			if hi != 0 || carry != 0 {
				break
			}
			v = lo2
			n++
		}
		maxUint64Digits[radix] = n
	}
}

// decimalMantissaLimit returns the maximum count of significant
// decimal digits the fast path may parse into a native float of the
// given mantissa width (including the hidden bit) and still guarantee
// the result converts to the target type exactly, per
// SPEC_FULL.md's mantissa_limit(radix). It covers radix 10 only (15
// for float64, 7 for float32); the power-of-two radices use
// fastPathPow2's own digit limit, and other radices have no fast path.
func decimalMantissaLimit(mantissaBits uint) int {
	// floor((mantissaBits+1) * log10(2))
	bits := int(mantissaBits) + 1
	return bits * 30103 / 100000
}

// exactPow10Exponent reports, for the given mantissa width, the
// largest k such that 10**k (and thus 1/10**k's numerator after
// removing the power-of-two bias) is exactly representable: computed
// once via math/big rather than hand-derived, since getting this
// constant wrong silently breaks the fast path's correctness
// guarantee.
func exactPow10Exponent(mantissaBits uint) int32 {
	limit := new(big.Int).Lsh(big.NewInt(1), mantissaBits+1)
	k := int32(0)
	pow := big.NewInt(1)
	ten := big.NewInt(10)
	for {
		next := new(big.Int).Mul(pow, ten)
		odd := new(big.Int).Set(next)
		for odd.Bit(0) == 0 {
			odd.Rsh(odd, 1)
		}
		if odd.Cmp(limit) >= 0 {
			return k
		}
		pow = next
		k++
	}
}

var (
	exactPow10ExpF64 = exactPow10Exponent(float64Layout.MantissaBits)
	exactPow10ExpF32 = exactPow10Exponent(float32Layout.MantissaBits)
)

// exactPow10AsExtended returns 10**k as an ExtendedFloat: exact, from
// pow10F64, for 0 <= k <= 22, and the cached-power approximation
// otherwise. moderatePath looks powers up with cachedPower directly
// and does not call it.
func exactPow10AsExtended(k int32) ExtendedFloat {
	if k >= 0 && int(k) < len(pow10F64) {
		return ExtendedFloatFromUint64(uint64(pow10F64[k]))
	}
	return cachedPower(10, k)
}

// cachedPowerTable holds ExtendedFloat approximations of radix**e for
// a contiguous range of e, built once per radix on first use.
type cachedPowerTable struct {
	minExp, maxExp int32
	entries        []ExtendedFloat
}

func (t *cachedPowerTable) get(e int32) (ExtendedFloat, bool) {
	if e < t.minExp || e > t.maxExp {
		return ExtendedFloat{}, false
	}
	return t.entries[e-t.minExp], true
}

// cachedPowerRange bounds the decimal-exponent range the moderate
// path's cached power table covers. This is a single flat table
// rather than the source's two-level small-step/large-step design
// (stride 32) described in SPEC_FULL.md's design notes: an explicit,
// documented simplification that trades a larger resident table for
// a much simpler lookup, since the slow path remains the correctness
// backstop regardless of how this table is organized.
const (
	cachedPowerMinExp = -400
	cachedPowerMaxExp = 400
)

var (
	cachedPowerTables  [37]*cachedPowerTable
	cachedPowerOnce    [37]sync.Once
)

// cachedPowers returns the lazily-built cached power table for radix.
func cachedPowers(radix uint8) *cachedPowerTable {
	cachedPowerOnce[radix].Do(func() {
		n := cachedPowerMaxExp - cachedPowerMinExp + 1
		entries := make([]ExtendedFloat, n)
		for i := range entries {
			entries[i] = computePower(radix, int32(cachedPowerMinExp+i))
		}
		cachedPowerTables[radix] = &cachedPowerTable{minExp: cachedPowerMinExp, maxExp: cachedPowerMaxExp, entries: entries}
	})
	return cachedPowerTables[radix]
}

// cachedPower looks up radix**e as an ExtendedFloat, building the
// table for radix on first use.
func cachedPower(radix uint8, e int32) ExtendedFloat {
	t := cachedPowers(radix)
	v, ok := t.get(e)
	if !ok {
		// Outside the table's range: parseFloatMagnitude has already
		// sent magnitudes beyond the float range to +Inf or +0, so
		// this is reached only for small radices, whose powers span
		// that range in more than 400 steps. Computed on demand,
		// without caching.
		return computePower(radix, e)
	}
	return v
}

// computePower computes radix**e as a correctly-rounded-to-64-bits
// ExtendedFloat using math/big.Float arithmetic. Using a trusted
// stdlib bignum type to bootstrap this table sidesteps the risk of
// hand-transcribing a literal table without ever running the code to
// check it.
func computePower(radix uint8, e int32) ExtendedFloat {
	const prec = 160
	x := new(big.Float).SetPrec(prec).SetInt64(1)
	base := new(big.Float).SetPrec(prec).SetInt64(int64(radix))
	n := e
	if n < 0 {
		n = -n
	}
	for i := int32(0); i < n; i++ {
		x.Mul(x, base)
	}
	if e < 0 {
		one := new(big.Float).SetPrec(prec).SetInt64(1)
		x.Quo(one, x)
	}
	mant := new(big.Float).SetPrec(prec)
	exp := x.MantExp(mant) // x == mant * 2**exp, mant in [0.5, 1)
	mant.SetMantExp(mant, 64)
	mant.SetPrec(64) // round to the nearest 64-bit significand, ties to even
	u, _ := mant.Uint64()
	return ExtendedFloat{Mant: u, Exp: int32(exp) - 64}
}

func log2Radix(radix uint8) (shift uint, ok bool) {
	switch radix {
	case 2:
		return 1, true
	case 4:
		return 2, true
	case 8:
		return 3, true
	case 16:
		return 4, true
	case 32:
		return 5, true
	default:
		return 0, false
	}
}
