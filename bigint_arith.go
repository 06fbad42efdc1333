// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the carry-propagating limb primitives BigInt is
// built on. It mirrors the structure of the ancestor decimal library's
// arith_dec.go/dec_arith.go (add10VV, sub10VV, mulAdd10VWW, shl10VU,
// ...), but the limbs here wrap at a native power of two instead of a
// power of ten, so the carry arithmetic is plain math/bits rather than
// the explicit base-_BD corrections the decimal version needs.

package lexical

import "math/bits"

// addVW adds y to x digit-vector x, storing the result in z, and
// returns the carry out of the top limb. It mirrors add10VW.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		sum := uint64(x[i]) + uint64(c)
		z[i] = Word(sum)
		c = Word(sum >> _W)
	}
	return c
}

// addVV sets z = x+y for equal-length x, y (len(z) >= len(x)) and
// returns the carry out. It mirrors add10VV.
func addVV(z, x, y []Word) (c Word) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		sum := uint64(x[i]) + uint64(y[i]) + uint64(c)
		z[i] = Word(sum)
		c = Word(sum >> _W)
	}
	return c
}

// subVV sets z = x-y for equal-length x, y and returns the borrow.
// It mirrors sub10VV.
func subVV(z, x, y []Word) (b Word) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		d, borrow := bits.Sub32(uint32(x[i]), uint32(y[i]), uint32(b))
		z[i] = Word(d)
		b = Word(borrow)
	}
	return b
}

// mulAddVWW sets z = x*m + a (a single-limb multiply-accumulate) and
// returns the carry limb. It mirrors mulAdd10VWW, the routine
// dec_conv.go's digit scanner uses to fold a freshly parsed digit
// group into the running mantissa.
func mulAddVWW(z, x []Word, m, a Word) (c Word) {
	c = a
	for i := 0; i < len(z) && i < len(x); i++ {
		hi, lo := bits.Mul32(uint32(x[i]), uint32(m))
		lo64 := uint64(lo) + uint64(c)
		z[i] = Word(lo64)
		c = Word(uint64(hi) + lo64>>_W)
	}
	return c
}

// shlVU sets z = x << s (s < _W bits) and returns the bits shifted out
// of the top limb. It mirrors shl10VU, but shifts binary bits instead
// of decimal digits.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var prev Word
	for i := 0; i < len(z) && i < len(x); i++ {
		xi := x[i]
		z[i] = xi<<s | prev
		prev = xi >> (_W - s)
	}
	return prev
}

// shrVU sets z = x >> s (s < _W bits) and returns the bits shifted out
// of the bottom limb, left-justified in a Word. It mirrors shr10VU.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	var next Word
	for i := len(x) - 1; i >= 0; i-- {
		cur := x[i]
		var hi Word
		if i < len(z) {
			hi = cur >> s
		}
		lo := cur << (_W - s)
		if i < len(z) {
			z[i] = hi | next
		}
		next = lo
	}
	return next
}

// cmpVV compares x and y as big-endian-read little-endian digit
// vectors of equal conceptual magnitude (both already normalized, no
// leading zero limbs). It mirrors dec.cmp.
func cmpVV(x, y []Word) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
