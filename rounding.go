// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

//go:generate stringer -type=RoundingMode

// RoundingMode selects how atof_slow.go resolves an exact halfway
// case between two adjacent representable floats. It mirrors
// stdlib.go's RoundingMode enum from the ancestor decimal library,
// narrowed to the four modes SPEC_FULL.md's rounding feature calls
// for (the decimal library's ToZero/AwayFromZero/ToNearestEven/
// ToNearestAway map directly; ToPositiveInf/ToNegativeInf there
// collapse into this package's single magnitude-relative
// TowardInfinity, since sign is handled by the caller).
type RoundingMode int

const (
	// ToNearestEven rounds a halfway case to the candidate with an
	// even low-order mantissa bit. This is IEEE-754's default and
	// this package's default.
	ToNearestEven RoundingMode = iota
	// ToNearestAway rounds a halfway case away from zero.
	ToNearestAway
	// TowardZero always takes the candidate with smaller magnitude.
	TowardZero
	// TowardInfinity always takes the candidate with larger magnitude.
	TowardInfinity
)

// resolve picks between lo and hi (lo < hi, both candidate magnitude
// bit patterns for the same FloatLayout) given that the exact parsed
// value compares exactly equal to their shared midpoint. loOdd
// reports whether lo's mantissa low bit is 1.
func (m RoundingMode) resolve(loOdd bool) (pickHi bool) {
	switch m {
	case ToNearestEven:
		return loOdd
	case ToNearestAway:
		return true // away from zero == the larger magnitude, since both are positive here
	case TowardZero:
		return false
	case TowardInfinity:
		return true
	default:
		return loOdd
	}
}
