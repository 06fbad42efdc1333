// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// A Word represents a single limb of a BigInt: an unsigned integer in
// base 2**_W. Unlike the ancestor decimal library (whose Word is a
// base-10**9/10**19 "declet" sized to the host's native word), a Word
// here is fixed at 32 bits regardless of GOARCH. BigInt buffers are
// small (bounded by maxBigIntLimbs) and never cross a process
// boundary, so there is no benefit in tracking the architecture's
// native width, and a fixed width keeps cached-power bootstrapping
// and test vectors portable.
type Word uint32

const (
	_W = 32         // bits per Word
	_B = 1 << _W    // digit base, as an (overflowing) ideal
	_M = _B - 1     // digit mask
)

// maxBigIntLimbs bounds the scratch space a BigInt needs to hold the
// exact decimal expansion of any float64 slow-path comparison: the
// spec puts that at <=1092 decimal digits, which is
// ceil(1092*log2(10)/32) = 114 32-bit limbs. 160 leaves headroom for
// the halfway-point scaling performed in atof_slow.go without ever
// reallocating.
const maxBigIntLimbs = 160
