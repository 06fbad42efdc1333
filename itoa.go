// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitToBase10Squared is the 200-byte two-digit decimal lookup table
// SPEC_FULL.md's integer writer section names: entry 2*n/2*n+1 holds
// the two decimal digits of n for n in [0, 100). Peeling two digits
// per loop iteration instead of one roughly halves the iteration
// count for the common decimal case. Built at init instead of
// transcribed, to avoid a 200-character literal that is only checked
// by eye.
var digitToBase10Squared [200]byte

// genericDigits is the per-digit lookup table used for every radix
// other than the batched decimal fast path; output always uses
// uppercase letters for digit values 10-35, per SPEC_FULL.md §6.
const genericDigits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func init() {
	for n := 0; n < 100; n++ {
		digitToBase10Squared[2*n] = byte('0' + n/10)
		digitToBase10Squared[2*n+1] = byte('0' + n%10)
	}
}

// writeUintMagnitude writes the base-radix digits of mag into buf,
// most significant digit first, and returns the number of bytes
// written. buf must be at least formattedSize(width, radix) bytes
// long, excluding any sign byte.
func writeUintMagnitude(buf []byte, mag Uint128, radix uint8) int {
	if mag.IsZero() {
		buf[0] = '0'
		return 1
	}

	var tmp [128]byte // enough for the widest supported primitive (u128) in binary
	pos := len(tmp)

	if radix == 10 {
		for mag.Hi == 0 && mag.Lo >= 100 {
			d := mag.Lo % 100
			mag.Lo /= 100
			pos -= 2
			tmp[pos] = digitToBase10Squared[2*d]
			tmp[pos+1] = digitToBase10Squared[2*d+1]
		}
		for !mag.IsZero() {
			var r uint64
			mag, r = mag.DivModUint64(10)
			pos--
			tmp[pos] = genericDigits[r]
		}
	} else {
		for !mag.IsZero() {
			var r uint64
			mag, r = mag.DivModUint64(uint64(radix))
			pos--
			tmp[pos] = genericDigits[r]
		}
	}

	n := copy(buf, tmp[pos:])
	return n
}

// formattedSize returns the maximum number of bytes writeUintMagnitude
// (plus a leading sign byte for signed widths) can ever write for the
// given width and radix: the exact digit count of the width's largest
// magnitude in that base, computed once via math/big rather than
// taken from a hand-maintained table, so it can never silently fall
// out of sync with intWidth's bounds.
func formattedSize(width intWidth, radix uint8) int {
	limit := width.maxMag
	if width.signed && width.minMag.Cmp(limit) > 0 {
		limit = width.minMag
	}
	n := len(limit.Big().Text(int(radix)))
	if width.signed {
		n++
	}
	return n
}

var (
	sizeU8   = formattedSize(widthU8, 10)
	sizeU16  = formattedSize(widthU16, 10)
	sizeU32  = formattedSize(widthU32, 10)
	sizeU64  = formattedSize(widthU64, 10)
	sizeU128 = formattedSize(widthU128, 10)
	sizeI8   = formattedSize(widthI8, 10)
	sizeI16  = formattedSize(widthI16, 10)
	sizeI32  = formattedSize(widthI32, 10)
	sizeI64  = formattedSize(widthI64, 10)
	sizeI128 = formattedSize(widthI128, 10)
)

// writeSigned writes v into buf using the given radix and returns the
// number of bytes written. It does not check buf's length: its callers
// first pass buf through checkBuf against formattedSize(width, radix),
// which panics on an undersized destination buffer, a programmer
// error per SPEC_FULL.md's Errors entry.
func writeSigned(buf []byte, v int64, radix uint8) int {
	if v >= 0 {
		return writeUintMagnitude(buf, Uint128{Lo: uint64(v)}, radix)
	}
	buf[0] = '-'
	// Negate via unsigned wraparound so math.MinInt64 (whose magnitude
	// has no positive int64 representation) negates correctly.
	mag := uint64(-v)
	return 1 + writeUintMagnitude(buf[1:], Uint128{Lo: mag}, radix)
}

func writeUnsigned(buf []byte, v uint64, radix uint8) int {
	return writeUintMagnitude(buf, Uint128{Lo: v}, radix)
}

func checkBuf(buf []byte, need int) {
	if len(buf) < need {
		panic("lexical: output buffer too small")
	}
}

// Exported writers. WriteT writes v in decimal; WriteTWithOptions
// writes using the radix and exponent/sign conventions in o (only
// radix applies to integers).

func WriteUint8(buf []byte, v uint8) int {
	checkBuf(buf, sizeU8)
	return writeUnsigned(buf, uint64(v), 10)
}
func WriteUint8WithOptions(buf []byte, v uint8, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthU8, o.radix))
	return writeUnsigned(buf, uint64(v), o.radix)
}

func WriteUint16(buf []byte, v uint16) int {
	checkBuf(buf, sizeU16)
	return writeUnsigned(buf, uint64(v), 10)
}
func WriteUint16WithOptions(buf []byte, v uint16, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthU16, o.radix))
	return writeUnsigned(buf, uint64(v), o.radix)
}

func WriteUint32(buf []byte, v uint32) int {
	checkBuf(buf, sizeU32)
	return writeUnsigned(buf, uint64(v), 10)
}
func WriteUint32WithOptions(buf []byte, v uint32, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthU32, o.radix))
	return writeUnsigned(buf, uint64(v), o.radix)
}

func WriteUint64(buf []byte, v uint64) int {
	checkBuf(buf, sizeU64)
	return writeUnsigned(buf, v, 10)
}
func WriteUint64WithOptions(buf []byte, v uint64, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthU64, o.radix))
	return writeUnsigned(buf, v, o.radix)
}

func WriteUint128(buf []byte, v Uint128) int {
	checkBuf(buf, sizeU128)
	return writeUintMagnitude(buf, v, 10)
}
func WriteUint128WithOptions(buf []byte, v Uint128, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthU128, o.radix))
	return writeUintMagnitude(buf, v, o.radix)
}

func WriteInt8(buf []byte, v int8) int {
	checkBuf(buf, sizeI8)
	return writeSigned(buf, int64(v), 10)
}
func WriteInt8WithOptions(buf []byte, v int8, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthI8, o.radix))
	return writeSigned(buf, int64(v), o.radix)
}

func WriteInt16(buf []byte, v int16) int {
	checkBuf(buf, sizeI16)
	return writeSigned(buf, int64(v), 10)
}
func WriteInt16WithOptions(buf []byte, v int16, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthI16, o.radix))
	return writeSigned(buf, int64(v), o.radix)
}

func WriteInt32(buf []byte, v int32) int {
	checkBuf(buf, sizeI32)
	return writeSigned(buf, int64(v), 10)
}
func WriteInt32WithOptions(buf []byte, v int32, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthI32, o.radix))
	return writeSigned(buf, int64(v), o.radix)
}

func WriteInt64(buf []byte, v int64) int {
	checkBuf(buf, sizeI64)
	return writeSigned(buf, v, 10)
}
func WriteInt64WithOptions(buf []byte, v int64, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthI64, o.radix))
	return writeSigned(buf, v, o.radix)
}

func WriteInt128(buf []byte, v Int128) int {
	checkBuf(buf, sizeI128)
	if !v.Neg {
		return writeUintMagnitude(buf, v.Mag, 10)
	}
	buf[0] = '-'
	return 1 + writeUintMagnitude(buf[1:], v.Mag, 10)
}
func WriteInt128WithOptions(buf []byte, v Int128, o WriteOptions) int {
	checkBuf(buf, formattedSize(widthI128, o.radix))
	if !v.Neg {
		return writeUintMagnitude(buf, v.Mag, o.radix)
	}
	buf[0] = '-'
	return 1 + writeUintMagnitude(buf[1:], v.Mag, o.radix)
}
