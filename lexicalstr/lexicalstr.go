// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexicalstr provides allocate-owned-string convenience
// wrappers around the core lexical package's buffer-based writers, for
// callers that do not need the core's no-heap guarantee. It mirrors
// decimal_toa.go's Text/String wrapping Append: every function here
// calls the matching core writer on a fixed-size local buffer and
// returns string(buf[:n]), never a new formatting path.
package lexicalstr

import "github.com/db47h/lexical"

// Int64 returns v formatted in decimal, as the core's WriteInt64 would
// write it.
func Int64(v int64) string {
	var buf [24]byte
	n := lexical.WriteInt64(buf[:], v)
	return string(buf[:n])
}

// Uint64 returns v formatted in decimal.
func Uint64(v uint64) string {
	var buf [24]byte
	n := lexical.WriteUint64(buf[:], v)
	return string(buf[:n])
}

// Int128 returns v formatted in decimal.
func Int128(v lexical.Int128) string {
	var buf [48]byte
	n := lexical.WriteInt128(buf[:], v)
	return string(buf[:n])
}

// Uint128 returns v formatted in decimal.
func Uint128(v lexical.Uint128) string {
	var buf [48]byte
	n := lexical.WriteUint128(buf[:], v)
	return string(buf[:n])
}

// Float64 returns v formatted as the shortest decimal that round-trips
// back to v, as the core's WriteFloat64 would write it.
func Float64(v float64) string {
	var buf [400]byte
	n := lexical.WriteFloat64(buf[:], v)
	return string(buf[:n])
}

// Float32 returns v formatted as the shortest decimal that round-trips
// back to v.
func Float32(v float32) string {
	var buf [400]byte
	n := lexical.WriteFloat32(buf[:], v)
	return string(buf[:n])
}

// Float64WithOptions is Float64 using o instead of the default write
// options.
func Float64WithOptions(v float64, o lexical.WriteOptions) string {
	var buf [400]byte
	n := lexical.WriteFloat64WithOptions(buf[:], v, o)
	return string(buf[:n])
}

// Float32WithOptions is Float32 using o instead of the default write
// options.
func Float32WithOptions(v float32, o lexical.WriteOptions) string {
	var buf [400]byte
	n := lexical.WriteFloat32WithOptions(buf[:], v, o)
	return string(buf[:n])
}
