// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capi is the foreign-language callable surface: it converts
// this library's (value, error) and (value, ok) results into C-layout
// tagged unions and converts Go byte slices to/from raw pointer
// ranges, for embedding this library behind a cgo or FFI boundary.
// This is a thin marshalling layer only; the core lexical package has
// no dependency on it and never imports unsafe.
package capi

import (
	"unsafe"

	"github.com/db47h/lexical"
)

// resultTag mirrors the two-state tag every Result/Option union
// carries: which branch of the union is live.
type resultTag uint8

const (
	tagOk  resultTag = 0
	tagErr resultTag = 1
)

// CError is the C-layout form of *lexical.Error: a stable numeric code
// plus a byte offset, with no pointer fields so it can be copied
// across an FFI boundary by value.
type CError struct {
	Code  int32
	Index int64
}

func toCError(err error) CError {
	if le, ok := err.(*lexical.Error); ok {
		return CError{Code: int32(le.Code), Index: int64(le.Index)}
	}
	return CError{Code: -1, Index: -1}
}

// ResultI64 is the tagged union `Result<i64>`: Tag selects which of
// Value/Err is meaningful.
type ResultI64 struct {
	Tag   resultTag
	Value int64
	Err   CError
}

// ResultU64 is the tagged union `Result<u64>`.
type ResultU64 struct {
	Tag   resultTag
	Value uint64
	Err   CError
}

// ResultF64 is the tagged union `Result<f64>`.
type ResultF64 struct {
	Tag   resultTag
	Value float64
	Err   CError
}

// ResultF32 is the tagged union `Result<f32>`.
type ResultF32 struct {
	Tag   resultTag
	Value float32
	Err   CError
}

// ByteSpan is a pointer range (first, last) standing in for a Go slice
// at the FFI boundary: [First, Last). It is valid only as long as the
// Go slice it was built from is kept alive by the caller.
type ByteSpan struct {
	First unsafe.Pointer
	Last  unsafe.Pointer
}

// SpanFromBytes builds a ByteSpan over b. b must not be empty; an
// empty span has no well-defined pair of pointers to hand across the
// boundary, which is a programmer error here rather than a data error
// (see the core package's panic policy).
func SpanFromBytes(b []byte) ByteSpan {
	if len(b) == 0 {
		panic("capi: empty byte slice has no span")
	}
	first := unsafe.Pointer(&b[0])
	last := unsafe.Pointer(uintptr(first) + uintptr(len(b)))
	return ByteSpan{First: first, Last: last}
}

// Bytes reconstructs the Go byte slice a ByteSpan was built from. The
// caller must ensure the backing memory is still alive and that First
// <= Last.
func (s ByteSpan) Bytes() []byte {
	n := int(uintptr(s.Last) - uintptr(s.First))
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(s.First), n)
}

// ParseInt64 parses the bytes in s as a signed 64-bit decimal integer
// and returns a Result<i64> plus the number of bytes consumed.
func ParseInt64(s ByteSpan) (ResultI64, int) {
	v, n, err := lexical.ParseInt64(s.Bytes())
	if err != nil {
		return ResultI64{Tag: tagErr, Err: toCError(err)}, n
	}
	return ResultI64{Tag: tagOk, Value: v}, n
}

// ParseUint64 parses the bytes in s as an unsigned 64-bit decimal
// integer and returns a Result<u64> plus the number of bytes consumed.
func ParseUint64(s ByteSpan) (ResultU64, int) {
	v, n, err := lexical.ParseUint64(s.Bytes())
	if err != nil {
		return ResultU64{Tag: tagErr, Err: toCError(err)}, n
	}
	return ResultU64{Tag: tagOk, Value: v}, n
}

// ParseFloat64 parses the bytes in s as a decimal float64 and returns
// a Result<f64> plus the number of bytes consumed.
func ParseFloat64(s ByteSpan) (ResultF64, int) {
	v, n, err := lexical.ParseFloat64(s.Bytes())
	if err != nil {
		return ResultF64{Tag: tagErr, Err: toCError(err)}, n
	}
	return ResultF64{Tag: tagOk, Value: v}, n
}

// ParseFloat32 parses the bytes in s as a decimal float32 and returns
// a Result<f32> plus the number of bytes consumed.
func ParseFloat32(s ByteSpan) (ResultF32, int) {
	v, n, err := lexical.ParseFloat32(s.Bytes())
	if err != nil {
		return ResultF32{Tag: tagErr, Err: toCError(err)}, n
	}
	return ResultF32{Tag: tagOk, Value: v}, n
}

// WriteInt64 writes v into the buffer spanned by s in decimal and
// returns the number of bytes written, or the `Option<usize>` empty
// state (ok=false) if s is too small.
func WriteInt64(s ByteSpan, v int64) (n int, ok bool) {
	buf := s.Bytes()
	const maxInt64Digits = 20 // sign + 19 digits
	if len(buf) < maxInt64Digits {
		return 0, false
	}
	return lexical.WriteInt64(buf, v), true
}

// WriteFloat64 writes v into the buffer spanned by s and returns the
// number of bytes written, or ok=false if s is too small for the
// worst case.
func WriteFloat64(s ByteSpan, v float64) (n int, ok bool) {
	buf := s.Bytes()
	const maxFloat64Size = 400
	if len(buf) < maxFloat64Size {
		return 0, false
	}
	return lexical.WriteFloat64(buf, v), true
}
