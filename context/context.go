// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a fluent wrapper around lexical's
// ParseOptions/WriteOptions, for callers converting many values under
// the same radix/format/rounding settings.
//
// All methods of the form
//
//	func (c *Context) ParseT(b []byte) T
//	func (c *Context) WriteT(buf []byte, v T) int
//
// parse or write using c's options and return the zero value (and, for
// WriteT, 0 bytes written) once c has recorded an error. Further calls
// are then no-ops until (*Context).Err is called to check for and
// clear the error.
package context

import (
	"github.com/db47h/lexical"
)

// A Context bundles a ParseOptions/WriteOptions pair and accumulates
// the first error encountered across a sequence of conversions, the
// way decimal/context.Context catches the first NaN-producing
// operation rather than forcing every call site to check an error.
type Context struct {
	parse lexical.ParseOptions
	write lexical.WriteOptions
	err   error
}

// New creates a Context for the given radix, with default (strict,
// ToNearestEven, non-lossy) parse options and default write options.
func New(radix uint8) (*Context, error) {
	p, err := lexical.NewParseOptions(radix, lexical.Standard)
	if err != nil {
		return nil, err
	}
	return &Context{parse: p, write: lexical.NewWriteOptions(radix)}, nil
}

// WithFormat returns c with its parse grammar set to format.
func (c *Context) WithFormat(format lexical.NumberFormat) *Context {
	c.parse = c.parse.WithFormat(format)
	return c
}

// WithRounding returns c with its slow-path float rounding mode set to
// mode.
func (c *Context) WithRounding(mode lexical.RoundingMode) *Context {
	c.parse = c.parse.WithRounding(mode)
	return c
}

// WithLossy returns c with lossy float parsing enabled or disabled.
func (c *Context) WithLossy(lossy bool) *Context {
	c.parse = c.parse.WithLossy(lossy)
	return c
}

// WithExponentChar returns c with its written exponent marker set to b.
func (c *Context) WithExponentChar(b byte) *Context {
	c.write = c.write.WithExponentChar(b)
	return c
}

// WithTrimFloats returns c with trailing ".0" trimming for
// integer-valued floats enabled or disabled.
func (c *Context) WithTrimFloats(trim bool) *Context {
	c.write = c.write.WithTrimFloats(trim)
	return c
}

// Err returns the first error recorded since the last call to Err, and
// clears the error state.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// ParseInt64 parses b as a signed 64-bit integer using c's options. If
// c already holds an error, or parsing fails, it records the error (if
// any) and returns 0.
func (c *Context) ParseInt64(b []byte) int64 {
	if c.err != nil {
		return 0
	}
	v, _, err := lexical.ParseInt64WithOptions(b, c.parse)
	if err != nil {
		c.fail(err)
		return 0
	}
	return v
}

// ParseUint64 parses b as an unsigned 64-bit integer using c's options.
func (c *Context) ParseUint64(b []byte) uint64 {
	if c.err != nil {
		return 0
	}
	v, _, err := lexical.ParseUint64WithOptions(b, c.parse)
	if err != nil {
		c.fail(err)
		return 0
	}
	return v
}

// ParseFloat64 parses b as a float64 using c's options.
func (c *Context) ParseFloat64(b []byte) float64 {
	if c.err != nil {
		return 0
	}
	v, _, err := lexical.ParseFloat64WithOptions(b, c.parse)
	if err != nil {
		c.fail(err)
		return 0
	}
	return v
}

// ParseFloat32 parses b as a float32 using c's options.
func (c *Context) ParseFloat32(b []byte) float32 {
	if c.err != nil {
		return 0
	}
	v, _, err := lexical.ParseFloat32WithOptions(b, c.parse)
	if err != nil {
		c.fail(err)
		return 0
	}
	return v
}

// WriteInt64 writes v into buf using c's options, returning the number
// of bytes written, or 0 if c already holds an error.
func (c *Context) WriteInt64(buf []byte, v int64) int {
	if c.err != nil {
		return 0
	}
	return lexical.WriteInt64WithOptions(buf, v, c.write)
}

// WriteUint64 writes v into buf using c's options.
func (c *Context) WriteUint64(buf []byte, v uint64) int {
	if c.err != nil {
		return 0
	}
	return lexical.WriteUint64WithOptions(buf, v, c.write)
}

// WriteFloat64 writes v into buf using c's options.
func (c *Context) WriteFloat64(buf []byte, v float64) int {
	if c.err != nil {
		return 0
	}
	return lexical.WriteFloat64WithOptions(buf, v, c.write)
}

// WriteFloat32 writes v into buf using c's options.
func (c *Context) WriteFloat32(buf []byte, v float32) int {
	if c.err != nil {
		return 0
	}
	return lexical.WriteFloat32WithOptions(buf, v, c.write)
}
