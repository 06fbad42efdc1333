// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// Default special-value strings and exponent characters, mirroring
// the ancestor decimal library's package-level MaxBase/MaxPrec
// constants: compile-time defaults rather than mutable process-wide
// state (see SPEC_FULL.md's resolution of the legacy-vs-modern
// options Open Question).
const (
	DefaultNaN      = "NaN"
	DefaultInf      = "inf"
	DefaultInfinity = "infinity"
)

// ParseOptions bundles every knob the float and integer parsers
// consult. The zero value is not valid; construct with NewParseOptions.
type ParseOptions struct {
	radix    uint8
	format   NumberFormat
	lossy    bool
	rounding RoundingMode
	nan      string
	inf      string
	infinity string
}

// NewParseOptions validates and builds a ParseOptions for the given
// radix and format, with all other fields at their defaults
// (ToNearestEven rounding, strict mode, the default special-value
// strings). Use the With* methods to override individual fields.
func NewParseOptions(radix uint8, format NumberFormat) (ParseOptions, error) {
	o := ParseOptions{
		radix:    radix,
		format:   format,
		nan:      DefaultNaN,
		inf:      DefaultInf,
		infinity: DefaultInfinity,
	}
	if err := o.validate(); err != nil {
		return ParseOptions{}, err
	}
	return o, nil
}

// WithFormat returns a copy of o using the given grammar format.
func (o ParseOptions) WithFormat(format NumberFormat) ParseOptions { o.format = format; return o }

// WithLossy returns a copy of o with lossy float parsing enabled: the
// slow path is skipped and the moderate-path candidate is accepted
// unconditionally (at most 1 ulp of error).
func (o ParseOptions) WithLossy(lossy bool) ParseOptions { o.lossy = lossy; return o }

// WithRounding returns a copy of o using the given rounding mode for
// slow-path halfway cases.
func (o ParseOptions) WithRounding(mode RoundingMode) ParseOptions { o.rounding = mode; return o }

// WithSpecialStrings returns a copy of o using the given NaN/Inf/
// Infinity byte strings, validated per the rules in SPEC_FULL.md's
// data-model section.
func (o ParseOptions) WithSpecialStrings(nan, inf, infinity string) (ParseOptions, error) {
	o.nan, o.inf, o.infinity = nan, inf, infinity
	if err := o.validate(); err != nil {
		return ParseOptions{}, err
	}
	return o, nil
}

func (o ParseOptions) validate() error {
	if o.radix < 2 || o.radix > 36 {
		panic("lexical: radix out of range [2, 36]")
	}
	sep := o.format.DigitSeparator()
	if sep != 0 {
		if isDigit(sep, o.radix) || sep == '+' || sep == '-' {
			panic("lexical: digit separator collides with a digit or sign")
		}
	}
	marker := o.format.exponentChar(o.radix)
	if isDigit(marker, o.radix) {
		panic("lexical: exponent character is a digit in the chosen radix")
	}
	if len(o.nan) == 0 || (o.nan[0] != 'N' && o.nan[0] != 'n') {
		return newError(ErrInvalidDigit, 0)
	}
	if len(o.inf) == 0 || (o.inf[0] != 'I' && o.inf[0] != 'i') {
		return newError(ErrInvalidDigit, 0)
	}
	if len(o.infinity) < len(o.inf) {
		return newError(ErrInvalidDigit, 0)
	}
	return nil
}

// WriteOptions bundles the knobs the integer and float writers
// consult.
type WriteOptions struct {
	radix       uint8
	exponent    byte
	nan         string
	inf         string
	trimFloats  bool
}

// NewWriteOptions validates and builds a WriteOptions for the given
// radix.
func NewWriteOptions(radix uint8) WriteOptions {
	if radix < 2 || radix > 36 {
		panic("lexical: radix out of range [2, 36]")
	}
	exp := byte('e')
	if radix == 16 {
		exp = 'p'
	}
	return WriteOptions{radix: radix, exponent: exp, nan: DefaultNaN, inf: DefaultInf}
}

// WithExponentChar returns a copy of o using b as the written
// exponent marker.
func (o WriteOptions) WithExponentChar(b byte) WriteOptions { o.exponent = b; return o }

// WithTrimFloats returns a copy of o with trailing ".0" trimmed from
// integer-valued floats when trim is true.
func (o WriteOptions) WithTrimFloats(trim bool) WriteOptions { o.trimFloats = trim; return o }

// WithSpecialStrings returns a copy of o using the given NaN/Inf byte
// strings.
func (o WriteOptions) WithSpecialStrings(nan, inf string) WriteOptions {
	o.nan, o.inf = nan, inf
	return o
}

var (
	defaultParseOptions = ParseOptions{radix: 10, nan: DefaultNaN, inf: DefaultInf, infinity: DefaultInfinity}
	defaultWriteOptions = NewWriteOptions(10)
)
