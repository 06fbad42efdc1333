// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math"

// specialKind identifies which special-value keyword matchSpecial
// found, if any.
type specialKind int

const (
	specialNone specialKind = iota
	specialNaN
	specialInf
)

// matchSpecial tries o's infinity, inf and nan keywords against the
// front of b, longest first (infinity must be tried before inf, since
// inf is a prefix of it), and returns which one matched along with the
// number of input bytes it consumed.
func matchSpecial(b []byte, o ParseOptions) (specialKind, int) {
	if n, ok := matchKeyword(b, o.infinity, o.format); ok {
		return specialInf, n
	}
	if n, ok := matchKeyword(b, o.inf, o.format); ok {
		return specialInf, n
	}
	if n, ok := matchKeyword(b, o.nan, o.format); ok {
		return specialNaN, n
	}
	return specialNone, 0
}

// matchKeyword reports whether b starts with kw, case-insensitively
// unless format requires CaseSensitiveSpecial, optionally skipping
// digit-separator bytes interspersed in b when format.SpecialDigitSeparator
// is set (so e.g. "in_f" matches the keyword "inf" under that flag).
func matchKeyword(b []byte, kw string, format NumberFormat) (consumed int, ok bool) {
	if kw == "" {
		return 0, false
	}
	sep := format.DigitSeparator()
	allowSep := sep != 0 && format.has(SpecialDigitSeparator)
	caseSensitive := format.has(CaseSensitiveSpecial)

	i, k := 0, 0
	for k < len(kw) {
		if i >= len(b) {
			return 0, false
		}
		if allowSep && b[i] == sep {
			i++
			continue
		}
		c1, c2 := b[i], kw[k]
		if !caseSensitive {
			c1 |= 0x20
			c2 |= 0x20
		}
		if c1 != c2 {
			return 0, false
		}
		i++
		k++
	}
	return i, true
}

func nanBits(lay FloatLayout) uint64 {
	return lay.expMax()<<lay.MantissaBits | 1<<(lay.MantissaBits-1)
}

func infBits(lay FloatLayout) uint64 {
	return lay.expMax() << lay.MantissaBits
}

// parseExponentValue folds f's exponent digit region into a signed
// int32, clamping rather than overflowing: any magnitude this large
// already drives the parsed value to +-Inf or +-0 regardless of its
// exact value, so saturating it is observationally the same as
// computing it exactly and is far cheaper than a BigInt fold.
func parseExponentValue(f floatFields, sep byte, radix uint8) int32 {
	var mag Uint128
	for _, ch := range f.exponent {
		if ch == sep {
			continue
		}
		var of1, of2 bool
		mag, of1 = mag.MulUint64(uint64(radix))
		mag, of2 = mag.AddUint64(uint64(digitValue(ch)))
		if of1 || of2 {
			mag = Uint128{Lo: 1 << 30}
		}
	}
	e := mag.Lo
	if mag.Hi != 0 || e > 1<<30 {
		e = 1 << 30
	}
	v := int32(e)
	if f.expNegative {
		v = -v
	}
	return v
}

// parseFloatCore implements the float grammar shared by every radix
// and target width: optional sign, then dispatch on the first
// remaining byte to either the special-value matcher or the numeric
// path, per SPEC_FULL.md §4.3. It returns the unsigned bit pattern (in
// lay's layout) and the parsed sign separately; callers apply the sign
// bit and reinterpret the pattern as their native float type.
func parseFloatCore(b []byte, lay FloatLayout, o ParseOptions, partial bool) (bitsPattern uint64, neg bool, consumed int, err *Error) {
	i := 0
	signSeen := false
	if i < len(b) && (b[i] == '+' || b[i] == '-') {
		neg = b[i] == '-'
		signSeen = true
		if !neg && o.format.has(NoPositiveMantissaSign) {
			return 0, false, 0, newError(ErrInvalidPositiveMantissaSign, 0)
		}
		i++
	}
	if !signSeen && o.format.has(RequiredMantissaSign) {
		return 0, false, 0, newError(ErrMissingMantissaSign, 0)
	}

	rest := b[i:]
	if len(rest) == 0 {
		return 0, neg, i, newError(ErrEmpty, i)
	}

	if !o.format.has(NoSpecial) {
		if kind, n := matchSpecial(rest, o); kind != specialNone {
			consumed = i + n
			if !partial && consumed < len(b) {
				return 0, neg, consumed, newError(ErrInvalidDigit, consumed)
			}
			if kind == specialNaN {
				return nanBits(lay), neg, consumed, nil
			}
			return infBits(lay), neg, consumed, nil
		}
	}

	base := i
	f, n := extractFloatFields(rest, o.format, o.radix)
	if verr := validateFloatFields(f, o.format, base); verr != nil {
		return 0, neg, base, verr
	}
	consumed = i + n
	if !partial && consumed < len(b) {
		return 0, neg, consumed, newError(ErrInvalidDigit, consumed)
	}

	sep := o.format.DigitSeparator()
	digits, pointPos, truncated, isZero := buildMantissaDigits(f, sep)
	if isZero {
		return 0, neg, consumed, nil
	}

	rawExp := int32(0)
	if f.hasExponent {
		rawExp = parseExponentValue(f, sep, o.radix)
	}
	scientificExp := pointPos - 1 + rawExp

	bitsPattern = parseFloatMagnitude(lay, digits.digits(), scientificExp, o.radix, truncated, o)
	return bitsPattern, neg, consumed, nil
}

// parseFloatMagnitude selects a tier (fast, moderate, then slow only if
// the moderate candidate is not provably correct) and returns the
// unsigned bit pattern of the correctly-rounded result, per
// SPEC_FULL.md §4.3-4.5.
func parseFloatMagnitude(lay FloatLayout, digits []byte, scientificExp int32, radix uint8, truncated int, o ParseOptions) uint64 {
	// Magnitudes certainly above the largest finite value, or below half
	// the smallest subnormal, saturate to +Inf or +0 before any tier runs.
	lg := math.Log2(float64(radix))
	if float64(scientificExp)*lg > float64(lay.Bias)+2 {
		return infBits(lay)
	}
	if float64(scientificExp+1)*lg < -float64(lay.Bias+int32(lay.MantissaBits))-2 {
		return 0
	}

	if radix == 10 {
		if lay.width == 64 {
			if f, ok := fastPathDecimal64(digits, scientificExp); ok {
				return math.Float64bits(f)
			}
		} else if f, ok := fastPathDecimal32(digits, scientificExp); ok {
			return uint64(math.Float32bits(f))
		}
	} else if shift, ok := log2Radix(radix); ok {
		if bitsPattern, ok := fastPathPow2(lay, digits, scientificExp, shift); ok {
			return bitsPattern
		}
	}

	candidate, exact := moderatePath(lay, digits, scientificExp, radix, truncated > 0)
	if exact || o.lossy {
		return candidate
	}
	digitExp := scientificExp - int32(len(digits)-1)
	return slowPath(lay, digits, radix, digitExp, truncated, candidate, o.rounding)
}

func applySign(bitsPattern uint64, lay FloatLayout, neg bool) uint64 {
	if neg {
		return bitsPattern | 1<<(lay.MantissaBits+lay.ExponentBits)
	}
	return bitsPattern
}

// Exported entry points, per SPEC_FULL.md §6's float parser surface.

func ParseFloat64(b []byte) (float64, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float64Layout, defaultParseOptions, false)
	if err != nil {
		return 0, n, err
	}
	return math.Float64frombits(applySign(bitsPattern, float64Layout, neg)), n, nil
}

func ParseFloat64Partial(b []byte) (float64, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float64Layout, defaultParseOptions, true)
	if err != nil {
		return 0, n, err
	}
	return math.Float64frombits(applySign(bitsPattern, float64Layout, neg)), n, nil
}

func ParseFloat64WithOptions(b []byte, o ParseOptions) (float64, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float64Layout, o, false)
	if err != nil {
		return 0, n, err
	}
	return math.Float64frombits(applySign(bitsPattern, float64Layout, neg)), n, nil
}

func ParseFloat64PartialWithOptions(b []byte, o ParseOptions) (float64, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float64Layout, o, true)
	if err != nil {
		return 0, n, err
	}
	return math.Float64frombits(applySign(bitsPattern, float64Layout, neg)), n, nil
}

func ParseFloat32(b []byte) (float32, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float32Layout, defaultParseOptions, false)
	if err != nil {
		return 0, n, err
	}
	return math.Float32frombits(uint32(applySign(bitsPattern, float32Layout, neg))), n, nil
}

func ParseFloat32Partial(b []byte) (float32, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float32Layout, defaultParseOptions, true)
	if err != nil {
		return 0, n, err
	}
	return math.Float32frombits(uint32(applySign(bitsPattern, float32Layout, neg))), n, nil
}

func ParseFloat32WithOptions(b []byte, o ParseOptions) (float32, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float32Layout, o, false)
	if err != nil {
		return 0, n, err
	}
	return math.Float32frombits(uint32(applySign(bitsPattern, float32Layout, neg))), n, nil
}

func ParseFloat32PartialWithOptions(b []byte, o ParseOptions) (float32, int, error) {
	bitsPattern, neg, n, err := parseFloatCore(b, float32Layout, o, true)
	if err != nil {
		return 0, n, err
	}
	return math.Float32frombits(uint32(applySign(bitsPattern, float32Layout, neg))), n, nil
}
