// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// NumberFormat packs the lexical grammar rules a parser enforces into
// a single 64-bit word: a set of boolean flags in the low bits, and
// four packed ASCII punctuation bytes in the high bits. Compiling the
// grammar to a flag word lets dataiter.go test a rule with a single
// AND instead of branching on a struct of bools, the same bit-packing
// style stdlib.go uses for form/RoundingMode/Accuracy, scaled up to a
// whole grammar instead of three small enums.
type NumberFormat uint64

// Flag bits. Each corresponds 1:1 to a rule named in SPEC_FULL.md's
// NumberFormat data-model section.
const (
	RequiredIntegerDigits NumberFormat = 1 << iota
	RequiredFractionDigits
	RequiredExponentDigits
	NoPositiveMantissaSign
	RequiredMantissaSign
	NoPositiveExponentSign
	RequiredExponentSign
	NoExponentNotation
	RequiredExponentNotation
	NoSpecial
	CaseSensitiveSpecial
	NoIntegerLeadingZeros
	NoFloatLeadingZeros

	IntegerInternalDigitSeparator
	IntegerLeadingDigitSeparator
	IntegerTrailingDigitSeparator
	IntegerConsecutiveDigitSeparator
	FractionInternalDigitSeparator
	FractionLeadingDigitSeparator
	FractionTrailingDigitSeparator
	FractionConsecutiveDigitSeparator
	ExponentInternalDigitSeparator
	ExponentLeadingDigitSeparator
	ExponentTrailingDigitSeparator
	ExponentConsecutiveDigitSeparator
	SpecialDigitSeparator
	NoExponentWithoutFraction

	flagBitsUsed // sentinel: one past the highest flag bit
)

// Packed-byte fields occupy the top 32 bits, 8 bits each.
const (
	shiftDecimalPoint     = 32
	shiftExponentDefault  = 40
	shiftExponentBackup   = 48
	shiftDigitSeparator   = 56
	byteFieldMask         = 0xff
)

func (f NumberFormat) has(bit NumberFormat) bool { return f&bit != 0 }

func (f NumberFormat) byteField(shift uint) byte { return byte(f >> shift & byteFieldMask) }

func withByteField(f NumberFormat, shift uint, b byte) NumberFormat {
	return f&^(NumberFormat(byteFieldMask)<<shift) | NumberFormat(b)<<shift
}

// DecimalPoint returns the configured decimal-point byte (default '.').
func (f NumberFormat) DecimalPoint() byte {
	if b := f.byteField(shiftDecimalPoint); b != 0 {
		return b
	}
	return '.'
}

// WithDecimalPoint returns a copy of f with the decimal point set to b.
func (f NumberFormat) WithDecimalPoint(b byte) NumberFormat {
	return withByteField(f, shiftDecimalPoint, b)
}

// ExponentDefault returns the primary exponent marker (default 'e').
func (f NumberFormat) ExponentDefault() byte {
	if b := f.byteField(shiftExponentDefault); b != 0 {
		return b
	}
	return 'e'
}

// WithExponentDefault returns a copy of f with the primary exponent
// marker set to b.
func (f NumberFormat) WithExponentDefault(b byte) NumberFormat {
	return withByteField(f, shiftExponentDefault, b)
}

// ExponentBackup returns the exponent marker used when the active
// radix consumes the default marker as a digit (default '^').
func (f NumberFormat) ExponentBackup() byte {
	if b := f.byteField(shiftExponentBackup); b != 0 {
		return b
	}
	return '^'
}

// WithExponentBackup returns a copy of f with the backup exponent
// marker set to b.
func (f NumberFormat) WithExponentBackup(b byte) NumberFormat {
	return withByteField(f, shiftExponentBackup, b)
}

// DigitSeparator returns the configured digit-separator byte (default
// 0, meaning "none configured"; a zero separator byte can never match
// since it is not a valid input byte for any grammar rule).
func (f NumberFormat) DigitSeparator() byte {
	return f.byteField(shiftDigitSeparator)
}

// WithDigitSeparator returns a copy of f with the digit separator set
// to b.
func (f NumberFormat) WithDigitSeparator(b byte) NumberFormat {
	return withByteField(f, shiftDigitSeparator, b)
}

// exponentChar picks the marker to scan for at the given radix: the
// backup marker if the default marker is itself a valid digit in that
// radix (radix >= 15 for the default 'e'/'E'), the default marker
// otherwise.
func (f NumberFormat) exponentChar(radix uint8) byte {
	d := f.ExponentDefault()
	if isDigit(d|0x20, radix) {
		return f.ExponentBackup()
	}
	return d
}

func (f NumberFormat) integerSepPolicy() sepPolicy {
	return sepPolicy{
		leading:     f.has(IntegerLeadingDigitSeparator),
		internal:    f.has(IntegerInternalDigitSeparator),
		trailing:    f.has(IntegerTrailingDigitSeparator),
		consecutive: f.has(IntegerConsecutiveDigitSeparator),
	}
}

func (f NumberFormat) fractionSepPolicy() sepPolicy {
	return sepPolicy{
		leading:     f.has(FractionLeadingDigitSeparator),
		internal:    f.has(FractionInternalDigitSeparator),
		trailing:    f.has(FractionTrailingDigitSeparator),
		consecutive: f.has(FractionConsecutiveDigitSeparator),
	}
}

func (f NumberFormat) exponentSepPolicy() sepPolicy {
	return sepPolicy{
		leading:     f.has(ExponentLeadingDigitSeparator),
		internal:    f.has(ExponentInternalDigitSeparator),
		trailing:    f.has(ExponentTrailingDigitSeparator),
		consecutive: f.has(ExponentConsecutiveDigitSeparator),
	}
}

// Preset formats. Standard is the zero value: permissive punctuation
// defaults, no separators, no extra strictness beyond the base
// grammar (§4.1).
const (
	Standard NumberFormat = 0

	// Permissive accepts digit separators anywhere within any region,
	// including consecutively, using '_' as the separator byte.
	Permissive = IntegerInternalDigitSeparator | IntegerLeadingDigitSeparator |
		IntegerTrailingDigitSeparator | IntegerConsecutiveDigitSeparator |
		FractionInternalDigitSeparator | FractionLeadingDigitSeparator |
		FractionTrailingDigitSeparator | FractionConsecutiveDigitSeparator |
		ExponentInternalDigitSeparator | ExponentLeadingDigitSeparator |
		ExponentTrailingDigitSeparator | ExponentConsecutiveDigitSeparator |
		SpecialDigitSeparator | NumberFormat('_')<<shiftDigitSeparator

	// JSON matches RFC 8259 §6: no leading zeros in the integer part
	// (other than a lone "0"), a decimal point must be followed by at
	// least one fraction digit, and no digit separators of any kind.
	JSON NumberFormat = NoIntegerLeadingZeros | RequiredFractionDigits | RequiredExponentDigits

	// Rust matches the literal grammar accepted by Rust's own float
	// and integer literals: no leading zeros, at least one digit after
	// a decimal point (digits before it are not required), and '_' as
	// an internal-only digit separator (`1_000` is accepted, `_1000`
	// and `1000_` are not). Added per this package's supplemented
	// feature set: Rust is the source language of the library this
	// package ports.
	Rust NumberFormat = NoIntegerLeadingZeros | NoFloatLeadingZeros |
		RequiredFractionDigits | RequiredExponentDigits |
		IntegerInternalDigitSeparator | FractionInternalDigitSeparator |
		NumberFormat('_')<<shiftDigitSeparator
)
