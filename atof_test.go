// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"errors"
	"math"
	"testing"
)

func TestParseFloat64ExactValues(t *testing.T) {
	cases := []struct {
		s    string
		want float64
	}{
		{"0", 0},
		{"-0", 0}, // sign checked separately below
		{"1", 1},
		{"1.5", 1.5},
		{"100", 100},
		{"0.1", 0.1},
		{"3.14159", 3.14159},
		{"1e10", 1e10},
		{"1e-10", 1e-10},
		{"1.7976931348623157e+308", math.MaxFloat64},
		{"5e-324", math.SmallestNonzeroFloat64},
		{"2.2250738585072014e-308", 0x1p-1022}, // smallest normal
	}
	for _, c := range cases {
		v, n, err := ParseFloat64([]byte(c.s))
		if err != nil {
			t.Errorf("ParseFloat64(%q): %v", c.s, err)
			continue
		}
		if n != len(c.s) {
			t.Errorf("ParseFloat64(%q): consumed %d, want %d", c.s, n, len(c.s))
		}
		if math.Float64bits(v) != math.Float64bits(c.want) && !(v == 0 && c.want == 0) {
			t.Errorf("ParseFloat64(%q) = %v (%x), want %v (%x)", c.s, v, math.Float64bits(v), c.want, math.Float64bits(c.want))
		}
	}
}

func TestParseFloat64NegativeZero(t *testing.T) {
	v, _, err := ParseFloat64([]byte("-0"))
	if err != nil {
		t.Fatal(err)
	}
	if math.Signbit(v) != true || v != 0 {
		t.Errorf("ParseFloat64(-0): got %v, signbit %v, want -0", v, math.Signbit(v))
	}
}

func TestParseFloat64Specials(t *testing.T) {
	if v, _, err := ParseFloat64([]byte("NaN")); err != nil || !math.IsNaN(v) {
		t.Errorf("ParseFloat64(NaN) = %v, %v", v, err)
	}
	if v, _, err := ParseFloat64([]byte("inf")); err != nil || !math.IsInf(v, 1) {
		t.Errorf("ParseFloat64(inf) = %v, %v", v, err)
	}
	if v, _, err := ParseFloat64([]byte("-infinity")); err != nil || !math.IsInf(v, -1) {
		t.Errorf("ParseFloat64(-infinity) = %v, %v", v, err)
	}
}

func TestParseFloat64RoundToEvenHalfway(t *testing.T) {
	// A decimal literal chosen to fall exactly halfway between two
	// adjacent float64 values forces the slow path's tie-break:
	// round-to-even should pick the representable value with a zero
	// low mantissa bit.
	v, _, err := ParseFloat64([]byte("9007199254740993")) // 2^53 + 1, halfway between 2^53 and 2^53+2
	if err != nil {
		t.Fatal(err)
	}
	want := math.Float64bits(9007199254740992) // rounds down: low bit of mantissa is 0 there
	if math.Float64bits(v) != want {
		t.Errorf("got %x, want %x", math.Float64bits(v), want)
	}
}

func TestParseFloat32Basic(t *testing.T) {
	v, _, err := ParseFloat32([]byte("3.14"))
	if err != nil {
		t.Fatal(err)
	}
	want := float32(3.14)
	if v != want {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestParseFloat32Overflow(t *testing.T) {
	v, _, err := ParseFloat32([]byte("1e40"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(float64(v), 1) {
		t.Errorf("ParseFloat32(1e40) = %v, want +Inf", v)
	}
}

func TestParseFloatEmpty(t *testing.T) {
	_, _, err := ParseFloat64([]byte(""))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrEmpty {
		t.Fatalf("ParseFloat64(\"\"): err = %v, want ErrEmpty", err)
	}
}

func TestParseFloatPartial(t *testing.T) {
	v, n, err := ParseFloat64Partial([]byte("3.5xyz"))
	if err != nil || v != 3.5 || n != 3 {
		t.Fatalf("ParseFloat64Partial(3.5xyz) = %v, %d, %v", v, n, err)
	}
}

func TestParseFloatJSONRejectsLeadingZero(t *testing.T) {
	o, err := NewParseOptions(10, JSON)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ParseFloat64WithOptions([]byte("01.5"), o)
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrInvalidLeadingZeros {
		t.Fatalf("JSON 01.5: err = %v, want ErrInvalidLeadingZeros", err)
	}
}

func TestParseFloatJSONRequiresFractionDigit(t *testing.T) {
	o, err := NewParseOptions(10, JSON)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ParseFloat64WithOptions([]byte("1."), o)
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrEmptyFraction {
		t.Fatalf("JSON 1.: err = %v, want ErrEmptyFraction", err)
	}
}

func TestParseFloatHexPower2Radix(t *testing.T) {
	// At radix 16 the default 'e' exponent marker collides with a valid
	// hex digit, so exponentChar falls back to the backup marker ('^'
	// by default); using '^' here exercises that fallback directly.
	o, err := NewParseOptions(16, Standard)
	if err != nil {
		t.Fatal(err)
	}
	v, _, err := ParseFloat64WithOptions([]byte("1^4"), o)
	if err != nil {
		t.Fatal(err)
	}
	if v != 65536 {
		t.Errorf("1^4 (radix 16) = %v, want 65536 (1 * 16**4)", v)
	}
}

func TestParseFloatNonDecimalRadixGoesThroughModeratePath(t *testing.T) {
	// radix 3 is neither 10 nor a power of two, so every digit must
	// reach moderatePath's accumulator via the fast-path dispatch
	// fall-through in parseFloatMagnitude; accumulating it as if it
	// were decimal would silently produce the wrong value ("222" read
	// as decimal 222 instead of base-3 222 == 26).
	o, err := NewParseOptions(3, Standard)
	if err != nil {
		t.Fatal(err)
	}
	v, _, err := ParseFloat64WithOptions([]byte("222"), o)
	if err != nil {
		t.Fatal(err)
	}
	if v != 26 {
		t.Errorf("\"222\" (radix 3) = %v, want 26", v)
	}

	v, _, err = ParseFloat64WithOptions([]byte("1.1"), o)
	if err != nil {
		t.Fatal(err)
	}
	if v != 4.0/3.0 {
		t.Errorf("\"1.1\" (radix 3) = %v, want %v", v, 4.0/3.0)
	}
}
