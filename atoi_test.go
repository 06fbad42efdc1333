// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"errors"
	"testing"
)

func TestParseUint8Basic(t *testing.T) {
	v, n, err := ParseUint8([]byte("255"))
	if err != nil || v != 255 || n != 3 {
		t.Fatalf("ParseUint8(255) = %d, %d, %v", v, n, err)
	}
}

func TestParseUint8Overflow(t *testing.T) {
	_, n, err := ParseUint8([]byte("256"))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrOverflow {
		t.Fatalf("ParseUint8(256): err = %v, want ErrOverflow", err)
	}
	if n != 3 {
		t.Errorf("consumed = %d, want 3 (points past the last digit)", n)
	}
}

func TestParseInt8Boundaries(t *testing.T) {
	v, _, err := ParseInt8([]byte("-128"))
	if err != nil || v != -128 {
		t.Fatalf("ParseInt8(-128) = %d, %v", v, err)
	}
	v, _, err = ParseInt8([]byte("127"))
	if err != nil || v != 127 {
		t.Fatalf("ParseInt8(127) = %d, %v", v, err)
	}
	_, _, err = ParseInt8([]byte("-129"))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrUnderflow {
		t.Fatalf("ParseInt8(-129): err = %v, want ErrUnderflow", err)
	}
	_, _, err = ParseInt8([]byte("128"))
	if !errors.As(err, &le) || le.Code != ErrOverflow {
		t.Fatalf("ParseInt8(128): err = %v, want ErrOverflow", err)
	}
}

func TestParseUint64Hex(t *testing.T) {
	o, err := NewParseOptions(16, Standard)
	if err != nil {
		t.Fatal(err)
	}
	v, _, err := ParseUint64WithOptions([]byte("DEADBEEF"), o)
	if err != nil || v != 0xDEADBEEF {
		t.Fatalf("ParseUint64WithOptions(hex) = %d, %v", v, err)
	}
}

func TestParseIntPartialStopsAtFirstNonDigit(t *testing.T) {
	v, n, err := ParseInt32Partial([]byte("123abc"))
	if err != nil || v != 123 || n != 3 {
		t.Fatalf("ParseInt32Partial(123abc) = %d, %d, %v", v, n, err)
	}
}

func TestParseIntStrictRejectsTrailingGarbage(t *testing.T) {
	_, _, err := ParseInt32([]byte("123abc"))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrInvalidDigit {
		t.Fatalf("ParseInt32(123abc): err = %v, want ErrInvalidDigit", err)
	}
}

func TestParseIntEmptyMantissa(t *testing.T) {
	_, _, err := ParseInt32([]byte(""))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrEmptyMantissa {
		t.Fatalf("ParseInt32(\"\"): err = %v, want ErrEmptyMantissa", err)
	}
	_, _, err = ParseInt32([]byte("+"))
	if !errors.As(err, &le) || le.Code != ErrEmptyMantissa {
		t.Fatalf("ParseInt32(\"+\"): err = %v, want ErrEmptyMantissa", err)
	}
}

func TestParseUintRejectsSign(t *testing.T) {
	_, _, err := ParseUint32([]byte("-1"))
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrInvalidDigit {
		t.Fatalf("ParseUint32(-1): err = %v, want ErrInvalidDigit", err)
	}
}

func TestParseUint128Large(t *testing.T) {
	v, _, err := ParseUint128([]byte("340282366920938463463374607431768211455")) // maxUint128
	if err != nil {
		t.Fatalf("ParseUint128(max): err = %v", err)
	}
	if v.Hi != ^uint64(0) || v.Lo != ^uint64(0) {
		t.Errorf("ParseUint128(max) = %+v, want all bits set", v)
	}
}

func TestParseUint128Overflow(t *testing.T) {
	_, _, err := ParseUint128([]byte("340282366920938463463374607431768211456")) // max+1
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrOverflow {
		t.Fatalf("ParseUint128(max+1): err = %v, want ErrOverflow", err)
	}
}

func TestParseInt128Negative(t *testing.T) {
	v, _, err := ParseInt128([]byte("-170141183460469231731687303715884105728")) // minInt128
	if err != nil {
		t.Fatalf("ParseInt128(min): err = %v", err)
	}
	if !v.Neg {
		t.Error("ParseInt128(min): expected Neg = true")
	}
}

func TestParseWithRequiredMantissaSign(t *testing.T) {
	o, err := NewParseOptions(10, RequiredMantissaSign)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ParseInt32WithOptions([]byte("123"), o)
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrMissingMantissaSign {
		t.Fatalf("missing required sign: err = %v, want ErrMissingMantissaSign", err)
	}
	v, _, err := ParseInt32WithOptions([]byte("+123"), o)
	if err != nil || v != 123 {
		t.Fatalf("+123 with RequiredMantissaSign: %d, %v", v, err)
	}
}

func TestParseWithNoPositiveMantissaSign(t *testing.T) {
	o, err := NewParseOptions(10, NoPositiveMantissaSign)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = ParseInt32WithOptions([]byte("+123"), o)
	var le *Error
	if !errors.As(err, &le) || le.Code != ErrInvalidPositiveMantissaSign {
		t.Fatalf("+123 with NoPositiveMantissaSign: err = %v", err)
	}
}

func TestParseRadixVariety(t *testing.T) {
	cases := []struct {
		radix uint8
		s     string
		want  uint64
	}{
		{2, "1010", 10},
		{8, "17", 15},
		{36, "Z", 35},
		{36, "ZZ", 35*36 + 35},
	}
	for _, c := range cases {
		o, err := NewParseOptions(c.radix, Standard)
		if err != nil {
			t.Fatal(err)
		}
		v, _, err := ParseUint64WithOptions([]byte(c.s), o)
		if err != nil || v != c.want {
			t.Errorf("radix %d, %q: got %d, %v, want %d", c.radix, c.s, v, err, c.want)
		}
	}
}
