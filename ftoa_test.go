// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"testing"
)

func TestWriteFloat64Literals(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{100, "100.0"},
		{0.1, "0.1"},
		{-1.5, "-1.5"},
		{123456, "123456.0"},
		// shortest digit sequences with an interior zero exercise
		// divModDigit's zero-quotient-digit path.
		{1.0625, "1.0625"},
		{9007199254740992, "9007199254740992.0"},
	}
	for _, c := range cases {
		var buf [400]byte
		n := WriteFloat64(buf[:], c.v)
		if string(buf[:n]) != c.want {
			t.Errorf("WriteFloat64(%v) = %q, want %q", c.v, buf[:n], c.want)
		}
	}
}

func TestWriteFloat64TrimFloats(t *testing.T) {
	o := NewWriteOptions(10).WithTrimFloats(true)
	var buf [400]byte
	n := WriteFloat64WithOptions(buf[:], 100, o)
	if string(buf[:n]) != "100" {
		t.Errorf("got %q, want %q", buf[:n], "100")
	}
	n = WriteFloat64WithOptions(buf[:], 0, o)
	if string(buf[:n]) != "0" {
		t.Errorf("got %q, want %q", buf[:n], "0")
	}
}

func TestWriteFloat64Specials(t *testing.T) {
	var buf [400]byte
	n := WriteFloat64(buf[:], math.NaN())
	if string(buf[:n]) != "NaN" {
		t.Errorf("NaN: got %q", buf[:n])
	}
	n = WriteFloat64(buf[:], math.Inf(1))
	if string(buf[:n]) != "inf" {
		t.Errorf("+Inf: got %q", buf[:n])
	}
	n = WriteFloat64(buf[:], math.Inf(-1))
	if string(buf[:n]) != "-inf" {
		t.Errorf("-Inf: got %q", buf[:n])
	}
	negNaN := math.Float64frombits(math.Float64bits(math.NaN()) | 1<<63)
	n = WriteFloat64(buf[:], negNaN)
	if string(buf[:n]) != "-NaN" {
		t.Errorf("-NaN: got %q", buf[:n])
	}
}

func TestWriteFloat64ScientificNotation(t *testing.T) {
	var buf [400]byte
	n := WriteFloat64(buf[:], 1e300)
	got := string(buf[:n])
	if got[0] != '1' || got[1] != 'e' {
		t.Errorf("1e300: got %q, want scientific notation starting with \"1e\"", got)
	}

	n = WriteFloat64(buf[:], 1e-300)
	got = string(buf[:n])
	if got[0] != '1' || got[1] != 'e' {
		t.Errorf("1e-300: got %q, want scientific notation starting with \"1e\"", got)
	}
}

// roundTrip64 checks that parsing a float64's shortest decimal
// rendering reproduces the exact same bit pattern, the defining
// property of a correct shortest-round-tripping writer.
func roundTrip64(t *testing.T, v float64) {
	t.Helper()
	var buf [400]byte
	n := WriteFloat64(buf[:], v)
	got, _, err := ParseFloat64(buf[:n])
	if err != nil {
		t.Fatalf("WriteFloat64(%v) = %q, which failed to parse back: %v", v, buf[:n], err)
	}
	if math.Float64bits(got) != math.Float64bits(v) {
		t.Errorf("round trip failed for %v: wrote %q, parsed back %v", v, buf[:n], got)
	}
}

func TestWriteFloat64RoundTrip(t *testing.T) {
	vals := []float64{
		0, 1, -1, 0.5, 100, 3.14159265358979, 1e10, 1e-10, 1e300, 1e-300,
		math.MaxFloat64, math.SmallestNonzeroFloat64, 0x1p-1022,
		123456789.123456789, 2.2250738585072014e-308,
		9007199254740993, 1.0 / 3.0,
	}
	for _, v := range vals {
		roundTrip64(t, v)
	}
}

func TestWriteFloat64RoundTripPowersOfTwo(t *testing.T) {
	for i := -1100; i <= 1023; i += 37 {
		v := math.Ldexp(1, i)
		if v == 0 || math.IsInf(v, 0) {
			continue
		}
		roundTrip64(t, v)
	}
}

func roundTrip32(t *testing.T, v float32) {
	t.Helper()
	var buf [400]byte
	n := WriteFloat32(buf[:], v)
	got, _, err := ParseFloat32(buf[:n])
	if err != nil {
		t.Fatalf("WriteFloat32(%v) = %q, which failed to parse back: %v", v, buf[:n], err)
	}
	if math.Float32bits(got) != math.Float32bits(v) {
		t.Errorf("round trip failed for %v: wrote %q, parsed back %v", v, buf[:n], got)
	}
}

func TestWriteFloat32RoundTrip(t *testing.T) {
	vals := []float32{0, 1, -1, 0.5, 100, 3.14159, 1e10, 1e-10, math.MaxFloat32, math.SmallestNonzeroFloat32}
	for _, v := range vals {
		roundTrip32(t, v)
	}
}

func TestShortestDigitsIsMinimal(t *testing.T) {
	// 0.1 cannot be represented exactly in binary; its shortest
	// round-tripping decimal is "1" (one digit), not the many digits
	// of its exact binary value.
	mant, exp := float64Layout.decompose(math.Float64bits(0.1))
	var digitBuf [18]byte
	n, _ := shortestDigits(digitBuf[:], float64Layout, mant, exp)
	if n != 1 {
		t.Errorf("shortestDigits(0.1) produced %d digits, want 1", n)
	}
	if digitBuf[0] != 1 {
		t.Errorf("shortestDigits(0.1) first digit = %d, want 1", digitBuf[0])
	}
}

func TestWriteFloat64BufferSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic writing a float into an undersized buffer")
		}
	}()
	var buf [4]byte
	WriteFloat64(buf[:], 1.5)
}
