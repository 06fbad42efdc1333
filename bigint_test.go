// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/big"
	"testing"
)

func TestBigIntSetUint64(t *testing.T) {
	cases := []uint64{0, 1, 42, 1 << 32, ^uint64(0)}
	for _, x := range cases {
		var z BigInt
		z.SetUint64(x)
		if got := z.Nat().Uint64(); got != x {
			t.Errorf("SetUint64(%d): Nat().Uint64() = %d", x, got)
		}
	}
}

func TestBigIntMulSmallAndAddSmall(t *testing.T) {
	var z BigInt
	z.SetUint64(1)
	for i := 0; i < 20; i++ {
		z.MulSmall(10)
		z.AddSmall(Word(i % 10))
	}
	want := new(big.Int).SetUint64(1)
	for i := 0; i < 20; i++ {
		want.Mul(want, big.NewInt(10))
		want.Add(want, big.NewInt(int64(i%10)))
	}
	if z.Nat().Cmp(want) != 0 {
		t.Errorf("got %s, want %s", z.Nat(), want)
	}
}

func TestBigIntMulPow10(t *testing.T) {
	var z BigInt
	z.SetUint64(7)
	z.MulPow10(30)
	want := new(big.Int).SetUint64(7)
	want.Mul(want, new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))
	if z.Nat().Cmp(want) != 0 {
		t.Errorf("7*10**30: got %s, want %s", z.Nat(), want)
	}
}

func TestBigIntMulPow2(t *testing.T) {
	var z BigInt
	z.SetUint64(3)
	z.MulPow2(100)
	want := new(big.Int).Lsh(big.NewInt(3), 100)
	if z.Nat().Cmp(want) != 0 {
		t.Errorf("3<<100: got %s, want %s", z.Nat(), want)
	}
}

func TestBigIntAddSub(t *testing.T) {
	var a, b BigInt
	a.SetUint64(1 << 40)
	b.SetUint64(12345)
	a.Add(&b)
	if got := a.Nat().Uint64(); got != 1<<40+12345 {
		t.Errorf("Add: got %d", got)
	}
	a.Sub(&b)
	if got := a.Nat().Uint64(); got != 1<<40 {
		t.Errorf("Sub: got %d", got)
	}
}

func TestBigIntCmp(t *testing.T) {
	var a, b BigInt
	a.SetUint64(100)
	b.SetUint64(200)
	if a.Cmp(&b) >= 0 {
		t.Error("expected a < b")
	}
	if b.Cmp(&a) <= 0 {
		t.Error("expected b > a")
	}
	a.SetUint64(200)
	if a.Cmp(&b) != 0 {
		t.Error("expected a == b")
	}
}

func TestBigIntSetDigits(t *testing.T) {
	var z BigInt
	z.SetDigits([]byte("123456789012345678901234567890"), 10)
	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	if z.Nat().Cmp(want) != 0 {
		t.Errorf("SetDigits: got %s, want %s", z.Nat(), want)
	}
}

func TestBigIntSetDigitsHex(t *testing.T) {
	var z BigInt
	z.SetDigits([]byte("DEADBEEF"), 16)
	want, _ := new(big.Int).SetString("DEADBEEF", 16)
	if z.Nat().Cmp(want) != 0 {
		t.Errorf("SetDigits hex: got %s, want %s", z.Nat(), want)
	}
}

func TestBigIntHiMant64(t *testing.T) {
	var z BigInt
	z.SetUint64(1)
	z.MulPow2(200) // exactly one bit set, far up
	mant, shift, truncated := z.HiMant64()
	if truncated {
		t.Error("expected no truncation for a single set bit")
	}
	if mant != 1<<63 {
		t.Errorf("mant = %x, want %x", mant, uint64(1)<<63)
	}
	if shift != 200-63 {
		t.Errorf("shift = %d, want %d", shift, 200-63)
	}
}

func TestBigIntSetNatRoundTrip(t *testing.T) {
	x, _ := new(big.Int).SetString("99999999999999999999999999999999999999", 10)
	var z BigInt
	z.SetNat(x)
	if z.Nat().Cmp(x) != 0 {
		t.Errorf("SetNat/Nat round trip: got %s, want %s", z.Nat(), x)
	}
}

func TestBigIntIsZero(t *testing.T) {
	var z BigInt
	if !z.IsZero() {
		t.Error("zero value BigInt should be IsZero")
	}
	z.SetUint64(1)
	if z.IsZero() {
		t.Error("BigInt holding 1 should not be IsZero")
	}
}
