// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/lexical"
)

// randFloat64 generates a float64 from uniformly random bits, retrying
// on NaN/Inf, the same sampling approach Go's own strconv fuzz corpus
// uses to hit subnormals and extreme exponents a naive float() range
// sampler would almost never reach.
func randFloat64(r *rand.Rand) float64 {
	for {
		bitsPattern := r.Uint64()
		f := math.Float64frombits(bitsPattern)
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
}

func randFloat32(r *rand.Rand) float32 {
	for {
		bitsPattern := r.Uint32()
		f := math.Float32frombits(bitsPattern)
		if !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0) {
			return f
		}
	}
}

func TestRoundTripFloat64Random(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	var buf [400]byte
	for i := 0; i < 2000; i++ {
		f := randFloat64(r)
		n := lexical.WriteFloat64(buf[:], f)
		got, _, err := lexical.ParseFloat64(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(f), math.Float64bits(got), "round trip failed for %q", buf[:n])
	}
}

func TestRoundTripFloat32Random(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var buf [400]byte
	for i := 0; i < 2000; i++ {
		f := randFloat32(r)
		n := lexical.WriteFloat32(buf[:], f)
		got, _, err := lexical.ParseFloat32(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(f), math.Float32bits(got), "round trip failed for %q", buf[:n])
	}
}

func TestRoundTripIntegers(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	var buf [32]byte
	for i := 0; i < 2000; i++ {
		v := int64(r.Uint64())
		n := lexical.WriteInt64(buf[:], v)
		got, _, err := lexical.ParseInt64(buf[:n])
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestIdempotentWrite(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	var buf1, buf2 [400]byte
	for i := 0; i < 500; i++ {
		f := randFloat64(r)
		n1 := lexical.WriteFloat64(buf1[:], f)
		got, _, err := lexical.ParseFloat64(buf1[:n1])
		require.NoError(t, err)
		n2 := lexical.WriteFloat64(buf2[:], got)
		assert.Equal(t, string(buf1[:n1]), string(buf2[:n2]))
	}
}

func TestPartialMonotonicity(t *testing.T) {
	cases := []string{"123", "3.14", "-42", "1e10", "0.5"}
	for _, s := range cases {
		full, fn, err := lexical.ParseFloat64Partial([]byte(s))
		require.NoError(t, err)
		assert.Equal(t, len(s), fn)

		prefixFull, _, err := lexical.ParseFloat64([]byte(s[:fn]))
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(prefixFull), math.Float64bits(full))
	}
}

func TestBoundedOutputFloat64(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	var buf [400]byte
	maxUsed := 0
	for i := 0; i < 2000; i++ {
		f := randFloat64(r)
		n := lexical.WriteFloat64(buf[:], f)
		if n > maxUsed {
			maxUsed = n
		}
	}
	assert.LessOrEqual(t, maxUsed, 400)
}

func TestBoundedOutputInteger(t *testing.T) {
	var buf [48]byte
	n := lexical.WriteUint128(buf[:], lexical.Uint128{Hi: ^uint64(0), Lo: ^uint64(0)})
	assert.LessOrEqual(t, n, 48)
	n = lexical.WriteInt128(buf[:], lexical.Int128{Neg: true, Mag: lexical.Uint128{Hi: 0x8000000000000000}})
	assert.LessOrEqual(t, n, 48)
}
