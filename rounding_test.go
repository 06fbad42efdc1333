// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "testing"

func TestRoundingModeResolve(t *testing.T) {
	cases := []struct {
		mode     RoundingMode
		loOdd    bool
		wantPkHi bool
	}{
		{ToNearestEven, false, false}, // lo already even, keep it
		{ToNearestEven, true, true},   // lo odd, move to the even hi
		{ToNearestAway, false, true},
		{ToNearestAway, true, true},
		{TowardZero, false, false},
		{TowardZero, true, false},
		{TowardInfinity, false, true},
		{TowardInfinity, true, true},
	}
	for _, c := range cases {
		if got := c.mode.resolve(c.loOdd); got != c.wantPkHi {
			t.Errorf("%v.resolve(%v) = %v, want %v", c.mode, c.loOdd, got, c.wantPkHi)
		}
	}
}

func TestRoundingModeString(t *testing.T) {
	if ToNearestEven.String() != "ToNearestEven" {
		t.Errorf("ToNearestEven.String() = %q", ToNearestEven.String())
	}
	if TowardInfinity.String() != "TowardInfinity" {
		t.Errorf("TowardInfinity.String() = %q", TowardInfinity.String())
	}
}
