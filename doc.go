// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lexical implements bidirectional conversion between numeric
primitives (signed and unsigned integers of width 8 to 128 bits, and
IEEE-754 binary32/binary64 floating-point values) and their textual
representations.

Parsing works on caller-provided bytes: callers pass a []byte and get
back a value and a byte count. Writing works the same way: callers
pass a value and a destination []byte and get back the number of bytes
written. Per-conversion scratch values are fixed-size and stack-local;
the heap is used only by the float parser's cached-power table, built
with math/big once per radix on first use, and by powers outside that
table, computed the same way on demand.

The hard part of this package is decimal-to-binary float parsing
(ParseFloat32, ParseFloat64 and their *WithOptions/*Partial variants):
producing the correctly-rounded IEEE-754 result for every finite input,
including subnormals and halfway cases, at speed. This is done with a
tiered algorithm:

  - a fast path that uses the host's native float arithmetic when the
    mantissa and exponent both fit the type's exact range (atof_fast.go);
  - a moderate path that uses an extended-precision significand
    (ExtendedFloat) and a table of cached powers of the radix, falling
    through when the result cannot be proven unambiguous
    (atof_moderate.go);
  - a slow path that resolves the remaining (rare) cases with exact
    arbitrary-precision integer comparison (atof_slow.go, BigInt,
    BigFloat).

Lexical grammar is configurable via NumberFormat and expressed through
ParseOptions/WriteOptions, constructed and validated the way this
package's sibling context package wraps precision and rounding mode
for arbitrary-precision arithmetic in its ancestor library: invalid
combinations are rejected once, at construction, rather than checked on
every call.

Unless otherwise noted, types in this package are value types: there is
no shared mutable state in the hot path, and concurrent calls operating
on disjoint inputs are independent and safe.
*/
package lexical
