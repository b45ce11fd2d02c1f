// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ieee754

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/redact"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	testCases := []struct {
		bits     uint64
		sign     bool
		exp      uint16
		frac     uint64
		category Category
	}{
		{0x0000000000000000, false, 0, 0, Zero},
		{0x8000000000000000, true, 0, 0, Zero},
		{0x0000000000000001, false, 0, 1, Denormal},
		{0x800FFFFFFFFFFFFF, true, 0, 0xFFFFFFFFFFFFF, Denormal},
		{0x0010000000000000, false, 1, 0, Normal},
		{0x3FF0000000000000, false, 0x3FF, 0, Normal},
		{0xBFF8000000000000, true, 0x3FF, 0x8000000000000, Normal},
		{0x7FEFFFFFFFFFFFFF, false, 0x7FE, 0xFFFFFFFFFFFFF, Normal},
		{0x7FF0000000000000, false, 0x7FF, 0, Infinite},
		{0xFFF0000000000000, true, 0x7FF, 0, Infinite},
		{0x7FF8000000000000, false, 0x7FF, 0x8000000000000, NaN},
		{0xFFFF0420003C0000, true, 0x7FF, 0xF0420003C0000, NaN},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%016X", tc.bits), func(t *testing.T) {
			d := Decompose(tc.bits)
			require.Equal(t, tc.sign, d.Sign)
			require.Equal(t, tc.exp, d.BiasedExponent)
			require.Equal(t, tc.frac, d.Fraction)
			require.Equal(t, tc.category, d.Category())
			require.Equal(t, tc.bits, d.Bits())
		})
	}
}

func TestDecomposeMatchesMath(t *testing.T) {
	for _, f := range []float64{
		1, -1, 0.1, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	} {
		d := Decompose(math.Float64bits(f))
		require.Equal(t, math.Signbit(f), d.Sign, "%g", f)
		switch d.Category() {
		case Normal:
			frac, exp := math.Frexp(math.Abs(f))
			// Frexp returns a fraction in [0.5, 1).
			require.Equal(t, exp-1, int(d.BiasedExponent)-ExponentBias, "%g", f)
			require.Equal(t, frac*2, 1+float64(d.Fraction)/float64(ImpliedFractionBit), "%g", f)
		case Denormal:
			require.Less(t, math.Abs(f), 0x1p-1022)
		default:
			t.Fatalf("unexpected category %s for %g", d.Category(), f)
		}
	}
}

func TestCategoryIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 5000
	properties := gopter.NewProperties(parameters)
	properties.Property("exactly one category per pattern", prop.ForAll(
		func(bits uint64) bool {
			d := Decompose(bits)
			c := d.Category()
			f := math.Float64frombits(bits)
			switch c {
			case Zero:
				return f == 0
			case Denormal:
				return f != 0 && math.Abs(f) < 0x1p-1022
			case Normal:
				return !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) >= 0x1p-1022
			case Infinite:
				return math.IsInf(f, 0)
			case NaN:
				return math.IsNaN(f)
			}
			return false
		},
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

func TestCategoryFormatting(t *testing.T) {
	require.Equal(t, "denormal", Denormal.String())
	require.Equal(t, "Category(9)", Category(9).String())
	require.True(t, Infinite.IsSpecial())
	require.True(t, NaN.IsSpecial())
	require.False(t, Normal.IsSpecial())

	// Categories and decompositions are safe to report unredacted.
	s := redact.Sprintf("%s", Decompose(0xBFF8000000000000))
	require.Equal(t, "- exp=0x3ff frac=0x8000000000000 (normal)", string(s))
	require.False(t, strings.ContainsRune(string(s), '‹'))
}
