// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package xlnum

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/xlnum/pkg/util/ieee754"
)

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	// Less means the left operand orders before the right one.
	Less Ordering = -1
	// Equal means the operands are indistinguishable once rounded.
	Equal Ordering = 0
	// Greater means the left operand orders after the right one.
	Greater Ordering = 1
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (Ordering) SafeValue() {}

var _ redact.SafeValue = Ordering(0)

// Symbol returns the relational operator for o: "<", "=" or ">".
func (o Ordering) Symbol() string {
	switch o {
	case Less:
		return "<"
	case Greater:
		return ">"
	}
	return "="
}

// Flip swaps Less and Greater.
func (o Ordering) Flip() Ordering {
	return -o
}

// Thresholds of the anomaly at the boundary between denormal and normal
// numbers. The application considers the smallest few normals and the
// largest few denormals interchangeable; these are the exact fractions it
// was observed to do that for.
const (
	anomalyMaxNormalFraction   uint64 = 0x0000000000000007
	anomalyMinDenormalFraction uint64 = 0x000FFFFFFFFFFFFA
)

// Compare orders a and b the way the spreadsheet application's relational
// operators do. Values that are not bit-identical can compare Equal if
// they agree in their first 15 significant digits, so for example 0.05
// and 0.06-0.01 are Equal. Signs are never rounded across: -0 is Less
// than +0.
//
// Infinities and NaNs are rejected with a *SpecialValueError.
func Compare(a, b float64) (Ordering, error) {
	return CompareBits(math.Float64bits(a), math.Float64bits(b))
}

// CompareBits is Compare for raw bit patterns.
func CompareBits(a, b uint64) (Ordering, error) {
	return compareBits(a, b, nil)
}

// compareBits implements CompareBits. onNormalized, if not nil, is called
// whenever the two values have to be rounded to decimal to be ordered.
func compareBits(a, b uint64, onNormalized func(a, b uint64)) (Ordering, error) {
	da, db := ieee754.Decompose(a), ieee754.Decompose(b)
	if da.Category().IsSpecial() {
		return Equal, &SpecialValueError{Operand: LeftOperand, Bits: a}
	}
	if db.Category().IsSpecial() {
		return Equal, &SpecialValueError{Operand: RightOperand, Bits: b}
	}

	if da.Sign != db.Sign {
		if da.Sign {
			return Less, nil
		}
		return Greater, nil
	}

	o := compareMagnitudes(da, db, onNormalized)
	if da.Sign {
		return o.Flip(), nil
	}
	return o, nil
}

// ApproxEqual returns true if a and b compare Equal. Special values are
// never equal to anything.
func ApproxEqual(a, b float64) bool {
	o, err := Compare(a, b)
	return err == nil && o == Equal
}

// compareMagnitudes orders the absolute values of two finite values. The
// biased exponent is monotonic in magnitude, so values whose exponents are
// more than one apart cannot round to the same 15 digits.
func compareMagnitudes(
	da, db ieee754.Decomposition, onNormalized func(a, b uint64),
) Ordering {
	expDiff := int(da.BiasedExponent) - int(db.BiasedExponent)
	switch {
	case expDiff > 1:
		return Greater
	case expDiff < -1:
		return Less
	case expDiff == 0 && da.Fraction == db.Fraction:
		return Equal
	}

	switch {
	case da.BiasedExponent == 0 && db.BiasedExponent == 0:
		// Denormals are compared exactly.
		return orderUint64(da.Fraction, db.Fraction)
	case da.BiasedExponent == 0:
		return compareAcrossDenormalBoundary(db.Fraction, da.Fraction).Flip()
	case db.BiasedExponent == 0:
		return compareAcrossDenormalBoundary(da.Fraction, db.Fraction)
	}

	if onNormalized != nil {
		onNormalized(da.Bits(), db.Bits())
	}
	return Ordering(comparisonDigits(da).Cmp(comparisonDigits(db)))
}

// compareAcrossDenormalBoundary orders a normal value with biased exponent
// 1 against a denormal one. Normally the normal value is larger, except
// right at the boundary.
func compareAcrossDenormalBoundary(normalFraction, denormalFraction uint64) Ordering {
	if denormalFraction == 0 {
		return Greater
	}
	if normalFraction <= anomalyMaxNormalFraction && denormalFraction >= anomalyMinDenormalFraction {
		if normalFraction == anomalyMaxNormalFraction && denormalFraction == anomalyMinDenormalFraction {
			// The outermost pair of the anomaly, observed separately.
			return Equal
		}
		return Equal
	}
	return Greater
}

func comparisonDigits(d ieee754.Decomposition) NormalizedDecimal {
	x, err := ieee754.ExpandSignificand(d)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "comparing %s", d))
	}
	return Normalize(ieee754.ToDecimalExpansion(x), significantDigits)
}

func orderUint64(a, b uint64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
