// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ieee754

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
)

// ExpandedSignificand is the significand of a finite, non-zero double with
// its implicit leading bit made explicit, together with the true binary
// exponent. The value is Significand * 2^(Exponent-52).
type ExpandedSignificand struct {
	Exponent    int
	Significand uint64
}

// ExpandSignificand expands a Normal or Denormal decomposition. Denormals
// keep their leading zeros and therefore fewer significant bits.
func ExpandSignificand(d Decomposition) (ExpandedSignificand, error) {
	switch c := d.Category(); c {
	case Normal:
		return ExpandSignificandAs(d, int(d.BiasedExponent)), nil
	case Denormal:
		return ExpandedSignificand{Exponent: MinNormalExponent, Significand: d.Fraction}, nil
	default:
		return ExpandedSignificand{}, errors.AssertionFailedf(
			"cannot expand the significand of a %s value", c)
	}
}

// ExpandSignificandAs treats the fraction of d as the fraction of a normal
// value with the given biased exponent, whatever d's own exponent is. This
// is how the all-ones exponent of infinities and NaNs is read when they are
// rendered as numbers.
func ExpandSignificandAs(d Decomposition, biasedExponent int) ExpandedSignificand {
	return ExpandedSignificand{
		Exponent:    biasedExponent - ExponentBias,
		Significand: d.Fraction&FractionMask | ImpliedFractionBit,
	}
}

// DecimalExpansion is the exact value Unscaled * 10^-Scale. Scale is never
// negative.
type DecimalExpansion struct {
	Unscaled *apd.BigInt
	Scale    int
}

// ToDecimalExpansion converts the power-of-two value x into an exact
// power-of-ten value. Values with an exponent of at least 52 are whole
// numbers and only need shifting. Smaller exponents use the identity
// m/2^n = m*5^n/10^n, where n reaches 1074 for the smallest denormal.
func ToDecimalExpansion(x ExpandedSignificand) DecimalExpansion {
	u := new(apd.BigInt).SetUint64(x.Significand)
	shift := x.Exponent - FractionWidth
	if shift >= 0 {
		return DecimalExpansion{Unscaled: u.Lsh(u, uint(shift))}
	}
	scale := -shift
	return DecimalExpansion{Unscaled: u.Mul(u, pow5(scale)), Scale: scale}
}

// Decimal returns the expansion as an apd.Decimal. The coefficient is
// copied.
func (x DecimalExpansion) Decimal() *apd.Decimal {
	return apd.NewWithBigInt(x.Unscaled, int32(-x.Scale))
}

// String returns the exact expansion in plain notation. Trailing zeros
// implied by Scale are kept.
func (x DecimalExpansion) String() string {
	return x.Decimal().Text('f')
}

// smallPow5 holds 5^0 through 5^27, the powers that fit in a uint64.
var smallPow5 = func() (t [28]uint64) {
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

// pow5 returns 5^n by binary exponentiation.
func pow5(n int) *apd.BigInt {
	if n < len(smallPow5) {
		return new(apd.BigInt).SetUint64(smallPow5[n])
	}
	result := apd.NewBigInt(1)
	base := apd.NewBigInt(5)
	for n > 0 {
		if n&1 != 0 {
			result.Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base.Mul(base, base)
		}
	}
	return result
}
