// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package xlnum

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/xlnum/pkg/util/ieee754"
)

const (
	// significantDigits is the precision numbers are displayed and compared
	// with.
	significantDigits = 15
	// reducedSignificantDigits is used once the decimal exponent needs three
	// digits. The bounds are not symmetric.
	reducedSignificantDigits = 14
	maxFullPrecisionExponent = 99
	minFullPrecisionExponent = -98

	// maxTextLen is the longest plain-notation text (not counting a minus
	// sign) before switching to scientific notation.
	maxTextLen = 20

	// excelNaNBits is a NaN the spreadsheet application produces itself (for
	// example as the cached result of some erroneous formulas). It is shown
	// with this exact text, which differs from what the generic handling of
	// the all-ones exponent below would produce.
	excelNaNBits uint64 = 0xFFFF0420003C0000
	excelNaNText        = "3.484840871308E+308"
)

// Render returns the text the spreadsheet application displays for f in a
// cell with the General format.
func Render(f float64) string {
	return RenderBits(math.Float64bits(f))
}

// RenderBits is Render for a raw bit pattern. Every pattern has a
// rendering:
//
//   - zero and denormals show as "0" or "-0",
//   - infinities and NaNs lose their sign and have their fraction read as
//     if the exponent field were a normal exponent of 1024,
//   - everything else is rounded to 15 significant digits (14 beyond
//     E+99 and E-98) and printed plain when that takes at most 20
//     characters, in scientific notation otherwise.
func RenderBits(bits uint64) string {
	return string(AppendBits(make([]byte, 0, maxTextLen+4), bits))
}

// AppendBits appends the rendering of bits to dst.
func AppendBits(dst []byte, bits uint64) []byte {
	if bits == excelNaNBits {
		return append(dst, excelNaNText...)
	}
	nd, neg, ok := DisplayDigits(bits)
	if !ok {
		if neg {
			return append(dst, "-0"...)
		}
		return append(dst, '0')
	}
	if neg {
		dst = append(dst, '-')
	}
	if nd.Exponent < 0 {
		return appendLessThanOne(dst, nd)
	}
	return appendAtLeastOne(dst, nd)
}

// DisplayDigits returns the rounded digits RenderBits formats for bits and
// whether they are preceded by a minus sign. ok is false when the text does
// not come from digits: for zeros, denormals and the hard-coded NaN.
func DisplayDigits(bits uint64) (nd NormalizedDecimal, neg bool, ok bool) {
	d := ieee754.Decompose(bits)
	var x ieee754.ExpandedSignificand
	switch d.Category() {
	case ieee754.Zero, ieee754.Denormal:
		// Computable, but the application shows anything below the smallest
		// normal as zero.
		return NormalizedDecimal{}, d.Sign, false
	case ieee754.Infinite, ieee754.NaN:
		if bits == excelNaNBits {
			return NormalizedDecimal{}, false, false
		}
		x = ieee754.ExpandSignificandAs(d, ieee754.BiasedExponentSpecial)
	default:
		var err error
		if x, err = ieee754.ExpandSignificand(d); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "rendering %s", d))
		}
		neg = d.Sign
	}
	nd = Normalize(ieee754.ToDecimalExpansion(x), significantDigits)
	if nd.Exponent > maxFullPrecisionExponent || nd.Exponent < minFullPrecisionExponent {
		nd = nd.Round(reducedSignificantDigits)
	}
	return nd, neg, true
}

func appendLessThanOne(dst []byte, nd NormalizedDecimal) []byte {
	sig := nd.SignificantDigits()
	leadingZeros := -nd.Exponent - 1
	if len("0.")+leadingZeros+sig > maxTextLen {
		dst = appendMantissa(dst, nd.Digits[:sig])
		dst = append(dst, 'E', '-')
		return appendExponent(dst, -nd.Exponent)
	}
	dst = append(dst, '0', '.')
	for i := 0; i < leadingZeros; i++ {
		dst = append(dst, '0')
	}
	return append(dst, nd.Digits[:sig]...)
}

func appendAtLeastOne(dst []byte, nd NormalizedDecimal) []byte {
	sig := nd.SignificantDigits()
	intDigits := nd.Exponent + 1
	if intDigits > maxTextLen {
		dst = appendMantissa(dst, nd.Digits[:sig])
		dst = append(dst, 'E', '+')
		return appendExponent(dst, nd.Exponent)
	}
	if sig > intDigits {
		dst = append(dst, nd.Digits[:intDigits]...)
		dst = append(dst, '.')
		return append(dst, nd.Digits[intDigits:sig]...)
	}
	// Zeros past the significant digits are place holders, not precision.
	dst = append(dst, nd.Digits[:sig]...)
	for i := sig; i < intDigits; i++ {
		dst = append(dst, '0')
	}
	return dst
}

// appendMantissa writes d[.ddd] for scientific notation.
func appendMantissa(dst []byte, digits string) []byte {
	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	}
	return dst
}

// appendExponent writes e with at least two digits.
func appendExponent(dst []byte, e int) []byte {
	if e < 10 {
		return append(dst, '0', byte('0'+e))
	}
	var buf [4]byte
	i := len(buf)
	for e > 0 {
		i--
		buf[i] = byte('0' + e%10)
		e /= 10
	}
	return append(dst, buf[i:]...)
}
