// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package xlnum

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/xlnum/pkg/util/ieee754"
)

// NormalizedDecimal is a decimal value rounded to a fixed number of
// significant digits. The value is d1.d2d3...dK * 10^Exponent where Digits
// is "d1d2...dK". The leading digit is only '0' when the value is zero.
type NormalizedDecimal struct {
	Digits   string
	Exponent int
}

// Normalize rounds x half-up to exactly k significant digits. The renderer
// and the comparator both go through this function so that the digits a
// number is shown with are the digits it is compared by.
func Normalize(x ieee754.DecimalExpansion, k int) NormalizedDecimal {
	return normalizeDecimal(x.Decimal(), k)
}

func normalizeDecimal(d *apd.Decimal, k int) NormalizedDecimal {
	if d.IsZero() {
		return NormalizedDecimal{Digits: strings.Repeat("0", k)}
	}
	c := apd.BaseContext.WithPrecision(uint32(k))
	c.Rounding = apd.RoundHalfUp
	var r apd.Decimal
	if _, err := c.Round(&r, d); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "rounding to %d digits", k))
	}
	r.Negative = false
	digits := r.Coeff.String()
	exp := len(digits) - 1 + int(r.Exponent)
	// A carry out of the leading digit (99..9x rounding to 100..0) can leave
	// one digit more than asked for. The extra digit is always a zero and
	// exp above already accounts for the longer coefficient.
	if len(digits) > k {
		digits = digits[:k]
	}
	if len(digits) < k {
		digits += strings.Repeat("0", k-len(digits))
	}
	return NormalizedDecimal{Digits: digits, Exponent: exp}
}

// Round rounds nd half-up to k significant digits, k <= len(nd.Digits).
// Rounding an already rounded value is not the same as rounding the exact
// value once; the renderer relies on that for its 14-digit range.
func (nd NormalizedDecimal) Round(k int) NormalizedDecimal {
	return normalizeDecimal(nd.Decimal(), k)
}

// Decimal returns nd as an apd.Decimal.
func (nd NormalizedDecimal) Decimal() *apd.Decimal {
	coeff, ok := new(apd.BigInt).SetString(nd.Digits, 10)
	if !ok {
		panic(errors.AssertionFailedf("invalid digits %q", nd.Digits))
	}
	return apd.NewWithBigInt(coeff, int32(nd.Exponent-len(nd.Digits)+1))
}

// IsZero returns true if every digit is zero.
func (nd NormalizedDecimal) IsZero() bool {
	return strings.TrimLeft(nd.Digits, "0") == ""
}

// SignificantDigits is the number of digits up to and including the last
// non-zero one.
func (nd NormalizedDecimal) SignificantDigits() int {
	return len(strings.TrimRight(nd.Digits, "0"))
}

// Cmp orders two non-negative values normalized to the same number of
// digits: by exponent first, then digit by digit.
func (nd NormalizedDecimal) Cmp(o NormalizedDecimal) int {
	if nd.IsZero() || o.IsZero() {
		return compareInt(btoi(!nd.IsZero()), btoi(!o.IsZero()))
	}
	if c := compareInt(nd.Exponent, o.Exponent); c != 0 {
		return c
	}
	return strings.Compare(nd.Digits, o.Digits)
}

// SafeFormat implements redact.SafeFormatter.
func (nd NormalizedDecimal) SafeFormat(s redact.SafePrinter, _ rune) {
	if nd.Digits == "" {
		s.SafeString("0")
		return
	}
	s.Printf("%sE%d", redact.SafeString(nd.Digits[:1]+"."+nd.Digits[1:]), redact.Safe(nd.Exponent))
}

func (nd NormalizedDecimal) String() string {
	return redact.StringWithoutMarkers(nd)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
