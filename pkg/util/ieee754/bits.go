// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package ieee754 takes apart the 64-bit representation of a double and
// expands its significand into an exact decimal value.
//
// Nothing in this package rounds. Callers that need a fixed number of
// significant digits (see package xlnum) round the DecimalExpansion
// produced here.
package ieee754

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Bit layout of an IEEE-754 binary64 value.
const (
	SignMask     uint64 = 1 << 63
	ExponentMask uint64 = 0x7FF0000000000000
	FractionMask uint64 = 0x000FFFFFFFFFFFFF

	// FractionWidth is the number of explicitly stored significand bits.
	FractionWidth = 52
	// ImpliedFractionBit is the leading significand bit that normal values
	// do not store.
	ImpliedFractionBit uint64 = 1 << FractionWidth

	// ExponentBias is subtracted from the biased exponent field to obtain
	// the true binary exponent.
	ExponentBias = 1023
	// BiasedExponentSpecial marks infinities and NaNs.
	BiasedExponentSpecial = 0x7FF
	// MinNormalExponent is the true exponent of the smallest normal value,
	// and also the exponent denormals are scaled with.
	MinNormalExponent = 1 - ExponentBias
)

// Category is the classification of a bit pattern. Every one of the 2^64
// patterns falls in exactly one category.
type Category int8

const (
	// Zero is a biased exponent of 0 with an all-zero fraction.
	Zero Category = iota
	// Denormal is a biased exponent of 0 with a non-zero fraction.
	Denormal
	// Normal is any biased exponent strictly between 0 and 0x7FF.
	Normal
	// Infinite is a biased exponent of 0x7FF with an all-zero fraction.
	Infinite
	// NaN is a biased exponent of 0x7FF with a non-zero fraction.
	NaN
)

var categoryNames = [...]string{
	Zero:     "zero",
	Denormal: "denormal",
	Normal:   "normal",
	Infinite: "infinite",
	NaN:      "nan",
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int8(c))
}

// SafeValue implements redact.SafeValue.
func (Category) SafeValue() {}

var _ redact.SafeValue = Category(0)

// IsSpecial returns true for the categories stored with the all-ones
// exponent.
func (c Category) IsSpecial() bool {
	return c == Infinite || c == NaN
}

// Decomposition is a double split into its three bit fields.
type Decomposition struct {
	Sign           bool
	BiasedExponent uint16
	Fraction       uint64
}

// Decompose splits bits into sign, biased exponent and fraction.
func Decompose(bits uint64) Decomposition {
	return Decomposition{
		Sign:           bits&SignMask != 0,
		BiasedExponent: uint16((bits & ExponentMask) >> FractionWidth),
		Fraction:       bits & FractionMask,
	}
}

// Bits reassembles the raw 64-bit pattern.
func (d Decomposition) Bits() uint64 {
	bits := uint64(d.BiasedExponent)<<FractionWidth | d.Fraction&FractionMask
	if d.Sign {
		bits |= SignMask
	}
	return bits
}

// Category classifies the decomposition.
func (d Decomposition) Category() Category {
	switch d.BiasedExponent {
	case 0:
		if d.Fraction == 0 {
			return Zero
		}
		return Denormal
	case BiasedExponentSpecial:
		if d.Fraction == 0 {
			return Infinite
		}
		return NaN
	default:
		return Normal
	}
}

// SafeFormat implements redact.SafeFormatter.
func (d Decomposition) SafeFormat(s redact.SafePrinter, _ rune) {
	sign := '+'
	if d.Sign {
		sign = '-'
	}
	s.Printf("%c exp=%#x frac=%#x (%s)",
		redact.SafeRune(sign), redact.Safe(d.BiasedExponent), redact.Safe(d.Fraction), d.Category())
}

func (d Decomposition) String() string {
	return redact.StringWithoutMarkers(d)
}
