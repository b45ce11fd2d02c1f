// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package xlnum

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/xlnum/pkg/util/ieee754"
)

// Operand identifies an argument of CompareBits.
type Operand int8

const (
	// LeftOperand is the first argument.
	LeftOperand Operand = iota
	// RightOperand is the second argument.
	RightOperand
)

func (o Operand) String() string {
	if o == LeftOperand {
		return "left"
	}
	return "right"
}

// SafeValue implements redact.SafeValue.
func (Operand) SafeValue() {}

// SpecialValueError is returned by the comparison functions when an operand
// is an infinity or a NaN. The comparison is only defined for finite
// values.
type SpecialValueError struct {
	Operand Operand
	Bits    uint64
}

var _ errors.SafeFormatter = (*SpecialValueError)(nil)
var _ fmt.Formatter = (*SpecialValueError)(nil)

func (e *SpecialValueError) Error() string { return fmt.Sprint(e) }

// Format implements fmt.Formatter.
func (e *SpecialValueError) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeFormatError implements errors.SafeFormatter. Bit patterns carry no
// user data and are reported unredacted.
func (e *SpecialValueError) SafeFormatError(p errors.Printer) (next error) {
	p.Printf("special double values are not allowed: %s operand %s is %s",
		e.Operand, FormatBits(e.Bits), ieee754.Decompose(e.Bits).Category())
	return nil
}

// IsSpecialValueError returns true if err is or wraps a SpecialValueError.
func IsSpecialValueError(err error) bool {
	return errors.HasType(err, (*SpecialValueError)(nil))
}

// FormatBits prints a bit pattern as 0x followed by 16 upper-case hex
// digits.
func FormatBits(bits uint64) redact.SafeString {
	return redact.SafeString(fmt.Sprintf("0x%016X", bits))
}
