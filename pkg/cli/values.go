// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
)

const bitsPrefix = "0x"

// parseValue converts a command-line value to a bit pattern. A value is
// either a decimal literal accepted by strconv.ParseFloat, or 0x followed
// by up to 16 hex digits giving the raw pattern, which is the only way to
// pass NaN payloads and other exact patterns.
func parseValue(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(bitsPrefix) && strings.EqualFold(s[:len(bitsPrefix)], bitsPrefix) {
		bits, err := strconv.ParseUint(s[len(bitsPrefix):], 16, 64)
		if err != nil {
			return 0, invalidValueError(s, err)
		}
		return bits, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseFloat returns the nearest value (zero or an infinity)
			// along with the range error; those values are valid inputs.
			return math.Float64bits(f), nil
		}
		return 0, invalidValueError(s, err)
	}
	return math.Float64bits(f), nil
}

func invalidValueError(s string, err error) error {
	return clierror.NewError(
		errors.WithHint(
			errors.Wrapf(err, "invalid value %q", s),
			"Use a decimal number such as 0.1 or 1e300, or a raw bit pattern such as 0x3FF0000000000000."),
		exit.InvalidValue())
}
