// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"github.com/cockroachdb/xlnum/pkg/util/xlnum"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "compare two values as spreadsheet formulas do",
	Long: `
Prints <, = or > depending on how A orders against B. Values that agree
in their first 15 significant digits are equal. Infinities and NaNs
cannot be compared.
`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", "compare")
	a, err := parseValue(args[0])
	if err != nil {
		return err
	}
	b, err := parseValue(args[1])
	if err != nil {
		return err
	}
	o, err := xlnum.CompareBits(a, b)
	if err != nil {
		if xlnum.IsSpecialValueError(err) {
			return clierror.NewErrorWithSeverity(
				errors.WithHint(err, "Only finite values have an ordering; use render to see how a special value is displayed."),
				exit.SpecialValue(), log.WarningLog)
		}
		return err
	}
	log.VEventf(ctx, 2, "compared %s with %s: %s", xlnum.FormatBits(a), xlnum.FormatBits(b), o)
	fmt.Fprintln(cmd.OutOrStdout(), o.Symbol())
	return nil
}
