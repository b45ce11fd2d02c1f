// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/xlnum/pkg/util/ieee754"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"github.com/cockroachdb/xlnum/pkg/util/xlnum"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [VALUE...]",
	Short: "show how values are taken apart and rounded",
	Long: `
Prints, for each value, its bit fields, its category, the significant
digits and decimal exponent it is displayed with, and the resulting
text. Values are read as for render.
`,
	Args: cobra.ArbitraryArgs,
	RunE: runExplain,
}

var explainCols = []string{
	"value", "bits", "sign", "exponent", "fraction", "category", "digits", "decimal exponent", "text",
}

func runExplain(cmd *cobra.Command, args []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", "explain")
	values, err := readValues(args, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	rows, err := processValues(ctx, values, explainRow)
	if err != nil {
		return err
	}
	return printQueryOutput(cmd.OutOrStdout(), explainCols, rows, explainCtx.format)
}

func explainRow(ctx context.Context, input string, bits uint64) []string {
	d := ieee754.Decompose(bits)
	log.VEventf(ctx, 2, "%s decomposes to %s", input, d)

	sign := "+"
	if d.Sign {
		sign = "-"
	}
	digits, exponent := "", ""
	if nd, _, ok := xlnum.DisplayDigits(bits); ok {
		digits = nd.Digits[:nd.SignificantDigits()]
		exponent = strconv.Itoa(nd.Exponent)
	}
	return []string{
		input,
		string(xlnum.FormatBits(bits)),
		sign,
		fmt.Sprintf("0x%03X", d.BiasedExponent),
		fmt.Sprintf("0x%013X", d.Fraction),
		d.Category().String(),
		digits,
		exponent,
		xlnum.RenderBits(bits),
	}
}
