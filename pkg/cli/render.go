// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"github.com/cockroachdb/xlnum/pkg/util/xlnum"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [VALUE...]",
	Short: "show values as a General-formatted cell does",
	Long: `
Prints the text a spreadsheet displays for each value in a cell with the
General number format. Values are decimal literals (0.1, -1e300) or raw
bit patterns (0x7FF8000000000000). Without arguments, values are read
from standard input, one per line.
`,
	Args: cobra.ArbitraryArgs,
	RunE: runRender,
}

var renderCols = []string{"value", "bits", "text"}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", "render")
	values, err := readValues(args, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	rows, err := processValues(ctx, values, renderRow)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if renderCtx.format == tableDisplayText {
		for _, row := range rows {
			fmt.Fprintln(w, row[len(row)-1])
		}
		return nil
	}
	return printQueryOutput(w, renderCols, rows, renderCtx.format)
}

func renderRow(ctx context.Context, input string, bits uint64) []string {
	text := xlnum.RenderBits(bits)
	log.VEventf(ctx, 2, "%s renders as %s", input, text)
	return []string{input, string(xlnum.FormatBits(bits)), text}
}
