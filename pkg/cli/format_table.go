// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
)

// tableDisplayFormat identifies how results are printed. A pointer to a
// tableDisplayFormat implements pflag.Value.
type tableDisplayFormat int

const (
	tableDisplayText tableDisplayFormat = iota
	tableDisplayTSV
	tableDisplayTable
	tableDisplayLastFormat
)

var tableDisplayNames = [...]string{
	tableDisplayText:  "text",
	tableDisplayTSV:   "tsv",
	tableDisplayTable: "table",
}

// Type implements the pflag.Value interface.
func (f *tableDisplayFormat) Type() string { return "string" }

// String implements the pflag.Value interface.
func (f *tableDisplayFormat) String() string {
	if *f >= 0 && *f < tableDisplayLastFormat {
		return tableDisplayNames[*f]
	}
	return fmt.Sprintf("tableDisplayFormat(%d)", int(*f))
}

// Set implements the pflag.Value interface.
func (f *tableDisplayFormat) Set(s string) error {
	for i, name := range tableDisplayNames {
		if s == name {
			*f = tableDisplayFormat(i)
			return nil
		}
	}
	return errors.WithHintf(errors.Newf("invalid table display format: %s", s),
		"Possible values: %s.", strings.Join(tableDisplayNames[:], ", "))
}

// printQueryOutput writes rows under the column names cols to w. The text
// format prints one record per row with one line per column.
func printQueryOutput(
	w io.Writer, cols []string, allRows [][]string, displayFormat tableDisplayFormat,
) error {
	switch displayFormat {
	case tableDisplayTable:
		// Initialize tablewriter and set column names as the header row.
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader(cols)
		table.AppendBulk(allRows)
		table.Render()
		fmt.Fprintf(w, "(%d row%s)\n", len(allRows), pluralize(len(allRows)))

	case tableDisplayTSV:
		csvWriter := csv.NewWriter(w)
		csvWriter.Comma = '\t'
		_ = csvWriter.Write(cols)
		_ = csvWriter.WriteAll(allRows)
		return csvWriter.Error()

	case tableDisplayText:
		maxColWidth := 0
		for _, col := range cols {
			if colLen := utf8.RuneCountInString(col); colLen > maxColWidth {
				maxColWidth = colLen
			}
		}
		for i, row := range allRows {
			fmt.Fprintf(w, "-[ RECORD %d ]\n", i+1)
			for j, r := range row {
				fmt.Fprintf(w, "%-*s | %s\n", maxColWidth, cols[j], r)
			}
		}

	default:
		return errors.AssertionFailedf("unknown display format %d", displayFormat)
	}
	return nil
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
