// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cli implements the xlnum command: rendering doubles the way a
// spreadsheet shows them and comparing them the way its formulas do.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Main is the entry point for the cli, with a single line calling it
// intended to be the body of an action package main `main` func elsewhere.
func Main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "help")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := runContext(ctx, os.Args[1:])
	stop()
	if err != nil {
		_ = clierror.CheckAndMaybeLog(err, log.Logf)
		printError(os.Stderr, err)
	}
	exit.WithCode(clierror.ExitCode(err))
}

// Run runs the xlnum command with the given arguments.
func Run(args []string) error {
	return runContext(context.Background(), args)
}

func runContext(ctx context.Context, args []string) error {
	xlnumCmd.SetArgs(args)
	return xlnumCmd.ExecuteContext(ctx)
}

// printError prints err and its hints the way the SQL shell does.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: %v\n", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "HINT: %s\n", h)
	}
}

var xlnumCmd = &cobra.Command{
	Use:   "xlnum [command] (flags)",
	Short: "spreadsheet number display and comparison",
	Long: `
Shows doubles as a spreadsheet displays them in a General-formatted
cell, and compares them as its relational operators do.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Long: `
Output build version information.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return errors.New("no build information available")
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		fmt.Fprintf(tw, "Module:\t%s\n", info.Main.Path)
		fmt.Fprintf(tw, "Version:\t%s\n", info.Main.Version)
		fmt.Fprintf(tw, "Platform:\t%s %s/%s\n", runtime.Compiler, runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(tw, "Go Version:\t%s\n", info.GoVersion)
		if cliCtx.showDeps {
			fmt.Fprintf(tw, "Build Deps:\n")
			for _, dep := range info.Deps {
				fmt.Fprintf(tw, "\t%s\t%s\n", dep.Path, dep.Version)
			}
		}
		return tw.Flush()
	},
}

// isInteractive indicates whether both stdin and stderr refer to the
// terminal.
var isInteractive = isatty.IsTerminal(os.Stdin.Fd()) &&
	isatty.IsTerminal(os.Stderr.Fd())

func init() {
	cobra.EnableCommandSorting = false

	xlnumCmd.AddCommand(
		renderCmd,
		compareCmd,
		explainCmd,

		// Miscellaneous commands.
		versionCmd,
	)

	// Flag errors and argument count errors share an exit code.
	xlnumCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
	for _, cmd := range xlnumCmd.Commands() {
		cmd.Args = flagErrorArgs(cmd.Args)
	}
}

// flagErrorArgs wraps a positional argument validator so that its errors
// carry exit.CommandLineFlagError().
func flagErrorArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	if validate == nil {
		return nil
	}
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
		return nil
	}
}
