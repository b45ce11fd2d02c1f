// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/cliflags"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
// This allows an arbitrary number of pre-run functions with ordering based
// on the order in which AddPersistentPreRunE is called (usually package init order).
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

// setFlagFromEnv applies the flag's environment variable, if set. Values
// given on the command line are parsed later and take precedence.
func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := os.LookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(err)
			}
		}
	}
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, *valPtr, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

func init() {
	initCLIDefaults()

	// Logging flags common to all commands.
	{
		pf := xlnumCmd.PersistentFlags()
		VarFlag(pf, log.VerbosityValue(), cliflags.Verbosity)
		VarFlag(pf, log.ThresholdValue(), cliflags.LogThreshold)
		BoolFlag(pf, &cliCtx.noColor, cliflags.NoColor)
	}

	for _, cmd := range []*cobra.Command{renderCmd, explainCmd} {
		IntFlag(cmd.Flags(), &cliCtx.concurrency, cliflags.Concurrency)
	}
	VarFlag(renderCmd.Flags(), &renderCtx.format, cliflags.Format)
	VarFlag(explainCmd.Flags(), &explainCtx.format, cliflags.Format)

	BoolFlag(versionCmd.Flags(), &cliCtx.showDeps, cliflags.Deps)

	AddPersistentPreRunE(xlnumCmd, func(*cobra.Command, []string) error {
		if cliCtx.noColor {
			log.DisableColor()
		}
		if err := validateConcurrency(); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
		return nil
	})
}
