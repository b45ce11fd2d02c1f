// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// cliContext captures the command-line parameters of all commands.
//
// Defaults for the values below are set in setCliContextDefaults().
type cliContext struct {
	// concurrency bounds the number of values processed in parallel by
	// render and explain.
	concurrency int

	// noColor disables colors in log output.
	noColor bool

	// showDeps makes version list the module dependencies.
	showDeps bool
}

// cliCtx captures the command-line parameters common to most CLI
// commands.
var cliCtx = cliContext{}

// setCliContextDefaults set the default values in cliCtx. This
// function is called by initCLIDefaults() and thus re-called in every
// test that exercises command-line parsing.
func setCliContextDefaults() {
	cliCtx.concurrency = runtime.GOMAXPROCS(0)
	cliCtx.noColor = false
	cliCtx.showDeps = false
}

// renderCtx captures the command-line parameters of the render command.
var renderCtx struct {
	format tableDisplayFormat
}

func setRenderContextDefaults() {
	renderCtx.format = tableDisplayText
}

// explainCtx captures the command-line parameters of the explain command.
var explainCtx struct {
	format tableDisplayFormat
}

func setExplainContextDefaults() {
	explainCtx.format = tableDisplayTable
}

// initCLIDefaults serves as the single point of truth for
// configuration defaults. It is suitable for calling between tests of
// the CLI utilities inside the same process.
func initCLIDefaults() {
	setCliContextDefaults()
	setRenderContextDefaults()
	setExplainContextDefaults()
}

func validateConcurrency() error {
	if cliCtx.concurrency < 1 {
		return errors.WithHint(
			errors.Newf("invalid --concurrency %d", cliCtx.concurrency),
			"Use a value of at least 1.")
	}
	return nil
}
