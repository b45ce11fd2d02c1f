// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import (
	"strings"

	"github.com/kr/text"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	//
	// The text will be automatically re-wrapped. The wrapping can be stopped
	// by embedding the tag "<PRE>": this tag is removed from the text and
	// signals that everything that follows should not be re-wrapped. To start
	// wrapping again, use "</PRE>".
	Description string
}

const usageIndentation = 8
const wrapWidth = 79 - usageIndentation

// wrapDescription wraps the text in a FlagInfo.Description.
func wrapDescription(s string) string {
	var result []string

	// split returns the parts of the string before and after the first
	// occurrence of the tag.
	split := func(str, tag string) (before, after string) {
		pieces := strings.SplitN(str, tag, 2)
		switch len(pieces) {
		case 0:
			return "", ""
		case 1:
			return pieces[0], ""
		default:
			return pieces[0], pieces[1]
		}
	}

	for len(s) > 0 {
		var toWrap, dontWrap string
		// Wrap everything up to the next stop wrap tag.
		toWrap, s = split(s, "<PRE>")
		result = append(result, text.Wrap(toWrap, wrapWidth))
		// Copy everything up to the next start wrap tag.
		dontWrap, s = split(s, "</PRE>")
		result = append(result, dontWrap)
	}
	return strings.Join(result, "")
}

// Usage returns a formatted usage string for the flag, including:
// * line wrapping
// * indentation
// * env variable name (if set)
func (f FlagInfo) Usage() string {
	s := "\n" + wrapDescription(f.Description)
	if f.EnvVar != "" {
		// Check that the environment variable name matches the flag name. Note:
		// we don't want to auto-generate the name so that grepping the code for
		// an env variable name finds its definition.
		if strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")) != strings.TrimPrefix(f.EnvVar, "XLNUM_") {
			panic("incorrect EnvVar name " + f.EnvVar + " for flag " + f.Name)
		}
		s = s + "\nEnvironment variable: " + f.EnvVar
	}
	// github.com/spf13/pflag appends the default value after the usage text. Add
	// the correct indentation (7 spaces) here. This is admittedly fragile.
	return text.Indent(s, strings.Repeat(" ", usageIndentation)) + "\n" +
		strings.Repeat(" ", usageIndentation-1)
}

// Flags shared by several commands.
var (
	Concurrency = FlagInfo{
		Name:   "concurrency",
		EnvVar: "XLNUM_CONCURRENCY",
		Description: `
Number of values rendered or explained in parallel. Output is always
printed in input order.`,
	}

	Format = FlagInfo{
		Name:   "format",
		EnvVar: "XLNUM_FORMAT",
		Description: `
Selects how results are printed. Possible values: text, tsv, table.
<PRE>

  text   one rendered value per line
  tsv    tab separated input, bits and rendering, with a header
  table  an aligned table
</PRE>`,
	}

	Verbosity = FlagInfo{
		Name: "v",
		Description: `
Log verbosity. Level 1 reports progress on long inputs; level 2 logs
every value as it is processed and disables log rate limiting.`,
	}

	LogThreshold = FlagInfo{
		Name:   "log-threshold",
		EnvVar: "XLNUM_LOG_THRESHOLD",
		Description: `
Minimum severity of log messages printed to stderr: INFO, WARNING,
ERROR, FATAL or NONE.`,
	}

	NoColor = FlagInfo{
		Name:   "no-color",
		EnvVar: "XLNUM_NO_COLOR",
		Description: `
Disable colors in log messages, even when stderr is a terminal.`,
	}

	Deps = FlagInfo{
		Name: "deps",
		Description: `
Include the module dependencies in the version output.`,
	}
)
