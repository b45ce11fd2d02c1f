// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

// Codes that are common to all commands follow.

// Success (0) represents a normal process termination.
func Success() Code { return Code{0} }

// UnspecifiedError (1) indicates the process has terminated with an
// error condition. The specific cause of the error can be found in
// the logging output.
func UnspecifiedError() Code { return Code{1} }

// UnspecifiedGoPanic (2) indicates the process has terminated due to
// an uncaught Go panic or some other error in the Go runtime.
//
// The reporting of this exit code likely indicates a programming
// error inside xlnum.
func UnspecifiedGoPanic() Code { return Code{2} }

// Interrupted (3) indicates the process was interrupted with Ctrl+C /
// SIGINT while reading its input.
func Interrupted() Code { return Code{3} }

// CommandLineFlagError (4) indicates there was an error in the
// command-line parameters.
func CommandLineFlagError() Code { return Code{4} }

// FatalError (7) indicates that a logical error caused an emergency
// shutdown.
func FatalError() Code { return Code{7} }

// Codes that are specific to the number commands follow.

// SpecialValue (10) indicates that 'compare' was given an infinity or
// a NaN, for which no ordering is defined.
func SpecialValue() Code { return Code{10} }

// InvalidValue (11) indicates that an argument or input line could not
// be parsed as a decimal literal or a 0x bit pattern.
func InvalidValue() Code { return Code{11} }
