// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package clierror carries the exit code and log severity a command
// failure should be reported with.
package clierror

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/cockroachdb/xlnum/pkg/util/log"
)

// Error is an error that terminates the command with a specific exit
// code.
type Error struct {
	exitCode exit.Code
	severity log.Severity
	cause    error
}

// NewError wraps cause with an exit code. The cause is logged at ERROR.
func NewError(cause error, exitCode exit.Code) error {
	return NewErrorWithSeverity(cause, exitCode, log.ErrorLog)
}

// NewErrorWithSeverity is NewError with a custom log severity.
func NewErrorWithSeverity(cause error, exitCode exit.Code, severity log.Severity) error {
	return &Error{
		exitCode: exitCode,
		severity: severity,
		cause:    cause,
	}
}

// GetExitCode returns the exit code attached to the error.
func (e *Error) GetExitCode() exit.Code {
	return e.exitCode
}

// GetSeverity returns the severity the cause should be logged with.
func (e *Error) GetSeverity() log.Severity {
	return e.severity
}

// Error implements the error interface.
func (e *Error) Error() string { return fmt.Sprintf("%v", e) }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the go 1.13 wrapper interface.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// SafeFormatError implements errors.SafeFormatter. The exit code is only
// shown in verbose formatting.
func (e *Error) SafeFormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %d", redact.Safe(e.exitCode.Int()))
	}
	return e.cause
}

// ExitCode returns the exit code of the outermost *Error wrapped in err,
// exit.UnspecifiedError() for any other non-nil error and exit.Success()
// for nil.
func ExitCode(err error) exit.Code {
	if err == nil {
		return exit.Success()
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.exitCode
	}
	return exit.UnspecifiedError()
}
