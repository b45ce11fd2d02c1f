// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package exit defines the process exit codes of the xlnum command.
package exit

import (
	"fmt"
	"os"
)

// Code represents an exit code.
type Code struct {
	code int
}

// String implements the fmt.Stringer interface.
func (c Code) String() string { return fmt.Sprint(c.code) }

// Format implements the fmt.Formatter interface.
func (c Code) Format(s fmt.State, verb rune) { _, _ = s.Write([]byte(c.String())) }

// SafeValue implements the redact.SafeValue interface.
func (c Code) SafeValue() {}

// Int returns the numeric code.
func (c Code) Int() int { return c.code }

// WithCode terminates the process with the specified exit code.
func WithCode(code Code) {
	os.Exit(code.code)
}
