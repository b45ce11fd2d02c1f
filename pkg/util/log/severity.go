// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Severity identifies the sort of log: info, warning etc. A pointer to a
// Severity implements pflag.Value; the --log-threshold flag is of this
// type.
type Severity int32 // sync/atomic int32

// These constants identify the log levels in order of increasing Severity.
const (
	InfoLog Severity = iota
	WarningLog
	ErrorLog
	FatalLog
	NumSeverity = 4
)

const severityChar = "IWEF"

var severityName = []string{
	InfoLog:     "INFO",
	WarningLog:  "WARNING",
	ErrorLog:    "ERROR",
	FatalLog:    "FATAL",
	NumSeverity: "NONE",
}

func (s *Severity) get() Severity {
	return Severity(atomic.LoadInt32((*int32)(s)))
}

func (s *Severity) set(val Severity) {
	atomic.StoreInt32((*int32)(s), int32(val))
}

// String is part of the pflag.Value interface.
func (s *Severity) String() string {
	if i := int(s.get()); i >= 0 && i < len(severityName) {
		return severityName[i]
	}
	return strconv.FormatInt(int64(s.get()), 10)
}

// Set is part of the pflag.Value interface.
func (s *Severity) Set(value string) error {
	if v, ok := SeverityByName(value); ok {
		s.set(v)
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return errors.Newf("unknown severity %q", value)
	}
	if v < int(InfoLog) || v > NumSeverity {
		return errors.Newf("severity %d out of range", v)
	}
	s.set(Severity(v))
	return nil
}

// Type is part of the pflag.Value interface.
func (s *Severity) Type() string {
	return "<severity>"
}

// SeverityByName attempts to parse the passed in string into a severity (i.e.
// ERROR, INFO). If it succeeds, the returned bool is set to true.
func SeverityByName(s string) (Severity, bool) {
	s = strings.ToUpper(s)
	for i, name := range severityName {
		if name == s {
			return Severity(i), true
		}
	}
	return 0, false
}

// String is part of the pflag.Value interface.
func (l *Level) String() string {
	return strconv.FormatInt(int64(l.get()), 10)
}

// Set is part of the pflag.Value interface.
func (l *Level) Set(value string) error {
	v, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "invalid verbosity %q", value)
	}
	if v < 0 {
		return errors.Newf("verbosity must be non-negative, got %d", v)
	}
	l.set(Level(v))
	return nil
}

// Type is part of the pflag.Value interface.
func (l *Level) Type() string {
	return "<level>"
}
