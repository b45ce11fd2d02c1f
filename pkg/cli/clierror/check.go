// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package clierror

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/xlnum/pkg/util/log"
)

// LogFunc is the signature of log.Logf, overridable in tests.
type LogFunc func(ctx context.Context, sev log.Severity, format string, args ...interface{})

// CheckAndMaybeLog reports the error, if non-nil, to the given logger
// and returns it unchanged. If the error is an *Error, its cause is
// logged with the error's severity. Only the outermost *Error is
// unwrapped.
func CheckAndMaybeLog(err error, logger LogFunc) error {
	if err == nil {
		return nil
	}
	sev := log.ErrorLog
	cause := err
	var cliErr *Error
	if errors.As(err, &cliErr) {
		sev = cliErr.severity
		cause = cliErr.cause
	}
	logger(context.Background(), sev, "%v", cause)
	return err
}
