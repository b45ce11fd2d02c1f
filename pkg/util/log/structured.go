// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"strings"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
)

// makeMessage creates a structured log entry: the context's log tags in
// brackets followed by the formatted message. Arguments are formatted with
// redact so that types implementing redact.SafeFormatter print the same
// way they do in errors; the redaction markers are stripped from the
// output.
func makeMessage(ctx context.Context, format string, args []interface{}) string {
	var buf strings.Builder
	if tags := logtags.FromContext(ctx); tags != nil {
		buf.WriteByte('[')
		tags.FormatToString(&buf)
		buf.WriteString("] ")
	}
	var msg redact.RedactableString
	if len(format) == 0 {
		msg = redact.Sprint(args...)
	} else {
		msg = redact.Sprintf(format, args...)
	}
	buf.WriteString(msg.StripMarkers())
	return buf.String()
}

// addStructured creates a structured log entry to be written to the
// specified facility of the logger.
func addStructured(ctx context.Context, s Severity, depth int, format string, args []interface{}) {
	if ctx == nil {
		panic("nil context")
	}
	file, line := callerFile(depth + 1)
	logging.outputLogEntry(s, file, line, makeMessage(ctx, format, args))
}
