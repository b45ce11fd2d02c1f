// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements leveled, context-tagged logging to stderr for
// the xlnum command line tool.
//
// Every entry is written as a single line prefixed by a header of the form
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line  [tags] msg
//
// where L is one of the characters I, W, E or F. Entries below the
// configured threshold are dropped; V-gated entries are dropped unless the
// verbosity is at least their level.
package log

import (
	"bytes"
	"context"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/xlnum/pkg/cli/exit"
)

// Level is a verbosity level for V and VEventf. A pointer to a Level
// implements pflag.Value.
type Level int32

func (l *Level) get() Level {
	return Level(atomic.LoadInt32((*int32)(l)))
}

func (l *Level) set(val Level) {
	atomic.StoreInt32((*int32)(l), int32(val))
}

type loggingT struct {
	mu struct {
		sync.Mutex
		out    io.Writer
		colors *colorProfile
		exitFn func(exit.Code)
	}

	threshold Severity
	verbosity Level

	// now is overridden in tests.
	now func() time.Time
}

var logging = func() *loggingT {
	l := &loggingT{now: time.Now}
	l.mu.out = os.Stderr
	l.mu.colors = stderrColorProfile()
	l.threshold = InfoLog
	return l
}()

// ThresholdValue returns the flag value controlling which severities reach
// the output.
func ThresholdValue() *Severity {
	return &logging.threshold
}

// VerbosityValue returns the flag value controlling V.
func VerbosityValue() *Level {
	return &logging.verbosity
}

// SetVerbosity changes the verbosity level and returns the previous one.
func SetVerbosity(v Level) Level {
	old := logging.verbosity.get()
	logging.verbosity.set(v)
	return old
}

// SetOutput redirects log output to w and returns a function restoring
// the previous output. Color is disabled for anything that is not the
// process' stderr.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	oldOut, oldColors := logging.mu.out, logging.mu.colors
	logging.mu.out = w
	if w != os.Stderr {
		logging.mu.colors = nil
	}
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out, logging.mu.colors = oldOut, oldColors
	}
}

// DisableColor turns off terminal colors, as requested by --no-color.
func DisableColor() {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.colors = nil
}

// SetExitFunc allows setting a function that will be called to exit the
// process when a Fatal message is generated.
//
// Call with a nil function to undo.
func SetExitFunc(f func(exit.Code)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.exitFn = f
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level Level) bool {
	return logging.verbosity.get() >= level
}

// Infof logs to the INFO log.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, InfoLog, 1, format, args)
}

// Warningf logs to the WARNING and INFO logs.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, WarningLog, 1, format, args)
}

// Errorf logs to the ERROR, WARNING, and INFO logs.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, ErrorLog, 1, format, args)
}

// Fatalf logs to the FATAL log and then exits with exit.FatalError().
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, FatalLog, 1, format, args)
}

// Logf logs to the log of the given severity.
func Logf(ctx context.Context, sev Severity, format string, args ...interface{}) {
	addStructured(ctx, sev, 1, format, args)
}

// VEventf logs to the INFO log if the verbosity is at least level.
func VEventf(ctx context.Context, level Level, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, InfoLog, 1, format, args)
	}
}

// outputLogEntry marshals a log entry and writes it out.
func (l *loggingT) outputLogEntry(s Severity, file string, line int, msg string) {
	if s < l.threshold.get() && s != FatalLog {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	buf := formatHeader(s, l.now(), file, line, l.mu.colors)
	buf.WriteString(msg)
	if msg == "" || msg[len(msg)-1] != '\n' {
		buf.WriteByte('\n')
	}
	// Output errors are dropped; there is nowhere left to report them.
	_, _ = l.mu.out.Write(buf.Bytes())
	putBuffer(buf)

	if s == FatalLog {
		if l.mu.exitFn != nil {
			l.mu.exitFn(exit.FatalError())
			return
		}
		exit.WithCode(exit.FatalError())
	}
}

// callerFile returns the file name (without directory) and line of the
// caller depth frames above its own caller.
func callerFile(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 1
	}
	if slash := strings.LastIndexByte(file, '/'); slash >= 0 {
		file = file[slash+1:]
	}
	return file, line
}

type buffer struct {
	bytes.Buffer
	tmp [64]byte // temporary byte array for creating headers.
}

var bufferPool = sync.Pool{
	New: func() interface{} { return new(buffer) },
}

func getBuffer() *buffer {
	b := bufferPool.Get().(*buffer)
	b.Reset()
	return b
}

func putBuffer(b *buffer) {
	if b.Len() >= 256 {
		// Let big buffers die a natural death.
		return
	}
	bufferPool.Put(b)
}

// formatHeader formats a log header using the provided file name and line
// number. Log lines are colorized depending on severity.
//
// Log lines have this form:
//
//	Lyymmdd hh:mm:ss.uuuuuu file:line  msg...
func formatHeader(s Severity, now time.Time, file string, line int, colors *colorProfile) *buffer {
	buf := getBuffer()
	if line < 0 {
		line = 0 // not a real line number, but acceptable to someDigits
	}
	if s > FatalLog || s < InfoLog {
		s = InfoLog // for safety.
	}

	tmp := buf.tmp[:]
	var n int
	if colors != nil {
		var prefix []byte
		switch s {
		case InfoLog:
			prefix = colors.infoPrefix
		case WarningLog:
			prefix = colors.warnPrefix
		case ErrorLog, FatalLog:
			prefix = colors.errorPrefix
		}
		n += copy(tmp, prefix)
	}
	// Avoid Fprintf, for speed. The format is so simple that we can do it
	// quickly by hand.
	year, month, day := now.Date()
	hour, minute, second := now.Clock()
	tmp[n] = severityChar[s]
	n++
	n += buf.twoDigits(n, year-2000)
	n += buf.twoDigits(n, int(month))
	n += buf.twoDigits(n, day)
	if colors != nil {
		n += copy(tmp[n:], colors.timePrefix) // gray for time, file & line
	}
	tmp[n] = ' '
	n++
	n += buf.twoDigits(n, hour)
	tmp[n] = ':'
	n++
	n += buf.twoDigits(n, minute)
	tmp[n] = ':'
	n++
	n += buf.twoDigits(n, second)
	tmp[n] = '.'
	n++
	n += buf.nDigits(6, n, now.Nanosecond()/1000, '0')
	tmp[n] = ' '
	n++
	buf.Write(tmp[:n])
	buf.WriteString(file)
	tmp[0] = ':'
	n = buf.someDigits(1, line)
	n++
	// Extra space between the header and the actual message for scannability.
	tmp[n] = ' '
	n++
	if colors != nil {
		n += copy(tmp[n:], colorReset)
	}
	tmp[n] = ' '
	n++
	buf.Write(tmp[:n])
	return buf
}

const digits = "0123456789"

// twoDigits formats a zero-prefixed two-digit integer at buf.tmp[i].
// Returns two.
func (buf *buffer) twoDigits(i, d int) int {
	buf.tmp[i+1] = digits[d%10]
	d /= 10
	buf.tmp[i] = digits[d%10]
	return 2
}

// nDigits formats an n-digit integer at buf.tmp[i], padding with pad on the
// left. It assumes d >= 0. Returns n.
func (buf *buffer) nDigits(n, i, d int, pad byte) int {
	j := n - 1
	for ; j >= 0 && d > 0; j-- {
		buf.tmp[i+j] = digits[d%10]
		d /= 10
	}
	for ; j >= 0; j-- {
		buf.tmp[i+j] = pad
	}
	return n
}

// someDigits formats a variable-width integer at buf.tmp[i].
func (buf *buffer) someDigits(i, d int) int {
	// Print into the top, then copy down.
	j := len(buf.tmp)
	for {
		j--
		buf.tmp[j] = digits[d%10]
		d /= 10
		if d == 0 {
			break
		}
	}
	return copy(buf.tmp[i:], buf.tmp[j:])
}
