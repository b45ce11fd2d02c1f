// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/cliflags"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI runs the command with default flags, echoing the command line and
// printing errors to stdout so that examples can check them.
func runCLI(args ...string) {
	initCLIDefaults()
	fmt.Println(strings.Join(append([]string{"xlnum"}, args...), " "))
	if err := Run(args); err != nil {
		printError(os.Stdout, err)
		fmt.Printf("exit code: %s\n", clierror.ExitCode(err))
	}
}

// runCaptured runs the command with stdin and stdout redirected.
func runCaptured(t *testing.T, in io.Reader, args ...string) (string, error) {
	t.Helper()
	initCLIDefaults()
	var out bytes.Buffer
	xlnumCmd.SetIn(in)
	xlnumCmd.SetOut(&out)
	defer func() {
		xlnumCmd.SetIn(nil)
		xlnumCmd.SetOut(nil)
	}()
	err := Run(args)
	return out.String(), err
}

func Example_render() {
	runCLI("render", "1", "0x0000000000000001", "0xFFFF0420003C0000", "1e20", "0.1", "756")
	runCLI("render", "--", "-1.5", "-0", "-0.0000123456789012345")
	runCLI("render", "123456789012345678901", "0x7FF0000000000000", "1e-19", "0.000123456789012345")

	// Output:
	// xlnum render 1 0x0000000000000001 0xFFFF0420003C0000 1e20 0.1 756
	// 1
	// 0
	// 3.484840871308E+308
	// 1E+20
	// 0.1
	// 756
	// xlnum render -- -1.5 -0 -0.0000123456789012345
	// -1.5
	// -0
	// -1.23456789012345E-05
	// xlnum render 123456789012345678901 0x7FF0000000000000 1e-19 0.000123456789012345
	// 1.23456789012346E+20
	// 1.7976931348623E+308
	// 1E-19
	// 0.000123456789012345
}

func Example_render_tsv() {
	runCLI("render", "--format=tsv", "1", "0.1")

	// Output:
	// xlnum render --format=tsv 1 0.1
	// value	bits	text
	// 1	0x3FF0000000000000	1
	// 0.1	0x3FB999999999999A	0.1
}

func Example_compare() {
	runCLI("compare", "1", "0x3FF0000000000001")
	runCLI("compare", "0.05", "0.049999999999999996")
	runCLI("compare", "1", "1.00000000000001")
	runCLI("compare", "--", "-0", "0")
	runCLI("compare", "--", "1", "-1")

	// Output:
	// xlnum compare 1 0x3FF0000000000001
	// =
	// xlnum compare 0.05 0.049999999999999996
	// =
	// xlnum compare 1 1.00000000000001
	// <
	// xlnum compare -- -0 0
	// <
	// xlnum compare -- 1 -1
	// >
}

func Example_errors() {
	runCLI("compare", "0x7FF0000000000000", "1")
	runCLI("compare", "1", "0x7FF8000000000000")
	runCLI("compare", "1")
	runCLI("render", "abc")
	runCLI("render", "--bogus")

	// Output:
	// xlnum compare 0x7FF0000000000000 1
	// ERROR: special double values are not allowed: left operand 0x7FF0000000000000 is infinite
	// HINT: Only finite values have an ordering; use render to see how a special value is displayed.
	// exit code: 10
	// xlnum compare 1 0x7FF8000000000000
	// ERROR: special double values are not allowed: right operand 0x7FF8000000000000 is nan
	// HINT: Only finite values have an ordering; use render to see how a special value is displayed.
	// exit code: 10
	// xlnum compare 1
	// ERROR: accepts 2 arg(s), received 1
	// exit code: 4
	// xlnum render abc
	// ERROR: invalid value "abc": strconv.ParseFloat: parsing "abc": invalid syntax
	// HINT: Use a decimal number such as 0.1 or 1e300, or a raw bit pattern such as 0x3FF0000000000000.
	// exit code: 11
	// xlnum render --bogus
	// ERROR: unknown flag: --bogus
	// exit code: 4
}

func TestRenderFromStdin(t *testing.T) {
	in := strings.NewReader("1\n\n# a comment\n  0.1  \n0x8000000000000000\n")
	out, err := runCaptured(t, in, "render")
	require.NoError(t, err)
	require.Equal(t, "1\n0.1\n-0\n", out)
}

func TestRenderKeepsInputOrder(t *testing.T) {
	var args, want []string
	for i := 1; i <= 200; i++ {
		args = append(args, strconv.Itoa(i*i))
		want = append(want, strconv.Itoa(i*i))
	}
	out, err := runCaptured(t, nil, append([]string{"render", "--concurrency=7"}, args...)...)
	require.NoError(t, err)
	require.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestRenderTable(t *testing.T) {
	out, err := runCaptured(t, nil, "render", "--format=table", "1e20", "0.1")
	require.NoError(t, err)
	require.Contains(t, out, "1E+20")
	require.Contains(t, out, "0x3FB999999999999A")
	require.Contains(t, out, "(2 rows)")
}

func TestExplain(t *testing.T) {
	out, err := runCaptured(t, nil, "explain", "--format=text", "-1234.5", "0x0000000000000001")
	// -1234.5 looks like a shorthand flag.
	require.Error(t, err)
	require.Equal(t, exit.CommandLineFlagError(), clierror.ExitCode(err))

	out, err = runCaptured(t, nil, "explain", "--format=text", "--", "-1234.5", "0x0000000000000001")
	require.NoError(t, err)
	require.Contains(t, out, "-[ RECORD 1 ]\n")
	require.Contains(t, out, "exponent         | 0x409\n")
	require.Contains(t, out, "category         | normal\n")
	require.Contains(t, out, "digits           | 12345\n")
	require.Contains(t, out, "decimal exponent | 3\n")
	require.Contains(t, out, "text             | -1234.5\n")
	require.Contains(t, out, "-[ RECORD 2 ]\n")
	require.Contains(t, out, "category         | denormal\n")
	require.Contains(t, out, "text             | 0\n")

	out, err = runCaptured(t, nil, "explain", "0.1")
	require.NoError(t, err)
	require.Contains(t, out, "decimal exponent")
	require.Contains(t, out, "(1 row)")
}

func TestFlagErrors(t *testing.T) {
	for _, args := range [][]string{
		{"render", "--concurrency=0", "1"},
		{"render", "--format=xml", "1"},
		{"explain", "--format=html", "1"},
		{"compare", "1", "2", "3"},
		{"version", "extra"},
		{"--log-threshold=LOUD", "version"},
		{"--v=x", "version"},
	} {
		_, err := runCaptured(t, nil, args...)
		require.Error(t, err, "%v", args)
		require.Equal(t, exit.CommandLineFlagError(), clierror.ExitCode(err), "%v: %v", args, err)
	}
}

func TestInvalidValueInBatch(t *testing.T) {
	_, err := runCaptured(t, strings.NewReader("1\n2\nthree\n4\n"), "render", "--concurrency=2")
	require.Error(t, err)
	require.Equal(t, exit.InvalidValue(), clierror.ExitCode(err))
	require.Contains(t, err.Error(), `"three"`)
}

func TestProcessValuesInterrupted(t *testing.T) {
	initCLIDefaults()
	defer initCLIDefaults()
	cliCtx.concurrency = 1
	values := []string{"1", "2", "3", "4"}

	// Canceled while the batch is running.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_, err := processValues(ctx, values, func(_ context.Context, input string, _ uint64) []string {
		cancel()
		return []string{input}
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
	require.Equal(t, exit.Interrupted(), clierror.ExitCode(err))

	// Canceled before the batch starts.
	_, err = processValues(ctx, values, func(_ context.Context, input string, _ uint64) []string {
		t.Errorf("unexpected call for %s", input)
		return nil
	})
	require.Equal(t, exit.Interrupted(), clierror.ExitCode(err))

	// A canceled command exits with the interrupted code.
	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	initCLIDefaults()
	err = runContext(ctx, []string{"render", "1", "2"})
	require.Equal(t, exit.Interrupted(), clierror.ExitCode(err))
}

func TestVersion(t *testing.T) {
	out, err := runCaptured(t, nil, "version", "--deps")
	require.NoError(t, err)
	require.Contains(t, out, "Go Version:")
	require.Contains(t, out, "Build Deps:")
}

func TestFlagFromEnv(t *testing.T) {
	t.Setenv(cliflags.Concurrency.EnvVar, "3")
	var concurrency int
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	IntFlag(f, &concurrency, cliflags.Concurrency)
	require.Equal(t, 3, concurrency)

	// The command line still wins.
	require.NoError(t, f.Parse([]string{"--concurrency=5"}))
	require.Equal(t, 5, concurrency)
}

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		in   string
		bits uint64
	}{
		{"1", 0x3FF0000000000000},
		{"0X3ff0000000000000", 0x3FF0000000000000},
		{"0x1", 1},
		{"-0", 0x8000000000000000},
		{"1e400", 0x7FF0000000000000},
		{"-1e400", 0xFFF0000000000000},
		{"1e-400", 0},
		{"inf", 0x7FF0000000000000},
	} {
		bits, err := parseValue(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.bits, bits, tc.in)
	}

	for _, in := range []string{"", "0x", "0x10000000000000000", "0xZZ", "1,5", "one"} {
		_, err := parseValue(in)
		require.Error(t, err, in)
		require.Equal(t, exit.InvalidValue(), clierror.ExitCode(err), in)
	}
}
