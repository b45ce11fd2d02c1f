// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/xlnum/pkg/cli/clierror"
	"github.com/cockroachdb/xlnum/pkg/cli/exit"
	"github.com/cockroachdb/xlnum/pkg/util/log"
	"golang.org/x/sync/errgroup"
)

// progressInterval is the minimum time between progress messages at
// verbosity 1.
const progressInterval = time.Second

// readValues returns the positional arguments or, when there are none,
// the non-blank lines of in. Lines starting with # are comments.
func readValues(args []string, in io.Reader, stderr io.Writer) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if isInteractive {
		fmt.Fprintln(stderr, "# Enter one value per line; end with Ctrl+D.")
	}
	var values []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		values = append(values, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading values")
	}
	return values, nil
}

// processValues parses every value and calls fn on the result, running up
// to cliCtx.concurrency calls at once. The rows are returned in input
// order. The first parse error stops the batch.
func processValues(
	ctx context.Context, values []string, fn func(ctx context.Context, input string, bits uint64) []string,
) ([][]string, error) {
	rows := make([][]string, len(values))
	every := log.Every(progressInterval)
	var done int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cliCtx.concurrency)
	for i := range values {
		i := i
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			vctx := logtags.AddTag(gCtx, "v", i+1)
			bits, err := parseValue(values[i])
			if err != nil {
				return err
			}
			rows[i] = fn(vctx, values[i], bits)
			if n := atomic.AddInt64(&done, 1); log.V(1) && every.ShouldLog() {
				log.Infof(ctx, "processed %d of %d values", n, len(values))
			}
			return nil
		})
	}
	err := g.Wait()
	// Once the caller is canceled, work still queued fails with the
	// context error; report the interruption instead.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, clierror.NewError(ctxErr, exit.Interrupted())
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}
