// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cliflags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsage(t *testing.T) {
	u := Concurrency.Usage()
	require.Contains(t, u, "Environment variable: XLNUM_CONCURRENCY")
	for _, line := range strings.Split(strings.TrimRight(u, " \n"), "\n") {
		if line == "" {
			continue
		}
		require.True(t, strings.HasPrefix(line, "        "), "%q", line)
		require.LessOrEqual(t, len(line), 79, "%q", line)
	}
}

func TestUsagePreformatted(t *testing.T) {
	u := Format.Usage()
	// Preformatted lines keep their own alignment.
	require.Contains(t, u, "  tsv    tab separated input, bits and rendering, with a header")
	require.NotContains(t, u, "<PRE>")
}

func TestUsageEnvVarMustMatchName(t *testing.T) {
	f := FlagInfo{Name: "concurrency", EnvVar: "XLNUM_PARALLELISM"}
	require.Panics(t, func() { _ = f.Usage() })

	f = FlagInfo{Name: "log-threshold", EnvVar: "XLNUM_LOG_THRESHOLD"}
	require.NotPanics(t, func() { _ = f.Usage() })
}
