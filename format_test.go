package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatSummary(t *testing.T) {
	s := Summary{Min: 0.05, Max: 0.07, Avg: 0.06}

	tt := []struct {
		name     string
		parsable bool
		report   bool
		expected string
	}{
		{
			"human readable by default",
			false, false,
			"Response times (s): min: 0.0500 max: 0.0700 avg: 0.0600\n",
		},
		{
			"parsable is space separated min max avg",
			true, false,
			"0.0500 0.0700 0.0600\n",
		},
		{
			"report is three labeled lines",
			false, true,
			"Average: 0.0600\nMinimum: 0.0500\nMaximum: 0.0700\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(st *testing.T) {
			config := DefaultConfig()
			config.Parsable = tc.parsable
			config.Report = tc.report
			require.Equal(st, tc.expected, FormatSummary(s, &config))
		})
	}
}

func TestFormatUsingURL(t *testing.T) {
	t.Run("should include the resolved address", func(st *testing.T) {
		line := FormatUsingURL("http://localhost/")
		require.Contains(st, line, "Using URL: http://localhost/ (")
	})

	t.Run("should fall back to the bare URL when resolution fails", func(st *testing.T) {
		line := FormatUsingURL("http://no-such-host.invalid/")
		require.Equal(st, "Using URL: http://no-such-host.invalid/\n", line)
	})
}
