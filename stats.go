package main

import (
	"errors"
)

// Sample represents a single timed request
type Sample struct {
	Duration   float64 // seconds
	StatusCode int
	BodySize   int
}

// Summary holds the reduced statistics of a sampling run
type Summary struct {
	Min float64
	Max float64
	Avg float64
}

var ErrNoSamples = errors.New("no samples to summarize")

// Summarize reduces an ordered sequence of durations (seconds) to
// min/max/avg. The input must be non-empty.
func Summarize(durations []float64) (Summary, error) {
	if len(durations) == 0 {
		return Summary{}, ErrNoSamples
	}

	return Summary{
		Min: findMin(durations),
		Max: findMax(durations),
		Avg: calculateAvg(durations),
	}, nil
}
