package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"
)

// LoopURL polls the target with a single timed request per iteration,
// printing one timestamped line each time. A failed iteration is reported
// inline and does not stop the loop. Returns when the context is
// cancelled.
func LoopURL(ctx context.Context, c *Checker, config *Config, out io.Writer, logger *log.Logger, exporter *Exporter) {
	delay := time.Duration(config.Loop.Delay) * time.Second
	target := config.URL

	for {
		if ctx.Err() != nil {
			return
		}

		now := time.Now()
		fmt.Fprintf(out, "%02d:%02d:%02d: ", now.Hour(), now.Minute(), now.Second())

		durations, last, err := c.TimeURL(ctx, target, 1, nil)
		if err != nil {
			if ctx.Err() != nil {
				// Interrupted mid-request, not a measurement failure.
				fmt.Fprintln(out)
				return
			}

			fmt.Fprintf(out, "ERROR: %v\n", err)
			FailedRequests.WithLabelValues(target).Inc()
			if config.Logging.Enabled {
				logger.Printf("Target: %s, request failed: %v", target, err)
			}
		} else {
			latency := durations[0]
			if config.Loop.Verbose {
				fmt.Fprintf(out, "%.4f status=%d size=%d\n", latency, last.StatusCode, last.BodySize)
			} else {
				fmt.Fprintf(out, "%.4f\n", latency)
			}

			RequestLatency.WithLabelValues(target).Observe(latency)
			LastLatency.WithLabelValues(target).Set(latency)

			if exporter != nil {
				exporter.Record(target, latency, last.StatusCode, last.BodySize)
			}
			if config.Logging.Enabled {
				logger.Printf("Target: %s, Current: %.4f s", target, latency)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}
