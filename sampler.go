package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrHTTPStatus = errors.New("http error status")

// TimeURL issues n sequential GET requests and returns the elapsed time of
// each in call order, in seconds, plus the metadata of the last response.
//
// With keepalive enabled one untimed priming request establishes the
// connection first, so the timed requests measure server processing time
// rather than handshake cost. The run aborts on the first HTTP error
// status.
func (c *Checker) TimeURL(ctx context.Context, url string, n int, progress io.Writer) ([]float64, *FetchResult, error) {
	if c.keepalive {
		if _, err := c.Fetch(ctx, url); err != nil {
			return nil, nil, fmt.Errorf("priming request: %w", err)
		}
	}

	if progress != nil {
		fmt.Fprint(progress, "Sending requests: ")
	}

	durations := make([]float64, 0, n)
	var last *FetchResult

	for i := 0; i < n; i++ {
		start := time.Now()
		res, err := c.Fetch(ctx, url)
		elapsed := time.Since(start)

		if err != nil {
			return nil, nil, err
		}

		durations = append(durations, elapsed.Seconds())
		last = res

		if res.StatusCode >= http.StatusBadRequest {
			return nil, nil, fmt.Errorf("%w: %d %s",
				ErrHTTPStatus, res.StatusCode, http.StatusText(res.StatusCode))
		}

		if progress != nil {
			fmt.Fprint(progress, ".")
		}
	}

	if progress != nil {
		fmt.Fprintln(progress)
	}

	return durations, last, nil
}
