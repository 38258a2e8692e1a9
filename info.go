package main

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// DisplayURLInfo issues one GET and prints the response metadata.
func DisplayURLInfo(ctx context.Context, c *Checker, url string, includeHeaders bool, out io.Writer) error {
	res, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Input URL: %s\n", url)
	fmt.Fprintf(out, "Final URL: %s\n", res.FinalURL)
	fmt.Fprintf(out, "HTTP status code: %d\n", res.StatusCode)
	fmt.Fprintf(out, "Response size: %d\n", res.BodySize)
	fmt.Fprintf(out, "Number of redirects: %d\n", len(res.Redirects))
	if len(res.Redirects) > 0 {
		history := append(append([]string{}, res.Redirects...), res.FinalURL)
		fmt.Fprintf(out, "URL history: %s\n", strings.Join(history, " "))
	}

	if includeHeaders {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Headers:")
		for key, values := range res.Header {
			for _, value := range values {
				fmt.Fprintf(out, "%s: %s\n", key, value)
			}
		}
	} else {
		fmt.Fprintf(out, "Content-type: %s\n", res.Header.Get("Content-Type"))
	}

	return nil
}
