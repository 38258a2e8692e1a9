package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxRedirects = 10

var ErrTooManyRedirects = errors.New("stopped after 10 redirects")

// Checker issues GET requests against a target with a fixed header set.
// One Checker owns one transport, so with keepalive enabled all requests
// of a run share the same underlying connection.
type Checker struct {
	client    *http.Client
	headers   map[string]string
	keepalive bool
}

// NewChecker builds a client from the configuration. With keepalive
// disabled every request dials a fresh connection.
func NewChecker(config *Config) *Checker {
	transport := &http.Transport{
		TLSClientConfig:   &tls.Config{InsecureSkipVerify: config.Checker.Insecure},
		DisableKeepAlives: !config.Checker.Keepalive,
	}

	headers := map[string]string{}
	for k, v := range config.Headers {
		headers[k] = v
	}
	if config.Checker.UserAgent != "" {
		headers["User-Agent"] = config.Checker.UserAgent
	}

	return &Checker{
		client:    &http.Client{Transport: transport},
		headers:   headers,
		keepalive: config.Checker.Keepalive,
	}
}

// FetchResult carries the response metadata of a single GET.
type FetchResult struct {
	StatusCode int
	BodySize   int
	FinalURL   string
	Redirects  []string
	Header     http.Header
}

// Fetch issues one GET, following redirects, and returns the response
// metadata with the body fully consumed.
func (c *Checker) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	var chain []string

	client := *c.client
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return ErrTooManyRedirects
		}
		chain = append(chain, via[len(via)-1].URL.String())
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read body: %w", err)
	}

	return &FetchResult{
		StatusCode: resp.StatusCode,
		BodySize:   len(body),
		FinalURL:   resp.Request.URL.String(),
		Redirects:  chain,
		Header:     resp.Header,
	}, nil
}

// Resolve discovers the final URL after following redirects.
func (c *Checker) Resolve(ctx context.Context, rawURL string) (string, error) {
	res, err := c.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return res.FinalURL, nil
}
