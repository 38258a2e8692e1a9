package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeURL(t *testing.T) {
	t.Run("should produce exactly n durations in call order", func(st *testing.T) {
		var hits int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&hits, 1)
		}))
		defer srv.Close()

		c := NewChecker(testConfig(false))
		durations, last, err := c.TimeURL(context.Background(), srv.URL, 4, nil)
		require.NoError(st, err)
		require.Len(st, durations, 4)
		require.EqualValues(st, 4, atomic.LoadInt64(&hits))
		require.Equal(st, http.StatusOK, last.StatusCode)
		for _, d := range durations {
			require.GreaterOrEqual(st, d, 0.0)
		}
	})

	t.Run("should send one extra untimed priming request with keepalive", func(st *testing.T) {
		var hits int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt64(&hits, 1)
		}))
		defer srv.Close()

		c := NewChecker(testConfig(true))
		durations, _, err := c.TimeURL(context.Background(), srv.URL, 3, nil)
		require.NoError(st, err)
		require.Len(st, durations, 3)
		require.EqualValues(st, 4, atomic.LoadInt64(&hits))
	})

	t.Run("should abort on an http error status", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewChecker(testConfig(false))
		durations, _, err := c.TimeURL(context.Background(), srv.URL, 3, nil)
		require.ErrorIs(st, err, ErrHTTPStatus)
		require.Nil(st, durations)
	})

	t.Run("should report the last response's status and size", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("0123456789"))
		}))
		defer srv.Close()

		c := NewChecker(testConfig(false))
		_, last, err := c.TimeURL(context.Background(), srv.URL, 2, nil)
		require.NoError(st, err)
		require.Equal(st, http.StatusOK, last.StatusCode)
		require.Equal(st, 10, last.BodySize)
	})

	t.Run("should write one progress dot per request", func(st *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		var buf bytes.Buffer
		c := NewChecker(testConfig(false))
		_, _, err := c.TimeURL(context.Background(), srv.URL, 3, &buf)
		require.NoError(st, err)
		require.Equal(st, "Sending requests: ...\n", buf.String())
	})
}
