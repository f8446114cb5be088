package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/aidharvest"
	aidhttp "github.com/fwojciec/aidharvest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements aidharvest.Fetcher at compile time.
var _ aidharvest.Fetcher = (*aidhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the document body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>finding aid</body></html>"))
		}))
		defer srv.Close()

		f := aidhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "finding aid")
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := aidhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, aidharvest.ENOTFOUND, aidharvest.ErrorCode(err))
	})

	t.Run("maps 5xx to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{500, 502, 503, 504} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			f := aidhttp.NewFetcher()
			_, err := f.Fetch(context.Background(), srv.URL)

			assert.Equal(t, aidharvest.EUNAVAILABLE, aidharvest.ErrorCode(err), "status %d", status)

			_ = f.Close()
			srv.Close()
		}
	})

	t.Run("maps connection failure to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		f := aidhttp.NewFetcher()
		defer f.Close()

		// Closed server → connection refused.
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := f.Fetch(context.Background(), url)

		assert.Equal(t, aidharvest.EUNAVAILABLE, aidharvest.ErrorCode(err))
	})

	t.Run("maps other statuses to EINTERNAL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		f := aidhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Equal(t, aidharvest.EINTERNAL, aidharvest.ErrorCode(err))
	})
}
