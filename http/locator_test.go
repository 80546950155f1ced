package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rdocs/cratedoc"
	crhttp "github.com/rdocs/cratedoc/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Locator implements cratedoc.Locator at compile time.
var _ cratedoc.Locator = (*crhttp.Locator)(nil)

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("standard library crates resolve without network access", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("redirector should not be called for std crates")
		}))
		defer srv.Close()

		l := crhttp.NewLocator(crhttp.WithRedirectorURL(srv.URL))
		origin, err := l.Locate(context.Background(), "std")

		require.NoError(t, err)
		assert.Equal(t, "https://doc.rust-lang.org/stable/std/", origin.BaseURL)
	})

	t.Run("302 Location becomes the origin with trailing slash", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/serde", r.URL.Path)
			w.Header().Set("Location", "https://docs.example/serde/1.0.219/serde")
			w.WriteHeader(http.StatusFound)
		}))
		defer srv.Close()

		l := crhttp.NewLocator(crhttp.WithRedirectorURL(srv.URL))
		origin, err := l.Locate(context.Background(), "serde")

		require.NoError(t, err)
		assert.Equal(t, "https://docs.example/serde/1.0.219/serde/", origin.BaseURL)
	})

	t.Run("relative Location is resolved against the redirector", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/serde/1.0.219/serde/")
			w.WriteHeader(http.StatusFound)
		}))
		defer srv.Close()

		l := crhttp.NewLocator(crhttp.WithRedirectorURL(srv.URL))
		origin, err := l.Locate(context.Background(), "serde")

		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/serde/1.0.219/serde/", origin.BaseURL)
	})

	t.Run("non-redirect response is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		l := crhttp.NewLocator(crhttp.WithRedirectorURL(srv.URL))
		_, err := l.Locate(context.Background(), "no-such-crate")

		require.Error(t, err)
		assert.Equal(t, cratedoc.ENOTFOUND, cratedoc.ErrorCode(err))
	})

	t.Run("transport failure is EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		l := crhttp.NewLocator(crhttp.WithRedirectorURL(srv.URL))
		_, err := l.Locate(context.Background(), "serde")

		require.Error(t, err)
		assert.Equal(t, cratedoc.EUNAVAILABLE, cratedoc.ErrorCode(err))
	})
}
