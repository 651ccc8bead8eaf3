package bugzilla_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/infra/bugzilla"
)

func TestBuglistURL(t *testing.T) {
	got := bugzilla.BuglistURL("https://bugzilla.mozilla.org/", []string{"1220832", "1220837", "1347119"})
	gt.Value(t, got).Equal("https://bugzilla.mozilla.org/buglist.cgi?bug_id=1220832%2C1220837%2C1347119")

	gt.Value(t, bugzilla.BuglistURL(bugzilla.DefaultBaseURL, []string{"1"})).
		Equal("https://bugzilla.mozilla.org/buglist.cgi?bug_id=1")
}

func TestShortener_Shorten(t *testing.T) {
	ctx := context.Background()
	longURL := bugzilla.BuglistURL(bugzilla.DefaultBaseURL, []string{"1340639", "1340641"})

	t.Run("returns short url", func(t *testing.T) {
		var gotParam string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotParam = r.URL.Query().Get("url")
			_, _ = w.Write([]byte(`{"url":"https://mzl.la/2pQHYkW"}`))
		}))
		defer server.Close()

		short, err := bugzilla.NewShortener(server.URL).Shorten(ctx, longURL)
		gt.NoError(t, err)
		gt.Value(t, short).Equal("https://mzl.la/2pQHYkW")
		gt.Value(t, gotParam).Equal(longURL)
	})

	t.Run("missing url field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":true,"message":"rate limited"}`))
		}))
		defer server.Close()

		_, err := bugzilla.NewShortener(server.URL).Shorten(ctx, longURL)
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := bugzilla.NewShortener(server.URL).Shorten(ctx, longURL)
		gt.True(t, errors.Is(err, model.ErrUpstream))
	})
}
