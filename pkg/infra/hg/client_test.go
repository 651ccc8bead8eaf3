package hg_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/infra/hg"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestClient_ListTags(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes tags", func(t *testing.T) {
		var gotPath string
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"node":"abc","tags":[
				{"tag":"FIREFOX_51_0_1_RELEASE","node":"f87a819106bd","date":[1485900000.0,0]},
				{"tag":"FIREFOX_51_0_RELEASE","node":"d345b657d381","date":1485216000}
			]}`))
		})

		tags, err := hg.NewClient(server.URL).ListTags(ctx, "releases/mozilla-release")
		gt.NoError(t, err)
		gt.Value(t, gotPath).Equal("/releases/mozilla-release/json-tags")
		gt.Value(t, len(tags)).Equal(2)
		gt.Value(t, tags[0].Tag).Equal("FIREFOX_51_0_1_RELEASE")
		gt.Value(t, tags[0].Node).Equal("f87a819106bd")
		gt.Value(t, tags[1].Date.Unix()).Equal(int64(1485216000))
	})

	t.Run("missing tags field", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"node":"abc"}`))
		})

		_, err := hg.NewClient(server.URL).ListTags(ctx, "releases/mozilla-release")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("tag entry without tag", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tags":[{"node":"abc","date":1}]}`))
		})

		_, err := hg.NewClient(server.URL).ListTags(ctx, "releases/mozilla-release")
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		})

		_, err := hg.NewClient(server.URL).ListTags(ctx, "releases/mozilla-release")
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := hg.NewClient(server.URL).ListTags(ctx, "releases/unknown")
		gt.True(t, errors.Is(err, model.ErrUpstream))
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		_, err := hg.NewClient(url).ListTags(ctx, "releases/mozilla-release")
		gt.True(t, errors.Is(err, model.ErrUpstream))
	})
}

func TestClient_ListPushes(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes pushes in push order", func(t *testing.T) {
		var gotPath string
		var gotQuery map[string][]string
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.Query()
			_, _ = w.Write([]byte(`{
				"1002": {"user":"ffxbld","date":1485900000,"changesets":[
					{"node":"bbb","author":"Ryan","branch":"default","desc":"Backed out bug 1320072"}
				]},
				"998": {"user":"dev@example.com","date":1485800000,"changesets":[
					{"node":"aaa","desc":"Bug 1332731 - Fix crash r=someone a=lizzard"},
					{"node":"aab","desc":"No bug - update tests a=test-only"}
				]}
			}`))
		})

		pushes, err := hg.NewClient(server.URL+"/").ListPushes(ctx, "releases/mozilla-release",
			"FIREFOX_51_0_RELEASE", "FIREFOX_51_0_1_RELEASE")
		gt.NoError(t, err)

		gt.Value(t, gotPath).Equal("/releases/mozilla-release/json-pushes")
		gt.Value(t, gotQuery["fromchange"]).Equal([]string{"FIREFOX_51_0_RELEASE"})
		gt.Value(t, gotQuery["tochange"]).Equal([]string{"FIREFOX_51_0_1_RELEASE"})
		gt.Value(t, gotQuery["full"]).Equal([]string{"1"})

		gt.Value(t, len(pushes)).Equal(2)
		gt.Value(t, pushes[0].ID).Equal("998")
		gt.Value(t, len(pushes[0].Changesets)).Equal(2)
		gt.Value(t, pushes[0].Changesets[0].Desc).Equal("Bug 1332731 - Fix crash r=someone a=lizzard")
		gt.Value(t, pushes[1].ID).Equal("1002")
		gt.Value(t, pushes[1].Changesets[0].Author).Equal("Ryan")
	})

	t.Run("empty range", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		pushes, err := hg.NewClient(server.URL).ListPushes(ctx, "b", "a", "c")
		gt.NoError(t, err)
		gt.Value(t, len(pushes)).Equal(0)
	})

	t.Run("push without changesets", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"1":{"user":"x","date":1}}`))
		})

		_, err := hg.NewClient(server.URL).ListPushes(ctx, "b", "a", "c")
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("changeset without desc", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"1":{"changesets":[{"node":"abc"}]}}`))
		})

		_, err := hg.NewClient(server.URL).ListPushes(ctx, "b", "a", "c")
		gt.True(t, errors.Is(err, model.ErrMalformedResponse))
	})

	t.Run("unknown revision", func(t *testing.T) {
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"unknown revision"}`))
		})

		_, err := hg.NewClient(server.URL).ListPushes(ctx, "b", "a", "c")
		gt.True(t, errors.Is(err, model.ErrUpstream))
	})
}
