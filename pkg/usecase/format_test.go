package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/usecase"
)

const bugzillaURL = "https://bugzilla.mozilla.org"

func TestDescription(t *testing.T) {
	gt.Value(t, usecase.Description("FIREFOX_51_0_RELEASE", "FIREFOX_51_0_1_RELEASE")).
		Equal("Comparing Mercurial tag FIREFOX_51_0_RELEASE to FIREFOX_51_0_1_RELEASE:")
}

func TestFormatter_Format(t *testing.T) {
	ctx := context.Background()
	desc := "Went from release a to release b"

	t.Run("both sets", func(t *testing.T) {
		f := usecase.NewFormatter(bugzillaURL, nil)
		out := f.Format(ctx, desc+"\n",
			model.NewBugSet("1347119", "1220832", "1220837"),
			model.NewBugSet("1340641", "1340639"))

		gt.False(t, strings.HasSuffix(out, "\n"))
		lines := strings.Split(out, "\n")
		gt.Value(t, lines).Equal([]string{
			desc,
			"Bugs since previous changeset: https://bugzilla.mozilla.org/buglist.cgi?bug_id=1220832%2C1220837%2C1347119",
			"Backouts since previous changeset: https://bugzilla.mozilla.org/buglist.cgi?bug_id=1340639%2C1340641",
		})
	})

	t.Run("backouts only", func(t *testing.T) {
		f := usecase.NewFormatter(bugzillaURL, nil)
		out := f.Format(ctx, desc, model.NewBugSet(), model.NewBugSet("1320072"))

		lines := strings.Split(out, "\n")
		gt.Value(t, len(lines)).Equal(2)
		gt.True(t, strings.HasPrefix(lines[1], "Backouts since previous changeset: "))
	})

	t.Run("no bugs", func(t *testing.T) {
		f := usecase.NewFormatter(bugzillaURL, nil)
		gt.Value(t, f.Format(ctx, desc+"\n", model.NewBugSet(), model.NewBugSet())).Equal(desc)
	})

	t.Run("shortened links", func(t *testing.T) {
		shortener := &MockShortener{
			shortenFunc: func(ctx context.Context, longURL string) (string, error) {
				return "https://mzl.la/short", nil
			},
		}
		f := usecase.NewFormatter(bugzillaURL, shortener)
		out := f.Format(ctx, desc, model.NewBugSet("1"), model.NewBugSet("2"))

		gt.Value(t, len(shortener.urls)).Equal(2)
		gt.Value(t, shortener.urls[0]).Equal("https://bugzilla.mozilla.org/buglist.cgi?bug_id=1")
		gt.Value(t, shortener.urls[1]).Equal("https://bugzilla.mozilla.org/buglist.cgi?bug_id=2")
		gt.String(t, out).Contains("Bugs since previous changeset: https://mzl.la/short")
		gt.False(t, strings.Contains(out, "buglist.cgi"))
	})

	t.Run("shortener failure keeps long link", func(t *testing.T) {
		shortener := &MockShortener{
			shortenFunc: func(ctx context.Context, longURL string) (string, error) {
				return "", errors.New("rate limited")
			},
		}
		f := usecase.NewFormatter(bugzillaURL, shortener)
		out := f.Format(ctx, desc, model.NewBugSet("1"), model.NewBugSet())

		gt.Value(t, out).Equal(desc + "\nBugs since previous changeset: https://bugzilla.mozilla.org/buglist.cgi?bug_id=1")
	})
}
