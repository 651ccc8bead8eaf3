package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/infra/bugzilla"
)

const (
	bugsPrefix     = "Bugs since previous changeset: "
	backoutsPrefix = "Backouts since previous changeset: "
)

// Description names the two compared tags
func Description(previousTag, currentTag string) string {
	return fmt.Sprintf("Comparing Mercurial tag %s to %s:", previousTag, currentTag)
}

// Formatter renders buglists as plain text
type Formatter struct {
	bugzillaURL string
	shortener   interfaces.URLShortener
}

// NewFormatter creates a Formatter linking to the Bugzilla at bugzillaURL.
// A nil shortener keeps the long links.
func NewFormatter(bugzillaURL string, shortener interfaces.URLShortener) *Formatter {
	return &Formatter{
		bugzillaURL: bugzillaURL,
		shortener:   shortener,
	}
}

// Format renders the description followed by one link line per non-empty set.
// The result never ends with a newline.
func (f *Formatter) Format(ctx context.Context, description string, bugs, backouts model.BugSet) string {
	lines := []string{strings.TrimRight(description, "\n")}

	if len(bugs) > 0 {
		lines = append(lines, bugsPrefix+f.link(ctx, bugs))
	}
	if len(backouts) > 0 {
		lines = append(lines, backoutsPrefix+f.link(ctx, backouts))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) link(ctx context.Context, ids model.BugSet) string {
	longURL := bugzilla.BuglistURL(f.bugzillaURL, ids.Sorted())
	if f.shortener == nil {
		return longURL
	}

	short, err := f.shortener.Shorten(ctx, longURL)
	if err != nil {
		ctxlog.From(ctx).Info("Failed to shorten buglist link, using the long form", "error", err, "url", longURL)
		return longURL
	}
	return short
}
