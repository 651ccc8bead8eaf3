package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/infra/bugzilla"
)

type buglistUseCase struct {
	repo        interfaces.RepositoryClient
	shortener   interfaces.URLShortener
	bugzillaURL string
}

// BuglistOption is a functional option for the buglist use case
type BuglistOption func(*buglistUseCase)

// WithShortener shortens the bug-list links
func WithShortener(shortener interfaces.URLShortener) BuglistOption {
	return func(uc *buglistUseCase) {
		uc.shortener = shortener
	}
}

// WithBugzillaURL sets the Bugzilla instance the links point to
func WithBugzillaURL(url string) BuglistOption {
	return func(uc *buglistUseCase) {
		uc.bugzillaURL = url
	}
}

// NewBuglist creates a new instance of BuglistUseCase
func NewBuglist(repo interfaces.RepositoryClient, opts ...BuglistOption) interfaces.BuglistUseCase {
	uc := &buglistUseCase{
		repo:        repo,
		bugzillaURL: bugzilla.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ResolveTags returns the current and previous tag of a release
func (uc *buglistUseCase) ResolveTags(ctx context.Context, release *model.Release) (string, string, error) {
	return ResolvePreviousTag(ctx, uc.repo, release.Product, release.Branch, release.Version)
}

// Create compares a release with its predecessor and renders the bugs fixed in between
func (uc *buglistUseCase) Create(ctx context.Context, release *model.Release) *model.Buglist {
	logger := ctxlog.From(ctx)

	result := &model.Buglist{
		Release:  *release,
		Bugs:     []string{},
		Backouts: []string{},
	}

	if err := release.Validate(); err != nil {
		return uc.skip(ctx, result, model.SkipInvalidRelease, err)
	}

	// First betas have nothing to compare with; skip before any request
	if release.IsFirstBeta() {
		logger.Info("Skipping buglist of first beta",
			"product", release.Product,
			"version", release.Version,
		)
		result.SkipReason = model.SkipFirstBeta
		return result
	}

	currentTag, previousTag, err := uc.ResolveTags(ctx, release)
	if err != nil {
		reason := model.SkipUpstreamFailure
		if errors.Is(err, model.ErrTagNotFound) {
			reason = model.SkipTagNotFound
		}
		return uc.skip(ctx, result, reason, err)
	}
	result.CurrentTag = currentTag
	result.PreviousTag = previousTag

	logger.Info("Resolved release tags",
		"current_tag", currentTag,
		"previous_tag", previousTag,
	)

	pushes, err := uc.repo.ListPushes(ctx, release.Branch, previousTag, currentTag)
	if err != nil {
		return uc.skip(ctx, result, model.SkipUpstreamFailure,
			goerr.Wrap(err, "failed to list pushes", goerr.V("from", previousTag), goerr.V("to", currentTag)))
	}

	bugs, backouts := ClassifyPushes(pushes)
	result.Bugs = bugs.Sorted()
	result.Backouts = backouts.Sorted()

	logger.Info("Classified changesets",
		"pushes", len(pushes),
		"bugs", len(bugs),
		"backouts", len(backouts),
	)

	if len(bugs) == 0 && len(backouts) == 0 {
		result.SkipReason = model.SkipNoBugs
		return result
	}

	formatter := NewFormatter(uc.bugzillaURL, uc.shortener)
	result.Text = formatter.Format(ctx, Description(previousTag, currentTag), bugs, backouts)

	return result
}

func (uc *buglistUseCase) skip(ctx context.Context, result *model.Buglist, reason model.SkipReason, err error) *model.Buglist {
	ctxlog.From(ctx).Info("No buglist available",
		"product", result.Release.Product,
		"branch", result.Release.Branch,
		"version", result.Release.Version,
		"reason", reason,
		"error", err,
	)
	result.SkipReason = reason
	result.Err = err
	return result
}
