package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type versionedTag struct {
	tag     string
	version *model.DotVersion
}

// ResolvePreviousTag finds the release tag immediately preceding currentDotVersion on branch.
// Tags are ordered by their embedded semantic version, never by name or push date.
func ResolvePreviousTag(ctx context.Context, repo interfaces.RepositoryClient, product, branch, currentDotVersion string) (string, string, error) {
	logger := ctxlog.From(ctx)

	currentTag := model.DotVersionToTag(product, currentDotVersion)
	current, err := model.ParseDotVersion(currentDotVersion)
	if err != nil {
		return "", "", goerr.Wrap(model.ErrTagNotFound, "current version is not a release version",
			goerr.V("version", currentDotVersion), goerr.V("cause", err.Error()))
	}

	entries, err := repo.ListTags(ctx, branch)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to list tags", goerr.V("branch", branch))
	}

	major, _, _ := strings.Cut(currentDotVersion, ".")
	candidates := releaseTags(ctx, entries, strings.ToUpper(product)+"_"+major+"_")

	logger.Debug("Filtered release tags",
		"branch", branch,
		"total", len(entries),
		"candidates", len(candidates),
	)

	idx := slices.IndexFunc(candidates, func(c versionedTag) bool {
		return c.version.Equal(current)
	})
	if idx < 0 {
		return "", "", goerr.Wrap(model.ErrTagNotFound, "current tag is not on the branch",
			goerr.V("tag", currentTag), goerr.V("branch", branch))
	}
	if idx == 0 {
		return "", "", goerr.Wrap(model.ErrTagNotFound, "current tag has no predecessor",
			goerr.V("tag", currentTag), goerr.V("branch", branch))
	}

	return currentTag, candidates[idx-1].tag, nil
}

// releaseTags keeps the release tags of one product major line, sorted by version
func releaseTags(ctx context.Context, entries []model.TagEntry, prefix string) []versionedTag {
	logger := ctxlog.From(ctx)

	seen := make(map[string]struct{}, len(entries))
	var tags []versionedTag
	for _, entry := range entries {
		if !isReleaseTag(entry.Tag, prefix) {
			continue
		}
		if _, ok := seen[entry.Tag]; ok {
			continue
		}
		seen[entry.Tag] = struct{}{}

		version, err := model.ParseDotVersion(model.TagDotVersion(entry.Tag))
		if err != nil {
			logger.Debug("Skipping tag with unparseable version", "tag", entry.Tag, "error", err)
			continue
		}
		tags = append(tags, versionedTag{tag: entry.Tag, version: version})
	}

	slices.SortFunc(tags, func(a, b versionedTag) int {
		if c := a.version.Compare(b.version); c != 0 {
			return c
		}
		return strings.Compare(a.tag, b.tag)
	})

	return tags
}

func isReleaseTag(tag, prefix string) bool {
	return strings.HasPrefix(tag, prefix) &&
		!strings.Contains(tag, "BASE") &&
		!strings.Contains(tag, "END") &&
		strings.Contains(tag, "RELEASE")
}
