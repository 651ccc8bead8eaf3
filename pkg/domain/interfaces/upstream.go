package interfaces

import (
	"context"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// RepositoryClient reads tags and pushes of a source repository branch
type RepositoryClient interface {
	// ListTags returns every tag of the branch
	ListTags(ctx context.Context, branch string) ([]model.TagEntry, error)

	// ListPushes returns the pushes between two revisions (exclusive from, inclusive to)
	ListPushes(ctx context.Context, branch, fromRev, toRev string) ([]model.Push, error)
}

// URLShortener shortens long links
type URLShortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// Notifier delivers a buglist somewhere
type Notifier interface {
	// Name identifies the notifier in logs
	Name() string

	Notify(ctx context.Context, buglist *model.Buglist) error
}
