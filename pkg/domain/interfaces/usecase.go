package interfaces

import (
	"context"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// BuglistUseCase builds the buglist of a release
type BuglistUseCase interface {
	// Create compares a release with its predecessor. It never fails: problems are reported
	// through an empty result with a skip reason.
	Create(ctx context.Context, release *model.Release) *model.Buglist

	// ResolveTags returns the current and previous tag of a release
	ResolveTags(ctx context.Context, release *model.Release) (current, previous string, err error)
}

// ReleaseHookUseCase handles release hooks received by the server
type ReleaseHookUseCase interface {
	// ProcessEvent builds and delivers the buglist of a hook event
	ProcessEvent(ctx context.Context, event *model.ReleaseHookEvent) error
}
