package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type releaseHookUseCase struct {
	buglistUC interfaces.BuglistUseCase
	notifiers []interfaces.Notifier
}

// NewReleaseHook creates a new instance of ReleaseHookUseCase
func NewReleaseHook(buglistUC interfaces.BuglistUseCase, notifiers ...interfaces.Notifier) *releaseHookUseCase {
	return &releaseHookUseCase{
		buglistUC: buglistUC,
		notifiers: notifiers,
	}
}

// ProcessEvent builds the buglist of the hooked release and delivers it
func (uc *releaseHookUseCase) ProcessEvent(ctx context.Context, event *model.ReleaseHookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing release hook",
		"id", event.ID,
		"action", event.Action,
		"product", event.Release.Product,
		"branch", event.Release.Branch,
		"version", event.Release.Version,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Warn("Unsupported release hook received",
			"id", event.ID,
			"action", event.Action,
		)
		return nil
	}

	buglist := uc.buglistUC.Create(ctx, &event.Release)
	if buglist.IsEmpty() {
		logger.Info("Nothing to deliver", "id", event.ID, "reason", buglist.SkipReason)
		return nil
	}

	return Deliver(ctx, buglist, uc.notifiers)
}
