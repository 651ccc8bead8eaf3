package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// Deliver hands a buglist to every notifier. Failures are logged; an error is returned only
// when no notifier succeeded.
func Deliver(ctx context.Context, buglist *model.Buglist, notifiers []interfaces.Notifier) error {
	logger := ctxlog.From(ctx)

	if buglist.IsEmpty() || len(notifiers) == 0 {
		return nil
	}

	var errs []error
	for _, n := range notifiers {
		if err := n.Notify(ctx, buglist); err != nil {
			logger.Error("Failed to deliver buglist", "notifier", n.Name(), "error", err)
			errs = append(errs, goerr.Wrap(err, "notifier failed", goerr.V("notifier", n.Name())))
			continue
		}
		logger.Debug("Delivered buglist", "notifier", n.Name())
	}

	if len(errs) == len(notifiers) {
		return goerr.Wrap(errors.Join(errs...), "every notifier failed", goerr.V("count", len(errs)))
	}
	return nil
}
