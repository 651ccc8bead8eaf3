package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// BuglistHandler serves buglists on demand
type BuglistHandler struct {
	buglistUC interfaces.BuglistUseCase
}

// NewBuglistHandler creates a new BuglistHandler
func NewBuglistHandler(buglistUC interfaces.BuglistUseCase) *BuglistHandler {
	return &BuglistHandler{buglistUC: buglistUC}
}

// Handle answers GET ?product=&branch=&version= with the buglist as JSON.
// An empty buglist is still a 200 response carrying its skip reason.
func (h *BuglistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	release := &model.Release{
		Product: query.Get("product"),
		Branch:  query.Get("branch"),
		Version: query.Get("version"),
	}
	if err := release.Validate(); err != nil {
		ctxlog.From(ctx).Warn("Invalid buglist request", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "product, branch and version are required"), http.StatusBadRequest)
		return
	}

	writeJSON(ctx, w, http.StatusOK, h.buglistUC.Create(ctx, release))
}
