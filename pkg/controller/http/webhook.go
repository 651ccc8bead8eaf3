package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/utils/async"
)

// maxHookPayload bounds the size of a release hook body
const maxHookPayload = 1 << 20

// WebhookHandler handles release hooks
type WebhookHandler struct {
	secret string
	hookUC interfaces.ReleaseHookUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, hookUC interfaces.ReleaseHookUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret: secret,
		hookUC: hookUC,
	}
}

// Handle verifies and accepts a release hook, then processes it in the background
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Read payload
	body, err := io.ReadAll(io.LimitReader(r.Body, maxHookPayload))
	if err != nil {
		logger.Error("Failed to read request body", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// Verify signature
	signature := r.Header.Get("X-Hub-Signature-256")
	if !h.verifySignature(body, signature) {
		logger.Warn("Invalid webhook signature")
		writeError(ctx, w, goerr.New("invalid signature"), http.StatusUnauthorized)
		return
	}

	var payload model.ReleaseHookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Error("Failed to parse release hook payload", "error", err)
		writeError(ctx, w, goerr.Wrap(err, "invalid JSON payload"), http.StatusBadRequest)
		return
	}
	if err := payload.Release.Validate(); err != nil {
		logger.Warn("Incomplete release in hook payload", "error", err)
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	event := &model.ReleaseHookEvent{
		ID:         uuid.NewString(),
		Action:     payload.Action,
		Release:    payload.Release,
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	logger.Info("Accepted release hook",
		"job_id", event.ID,
		"action", event.Action,
		"product", event.Release.Product,
		"version", event.Release.Version,
	)

	async.Dispatch(ctx, func(ctx context.Context) error {
		return h.hookUC.ProcessEvent(ctxlog.With(ctx, ctxlog.From(ctx).With("job_id", event.ID)), event)
	})

	writeJSON(ctx, w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"job_id": event.ID,
	})
}

// verifySignature verifies the webhook signature
func (h *WebhookHandler) verifySignature(payload []byte, signature string) bool {
	if signature == "" || h.secret == "" {
		return false
	}

	// Remove "sha256=" prefix if present
	signature = strings.TrimPrefix(signature, "sha256=")

	// Calculate HMAC-SHA256
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write(payload)
	expectedMAC := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expectedMAC))
}
