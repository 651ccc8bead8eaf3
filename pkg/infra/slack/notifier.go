package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type webhookNotifier struct {
	webhookURL string
	channel    string
	httpClient *http.Client
}

// Option is a functional option for the Slack notifier
type Option func(*webhookNotifier)

// WithChannel overrides the channel configured on the incoming webhook
func WithChannel(channel string) Option {
	return func(n *webhookNotifier) {
		n.channel = channel
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(n *webhookNotifier) {
		n.httpClient = httpClient
	}
}

// NewWebhookNotifier delivers buglists to a Slack incoming webhook
func NewWebhookNotifier(webhookURL string, opts ...Option) interfaces.Notifier {
	n := &webhookNotifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *webhookNotifier) Name() string {
	return "slack"
}

// Notify posts the buglist to the webhook
func (n *webhookNotifier) Notify(ctx context.Context, buglist *model.Buglist) error {
	msg := &slack.WebhookMessage{
		Channel: n.channel,
		Text:    fmt.Sprintf("*Bug list for %s %s* (`%s`)", buglist.Release.Product, buglist.Release.Version, buglist.Release.Branch),
		Attachments: []slack.Attachment{
			{
				Text: buglist.Text,
			},
		},
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post buglist to Slack", goerr.V("channel", n.channel))
	}

	ctxlog.From(ctx).Info("Posted buglist to Slack", "channel", n.channel)
	return nil
}
