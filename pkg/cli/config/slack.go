package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/infra/slack"
)

// Slack holds configuration of the Slack notifier
type Slack struct {
	WebhookURL string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("BUGLIST_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Override the channel of the incoming webhook",
			Destination: &c.Channel,
			Sources:     cli.EnvVars("BUGLIST_SLACK_CHANNEL"),
		},
	}
}

// Configure returns the Slack notifier, or nil when no webhook is configured
func (c *Slack) Configure() interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}

	var opts []slack.Option
	if c.Channel != "" {
		opts = append(opts, slack.WithChannel(c.Channel))
	}
	return slack.NewWebhookNotifier(c.WebhookURL, opts...)
}
