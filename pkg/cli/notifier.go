package cli

import (
	"github.com/m-mizutani/buglist/pkg/cli/config"
	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
)

// remoteNotifiers returns the configured GitHub and Slack notifiers
func remoteNotifiers(githubCfg *config.GitHub, slackCfg *config.Slack) ([]interfaces.Notifier, error) {
	var notifiers []interfaces.Notifier

	ghNotifier, err := githubCfg.Configure()
	if err != nil {
		return nil, err
	}
	if ghNotifier != nil {
		notifiers = append(notifiers, ghNotifier)
	}
	if n := slackCfg.Configure(); n != nil {
		notifiers = append(notifiers, n)
	}

	return notifiers, nil
}
