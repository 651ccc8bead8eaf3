package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
	"github.com/m-mizutani/buglist/pkg/infra/github"
)

// GitHub holds configuration of the issue comment notifier
type GitHub struct {
	Issue          string
	Token          string
	AppID          int64
	InstallationID int64
	PrivateKey     string
	BaseURL        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-issue",
			Usage:       "Post the buglist as a comment on this issue (owner/repo#number)",
			Destination: &c.Issue,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_ISSUE"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used when no token is given",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("BUGLIST_GITHUB_API_URL"),
		},
	}
}

// Configure returns the issue comment notifier, or nil when no issue is configured
func (c *GitHub) Configure() (interfaces.Notifier, error) {
	if c.Issue == "" {
		return nil, nil
	}

	ref, err := model.ParseIssueRef(c.Issue)
	if err != nil {
		return nil, err
	}

	var opts []github.Option
	if c.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(c.BaseURL))
	}

	var client interfaces.GitHubClient
	switch {
	case c.Token != "":
		client, err = github.NewTokenClient(c.Token, opts...)
	case c.AppID != 0 && c.InstallationID != 0 && c.PrivateKey != "":
		client, err = github.NewClientFromConfig(c.AppID, c.InstallationID, c.PrivateKey, opts...)
	default:
		return nil, goerr.New("github-token or GitHub App credentials are required for --github-issue",
			goerr.V("issue", c.Issue))
	}
	if err != nil {
		return nil, err
	}

	return github.NewCommentNotifier(client, *ref), nil
}
