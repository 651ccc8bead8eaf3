package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
)

type client struct {
	githubClient *github.Client
}

// Option is a functional option for the GitHub client
type Option func(*github.Client) error

// WithBaseURL points the client at another API root, such as a GitHub Enterprise server
func WithBaseURL(baseURL string) Option {
	return func(c *github.Client) error {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return goerr.Wrap(err, "failed to parse GitHub base URL", goerr.V("url", baseURL))
		}
		c.BaseURL = u
		return nil
	}
}

// NewClient creates a new GitHub client with App authentication
func NewClient(appID, installationID int64, privateKey []byte, opts ...Option) (interfaces.GitHubClient, error) {
	// Create GitHub App transport
	itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport",
			goerr.V("app_id", appID), goerr.V("installation_id", installationID))
	}

	return newClient(github.NewClient(&http.Client{Transport: itr}), opts...)
}

// NewClientFromConfig creates a GitHub App client from a PEM encoded private key string
func NewClientFromConfig(appID, installationID int64, privateKey string, opts ...Option) (interfaces.GitHubClient, error) {
	return NewClient(appID, installationID, []byte(privateKey), opts...)
}

// NewTokenClient creates a new GitHub client authenticated with a personal access token
func NewTokenClient(token string, opts ...Option) (interfaces.GitHubClient, error) {
	return newClient(github.NewClient(nil).WithAuthToken(token), opts...)
}

func newClient(githubClient *github.Client, opts ...Option) (*client, error) {
	for _, opt := range opts {
		if err := opt(githubClient); err != nil {
			return nil, err
		}
	}
	return &client{githubClient: githubClient}, nil
}

// CreateComment creates a comment on a pull request or issue
func (c *client) CreateComment(ctx context.Context, owner, repo string, number int, comment *github.IssueComment) (*github.IssueComment, *github.Response, error) {
	created, resp, err := c.githubClient.Issues.CreateComment(ctx, owner, repo, number, comment)
	if err != nil {
		return nil, resp, goerr.Wrap(err, "failed to create comment",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
	}
	return created, resp, nil
}
