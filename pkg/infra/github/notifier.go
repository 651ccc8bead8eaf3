package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type commentNotifier struct {
	client interfaces.GitHubClient
	target model.IssueRef
}

// NewCommentNotifier delivers buglists as comments on a GitHub issue
func NewCommentNotifier(client interfaces.GitHubClient, target model.IssueRef) interfaces.Notifier {
	return &commentNotifier{
		client: client,
		target: target,
	}
}

func (n *commentNotifier) Name() string {
	return "github:" + n.target.String()
}

// Notify posts the buglist as a comment
func (n *commentNotifier) Notify(ctx context.Context, buglist *model.Buglist) error {
	logger := ctxlog.From(ctx)

	comment, _, err := n.client.CreateComment(ctx, n.target.Owner, n.target.Repo, n.target.Number, &github.IssueComment{
		Body: github.Ptr(formatComment(buglist)),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to post buglist comment", goerr.V("target", n.target.String()))
	}

	logger.Info("Posted buglist comment",
		"target", n.target.String(),
		"url", comment.GetHTMLURL(),
	)
	return nil
}

// formatComment wraps the buglist text in a markdown comment
func formatComment(buglist *model.Buglist) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("### Bug list for %s %s\n\n", buglist.Release.Product, buglist.Release.Version))
	sb.WriteString(fmt.Sprintf("Branch: `%s`\n\n", buglist.Release.Branch))
	sb.WriteString("```\n")
	sb.WriteString(buglist.Text)
	sb.WriteString("\n```\n")

	return sb.String()
}
