package model

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

var issueRefPattern = regexp.MustCompile(`^([\w.-]+)/([\w.-]+)#(\d+)$`)

// IssueRef points at a GitHub issue or pull request
type IssueRef struct {
	Owner  string
	Repo   string
	Number int
}

// ParseIssueRef parses "owner/repo#123"
func ParseIssueRef(s string) (*IssueRef, error) {
	m := issueRefPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, goerr.Wrap(ErrInvalidIssueRef, "expected owner/repo#number", goerr.V("ref", s))
	}

	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return nil, goerr.Wrap(ErrInvalidIssueRef, "issue number must be positive", goerr.V("ref", s))
	}

	return &IssueRef{Owner: m[1], Repo: m[2], Number: number}, nil
}

func (r IssueRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}
