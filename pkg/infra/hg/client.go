package hg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// DefaultBaseURL is the public Mercurial server of Mozilla
const DefaultBaseURL = "https://hg.mozilla.org"

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for the client
type Option func(*client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client of the Mercurial JSON web API served at baseURL
func NewClient(baseURL string, opts ...Option) interfaces.RepositoryClient {
	c := &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tagsResponse struct {
	Tags *[]tagRecord `json:"tags"`
}

type tagRecord struct {
	Tag  *string        `json:"tag"`
	Node string         `json:"node"`
	Date model.PushDate `json:"date"`
}

// ListTags fetches {base}/{branch}/json-tags
func (c *client) ListTags(ctx context.Context, branch string) ([]model.TagEntry, error) {
	endpoint := fmt.Sprintf("%s/%s/json-tags", c.baseURL, strings.Trim(branch, "/"))

	var resp tagsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Tags == nil {
		return nil, goerr.Wrap(model.ErrMalformedResponse, "tags field is missing", goerr.V("url", endpoint))
	}

	tags := make([]model.TagEntry, 0, len(*resp.Tags))
	for i, rec := range *resp.Tags {
		if rec.Tag == nil {
			return nil, goerr.Wrap(model.ErrMalformedResponse, "tag entry has no tag field",
				goerr.V("url", endpoint), goerr.V("index", i))
		}
		tags = append(tags, model.TagEntry{Tag: *rec.Tag, Node: rec.Node, Date: rec.Date})
	}

	return tags, nil
}

type pushRecord struct {
	User       string             `json:"user"`
	Date       model.PushDate     `json:"date"`
	Changesets *[]changesetRecord `json:"changesets"`
}

type changesetRecord struct {
	Node   string  `json:"node"`
	Author string  `json:"author"`
	Branch string  `json:"branch"`
	Desc   *string `json:"desc"`
}

// ListPushes fetches {base}/{branch}/json-pushes with full changeset details
func (c *client) ListPushes(ctx context.Context, branch, fromRev, toRev string) ([]model.Push, error) {
	query := url.Values{}
	query.Set("fromchange", fromRev)
	query.Set("tochange", toRev)
	query.Set("full", "1")
	endpoint := fmt.Sprintf("%s/%s/json-pushes?%s", c.baseURL, strings.Trim(branch, "/"), query.Encode())

	var resp map[string]pushRecord
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	pushes := make([]model.Push, 0, len(resp))
	for id, rec := range resp {
		if rec.Changesets == nil {
			return nil, goerr.Wrap(model.ErrMalformedResponse, "push has no changesets field",
				goerr.V("url", endpoint), goerr.V("push_id", id))
		}

		push := model.Push{
			ID:         id,
			User:       rec.User,
			Date:       rec.Date,
			Changesets: make([]model.Changeset, 0, len(*rec.Changesets)),
		}
		for _, cs := range *rec.Changesets {
			if cs.Desc == nil {
				return nil, goerr.Wrap(model.ErrMalformedResponse, "changeset has no desc field",
					goerr.V("url", endpoint), goerr.V("push_id", id), goerr.V("node", cs.Node))
			}
			push.Changesets = append(push.Changesets, model.Changeset{
				Node:   cs.Node,
				Author: cs.Author,
				Branch: cs.Branch,
				Desc:   *cs.Desc,
			})
		}
		pushes = append(pushes, push)
	}

	// push ids are sequence numbers; keep them in push order
	slices.SortFunc(pushes, func(a, b model.Push) int {
		ai, aErr := strconv.Atoi(a.ID)
		bi, bErr := strconv.Atoi(b.ID)
		if aErr != nil || bErr != nil {
			return strings.Compare(a.ID, b.ID)
		}
		return ai - bi
	})

	return pushes, nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(model.ErrUpstream, err.Error(), goerr.V("url", endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return goerr.Wrap(model.ErrUpstream, "unexpected status code",
			goerr.V("url", endpoint), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(model.ErrUpstream, "failed to read response body", goerr.V("url", endpoint))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return goerr.Wrap(model.ErrMalformedResponse, err.Error(), goerr.V("url", endpoint))
	}

	return nil
}
