package bugzilla

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

const (
	// DefaultBaseURL is the public Bugzilla instance of Mozilla
	DefaultBaseURL = "https://bugzilla.mozilla.org"

	// DefaultShortenerURL is the link shortening endpoint exposed by Bugzilla
	DefaultShortenerURL = DefaultBaseURL + "/rest/bitly/shorten"

	// idSeparator is a URL-encoded comma
	idSeparator = "%2C"
)

// BuglistURL returns the search page listing the given bugs, in the order given
func BuglistURL(baseURL string, ids []string) string {
	return strings.TrimRight(baseURL, "/") + "/buglist.cgi?bug_id=" + strings.Join(ids, idSeparator)
}

type shortener struct {
	endpoint   string
	httpClient *http.Client
}

// Option is a functional option for the shortener
type Option func(*shortener)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(s *shortener) {
		s.httpClient = httpClient
	}
}

// NewShortener creates a URLShortener backed by endpoint, which answers
// GET {endpoint}?url=<long url> with {"url": "<short url>"}
func NewShortener(endpoint string, opts ...Option) interfaces.URLShortener {
	s := &shortener{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type shortenResponse struct {
	URL string `json:"url"`
}

// Shorten returns the short form of longURL
func (s *shortener) Shorten(ctx context.Context, longURL string) (string, error) {
	endpoint := s.endpoint + "?url=" + url.QueryEscape(longURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create request", goerr.V("url", endpoint))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", goerr.Wrap(model.ErrUpstream, err.Error(), goerr.V("url", s.endpoint))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", goerr.Wrap(model.ErrUpstream, "unexpected status code",
			goerr.V("url", s.endpoint), goerr.V("status", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", goerr.Wrap(model.ErrUpstream, "failed to read response body", goerr.V("url", s.endpoint))
	}

	var out shortenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", goerr.Wrap(model.ErrMalformedResponse, err.Error(), goerr.V("url", s.endpoint))
	}
	if out.URL == "" {
		return "", goerr.Wrap(model.ErrMalformedResponse, "url field is missing", goerr.V("url", s.endpoint))
	}

	return out.URL, nil
}
