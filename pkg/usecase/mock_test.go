package usecase_test

import (
	"context"
	"errors"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// MockRepositoryClient is a mock implementation of RepositoryClient
type MockRepositoryClient struct {
	listTagsFunc   func(ctx context.Context, branch string) ([]model.TagEntry, error)
	listPushesFunc func(ctx context.Context, branch, fromRev, toRev string) ([]model.Push, error)
	tagCalls       []string
	pushCalls      []MockPushCall
}

type MockPushCall struct {
	Branch string
	From   string
	To     string
}

func (m *MockRepositoryClient) ListTags(ctx context.Context, branch string) ([]model.TagEntry, error) {
	m.tagCalls = append(m.tagCalls, branch)
	if m.listTagsFunc != nil {
		return m.listTagsFunc(ctx, branch)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockRepositoryClient) ListPushes(ctx context.Context, branch, fromRev, toRev string) ([]model.Push, error) {
	m.pushCalls = append(m.pushCalls, MockPushCall{Branch: branch, From: fromRev, To: toRev})
	if m.listPushesFunc != nil {
		return m.listPushesFunc(ctx, branch, fromRev, toRev)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockRepositoryClient) calls() int {
	return len(m.tagCalls) + len(m.pushCalls)
}

// MockShortener is a mock implementation of URLShortener
type MockShortener struct {
	shortenFunc func(ctx context.Context, longURL string) (string, error)
	urls        []string
}

func (m *MockShortener) Shorten(ctx context.Context, longURL string) (string, error) {
	m.urls = append(m.urls, longURL)
	if m.shortenFunc != nil {
		return m.shortenFunc(ctx, longURL)
	}
	return "", errors.New("mock not configured")
}

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	name       string
	notifyFunc func(ctx context.Context, buglist *model.Buglist) error
	received   []*model.Buglist
}

func (m *MockNotifier) Name() string {
	return m.name
}

func (m *MockNotifier) Notify(ctx context.Context, buglist *model.Buglist) error {
	m.received = append(m.received, buglist)
	if m.notifyFunc != nil {
		return m.notifyFunc(ctx, buglist)
	}
	return nil
}

func tagEntries(tags ...string) []model.TagEntry {
	entries := make([]model.TagEntry, 0, len(tags))
	for _, tag := range tags {
		entries = append(entries, model.TagEntry{Tag: tag})
	}
	return entries
}

// tags of the branches as served by the json-tags endpoint, deliberately unordered
var branchTags = map[string][]model.TagEntry{
	"releases/mozilla-release": tagEntries(
		"tip",
		"FIREFOX_51_0_1_RELEASE",
		"FIREFOX_51_0_1_BUILD3",
		"FIREFOX_RELEASE_51_BASE",
		"FIREFOX_51_0_RELEASE",
		"FIREFOX_51_0_BUILD2",
		"FIREFOX_50_1_0_RELEASE",
		"FIREFOX_RELEASE_50_END",
		"FIREFOX_50_0_2_RELEASE",
		"FENNEC_51_0_RELEASE",
		"FIREFOX_51_0_RELEASE",
	),
	"releases/mozilla-beta": tagEntries(
		"FIREFOX_BETA_53_BASE",
		"FIREFOX_53_0b10_RELEASE",
		"FIREFOX_53_0b1_RELEASE",
		"FIREFOX_53_0b2_RELEASE",
		"FIREFOX_53_0b3_RELEASE",
		"FIREFOX_53_0b5_RELEASE",
		"FIREFOX_53_0b6_RELEASE",
		"FIREFOX_53_0b7_RELEASE",
		"FIREFOX_53_0b8_RELEASE",
		"FIREFOX_53_0b9_RELEASE",
		"FIREFOX_53_0b10_BUILD1",
		"FIREFOX_52_0b9_RELEASE",
		"FIREFOX_BETA_52_END",
		"FENNEC_52_0b1_RELEASE",
		"FENNEC_52_0b4_RELEASE",
		"FENNEC_52_0b2_RELEASE",
		"FENNEC_53_0b10_RELEASE",
	),
}

func newTagRepo() *MockRepositoryClient {
	return &MockRepositoryClient{
		listTagsFunc: func(ctx context.Context, branch string) ([]model.TagEntry, error) {
			tags, ok := branchTags[branch]
			if !ok {
				return nil, model.ErrUpstream
			}
			return tags, nil
		},
	}
}
