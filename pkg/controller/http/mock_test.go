package http_test

import (
	"context"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type mockBuglistUseCase struct {
	createFunc func(ctx context.Context, release *model.Release) *model.Buglist
	releases   []model.Release
}

func (m *mockBuglistUseCase) Create(ctx context.Context, release *model.Release) *model.Buglist {
	m.releases = append(m.releases, *release)
	if m.createFunc != nil {
		return m.createFunc(ctx, release)
	}
	return &model.Buglist{Release: *release, SkipReason: model.SkipNoBugs}
}

func (m *mockBuglistUseCase) ResolveTags(ctx context.Context, release *model.Release) (string, string, error) {
	return release.Tag(), "", nil
}

// mockHookUseCase records events; ProcessEvent runs on a dispatched goroutine
type mockHookUseCase struct {
	events chan *model.ReleaseHookEvent
}

func newMockHookUseCase() *mockHookUseCase {
	return &mockHookUseCase{events: make(chan *model.ReleaseHookEvent, 4)}
}

func (m *mockHookUseCase) ProcessEvent(ctx context.Context, event *model.ReleaseHookEvent) error {
	m.events <- event
	return nil
}
