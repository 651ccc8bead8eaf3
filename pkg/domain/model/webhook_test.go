package model_test

import (
	"testing"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

func TestReleaseHookEvent_IsSupportedEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    *model.ReleaseHookEvent
		expected bool
	}{
		{
			name:     "Release submitted - supported",
			event:    &model.ReleaseHookEvent{Action: model.HookActionSubmitted},
			expected: true,
		},
		{
			name:     "Release shipped - supported",
			event:    &model.ReleaseHookEvent{Action: model.HookActionShipped},
			expected: true,
		},
		{
			name:     "Release cancelled - not supported",
			event:    &model.ReleaseHookEvent{Action: model.HookAction("cancelled")},
			expected: false,
		},
		{
			name:     "Missing action",
			event:    &model.ReleaseHookEvent{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.event.IsSupportedEvent()
			if got != tt.expected {
				t.Errorf("IsSupportedEvent() = %v, want %v", got, tt.expected)
			}
		})
	}
}
