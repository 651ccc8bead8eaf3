package model

import "time"

// HookAction is the release lifecycle step announced by a release hook
type HookAction string

const (
	HookActionSubmitted HookAction = "submitted"
	HookActionShipped   HookAction = "shipped"
)

// ReleaseHookPayload is the JSON body posted to the release hook endpoint
type ReleaseHookPayload struct {
	Action  HookAction `json:"action"`
	Release Release    `json:"release"`
}

// ReleaseHookEvent represents a release hook received by the server
type ReleaseHookEvent struct {
	ID         string     // Job ID assigned on receipt
	Action     HookAction // Lifecycle step
	Release    Release    // Release to build a buglist for
	ReceivedAt time.Time  // Time when the hook was received
	RawPayload []byte     // Raw JSON payload
}

// IsSupportedEvent checks if the event should produce a buglist
func (e *ReleaseHookEvent) IsSupportedEvent() bool {
	switch e.Action {
	case HookActionSubmitted, HookActionShipped:
		return true
	default:
		return false
	}
}
