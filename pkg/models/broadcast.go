package models

import "time"

// MaxBroadcastBody is the backend's limit on a campaign message body.
const MaxBroadcastBody = 1024

// Broadcast statuses.
const (
	BroadcastStatusDraft     = "draft"
	BroadcastStatusScheduled = "scheduled"
	BroadcastStatusSending   = "sending"
	BroadcastStatusCompleted = "completed"
	BroadcastStatusFailed    = "failed"
)

// Broadcast target types.
const (
	TargetAll     = "all"
	TargetSegment = "segment"
	TargetLabels  = "labels"
)

// BroadcastTarget describes who a campaign goes to.
type BroadcastTarget struct {
	Type    string    `json:"type"`
	Segment string    `json:"segment,omitempty"`
	Labels  LabelList `json:"labels,omitempty"`
}

// Broadcast represents a bulk message campaign. A broadcast created
// without a schedule time is persisted as a draft; one with a schedule
// time is scheduled server-side.
type Broadcast struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Body        string          `json:"body"`
	Target      BroadcastTarget `json:"target"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
	Status      string          `json:"status"`
	Recipients  int             `json:"recipients"`
	Sent        int             `json:"sent"`
	Delivered   int             `json:"delivered"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateBroadcastRequest is the payload for POST /api/broadcasts.
type CreateBroadcastRequest struct {
	Name        string          `json:"name"`
	Body        string          `json:"body"`
	Target      BroadcastTarget `json:"target"`
	ScheduledAt *time.Time      `json:"scheduled_at,omitempty"`
}

// EstimateResponse is the payload of POST /api/broadcasts/estimate.
type EstimateResponse struct {
	Count int `json:"count"`
}
