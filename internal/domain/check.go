package domain

import "time"

type CheckKind string

const (
	CheckAvailabilityFollowup CheckKind = "availability_followup"
	CheckEscalationReminder   CheckKind = "escalation_reminder"
)

type CheckStatus string

const (
	CheckStatusPending CheckStatus = "pending"
	CheckStatusDone    CheckStatus = "done"
)

// Follow-up offsets armed for every fresh enquiry.
var FollowupOffsets = []time.Duration{24 * time.Hour, 48 * time.Hour, 7 * 24 * time.Hour}

// ScheduledCheck is a durable single-shot delayed job keyed by a structured
// (DJ, date, offset) tuple rather than a concatenated string id.
type ScheduledCheck struct {
	ID          string      `json:"id"`
	Kind        CheckKind   `json:"kind"`
	DJID        string      `json:"dj_id"`
	Date        *time.Time  `json:"date,omitempty"`
	AlertID     *string     `json:"alert_id,omitempty"`
	OffsetHours int         `json:"offset_hours"`
	DueAt       time.Time   `json:"due_at"`
	Status      CheckStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}
