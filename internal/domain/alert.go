package domain

import "time"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type AlertKind string

const (
	KindAvailabilityChangeAfterEnquiry AlertKind = "availability_change_after_enquiry"
	KindAvailabilityChangeLogged       AlertKind = "availability_change_logged"
	KindDateBecameUnavailable          AlertKind = "date_became_unavailable"
	KindSocialMediaCheckRequired       AlertKind = "social_media_check_required"
	KindPatternViolation               AlertKind = "pattern_violation"
	KindSuspiciousBookingRatio         AlertKind = "suspicious_booking_ratio"
	KindHighDirectEnquiryRate          AlertKind = "high_direct_enquiry_rate"
	KindCircumventionAttemptBlocked    AlertKind = "circumvention_attempt_blocked"
	KindExternalBookingDetected        AlertKind = "external_booking_detected"
	KindProfileSuspended               AlertKind = "profile_suspended"
)

type AlertStatus string

const (
	AlertStatusOpen          AlertStatus = "open"
	AlertStatusReviewed      AlertStatus = "reviewed"
	AlertStatusResolved      AlertStatus = "resolved"
	AlertStatusEscalated     AlertStatus = "escalated"
	AlertStatusFalsePositive AlertStatus = "false_positive"
	AlertStatusDismissed     AlertStatus = "dismissed"
)

type ReviewAction string

const (
	ReviewActionResolve       ReviewAction = "resolved"
	ReviewActionEscalate      ReviewAction = "escalate"
	ReviewActionFalsePositive ReviewAction = "false_positive"
	ReviewActionDismiss       ReviewAction = "dismiss"
)

// FlagInput describes one detected anomaly for the escalation engine's
// single write path.
type FlagInput struct {
	DJID      string
	Date      *time.Time
	BookingID *string
	Kind      AlertKind
	Severity  Severity
	Details   map[string]any
}

// Alert is an immutable record of one detected anomaly. Kind, DJ, date and
// Details never change after creation; only the review fields do.
type Alert struct {
	ID         string         `json:"id"`
	DJID       string         `json:"dj_id"`
	Date       *time.Time     `json:"date,omitempty"`
	BookingID  *string        `json:"booking_id,omitempty"`
	Kind       AlertKind      `json:"kind"`
	Severity   Severity       `json:"severity"`
	Details    map[string]any `json:"details"`
	Status     AlertStatus    `json:"status"`
	ReviewerID *string        `json:"reviewer_id,omitempty"`
	ReviewedAt *time.Time     `json:"reviewed_at,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
