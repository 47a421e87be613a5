package domain

import "time"

// DJ is the slice of the profile the safeguards engine needs: contact
// details for notifications, linked external profiles for secondary checks
// and the suspension flag the escalation engine owns.
type DJ struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone,omitempty"`
	SocialLinks   []string   `json:"social_links,omitempty"`
	Suspended     bool       `json:"suspended"`
	SuspendedAt   *time.Time `json:"suspended_at,omitempty"`
	SuspendReason *string    `json:"suspend_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type BookingSource string

const (
	BookingSourceAgency BookingSource = "agency"
	BookingSourceDirect BookingSource = "direct"
)
