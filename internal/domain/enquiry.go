package domain

import "time"

// Enquiry records a client's interest in a DJ for a specific date. Created
// when a quote workflow starts, never mutated afterwards.
type Enquiry struct {
	ID           string     `json:"id"`
	DJID         string     `json:"dj_id"`
	Date         time.Time  `json:"date"`
	BookingID    *string    `json:"booking_id,omitempty"`
	OriginStatus string     `json:"origin_status"`
	CreatedAt    time.Time  `json:"created_at"`
}

type LogEnquiryInput struct {
	DJID      string
	Date      time.Time
	BookingID *string
}
