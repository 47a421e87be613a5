package domain

import "time"

type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	AvailabilityBooked      AvailabilityStatus = "booked"
)

// AvailabilityChangeEvent is a calendar-status transition for a DJ/date
// pair. Produced by the calendar collaborator, consumed by the monitor.
type AvailabilityChangeEvent struct {
	DJID      string             `json:"dj_id"`
	Date      time.Time          `json:"date"`
	OldStatus AvailabilityStatus `json:"old_status"`
	NewStatus AvailabilityStatus `json:"new_status"`
	Timestamp time.Time          `json:"timestamp"`
}

// ClientContactEvent reports an intercepted off-platform contact attempt.
type ClientContactEvent struct {
	DJID        string  `json:"dj_id"`
	ClientEmail string  `json:"client_email"`
	BookingID   *string `json:"booking_id,omitempty"`
}

// ExternalBookingEvent reports evidence of a booking taken outside the
// agency.
type ExternalBookingEvent struct {
	DJID     string `json:"dj_id"`
	Evidence string `json:"evidence"`
}
