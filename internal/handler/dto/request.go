package dto

type LogEnquiryRequest struct {
	DJID      string  `json:"dj_id" binding:"required,uuid"`
	Date      string  `json:"date" binding:"required"`
	BookingID *string `json:"booking_id"`
}

type AvailabilityChangeRequest struct {
	DJID      string `json:"dj_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	OldStatus string `json:"old_status" binding:"required,oneof=available unavailable booked"`
	NewStatus string `json:"new_status" binding:"required,oneof=available unavailable booked"`
	Timestamp string `json:"timestamp"`
}

type ClientContactRequest struct {
	DJID        string  `json:"dj_id" binding:"required,uuid"`
	ClientEmail string  `json:"client_email" binding:"required,email"`
	BookingID   *string `json:"booking_id"`
}

type ExternalBookingRequest struct {
	DJID     string `json:"dj_id" binding:"required,uuid"`
	Evidence string `json:"evidence" binding:"required"`
}

type ReviewAlertRequest struct {
	Action     string  `json:"action" binding:"required,oneof=resolved escalate false_positive dismiss"`
	ReviewerID string  `json:"reviewer_id" binding:"required"`
	Notes      *string `json:"notes"`
}
