package domain

import "errors"

var (
	ErrDJNotFound      = errors.New("dj not found")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrEnquiryNotFound = errors.New("enquiry not found")
)

var (
	ErrAlertAlreadyReviewed = errors.New("alert already reviewed")
	ErrUnknownReviewAction  = errors.New("unknown review action")
)

var (
	ErrValidation = errors.New("validation error")
)
