package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type TrackerSvc interface {
	LogEnquiry(ctx context.Context, input domain.LogEnquiryInput) error
}

type ReviewSvc interface {
	Review(ctx context.Context, alertID string, action domain.ReviewAction, reviewerID string, notes *string) (*domain.Alert, error)
}

type ReportingSvc interface {
	Dashboard(ctx context.Context) (*domain.DashboardData, error)
	GenerateReport(ctx context.Context, start, end time.Time) (*domain.Report, error)
}

type ProfileSvc interface {
	Reactivate(ctx context.Context, id string) error
}

type EventBus interface {
	PublishAvailabilityChange(ctx context.Context, ev domain.AvailabilityChangeEvent)
	PublishClientContact(ctx context.Context, ev domain.ClientContactEvent)
	PublishExternalBooking(ctx context.Context, ev domain.ExternalBookingEvent)
}

type Handler struct {
	tracker   TrackerSvc
	review    ReviewSvc
	reporting ReportingSvc
	profiles  ProfileSvc
	bus       EventBus
}

func NewHandler(tracker TrackerSvc, review ReviewSvc, reporting ReportingSvc, profiles ProfileSvc, bus EventBus) *Handler {
	return &Handler{
		tracker:   tracker,
		review:    review,
		reporting: reporting,
		profiles:  profiles,
		bus:       bus,
	}
}

// Enquiries

func (h *Handler) LogEnquiry(c *ginext.Context) {
	var req dto.LogEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.LogEnquiryInput{
		DJID:      req.DJID,
		Date:      date,
		BookingID: req.BookingID,
	}
	if err := h.tracker.LogEnquiry(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "logged"})
}

// Event intake

func (h *Handler) AvailabilityChanged(c *ginext.Context) {
	var req dto.AvailabilityChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	timestamp := time.Now().UTC()
	if req.Timestamp != "" {
		timestamp, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid timestamp format, expected RFC3339",
			})
			return
		}
	}

	h.bus.PublishAvailabilityChange(c.Request.Context(), domain.AvailabilityChangeEvent{
		DJID:      req.DJID,
		Date:      date,
		OldStatus: domain.AvailabilityStatus(req.OldStatus),
		NewStatus: domain.AvailabilityStatus(req.NewStatus),
		Timestamp: timestamp,
	})

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) ClientContactAttempted(c *ginext.Context) {
	var req dto.ClientContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.bus.PublishClientContact(c.Request.Context(), domain.ClientContactEvent{
		DJID:        req.DJID,
		ClientEmail: req.ClientEmail,
		BookingID:   req.BookingID,
	})

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

func (h *Handler) ExternalBookingDetected(c *ginext.Context) {
	var req dto.ExternalBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.bus.PublishExternalBooking(c.Request.Context(), domain.ExternalBookingEvent{
		DJID:     req.DJID,
		Evidence: req.Evidence,
	})

	c.JSON(http.StatusAccepted, ginext.H{"status": "accepted"})
}

// Review

func (h *Handler) ReviewAlert(c *ginext.Context) {
	alertID := c.Param("id")
	if _, err := uuid.Parse(alertID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid alert id"})
		return
	}

	var req dto.ReviewAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	alert, err := h.review.Review(
		c.Request.Context(), alertID,
		domain.ReviewAction(req.Action), req.ReviewerID, req.Notes,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAlertResponse(alert))
}

// Reporting

func (h *Handler) GetDashboard(c *ginext.Context) {
	data, err := h.reporting.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}

func (h *Handler) GenerateReport(c *ginext.Context) {
	start, err := time.Parse(time.DateOnly, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(time.DateOnly, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end date, expected YYYY-MM-DD"})
		return
	}

	report, err := h.reporting.GenerateReport(c.Request.Context(), start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// Profiles

func (h *Handler) ReactivateDJ(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid dj id"})
		return
	}

	if err := h.profiles.Reactivate(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "reactivated"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrDJNotFound),
		errors.Is(err, domain.ErrAlertNotFound),
		errors.Is(err, domain.ErrEnquiryNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlertAlreadyReviewed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownReviewAction):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
