package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/handler/dto"
	hmocks "github.com/PushtoStartCo/safeguards/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type handlerMocks struct {
	tracker   *hmocks.MockTrackerSvc
	review    *hmocks.MockReviewSvc
	reporting *hmocks.MockReportingSvc
	profiles  *hmocks.MockProfileSvc
	bus       *hmocks.MockEventBus
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		tracker:   hmocks.NewMockTrackerSvc(t),
		review:    hmocks.NewMockReviewSvc(t),
		reporting: hmocks.NewMockReportingSvc(t),
		profiles:  hmocks.NewMockProfileSvc(t),
		bus:       hmocks.NewMockEventBus(t),
	}

	h := NewHandler(m.tracker, m.review, m.reporting, m.profiles, m.bus)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/enquiries", h.LogEnquiry)
		api.POST("/events/availability-change", h.AvailabilityChanged)
		api.POST("/events/client-contact", h.ClientContactAttempted)
		api.POST("/events/external-booking", h.ExternalBookingDetected)
		api.POST("/alerts/:id/review", h.ReviewAlert)
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/reports", h.GenerateReport)
		api.POST("/djs/:id/reactivate", h.ReactivateDJ)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Enquiries ---

func TestHandler_LogEnquiry_Success(t *testing.T) {
	m, r := setupRouter(t)

	djID := uuid.New().String()
	m.tracker.EXPECT().LogEnquiry(mock.Anything, mock.Anything).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/enquiries", dto.LogEnquiryRequest{
		DJID: djID,
		Date: "2026-10-17",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_LogEnquiry_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/enquiries", dto.LogEnquiryRequest{
		DJID: uuid.New().String(),
		Date: "17.10.2026",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_LogEnquiry_DJNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.tracker.EXPECT().LogEnquiry(mock.Anything, mock.Anything).Return(domain.ErrDJNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/enquiries", dto.LogEnquiryRequest{
		DJID: uuid.New().String(),
		Date: "2026-10-17",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Event intake ---

func TestHandler_AvailabilityChanged_Accepted(t *testing.T) {
	m, r := setupRouter(t)

	djID := uuid.New().String()

	var published domain.AvailabilityChangeEvent
	m.bus.EXPECT().PublishAvailabilityChange(mock.Anything, mock.Anything).Run(func(ctx context.Context, ev domain.AvailabilityChangeEvent) {
		published = ev
	}).Return()

	w := doJSON(t, r, http.MethodPost, "/api/events/availability-change", dto.AvailabilityChangeRequest{
		DJID:      djID,
		Date:      "2026-10-17",
		OldStatus: "available",
		NewStatus: "unavailable",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	assert.Equal(t, djID, published.DJID)
	assert.Equal(t, domain.AvailabilityUnavailable, published.NewStatus)
	assert.False(t, published.Timestamp.IsZero())
}

func TestHandler_AvailabilityChanged_BadStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/availability-change", dto.AvailabilityChangeRequest{
		DJID:      uuid.New().String(),
		Date:      "2026-10-17",
		OldStatus: "free",
		NewStatus: "busy",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClientContact_Accepted(t *testing.T) {
	m, r := setupRouter(t)

	m.bus.EXPECT().PublishClientContact(mock.Anything, mock.Anything).Return()

	w := doJSON(t, r, http.MethodPost, "/api/events/client-contact", dto.ClientContactRequest{
		DJID:        uuid.New().String(),
		ClientEmail: "client@example.com",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandler_ExternalBooking_Accepted(t *testing.T) {
	m, r := setupRouter(t)

	m.bus.EXPECT().PublishExternalBooking(mock.Anything, mock.Anything).Return()

	w := doJSON(t, r, http.MethodPost, "/api/events/external-booking", dto.ExternalBookingRequest{
		DJID:     uuid.New().String(),
		Evidence: "instagram story",
	})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// --- Review ---

func TestHandler_ReviewAlert_Success(t *testing.T) {
	m, r := setupRouter(t)

	alertID := uuid.New().String()
	alert := &domain.Alert{
		ID:        alertID,
		DJID:      uuid.New().String(),
		Kind:      domain.KindPatternViolation,
		Severity:  domain.SeverityHigh,
		Status:    domain.AlertStatusEscalated,
		CreatedAt: time.Now().UTC(),
	}

	m.review.EXPECT().Review(mock.Anything, alertID, domain.ReviewActionEscalate, "admin1", (*string)(nil)).Return(alert, nil)

	w := doJSON(t, r, http.MethodPost, "/api/alerts/"+alertID+"/review", dto.ReviewAlertRequest{
		Action:     "escalate",
		ReviewerID: "admin1",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "escalated", resp.Status)
	assert.Equal(t, "high", resp.Severity)
}

func TestHandler_ReviewAlert_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/alerts/not-a-uuid/review", dto.ReviewAlertRequest{
		Action:     "resolved",
		ReviewerID: "admin1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReviewAlert_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	alertID := uuid.New().String()
	m.review.EXPECT().Review(mock.Anything, alertID, domain.ReviewActionResolve, "admin1", (*string)(nil)).Return(nil, domain.ErrAlertAlreadyReviewed)

	w := doJSON(t, r, http.MethodPost, "/api/alerts/"+alertID+"/review", dto.ReviewAlertRequest{
		Action:     "resolved",
		ReviewerID: "admin1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Reporting ---

func TestHandler_GetDashboard(t *testing.T) {
	m, r := setupRouter(t)

	data := &domain.DashboardData{
		RecentAlerts:         []*domain.Alert{{ID: uuid.New().String(), CreatedAt: time.Now().UTC()}},
		AlertStats:           domain.AlertStats{Total: 1},
		MonitoredDates:       3,
		ActiveInvestigations: 1,
	}
	m.reporting.EXPECT().Dashboard(mock.Anything).Return(data, nil)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.MonitoredDates)
	assert.Len(t, resp.RecentAlerts, 1)
}

func TestHandler_GenerateReport(t *testing.T) {
	m, r := setupRouter(t)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	report := &domain.Report{Start: start, End: end, AlertSummary: domain.AlertStats{Total: 2}}

	m.reporting.EXPECT().GenerateReport(mock.Anything, start, end).Return(report, nil)

	w := doJSON(t, r, http.MethodGet, "/api/reports?start=2026-08-01&end=2026-09-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-08-01", resp.Start)
	assert.Equal(t, 2, resp.AlertSummary.Total)
}

func TestHandler_GenerateReport_MissingParams(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/reports", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Profiles ---

func TestHandler_ReactivateDJ(t *testing.T) {
	m, r := setupRouter(t)

	djID := uuid.New().String()
	m.profiles.EXPECT().Reactivate(mock.Anything, djID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/djs/"+djID+"/reactivate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ReactivateDJ_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	djID := uuid.New().String()
	m.profiles.EXPECT().Reactivate(mock.Anything, djID).Return(domain.ErrDJNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/djs/"+djID+"/reactivate", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
