package dto

import (
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

type AlertResponse struct {
	ID         string         `json:"id"`
	DJID       string         `json:"dj_id"`
	Date       *string        `json:"date,omitempty"`
	BookingID  *string        `json:"booking_id,omitempty"`
	Kind       string         `json:"kind"`
	Severity   string         `json:"severity"`
	Details    map[string]any `json:"details"`
	Status     string         `json:"status"`
	ReviewerID *string        `json:"reviewer_id,omitempty"`
	ReviewedAt *string        `json:"reviewed_at,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
	CreatedAt  string         `json:"created_at"`
}

type DashboardResponse struct {
	RecentAlerts         []AlertResponse     `json:"recent_alerts"`
	AlertStats           domain.AlertStats   `json:"alert_stats"`
	TopFlaggedDJs        []domain.FlaggedDJ  `json:"top_flagged_djs"`
	MonitoredDates       int                 `json:"monitored_dates_count"`
	ActiveInvestigations int                 `json:"active_investigations_count"`
}

type ReportResponse struct {
	Start            string                     `json:"start"`
	End              string                     `json:"end"`
	AlertSummary     domain.AlertStats          `json:"alert_summary"`
	DJViolations     []domain.FlaggedDJ         `json:"dj_violations"`
	ActivityTypes    []domain.KindCount         `json:"activity_types"`
	ResolutionStatus map[domain.AlertStatus]int `json:"resolution_status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToAlertResponse(a *domain.Alert) AlertResponse {
	resp := AlertResponse{
		ID:         a.ID,
		DJID:       a.DJID,
		BookingID:  a.BookingID,
		Kind:       string(a.Kind),
		Severity:   string(a.Severity),
		Details:    a.Details,
		Status:     string(a.Status),
		ReviewerID: a.ReviewerID,
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.Date != nil {
		date := a.Date.Format(time.DateOnly)
		resp.Date = &date
	}
	if a.ReviewedAt != nil {
		reviewed := a.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewed
	}
	return resp
}

func ToDashboardResponse(d *domain.DashboardData) DashboardResponse {
	alerts := make([]AlertResponse, 0, len(d.RecentAlerts))
	for _, a := range d.RecentAlerts {
		alerts = append(alerts, ToAlertResponse(a))
	}

	return DashboardResponse{
		RecentAlerts:         alerts,
		AlertStats:           d.AlertStats,
		TopFlaggedDJs:        d.TopFlaggedDJs,
		MonitoredDates:       d.MonitoredDates,
		ActiveInvestigations: d.ActiveInvestigations,
	}
}

func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		Start:            r.Start.Format(time.DateOnly),
		End:              r.End.Format(time.DateOnly),
		AlertSummary:     r.AlertSummary,
		DJViolations:     r.DJViolations,
		ActivityTypes:    r.ActivityTypes,
		ResolutionStatus: r.ResolutionStatus,
	}
}
