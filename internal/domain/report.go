package domain

import "time"

type AlertStats struct {
	Total      int              `json:"total"`
	BySeverity map[Severity]int `json:"by_severity"`
	ByStatus   map[AlertStatus]int `json:"by_status"`
}

type FlaggedDJ struct {
	DJID       string `json:"dj_id"`
	Name       string `json:"name"`
	AlertCount int    `json:"alert_count"`
	HighCount  int    `json:"high_count"`
}

type DashboardData struct {
	RecentAlerts         []*Alert    `json:"recent_alerts"`
	AlertStats           AlertStats  `json:"alert_stats"`
	TopFlaggedDJs        []FlaggedDJ `json:"top_flagged_djs"`
	MonitoredDates       int         `json:"monitored_dates_count"`
	ActiveInvestigations int         `json:"active_investigations_count"`
}

type KindCount struct {
	Kind  AlertKind `json:"kind"`
	Count int       `json:"count"`
}

type Report struct {
	Start            time.Time           `json:"start"`
	End              time.Time           `json:"end"`
	AlertSummary     AlertStats          `json:"alert_summary"`
	DJViolations     []FlaggedDJ         `json:"dj_violations"`
	ActivityTypes    []KindCount         `json:"activity_types"`
	ResolutionStatus map[AlertStatus]int `json:"resolution_status"`
}
