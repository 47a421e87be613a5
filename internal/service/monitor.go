package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultHighSeverityWindow = 48 * time.Hour

// AvailabilityMonitor correlates calendar transitions against open
// enquiries: the event-driven path runs synchronously for every
// availability change, the delayed path re-checks the date at the armed
// follow-up offsets.
type AvailabilityMonitor struct {
	enquiryRepo  ports.EnquiryRepo
	calendarRepo ports.CalendarRepo
	djRepo       ports.DJRepo
	flagger      ports.Flagger
	signals      ports.SignalChecker
	highWindow   time.Duration
	logger       logger.Logger
}

func NewAvailabilityMonitor(
	enquiryRepo ports.EnquiryRepo,
	calendarRepo ports.CalendarRepo,
	djRepo ports.DJRepo,
	flagger ports.Flagger,
	signals ports.SignalChecker,
	highWindow time.Duration,
	logger logger.Logger,
) *AvailabilityMonitor {
	if highWindow <= 0 {
		highWindow = defaultHighSeverityWindow
	}
	return &AvailabilityMonitor{
		enquiryRepo:  enquiryRepo,
		calendarRepo: calendarRepo,
		djRepo:       djRepo,
		flagger:      flagger,
		signals:      signals,
		highWindow:   highWindow,
		logger:       logger,
	}
}

// HandleAvailabilityChange is the event-driven check, run synchronously
// for every calendar transition delivered on the bus.
func (m *AvailabilityMonitor) HandleAvailabilityChange(ctx context.Context, ev domain.AvailabilityChangeEvent) error {
	if _, err := m.djRepo.GetByID(ctx, ev.DJID); err != nil {
		if errors.Is(err, domain.ErrDJNotFound) {
			// DJ удалён — проверку молча отбрасываем
			m.logger.Debug("availability change for deleted dj dropped",
				logger.String("dj_id", ev.DJID),
			)
			return nil
		}
		return fmt.Errorf("check dj: %w", err)
	}

	if ev.NewStatus == domain.AvailabilityUnavailable {
		if err := m.correlate(ctx, ev); err != nil {
			return err
		}
	}

	// Аудитный алерт пишется для каждого перехода, независимо от корреляции
	date := ev.Date
	_, err := m.flagger.Flag(ctx, domain.FlagInput{
		DJID:     ev.DJID,
		Date:     &date,
		Kind:     domain.KindAvailabilityChangeLogged,
		Severity: domain.SeverityLow,
		Details: map[string]any{
			"old_status": string(ev.OldStatus),
			"new_status": string(ev.NewStatus),
		},
	})
	if err != nil {
		return fmt.Errorf("audit alert: %w", err)
	}

	return nil
}

func (m *AvailabilityMonitor) correlate(ctx context.Context, ev domain.AvailabilityChangeEvent) error {
	enquiries, err := m.enquiryRepo.ListOpen(ctx, ev.DJID, ev.Date)
	if err != nil {
		return fmt.Errorf("list open enquiries: %w", err)
	}

	enquiry := firstUnconverted(enquiries)
	if enquiry == nil {
		// Либо запросов не было, либо дата уже закрыта агентской бронью
		return nil
	}

	elapsed := ev.Timestamp.Sub(enquiry.CreatedAt)
	severity := domain.SeverityMedium
	if elapsed < m.highWindow {
		severity = domain.SeverityHigh
	}

	date := ev.Date
	_, err = m.flagger.Flag(ctx, domain.FlagInput{
		DJID: ev.DJID,
		Date: &date,
		Kind: domain.KindAvailabilityChangeAfterEnquiry,
		Severity: severity,
		Details: map[string]any{
			"old_status":          string(ev.OldStatus),
			"new_status":          string(ev.NewStatus),
			"hours_after_enquiry": roundHours(elapsed),
			"enquiry_id":          enquiry.ID,
		},
	})
	if err != nil {
		return fmt.Errorf("correlation alert: %w", err)
	}

	return nil
}

// ProcessFollowup is the delayed check armed by the enquiry tracker.
func (m *AvailabilityMonitor) ProcessFollowup(ctx context.Context, check *domain.ScheduledCheck) error {
	if check.Date == nil {
		return fmt.Errorf("followup check %s has no date", check.ID)
	}
	date := *check.Date

	dj, err := m.djRepo.GetByID(ctx, check.DJID)
	if err != nil {
		if errors.Is(err, domain.ErrDJNotFound) {
			m.logger.Debug("followup for deleted dj dropped",
				logger.String("dj_id", check.DJID),
			)
			return nil
		}
		return fmt.Errorf("check dj: %w", err)
	}

	status, err := m.calendarRepo.CurrentStatus(ctx, check.DJID, date)
	if err != nil {
		return fmt.Errorf("current availability: %w", err)
	}

	if status == domain.AvailabilityUnavailable {
		enquiries, err := m.enquiryRepo.ListOpen(ctx, check.DJID, date)
		if err != nil {
			return fmt.Errorf("list open enquiries: %w", err)
		}

		if enquiry := firstUnconverted(enquiries); enquiry != nil {
			_, err = m.flagger.Flag(ctx, domain.FlagInput{
				DJID: check.DJID,
				Date: &date,
				Kind: domain.KindDateBecameUnavailable,
				Severity: domain.SeverityMedium,
				Details: map[string]any{
					"offset_hours":   check.OffsetHours,
					"current_status": string(status),
					"enquiry_id":     enquiry.ID,
				},
			})
			if err != nil {
				return fmt.Errorf("followup alert: %w", err)
			}
		}
	}

	// Вторичная проверка внешних сигналов — best-effort, не блокирует
	m.checkExternalSignals(ctx, dj, date)

	return nil
}

func (m *AvailabilityMonitor) checkExternalSignals(ctx context.Context, dj *domain.DJ, date time.Time) {
	flagged, note, err := m.signals.CheckDate(ctx, dj, date)
	if err != nil {
		m.logger.Warn("external signal check failed",
			logger.String("dj_id", dj.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	if !flagged {
		return
	}

	_, err = m.flagger.Flag(ctx, domain.FlagInput{
		DJID:     dj.ID,
		Date:     &date,
		Kind:     domain.KindSocialMediaCheckRequired,
		Severity: domain.SeverityLow,
		Details:  map[string]any{"note": note},
	})
	if err != nil {
		m.logger.Warn("social media check alert failed",
			logger.String("dj_id", dj.ID),
			logger.String("error", err.Error()),
		)
	}
}

// firstUnconverted returns the newest open enquiry without an attached
// booking. An enquiry already tied to a confirmed booking means the
// availability change is expected.
func firstUnconverted(enquiries []*domain.Enquiry) *domain.Enquiry {
	for _, e := range enquiries {
		if e.BookingID == nil {
			return e
		}
	}
	return nil
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*10) / 10
}
