package service

import (
	"context"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// DetectorConfig tunes the batch rules. Zero values fall back to the
// production defaults.
type DetectorConfig struct {
	PatternWindow       time.Duration
	PatternThreshold    int
	RatioWindow         time.Duration
	RatioMinUnavailable int
	RatioLimit          float64
	DirectWindow        time.Duration
	DirectThreshold     int
}

func (c *DetectorConfig) applyDefaults() {
	if c.PatternWindow <= 0 {
		c.PatternWindow = 30 * 24 * time.Hour
	}
	if c.PatternThreshold <= 0 {
		c.PatternThreshold = 3
	}
	if c.RatioWindow <= 0 {
		c.RatioWindow = 90 * 24 * time.Hour
	}
	if c.RatioMinUnavailable <= 0 {
		c.RatioMinUnavailable = 10
	}
	if c.RatioLimit <= 0 {
		c.RatioLimit = 5
	}
	if c.DirectWindow <= 0 {
		c.DirectWindow = 30 * 24 * time.Hour
	}
	if c.DirectThreshold <= 0 {
		c.DirectThreshold = 3
	}
}

// PatternDetectors are the daily batch rules over historical alert and
// booking data. Each rule is independent and order-insensitive, and each
// DJ is evaluated in isolation: a failure is logged and skipped.
type PatternDetectors struct {
	alertRepo    ports.AlertRepo
	calendarRepo ports.CalendarRepo
	djRepo       ports.DJRepo
	flagger      ports.Flagger
	cfg          DetectorConfig
	logger       logger.Logger
}

func NewPatternDetectors(
	alertRepo ports.AlertRepo,
	calendarRepo ports.CalendarRepo,
	djRepo ports.DJRepo,
	flagger ports.Flagger,
	cfg DetectorConfig,
	logger logger.Logger,
) *PatternDetectors {
	cfg.applyDefaults()
	return &PatternDetectors{
		alertRepo:    alertRepo,
		calendarRepo: calendarRepo,
		djRepo:       djRepo,
		flagger:      flagger,
		cfg:          cfg,
		logger:       logger,
	}
}

// RunDaily evaluates every DJ against the three rules.
func (d *PatternDetectors) RunDaily(ctx context.Context) error {
	djs, err := d.djRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list djs: %w", err)
	}

	now := time.Now().UTC()
	for _, dj := range djs {
		if err := d.checkPatternViolation(ctx, dj.ID, now); err != nil {
			d.logger.Error("pattern violation check failed",
				logger.String("dj_id", dj.ID),
				logger.String("error", err.Error()),
			)
		}
		if err := d.checkBookingRatio(ctx, dj.ID, now); err != nil {
			d.logger.Error("booking ratio check failed",
				logger.String("dj_id", dj.ID),
				logger.String("error", err.Error()),
			)
		}
		if err := d.checkDirectRate(ctx, dj.ID, now); err != nil {
			d.logger.Error("direct enquiry check failed",
				logger.String("dj_id", dj.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	d.logger.Info("pattern detectors finished",
		logger.Int("djs_evaluated", len(djs)),
	)

	return nil
}

// checkPatternViolation re-fires on every run while the DJ stays over
// threshold: repeated days of violation keep escalation pressure rising.
func (d *PatternDetectors) checkPatternViolation(ctx context.Context, djID string, now time.Time) error {
	severities := []domain.Severity{domain.SeverityHigh, domain.SeverityMedium}
	count, err := d.alertRepo.CountRecent(ctx, djID, severities, now.Add(-d.cfg.PatternWindow))
	if err != nil {
		return fmt.Errorf("count recent alerts: %w", err)
	}
	if count < d.cfg.PatternThreshold {
		return nil
	}

	_, err = d.flagger.Flag(ctx, domain.FlagInput{
		DJID:     djID,
		Kind:     domain.KindPatternViolation,
		Severity: domain.SeverityHigh,
		Details: map[string]any{
			"violation_count": count,
			"window_days":     int(d.cfg.PatternWindow.Hours() / 24),
		},
	})
	return err
}

func (d *PatternDetectors) checkBookingRatio(ctx context.Context, djID string, now time.Time) error {
	since := now.Add(-d.cfg.RatioWindow)

	unavailable, err := d.calendarRepo.UnavailableDays(ctx, djID, since)
	if err != nil {
		return fmt.Errorf("unavailable days: %w", err)
	}
	if unavailable <= d.cfg.RatioMinUnavailable {
		return nil
	}

	agency, err := d.calendarRepo.CountBookings(ctx, djID, domain.BookingSourceAgency, since)
	if err != nil {
		return fmt.Errorf("agency bookings: %w", err)
	}

	divisor := agency
	if divisor < 1 {
		divisor = 1
	}
	ratio := float64(unavailable) / float64(divisor)
	if ratio <= d.cfg.RatioLimit {
		return nil
	}

	_, err = d.flagger.Flag(ctx, domain.FlagInput{
		DJID:     djID,
		Kind:     domain.KindSuspiciousBookingRatio,
		Severity: domain.SeverityMedium,
		Details: map[string]any{
			"unavailable_days": unavailable,
			"agency_bookings":  agency,
			"ratio":            ratio,
		},
	})
	return err
}

func (d *PatternDetectors) checkDirectRate(ctx context.Context, djID string, now time.Time) error {
	direct, err := d.calendarRepo.CountBookings(ctx, djID, domain.BookingSourceDirect, now.Add(-d.cfg.DirectWindow))
	if err != nil {
		return fmt.Errorf("direct bookings: %w", err)
	}
	if direct <= d.cfg.DirectThreshold {
		return nil
	}

	_, err = d.flagger.Flag(ctx, domain.FlagInput{
		DJID:     djID,
		Kind:     domain.KindHighDirectEnquiryRate,
		Severity: domain.SeverityMedium,
		Details: map[string]any{
			"direct_bookings": direct,
		},
	})
	return err
}
