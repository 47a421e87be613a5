package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/PushtoStartCo/safeguards/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// EnquiryTracker records client interest in a DJ/date pair and arms the
// delayed availability follow-ups for it.
type EnquiryTracker struct {
	enquiryRepo ports.EnquiryRepo
	checkRepo   ports.CheckRepo
	djRepo      ports.DJRepo
	logger      logger.Logger
}

func NewEnquiryTracker(
	enquiryRepo ports.EnquiryRepo,
	checkRepo ports.CheckRepo,
	djRepo ports.DJRepo,
	logger logger.Logger,
) *EnquiryTracker {
	return &EnquiryTracker{
		enquiryRepo: enquiryRepo,
		checkRepo:   checkRepo,
		djRepo:      djRepo,
		logger:      logger,
	}
}

// LogEnquiry is idempotent on the (dj, date, booking) triple: duplicates
// are absorbed silently and arm nothing twice.
func (t *EnquiryTracker) LogEnquiry(ctx context.Context, input domain.LogEnquiryInput) error {
	if input.DJID == "" {
		return fmt.Errorf("%w: dj_id is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	if _, err := t.djRepo.GetByID(ctx, input.DJID); err != nil {
		return fmt.Errorf("check dj: %w", err)
	}

	now := time.Now().UTC()
	enquiry := &domain.Enquiry{
		ID:           uuid.New().String(),
		DJID:         input.DJID,
		Date:         input.Date,
		BookingID:    input.BookingID,
		OriginStatus: string(domain.AvailabilityAvailable),
		CreatedAt:    now,
	}

	inserted, err := t.enquiryRepo.Insert(ctx, enquiry)
	if err != nil {
		return fmt.Errorf("insert enquiry: %w", err)
	}
	if !inserted {
		t.logger.Debug("duplicate enquiry ignored",
			logger.String("dj_id", input.DJID),
			logger.String("date", input.Date.Format(time.DateOnly)),
		)
		return nil
	}

	t.logger.Info("enquiry logged",
		logger.String("enquiry_id", enquiry.ID),
		logger.String("dj_id", input.DJID),
		logger.String("date", input.Date.Format(time.DateOnly)),
	)

	for _, offset := range domain.FollowupOffsets {
		date := input.Date
		check := &domain.ScheduledCheck{
			ID:          uuid.New().String(),
			Kind:        domain.CheckAvailabilityFollowup,
			DJID:        input.DJID,
			Date:        &date,
			OffsetHours: int(offset.Hours()),
			DueAt:       now.Add(offset),
			Status:      domain.CheckStatusPending,
			CreatedAt:   now,
		}
		if _, err = t.checkRepo.Insert(ctx, check); err != nil {
			return fmt.Errorf("arm followup check: %w", err)
		}
	}

	return nil
}
