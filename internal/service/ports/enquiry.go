package ports

import (
	"context"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

type EnquiryRepo interface {
	// Insert stores the enquiry unless the (dj, date, booking) triple
	// already exists. Returns false on a duplicate.
	Insert(ctx context.Context, e *domain.Enquiry) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Enquiry, error)
	// ListOpen returns enquiries for the DJ/date pair whose recorded
	// origin status was "available", newest first.
	ListOpen(ctx context.Context, djID string, date time.Time) ([]*domain.Enquiry, error)
}
