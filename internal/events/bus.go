package events

import (
	"context"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityHandler interface {
	HandleAvailabilityChange(ctx context.Context, ev domain.AvailabilityChangeEvent) error
}

type ClientContactHandler interface {
	HandleClientContact(ctx context.Context, ev domain.ClientContactEvent) error
}

type ExternalBookingHandler interface {
	HandleExternalBooking(ctx context.Context, ev domain.ExternalBookingEvent) error
}

// Bus dispatches the closed set of collaborator events to registered
// subscribers, synchronously and in subscription order. A failing
// subscriber is logged and does not stop delivery to the rest; events are
// assumed at-least-once, so subscribers must be idempotent or additive.
type Bus struct {
	availability    []AvailabilityHandler
	clientContact   []ClientContactHandler
	externalBooking []ExternalBookingHandler
	log             logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{log: log}
}

func (b *Bus) SubscribeAvailability(h AvailabilityHandler) {
	b.availability = append(b.availability, h)
}

func (b *Bus) SubscribeClientContact(h ClientContactHandler) {
	b.clientContact = append(b.clientContact, h)
}

func (b *Bus) SubscribeExternalBooking(h ExternalBookingHandler) {
	b.externalBooking = append(b.externalBooking, h)
}

func (b *Bus) PublishAvailabilityChange(ctx context.Context, ev domain.AvailabilityChangeEvent) {
	for _, h := range b.availability {
		if err := h.HandleAvailabilityChange(ctx, ev); err != nil {
			b.log.Error("availability change subscriber failed",
				logger.String("dj_id", ev.DJID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (b *Bus) PublishClientContact(ctx context.Context, ev domain.ClientContactEvent) {
	for _, h := range b.clientContact {
		if err := h.HandleClientContact(ctx, ev); err != nil {
			b.log.Error("client contact subscriber failed",
				logger.String("dj_id", ev.DJID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (b *Bus) PublishExternalBooking(ctx context.Context, ev domain.ExternalBookingEvent) {
	for _, h := range b.externalBooking {
		if err := h.HandleExternalBooking(ctx, ev); err != nil {
			b.log.Error("external booking subscriber failed",
				logger.String("dj_id", ev.DJID),
				logger.String("error", err.Error()),
			)
		}
	}
}
