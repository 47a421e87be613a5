package ports

import (
	"context"

	"github.com/PushtoStartCo/safeguards/internal/domain"
)

// Flagger is the escalation engine's single write path. Every detector
// raises alerts through it so that notification and suspension checks
// always run.
type Flagger interface {
	Flag(ctx context.Context, in domain.FlagInput) (*domain.Alert, error)
}
