package signals

import (
	"context"
	"fmt"
	"time"

	"github.com/PushtoStartCo/safeguards/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// LinkChecker is the secondary, best-effort signal source: when a DJ has
// linked external calendars or social profiles, their activity for the
// date cannot be verified automatically and an administrator should take
// a manual look.
type LinkChecker struct {
	logger logger.Logger
}

func NewLinkChecker(log logger.Logger) *LinkChecker {
	return &LinkChecker{logger: log}
}

func (c *LinkChecker) CheckDate(ctx context.Context, dj *domain.DJ, date time.Time) (bool, string, error) {
	if len(dj.SocialLinks) == 0 {
		return false, "", nil
	}

	c.logger.Debug("external profiles require manual review",
		logger.String("dj_id", dj.ID),
		logger.Int("links", len(dj.SocialLinks)),
	)

	note := fmt.Sprintf("%d linked external profile(s); verify activity around %s manually",
		len(dj.SocialLinks), date.Format(time.DateOnly))
	return true, note, nil
}
