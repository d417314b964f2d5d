package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
)

type ChatAnalyticsRepository interface {
	// UpsertDaily increments the (user, date) row, creating it when absent.
	UpsertDaily(ctx context.Context, userId uuid.UUID, date time.Time, messages int, minutes float64) error
	FindByUserAndDate(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.ChatAnalytics, error)
}
