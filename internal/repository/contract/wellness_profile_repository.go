package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
)

type WellnessProfileRepository interface {
	Upsert(ctx context.Context, profile *entity.WellnessProfile) error
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.WellnessProfile, error)
}
