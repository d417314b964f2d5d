package contract

import (
	"context"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/specification"
)

type CrisisLogRepository interface {
	Create(ctx context.Context, log *entity.CrisisLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
