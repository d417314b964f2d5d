package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/mapper"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/contract"
)

type WellnessProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewWellnessProfileRepository(db *gorm.DB) contract.WellnessProfileRepository {
	return &WellnessProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

func (r *WellnessProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.WellnessProfile) error {
	m := r.mapper.ProfileToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"age", "gender", "region", "fitness_level", "budget_tier",
			"goals", "dietary_restrictions", "crisis_monitoring", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ProfileToEntity(m)
	return nil
}

func (r *WellnessProfileRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.WellnessProfile, error) {
	var m model.WellnessProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&m), nil
}
