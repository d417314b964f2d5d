package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/mapper"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/contract"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/specification"
)

type CrisisLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CrisisLogMapper
}

func NewCrisisLogRepository(db *gorm.DB) contract.CrisisLogRepository {
	return &CrisisLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCrisisLogMapper(),
	}
}

func (r *CrisisLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CrisisLogRepositoryImpl) Create(ctx context.Context, log *entity.CrisisLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *CrisisLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisLog, error) {
	var models []*model.CrisisLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CrisisLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *CrisisLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CrisisLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
