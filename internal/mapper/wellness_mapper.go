package mapper

import (
	"gorm.io/datatypes"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
)

type WellnessMapper struct{}

func NewWellnessMapper() *WellnessMapper {
	return &WellnessMapper{}
}

func (m *WellnessMapper) ProfileToEntity(p *model.WellnessProfile) *entity.WellnessProfile {
	if p == nil {
		return nil
	}

	goals := []string(p.Goals)
	if goals == nil {
		goals = []string{}
	}
	restrictions := []string(p.DietaryRestrictions)
	if restrictions == nil {
		restrictions = []string{}
	}

	return &entity.WellnessProfile{
		Id:                  p.Id,
		UserId:              p.UserId,
		Age:                 p.Age,
		Gender:              p.Gender,
		Region:              p.Region,
		FitnessLevel:        p.FitnessLevel,
		BudgetTier:          p.BudgetTier,
		Goals:               goals,
		DietaryRestrictions: restrictions,
		CrisisMonitoring:    p.CrisisMonitoring,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *WellnessMapper) ProfileToModel(p *entity.WellnessProfile) *model.WellnessProfile {
	if p == nil {
		return nil
	}

	return &model.WellnessProfile{
		Id:                  p.Id,
		UserId:              p.UserId,
		Age:                 p.Age,
		Gender:              p.Gender,
		Region:              p.Region,
		FitnessLevel:        p.FitnessLevel,
		BudgetTier:          p.BudgetTier,
		Goals:               datatypes.NewJSONSlice(p.Goals),
		DietaryRestrictions: datatypes.NewJSONSlice(p.DietaryRestrictions),
		CrisisMonitoring:    p.CrisisMonitoring,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (m *WellnessMapper) AnalyticsToEntity(a *model.ChatAnalytics) *entity.ChatAnalytics {
	if a == nil {
		return nil
	}

	return &entity.ChatAnalytics{
		Id:           a.Id,
		UserId:       a.UserId,
		Date:         a.Date,
		MessagesSent: a.MessagesSent,
		MinutesSpent: a.MinutesSpent,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
