package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/dto"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/serverutils"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/specification"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/unitofwork"
)

type IWellnessService interface {
	UpsertProfile(ctx context.Context, userId uuid.UUID, req *dto.UpsertWellnessProfileRequest) (*dto.WellnessProfileResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.WellnessProfileResponse, error)
	ListCrisisLogs(ctx context.Context, riskLevel string, limit, offset int) ([]*dto.CrisisLogDTO, error)
}

type wellnessService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWellnessService(uowFactory unitofwork.RepositoryFactory) IWellnessService {
	return &wellnessService{
		uowFactory: uowFactory,
	}
}

func (s *wellnessService) UpsertProfile(ctx context.Context, userId uuid.UUID, req *dto.UpsertWellnessProfileRequest) (*dto.WellnessProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Crisis monitoring defaults on; an explicit false is honored but does
	// not gate detection.
	crisisMonitoring := true
	if req.CrisisMonitoring != nil {
		crisisMonitoring = *req.CrisisMonitoring
	}

	goals := req.Goals
	if goals == nil {
		goals = []string{}
	}
	restrictions := req.DietaryRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}

	profile := &entity.WellnessProfile{
		Id:                  uuid.New(),
		UserId:              userId,
		Age:                 req.Age,
		Gender:              req.Gender,
		Region:              req.Region,
		FitnessLevel:        req.FitnessLevel,
		BudgetTier:          req.BudgetTier,
		Goals:               goals,
		DietaryRestrictions: restrictions,
		CrisisMonitoring:    crisisMonitoring,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}

	if err := uow.WellnessProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, serverutils.NewPersistenceError("upsert wellness profile", err)
	}

	return toProfileResponse(profile), nil
}

func (s *wellnessService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.WellnessProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.WellnessProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, serverutils.NewPersistenceError("find wellness profile", err)
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("wellness profile")
	}

	return toProfileResponse(profile), nil
}

// ListCrisisLogs feeds the admin escalation dashboard.
func (s *wellnessService) ListCrisisLogs(ctx context.Context, riskLevel string, limit, offset int) ([]*dto.CrisisLogDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if riskLevel != "" {
		specs = append(specs, specification.ByRiskLevel{Level: riskLevel})
	}

	logs, err := uow.CrisisLogRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, serverutils.NewPersistenceError("list crisis logs", err)
	}

	response := make([]*dto.CrisisLogDTO, 0, len(logs))
	for _, l := range logs {
		response = append(response, &dto.CrisisLogDTO{
			Id:               l.Id,
			UserId:           l.UserId,
			RiskLevel:        string(l.RiskLevel),
			DetectedKeywords: l.DetectedKeywords,
			FollowUpNeeded:   l.FollowUpNeeded,
			AdminNotified:    l.AdminNotified,
			CreatedAt:        l.CreatedAt,
		})
	}
	return response, nil
}

func toProfileResponse(p *entity.WellnessProfile) *dto.WellnessProfileResponse {
	return &dto.WellnessProfileResponse{
		Age:                 p.Age,
		Gender:              p.Gender,
		Region:              p.Region,
		FitnessLevel:        p.FitnessLevel,
		BudgetTier:          p.BudgetTier,
		Goals:               p.Goals,
		DietaryRestrictions: p.DietaryRestrictions,
		CrisisMonitoring:    p.CrisisMonitoring,
		UpdatedAt:           p.UpdatedAt,
	}
}
