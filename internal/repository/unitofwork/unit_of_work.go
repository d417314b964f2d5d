package unitofwork

import (
	"context"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	CrisisLogRepository() contract.CrisisLogRepository
	WellnessProfileRepository() contract.WellnessProfileRepository
	ChatAnalyticsRepository() contract.ChatAnalyticsRepository
}
