package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/mapper"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/contract"
)

type ChatAnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewChatAnalyticsRepository(db *gorm.DB) contract.ChatAnalyticsRepository {
	return &ChatAnalyticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellnessMapper(),
	}
}

// UpsertDaily relies on the unique (user_id, date) index: concurrent
// exchanges for the same day accumulate instead of conflicting.
func (r *ChatAnalyticsRepositoryImpl) UpsertDaily(ctx context.Context, userId uuid.UUID, date time.Time, messages int, minutes float64) error {
	row := &model.ChatAnalytics{
		UserId:       userId,
		Date:         date.Truncate(24 * time.Hour),
		MessagesSent: messages,
		MinutesSpent: minutes,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"messages_sent": gorm.Expr("chat_analytics.messages_sent + ?", messages),
			"minutes_spent": gorm.Expr("chat_analytics.minutes_spent + ?", minutes),
			"updated_at":    time.Now(),
		}),
	}).Create(row).Error
}

func (r *ChatAnalyticsRepositoryImpl) FindByUserAndDate(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.ChatAnalytics, error) {
	var m model.ChatAnalytics
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userId, date.Truncate(24*time.Hour)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AnalyticsToEntity(&m), nil
}
