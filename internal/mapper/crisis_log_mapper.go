package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/risk"
)

type CrisisLogMapper struct{}

func NewCrisisLogMapper() *CrisisLogMapper {
	return &CrisisLogMapper{}
}

func (m *CrisisLogMapper) ToEntity(c *model.CrisisLog) *entity.CrisisLog {
	if c == nil {
		return nil
	}

	return &entity.CrisisLog{
		Id:               c.Id,
		UserId:           c.UserId,
		MessageId:        c.MessageId,
		TriggerText:      c.TriggerText,
		DetectedKeywords: decodeStrings(c.DetectedKeywords),
		RiskLevel:        risk.Level(c.RiskLevel),
		ResponseText:     c.ResponseText,
		ResourcesShared:  decodeStrings(c.ResourcesShared),
		HotlinesShared:   decodeStrings(c.HotlinesShared),
		FollowUpNeeded:   c.FollowUpNeeded,
		AdminNotified:    c.AdminNotified,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *CrisisLogMapper) ToModel(c *entity.CrisisLog) *model.CrisisLog {
	if c == nil {
		return nil
	}

	return &model.CrisisLog{
		Id:               c.Id,
		UserId:           c.UserId,
		MessageId:        c.MessageId,
		TriggerText:      c.TriggerText,
		DetectedKeywords: encodeStrings(c.DetectedKeywords),
		RiskLevel:        string(c.RiskLevel),
		ResponseText:     c.ResponseText,
		ResourcesShared:  encodeStrings(c.ResourcesShared),
		HotlinesShared:   encodeStrings(c.HotlinesShared),
		FollowUpNeeded:   c.FollowUpNeeded,
		AdminNotified:    c.AdminNotified,
		CreatedAt:        c.CreatedAt,
	}
}

func (m *CrisisLogMapper) ToEntities(models []model.CrisisLog) []entity.CrisisLog {
	entities := make([]entity.CrisisLog, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}

func decodeStrings(raw datatypes.JSON) []string {
	var out []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func encodeStrings(values []string) datatypes.JSON {
	if len(values) == 0 {
		return nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return raw
}
