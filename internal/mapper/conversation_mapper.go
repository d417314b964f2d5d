package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	metadata := map[string]any{}
	if len(c.Metadata) > 0 {
		// Decoded once here at the store boundary; business logic never
		// re-parses raw JSON.
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.Conversation{
		Id:            c.Id,
		UserId:        c.UserId,
		Title:         c.Title,
		IsActive:      c.IsActive,
		LastMessageAt: c.LastMessageAt,
		Metadata:      metadata,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var metadata datatypes.JSON
	if len(c.Metadata) > 0 {
		raw, err := json.Marshal(c.Metadata)
		if err == nil {
			metadata = raw
		}
	}

	return &model.Conversation{
		Id:            c.Id,
		UserId:        c.UserId,
		Title:         c.Title,
		IsActive:      c.IsActive,
		LastMessageAt: c.LastMessageAt,
		Metadata:      metadata,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (m *ConversationMapper) ToEntities(models []model.Conversation) []entity.Conversation {
	entities := make([]entity.Conversation, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}
