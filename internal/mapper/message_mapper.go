package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}

	var keywords []string
	if len(msg.TriggerKeywords) > 0 {
		_ = json.Unmarshal(msg.TriggerKeywords, &keywords)
	}

	return &entity.Message{
		Id:                msg.Id,
		ConversationId:    msg.ConversationId,
		Sender:            entity.MessageSender(msg.Sender),
		Content:           msg.Content,
		MessageType:       entity.MessageType(msg.MessageType),
		ResponseLatencyMs: msg.ResponseLatencyMs,
		Confidence:        msg.Confidence,
		TriggerKeywords:   keywords,
		CreatedAt:         msg.CreatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}

	var keywords datatypes.JSON
	if len(msg.TriggerKeywords) > 0 {
		raw, err := json.Marshal(msg.TriggerKeywords)
		if err == nil {
			keywords = raw
		}
	}

	return &model.Message{
		Id:                msg.Id,
		ConversationId:    msg.ConversationId,
		Sender:            string(msg.Sender),
		Content:           msg.Content,
		MessageType:       string(msg.MessageType),
		ResponseLatencyMs: msg.ResponseLatencyMs,
		Confidence:        msg.Confidence,
		TriggerKeywords:   keywords,
		CreatedAt:         msg.CreatedAt,
	}
}

func (m *MessageMapper) ToEntities(models []model.Message) []entity.Message {
	entities := make([]entity.Message, 0, len(models))
	for i := range models {
		entities = append(entities, *m.ToEntity(&models[i]))
	}
	return entities
}
