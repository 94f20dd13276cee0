package mapper

import (
	"encoding/json"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) TurnToEntity(t *model.ConversationTurn) *entity.ConversationTurn {
	if t == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(t.Metadata) > 0 {
		_ = json.Unmarshal(t.Metadata, &metadata)
	}

	return &entity.ConversationTurn{
		Id:         t.Id,
		SessionId:  t.SessionId,
		Role:       t.Role,
		Content:    t.Content,
		Intent:     t.Intent,
		Confidence: t.Confidence,
		Metadata:   metadata,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *ConversationMapper) TurnToModel(t *entity.ConversationTurn) *model.ConversationTurn {
	if t == nil {
		return nil
	}

	var metadata datatypes.JSON
	if len(t.Metadata) > 0 {
		raw, _ := json.Marshal(t.Metadata)
		metadata = datatypes.JSON(raw)
	}

	return &model.ConversationTurn{
		Id:         t.Id,
		SessionId:  t.SessionId,
		Role:       t.Role,
		Content:    t.Content,
		Intent:     t.Intent,
		Confidence: t.Confidence,
		Metadata:   metadata,
		CreatedAt:  t.CreatedAt,
	}
}
