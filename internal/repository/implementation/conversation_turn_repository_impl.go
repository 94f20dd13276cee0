package implementation

import (
	"context"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/mapper"
	"ai-travelmate-be/internal/model"
	"ai-travelmate-be/internal/repository/contract"
	"ai-travelmate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationTurnRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationTurnRepository(db *gorm.DB) contract.ConversationTurnRepository {
	return &ConversationTurnRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationTurnRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationTurnRepositoryImpl) Create(ctx context.Context, turn *entity.ConversationTurn) error {
	m := r.mapper.TurnToModel(turn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*turn = *r.mapper.TurnToEntity(m)
	return nil
}

func (r *ConversationTurnRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationTurn, error) {
	var models []*model.ConversationTurn
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ConversationTurn, len(models))
	for i, m := range models {
		entities[i] = r.mapper.TurnToEntity(m)
	}
	return entities, nil
}

func (r *ConversationTurnRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationTurn{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ConversationTurnRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ConversationTurn{}).Error
}
