package implementation

import (
	"context"
	"time"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/mapper"
	"ai-travelmate-be/internal/model"
	"ai-travelmate-be/internal/repository/contract"
	"ai-travelmate-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CorridorStatRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransitMapper
}

func NewCorridorStatRepository(db *gorm.DB) contract.CorridorStatRepository {
	return &CorridorStatRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransitMapper(),
	}
}

func (r *CorridorStatRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CorridorStatRepositoryImpl) IncrementSearch(ctx context.Context, originCity, destinationCity, mode string, at time.Time) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO corridor_stats (origin_city, destination_city, mode, search_count, last_searched_at, created_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (origin_city, destination_city, mode)
		DO UPDATE SET search_count = corridor_stats.search_count + 1,
		              last_searched_at = EXCLUDED.last_searched_at,
		              updated_at = EXCLUDED.last_searched_at
	`, originCity, destinationCity, mode, at, at).Error
}

func (r *CorridorStatRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CorridorStat, error) {
	var models []*model.CorridorStat
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CorridorStat, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CorridorStatToEntity(m)
	}
	return entities, nil
}

func (r *CorridorStatRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CorridorStat{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
