package implementation

import (
	"context"
	"errors"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/mapper"
	"ai-travelmate-be/internal/model"
	"ai-travelmate-be/internal/repository/contract"
	"ai-travelmate-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransitRouteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransitMapper
}

func NewTransitRouteRepository(db *gorm.DB) contract.TransitRouteRepository {
	return &TransitRouteRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransitMapper(),
	}
}

func (r *TransitRouteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TransitRouteRepositoryImpl) Create(ctx context.Context, route *entity.TransitRoute) error {
	m := r.mapper.RouteToModel(route)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*route = *r.mapper.RouteToEntity(m)
	return nil
}

func (r *TransitRouteRepositoryImpl) Update(ctx context.Context, route *entity.TransitRoute) error {
	m := r.mapper.RouteToModel(route)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*route = *r.mapper.RouteToEntity(m)
	return nil
}

func (r *TransitRouteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TransitRoute{}, id).Error
}

// FindOne and FindAll always preload departures. Every caller renders or
// filters by departure times, so a lazy second query buys nothing.
func (r *TransitRouteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TransitRoute, error) {
	var m model.TransitRoute
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Departures"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RouteToEntity(&m), nil
}

func (r *TransitRouteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TransitRoute, error) {
	var models []*model.TransitRoute
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Departures"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TransitRoute, len(models))
	for i, m := range models {
		entities[i] = r.mapper.RouteToEntity(m)
	}
	return entities, nil
}

func (r *TransitRouteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.TransitRoute{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
