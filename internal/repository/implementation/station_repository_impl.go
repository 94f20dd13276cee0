package implementation

import (
	"context"
	"errors"

	"ai-travelmate-be/internal/entity"
	"ai-travelmate-be/internal/mapper"
	"ai-travelmate-be/internal/model"
	"ai-travelmate-be/internal/repository/contract"
	"ai-travelmate-be/internal/repository/specification"

	"gorm.io/gorm"
)

type StationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransitMapper
}

func NewStationRepository(db *gorm.DB) contract.StationRepository {
	return &StationRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransitMapper(),
	}
}

func (r *StationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StationRepositoryImpl) Create(ctx context.Context, station *entity.Station) error {
	m := r.mapper.StationToModel(station)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*station = *r.mapper.StationToEntity(m)
	return nil
}

func (r *StationRepositoryImpl) Update(ctx context.Context, station *entity.Station) error {
	m := r.mapper.StationToModel(station)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*station = *r.mapper.StationToEntity(m)
	return nil
}

func (r *StationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Station, error) {
	var m model.Station
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.StationToEntity(&m), nil
}

func (r *StationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Station, error) {
	var models []*model.Station
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Station, len(models))
	for i, m := range models {
		entities[i] = r.mapper.StationToEntity(m)
	}
	return entities, nil
}

func (r *StationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Station{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *StationRepositoryImpl) ListCities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT city FROM stations ORDER BY city ASC
	`).Scan(&cities).Error
	return cities, err
}
