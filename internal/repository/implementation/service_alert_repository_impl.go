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

type ServiceAlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AlertMapper
}

func NewServiceAlertRepository(db *gorm.DB) contract.ServiceAlertRepository {
	return &ServiceAlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewAlertMapper(),
	}
}

func (r *ServiceAlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceAlertRepositoryImpl) Create(ctx context.Context, alert *entity.ServiceAlert) error {
	m := r.mapper.AlertToModel(alert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.AlertToEntity(m)
	return nil
}

func (r *ServiceAlertRepositoryImpl) Update(ctx context.Context, alert *entity.ServiceAlert) error {
	m := r.mapper.AlertToModel(alert)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.AlertToEntity(m)
	return nil
}

// Delete is a soft delete. Expired alerts stay queryable for audit.
func (r *ServiceAlertRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceAlert{}, id).Error
}

func (r *ServiceAlertRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceAlert, error) {
	var m model.ServiceAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.AlertToEntity(&m), nil
}

func (r *ServiceAlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceAlert, error) {
	var models []*model.ServiceAlert
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ServiceAlert, len(models))
	for i, m := range models {
		entities[i] = r.mapper.AlertToEntity(m)
	}
	return entities, nil
}

func (r *ServiceAlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ServiceAlert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
