package implementation

import (
	"context"
	"errors"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/mapper"
	"compliance-audit-be/internal/model"
	"compliance-audit-be/internal/repository/contract"
	"compliance-audit-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegulationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RegulationMapper
}

func NewRegulationRepository(db *gorm.DB) contract.RegulationRepository {
	return &RegulationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRegulationMapper(),
	}
}

func (r *RegulationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RegulationRepositoryImpl) Create(ctx context.Context, regulation *entity.Regulation) error {
	m := r.mapper.ToModel(regulation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*regulation = *r.mapper.ToEntity(m)
	return nil
}

func (r *RegulationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Regulation{}, id).Error
}

func (r *RegulationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error) {
	var m model.Regulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RegulationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error) {
	var models []*model.Regulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *RegulationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Regulation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
