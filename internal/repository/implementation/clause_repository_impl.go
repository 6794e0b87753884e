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

type ClauseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ClauseMapper
}

func NewClauseRepository(db *gorm.DB) contract.ClauseRepository {
	return &ClauseRepositoryImpl{
		db:     db,
		mapper: mapper.NewClauseMapper(),
	}
}

func (r *ClauseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ClauseRepositoryImpl) CreateBatch(ctx context.Context, clauses []*entity.Clause) error {
	if len(clauses) == 0 {
		return nil
	}
	models := r.mapper.ToModels(clauses)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*clauses[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *ClauseRepositoryImpl) DeleteByRegulationId(ctx context.Context, regulationId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("regulation_id = ?", regulationId).Delete(&model.Clause{}).Error
}

func (r *ClauseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clause, error) {
	var m model.Clause
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ClauseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clause, error) {
	var models []*model.Clause
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ClauseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Clause{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
