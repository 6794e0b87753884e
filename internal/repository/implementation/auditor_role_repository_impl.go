package implementation

import (
	"context"
	"errors"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/mapper"
	"compliance-audit-be/internal/model"
	"compliance-audit-be/internal/repository/contract"
	"compliance-audit-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AuditorRoleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditorRoleMapper
}

func NewAuditorRoleRepository(db *gorm.DB) contract.AuditorRoleRepository {
	return &AuditorRoleRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditorRoleMapper(),
	}
}

func (r *AuditorRoleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AuditorRoleRepositoryImpl) Create(ctx context.Context, role *entity.AuditorRole) error {
	m := r.mapper.ToModel(role)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*role = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditorRoleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditorRole, error) {
	var m model.AuditorRole
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AuditorRoleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditorRole, error) {
	var models []*model.AuditorRole
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
