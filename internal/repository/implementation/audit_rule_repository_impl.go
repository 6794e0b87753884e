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

type AuditRuleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AuditRuleMapper
}

func NewAuditRuleRepository(db *gorm.DB) contract.AuditRuleRepository {
	return &AuditRuleRepositoryImpl{
		db:     db,
		mapper: mapper.NewAuditRuleMapper(),
	}
}

func (r *AuditRuleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AuditRuleRepositoryImpl) Create(ctx context.Context, rule *entity.AuditRule) error {
	m := r.mapper.ToModel(rule)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*rule = *r.mapper.ToEntity(m)
	return nil
}

func (r *AuditRuleRepositoryImpl) DeleteAll(ctx context.Context, specs ...specification.Specification) error {
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	return query.Delete(&model.AuditRule{}).Error
}

func (r *AuditRuleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditRule, error) {
	var m model.AuditRule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AuditRuleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditRule, error) {
	var models []*model.AuditRule
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AuditRuleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AuditRule{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
