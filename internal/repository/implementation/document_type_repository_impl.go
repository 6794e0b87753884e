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

type DocumentTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentTypeMapper
}

func NewDocumentTypeRepository(db *gorm.DB) contract.DocumentTypeRepository {
	return &DocumentTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentTypeMapper(),
	}
}

func (r *DocumentTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DocumentTypeRepositoryImpl) Create(ctx context.Context, documentType *entity.DocumentType) error {
	m := r.mapper.ToModel(documentType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*documentType = *r.mapper.ToEntity(m)
	return nil
}

func (r *DocumentTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentType, error) {
	var m model.DocumentType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DocumentTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentType, error) {
	var models []*model.DocumentType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
