package contract

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/specification"
)

type DocumentTypeRepository interface {
	Create(ctx context.Context, documentType *entity.DocumentType) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentType, error)
}
