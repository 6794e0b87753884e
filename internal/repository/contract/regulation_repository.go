package contract

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RegulationRepository interface {
	Create(ctx context.Context, regulation *entity.Regulation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Regulation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Regulation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
