package contract

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ClauseRepository interface {
	CreateBatch(ctx context.Context, clauses []*entity.Clause) error
	DeleteByRegulationId(ctx context.Context, regulationId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Clause, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Clause, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
