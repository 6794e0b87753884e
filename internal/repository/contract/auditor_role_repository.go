package contract

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/specification"
)

type AuditorRoleRepository interface {
	Create(ctx context.Context, role *entity.AuditorRole) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditorRole, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditorRole, error)
}
