package contract

import (
	"context"

	"compliance-audit-be/internal/entity"
	"compliance-audit-be/internal/repository/specification"
)

type AuditRuleRepository interface {
	Create(ctx context.Context, rule *entity.AuditRule) error
	DeleteAll(ctx context.Context, specs ...specification.Specification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditRule, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditRule, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
