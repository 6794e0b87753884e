package unitofwork

import (
	"context"

	"compliance-audit-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. After Begin,
// all repositories returned by the accessors run inside the transaction until
// Commit or Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RegulationRepository() contract.RegulationRepository
	ClauseRepository() contract.ClauseRepository
	AuditorRoleRepository() contract.AuditorRoleRepository
	DocumentTypeRepository() contract.DocumentTypeRepository
	AuditRuleRepository() contract.AuditRuleRepository
}
