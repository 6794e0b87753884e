package unitofwork

import (
	"context"
	"fmt"

	"compliance-audit-be/internal/repository/contract"
	"compliance-audit-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) RegulationRepository() contract.RegulationRepository {
	return implementation.NewRegulationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ClauseRepository() contract.ClauseRepository {
	return implementation.NewClauseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditorRoleRepository() contract.AuditorRoleRepository {
	return implementation.NewAuditorRoleRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DocumentTypeRepository() contract.DocumentTypeRepository {
	return implementation.NewDocumentTypeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AuditRuleRepository() contract.AuditRuleRepository {
	return implementation.NewAuditRuleRepository(u.getDB())
}
