package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByRoleID struct {
	RoleID uuid.UUID
}

func (s ByRoleID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role_id = ?", s.RoleID)
}

type ByDocumentTypeID struct {
	DocumentTypeID uuid.UUID
}

func (s ByDocumentTypeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_type_id = ?", s.DocumentTypeID)
}

type ByClauseID struct {
	ClauseID uuid.UUID
}

func (s ByClauseID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("clause_id = ?", s.ClauseID)
}

type ByClauseIDs struct {
	ClauseIDs []uuid.UUID
}

func (s ByClauseIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("clause_id IN ?", s.ClauseIDs)
}

// ByRoleName filters auditor roles by exact name
type ByRoleName struct {
	RoleName string
}

func (s ByRoleName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role_name = ?", s.RoleName)
}

// ByTypeName filters document types by exact name
type ByTypeName struct {
	TypeName string
}

func (s ByTypeName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type_name = ?", s.TypeName)
}
