package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditRule links an auditor role and a document type to one clause. The
// composite unique index keeps re-seeding from duplicating a triple.
type AuditRule struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoleId         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_audit_rules_triple"`
	DocumentTypeId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_audit_rules_triple"`
	ClauseId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_audit_rules_triple"`
	Source         string    `gorm:"type:varchar(50);default:'example'"`
	Priority       int       `gorm:"default:0"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (AuditRule) TableName() string {
	return "audit_rules"
}
