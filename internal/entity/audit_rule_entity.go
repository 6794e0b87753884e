package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rule source tags. "example" rows come from the bootstrap seed, "auto"
// from the ingestion-time keyword linker. Operator-curated rows carry the
// value "manual" in the column but nothing in this codebase writes them.
const (
	RuleSourceExample = "example"
	RuleSourceAuto    = "auto"
)

type AuditRule struct {
	Id             uuid.UUID
	RoleId         uuid.UUID
	DocumentTypeId uuid.UUID
	ClauseId       uuid.UUID
	Source         string
	Priority       int
	CreatedAt      time.Time
}
