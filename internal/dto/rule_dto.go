package dto

import "github.com/google/uuid"

// AuditRuleView is the expanded rule listing: every association resolved to
// its display fields.
type AuditRuleView struct {
	Id           uuid.UUID           `json:"id"`
	Role         RuleRoleRef         `json:"role"`
	DocumentType RuleDocumentTypeRef `json:"document_type"`
	Clause       RuleClauseRef       `json:"clause"`
	Source       string              `json:"source"`
	Priority     int                 `json:"priority"`
}

type RuleRoleRef struct {
	Id       uuid.UUID `json:"id"`
	RoleName string    `json:"role_name"`
}

type RuleDocumentTypeRef struct {
	Id       uuid.UUID `json:"id"`
	TypeName string    `json:"type_name"`
}

type RuleClauseRef struct {
	Id           uuid.UUID         `json:"id"`
	ClauseNumber *string           `json:"clause_number"`
	Content      string            `json:"content"`
	Regulation   RuleRegulationRef `json:"regulation"`
}

type RuleRegulationRef struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
