package dto

import "github.com/google/uuid"

type MatchRequest struct {
	Role         string `query:"role" validate:"required"`
	DocumentType string `query:"document_type" validate:"required"`
}

// MatchedClause is one row of a match result: the clause joined with its
// owning regulation and the rule that selected it.
type MatchedClause struct {
	ClauseId        uuid.UUID `json:"clause_id"`
	RegulationId    uuid.UUID `json:"regulation_id"`
	RegulationTitle string    `json:"regulation_title"`
	ClauseNumber    *string   `json:"clause_number"`
	Content         string    `json:"content"`
	Source          string    `json:"source"`
	Priority        int       `json:"priority"`
}

type MatchResponse struct {
	Role           string          `json:"role"`
	DocumentType   string          `json:"document_type"`
	MatchedClauses []MatchedClause `json:"matched_clauses"`
	Total          int             `json:"total"`
}

type SearchRequest struct {
	Keyword string `query:"keyword" validate:"required"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchResult struct {
	ClauseId        uuid.UUID `json:"clause_id"`
	RegulationTitle string    `json:"regulation_title"`
	ClauseNumber    *string   `json:"clause_number"`
	Content         string    `json:"content"`
}

type SearchResponse struct {
	Keyword string         `json:"keyword"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
}

type RoleResponse struct {
	Id               uuid.UUID `json:"id"`
	RoleName         string    `json:"role_name"`
	Responsibilities string    `json:"responsibilities"`
}

type DocumentTypeResponse struct {
	Id          uuid.UUID `json:"id"`
	TypeName    string    `json:"type_name"`
	Description string    `json:"description"`
}
