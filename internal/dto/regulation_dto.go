package dto

import "github.com/google/uuid"

type RegulationSummary struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	SourceFile  string    `json:"source_file"`
	ClauseCount int64     `json:"clause_count"`
}

type UploadRegulationResponse struct {
	RegulationId    uuid.UUID `json:"regulation_id"`
	RegulationTitle string    `json:"regulation_title"`
	ClauseCount     int       `json:"clause_count"`
}

// Import statuses for the per-file batch manifest.
const (
	ImportStatusImported = "imported"
	ImportStatusSkipped  = "skipped"
	ImportStatusFailed   = "failed"
)

type ImportFileResult struct {
	File        string `json:"file"`
	Title       string `json:"title,omitempty"`
	ClauseCount int    `json:"clause_count,omitempty"`
	Status      string `json:"status"`
	Reason      string `json:"reason,omitempty"`
}

// ImportReport aggregates a batch import run. One failed file never aborts
// the batch; it just lands here.
type ImportReport struct {
	Imported int                `json:"imported"`
	Skipped  int                `json:"skipped"`
	Failed   int                `json:"failed"`
	Results  []ImportFileResult `json:"results"`
}

// RegulationIngestedMessage is published after a regulation commit so the
// auto-link consumer can scan the new clauses.
type RegulationIngestedMessage struct {
	RegulationId uuid.UUID `json:"regulation_id"`
}
