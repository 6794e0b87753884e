package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByRegulationID struct {
	RegulationID uuid.UUID
}

func (s ByRegulationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("regulation_id = ?", s.RegulationID)
}

// ContentContains filters clauses by substring match on content.
// Postgres LIKE is case-sensitive, matching the search contract.
type ContentContains struct {
	Keyword string
}

func (s ContentContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content LIKE ?", "%"+s.Keyword+"%")
}
