package model

import (
	"time"

	"github.com/google/uuid"
)

type Clause struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RegulationId uuid.UUID `gorm:"type:uuid;not null;index"`
	ClauseNumber *string   `gorm:"type:varchar(50)"`
	Content      string    `gorm:"type:text;not null"`
	Position     int       `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Clause) TableName() string {
	return "clauses"
}
