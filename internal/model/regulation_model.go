package model

import (
	"time"

	"github.com/google/uuid"
)

type Regulation struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	SourceFile string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Clauses []Clause `gorm:"foreignKey:RegulationId;constraint:OnDelete:CASCADE"`
}

func (Regulation) TableName() string {
	return "regulations"
}
