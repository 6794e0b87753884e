package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TypeName    string    `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (DocumentType) TableName() string {
	return "document_types"
}
