package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType struct {
	Id          uuid.UUID
	TypeName    string
	Description string
	CreatedAt   time.Time
}
