package entity

import (
	"time"

	"github.com/google/uuid"
)

type Regulation struct {
	Id         uuid.UUID
	Title      string
	SourceFile string
	CreatedAt  time.Time
}
