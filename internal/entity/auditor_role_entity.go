package entity

import (
	"time"

	"github.com/google/uuid"
)

type AuditorRole struct {
	Id               uuid.UUID
	RoleName         string
	Responsibilities string
	CreatedAt        time.Time
}
