package model

import (
	"time"

	"github.com/google/uuid"
)

type AuditorRole struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoleName         string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Responsibilities string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (AuditorRole) TableName() string {
	return "auditor_roles"
}
