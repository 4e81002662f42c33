package db_models

import (
	"time"

	"github.com/google/uuid"
)

type UserSolution struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SolutionID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Solution    *Solution `gorm:"foreignKey:SolutionID"`
	StartedAt   time.Time `gorm:"not null"`
	CompletedAt *time.Time
	Progress    int    `gorm:"not null;default:0;check:progress >= 0 AND progress <= 100"`
	Notes       string `gorm:"type:text"`
}
