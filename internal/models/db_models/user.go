package db_models

import "time"

type User struct {
	BaseModel
	Name         string     `gorm:"size:100;not null"`
	Email        string     `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string     `gorm:"size:255;not null"`
	IsAdmin      bool       `gorm:"not null"`
	Language     string     `gorm:"size:10"`
	AgeGroup     string     `gorm:"size:20"`
	Goals        []string   `gorm:"serializer:json"`
	IsActive     bool       `gorm:"not null;index"`
	LastLogin    *time.Time `gorm:"index"`
}

const DefaultLanguage = "en"
