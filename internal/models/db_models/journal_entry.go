package db_models

import "github.com/google/uuid"

type JournalEntry struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	Category   *string   `gorm:"size:50;index"`
	MoodRating *int      `gorm:"check:mood_rating IS NULL OR (mood_rating >= 1 AND mood_rating <= 5)"`
	IsPrivate  bool      `gorm:"not null"`
}
