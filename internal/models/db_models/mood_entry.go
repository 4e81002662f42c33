package db_models

import "github.com/google/uuid"

// MoodEntry holds at most one row per user per server-local calendar day.
// Day is the "YYYY-MM-DD" key that backs both the upsert and the streak walk.
type MoodEntry struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_mood_user_day,priority:1"`
	Day        string    `gorm:"size:10;not null;uniqueIndex:uidx_mood_user_day,priority:2"`
	MoodRating int       `gorm:"not null;check:mood_rating >= 1 AND mood_rating <= 5"`
	Notes      string    `gorm:"type:text"`
}
