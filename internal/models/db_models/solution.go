package db_models

import "gorm.io/datatypes"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Solution rows are deduplicated by (title, category) at lookup time; the
// index is deliberately not unique.
type Solution struct {
	BaseModel
	Title           string         `gorm:"size:200;not null;index:idx_solution_title_category,priority:1"`
	Description     string         `gorm:"type:text"`
	Category        string         `gorm:"size:50;not null;index:idx_solution_title_category,priority:2"`
	Content         datatypes.JSON `gorm:"not null"`
	EstimatedTime   string         `gorm:"size:50"`
	DifficultyLevel string         `gorm:"size:20"`
	IsPublished     bool           `gorm:"not null;index"`
	Views           int64          `gorm:"not null;default:0"`
}
