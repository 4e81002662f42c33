package request_models

type CreateJournalEntryRequest struct {
	Content    string  `json:"content"`
	Category   *string `json:"category" binding:"omitempty,max=50"`
	MoodRating *int    `json:"mood_rating"`
	IsPrivate  *bool   `json:"is_private"`
}

type UpdateJournalEntryRequest struct {
	Content    *string `json:"content"`
	Category   *string `json:"category" binding:"omitempty,max=50"`
	MoodRating *int    `json:"mood_rating"`
	IsPrivate  *bool   `json:"is_private"`
}

type MoodEntryRequest struct {
	MoodRating *int   `json:"mood_rating"`
	Notes      string `json:"notes"`
}
