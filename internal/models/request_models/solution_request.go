package request_models

type AnalyzeRequest struct {
	Text     string  `json:"text"`
	Category *string `json:"category" binding:"omitempty,max=50"`
}

type UpdateProgressRequest struct {
	Progress int    `json:"progress"`
	Notes    string `json:"notes"`
}
