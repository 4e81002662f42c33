package response_models

type DashboardStats struct {
	TotalUsers          int64   `json:"total_users"`
	ActiveUsers         int64   `json:"active_users"`
	NewUsersLastMonth   int64   `json:"new_users_last_month"`
	GrowthRate          float64 `json:"growth_rate"`
	ActiveSessions      int64   `json:"active_sessions"`
	TotalJournalEntries int64   `json:"total_journal_entries"`
	TotalSolutions      int64   `json:"total_solutions"`
	TotalSolutionViews  int64   `json:"total_solution_views"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DailyMood struct {
	Date        string  `json:"date"`
	AverageMood float64 `json:"average_mood"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Analytics struct {
	Days              int             `json:"days"`
	UserRegistrations []DailyCount    `json:"user_registrations"`
	JournalEntries    []DailyCount    `json:"journal_entries"`
	MoodAnalytics     []DailyMood     `json:"mood_analytics"`
	CategoryUsage     []CategoryCount `json:"category_usage"`
}
