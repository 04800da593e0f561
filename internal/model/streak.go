package model

type Streak struct {
	QuestID           string `json:"quest_id,omitempty"`
	QuestTitle        string `json:"quest_title,omitempty"`
	CurrentStreak     int    `json:"current_streak"`
	LongestStreak     int    `json:"longest_streak"`
	LastCompletedDate string `json:"last_completed_date,omitempty"`
}

type GetMyStreaksRequest struct{}

type GetMyStreaksResponse struct {
	Streaks []Streak `json:"streaks"`
}

type GetStreakSummaryRequest struct{}

type GetStreakSummaryResponse struct {
	BestCurrentStreak int `json:"best_current_streak"`
	BestLongestStreak int `json:"best_longest_streak"`
	ActiveStreaks     int `json:"active_streaks"`
}
