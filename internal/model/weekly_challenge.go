package model

type WeeklyChallenge struct {
	ID            string `json:"id,omitempty"`
	WeekStartDate string `json:"week_start_date,omitempty"`
	WeekEndDate   string `json:"week_end_date,omitempty"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	XPReward      int    `json:"xp_reward"`
}

type GetWeeklyChallengeStatusRequest struct{}

type GetWeeklyChallengeStatusResponse struct {
	Challenge     WeeklyChallenge `json:"challenge"`
	DaysCompleted int             `json:"days_completed"`
	DaysRequired  int             `json:"days_required"`
	IsUnlocked    bool            `json:"is_unlocked"`
	IsCompleted   bool            `json:"is_completed"`
}

type CompleteWeeklyChallengeRequest struct{}

type CompleteWeeklyChallengeResponse struct {
	Challenge WeeklyChallenge `json:"challenge"`
	XPEarned  int             `json:"xp_earned"`
	LevelInfo LevelInfo       `json:"level_info"`
}

type GetWeeklyChallengeHistoryRequest struct {
	Limit int `json:"limit" form:"limit"`
}

type CompletedChallenge struct {
	Challenge   WeeklyChallenge `json:"challenge"`
	XPEarned    int             `json:"xp_earned"`
	CompletedAt string          `json:"completed_at,omitempty"`
}

type GetWeeklyChallengeHistoryResponse struct {
	Challenges []CompletedChallenge `json:"challenges"`
}
