package model

type User struct {
	ID                     string   `json:"id,omitempty"`
	Username               string   `json:"username,omitempty"`
	Email                  string   `json:"email,omitempty"`
	TotalXP                int      `json:"total_xp"`
	CurrentLevel           int      `json:"current_level,omitempty"`
	GoalCategories         []string `json:"goal_categories,omitempty"`
	HasCompletedOnboarding bool     `json:"has_completed_onboarding"`
	LastActivityDate       string   `json:"last_activity_date,omitempty"`
}

type LevelInfo struct {
	Level              int     `json:"level"`
	TotalXP            int     `json:"total_xp"`
	CurrentLevelXP     int     `json:"current_level_xp"`
	NextLevelXP        int     `json:"next_level_xp"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User      User      `json:"user"`
	LevelInfo LevelInfo `json:"level_info"`
}

type UpdateGoalCategoriesRequest struct {
	GoalCategories []string `json:"goal_categories"`
}

type UpdateGoalCategoriesResponse struct {
	User User `json:"user"`
}

type LeaderboardEntry struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	TotalXP      int    `json:"total_xp"`
	CurrentLevel int    `json:"current_level"`
	Rank         int    `json:"rank"`
}

type GetLeaderboardRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
