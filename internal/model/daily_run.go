package model

type QuestCompletion struct {
	ID          string `json:"id,omitempty"`
	QuestID     string `json:"quest_id,omitempty"`
	Quest       Quest  `json:"quest,omitempty"`
	Completed   bool   `json:"completed"`
	XPEarned    int    `json:"xp_earned"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type DailyRun struct {
	ID          string            `json:"id,omitempty"`
	Date        string            `json:"date,omitempty"`
	TotalXP     int               `json:"total_xp"`
	IsPerfect   bool              `json:"is_perfect"`
	IsLocked    bool              `json:"is_locked"`
	CompletedAt string            `json:"completed_at,omitempty"`
	Completions []QuestCompletion `json:"completions,omitempty"`
}

type CreateDailyRunRequest struct {
	// Date is optional and defaults to today. Backfilled dates must stay
	// within the configured window.
	Date string `json:"date"`
}

type CreateDailyRunResponse struct {
	DailyRun DailyRun `json:"daily_run"`
}

type GetDailyRunRequest struct {
	Date string `json:"date" form:"date"`
}

type GetDailyRunResponse struct {
	DailyRun DailyRun `json:"daily_run"`
}

type ToggleCompletionRequest struct {
	CompletionID string `json:"completion_id"`
}

type ToggleCompletionResponse struct {
	Completion QuestCompletion `json:"completion"`
	DailyRun   DailyRun        `json:"daily_run"`
	LevelInfo  LevelInfo       `json:"level_info"`
}

type LockDailyRunRequest struct {
	RunID string `json:"run_id"`
}

type LockDailyRunResponse struct {
	DailyRun  DailyRun  `json:"daily_run"`
	LevelInfo LevelInfo `json:"level_info"`
}
