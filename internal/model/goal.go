package model

type Milestone struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	OrderIndex  int    `json:"order_index"`
	IsCompleted bool   `json:"is_completed"`
}

type Goal struct {
	ID           string      `json:"id,omitempty"`
	Title        string      `json:"title,omitempty"`
	Description  string      `json:"description,omitempty"`
	Category     string      `json:"category,omitempty"`
	TargetDate   string      `json:"target_date,omitempty"`
	IsCompleted  bool        `json:"is_completed"`
	RewardIssued bool        `json:"reward_issued"`
	XPReward     int         `json:"xp_reward"`
	Milestones   []Milestone `json:"milestones,omitempty"`
}

type CreateGoalRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	TargetDate  string   `json:"target_date"`
	Milestones  []string `json:"milestones"`
}

type CreateGoalResponse struct {
	Goal Goal `json:"goal"`
}

type GetGoalRequest struct {
	ID string `json:"id" form:"id"`
}

type GetGoalResponse struct {
	Goal Goal `json:"goal"`
}

type GetListGoalRequest struct{}

type GetListGoalResponse struct {
	Goals []Goal `json:"goals"`
}

type UpdateGoalRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TargetDate  string `json:"target_date"`
}

type UpdateGoalResponse struct {
	Goal Goal `json:"goal"`
}

type DeleteGoalRequest struct {
	ID string `json:"id"`
}

type DeleteGoalResponse struct{}

type AddMilestoneRequest struct {
	GoalID string `json:"goal_id"`
	Title  string `json:"title"`
}

type AddMilestoneResponse struct {
	Milestone Milestone `json:"milestone"`
}

type UpdateMilestoneRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type UpdateMilestoneResponse struct {
	Milestone Milestone `json:"milestone"`
}

type DeleteMilestoneRequest struct {
	ID string `json:"id"`
}

type DeleteMilestoneResponse struct{}

type ToggleMilestoneRequest struct {
	ID string `json:"id"`
}

type ToggleMilestoneResponse struct {
	Milestone Milestone `json:"milestone"`
	Goal      Goal      `json:"goal"`
	// XPAwarded is nonzero only on the call that completes the goal for
	// the first time.
	XPAwarded int `json:"xp_awarded"`
}
