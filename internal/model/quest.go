package model

type Quest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	BaseXP      int    `json:"base_xp"`
	IsCore      bool   `json:"is_core"`
	IsActive    bool   `json:"is_active"`
}

type CreateQuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	BaseXP      int    `json:"base_xp"`
	IsCore      bool   `json:"is_core"`
}

type CreateQuestResponse struct {
	ID string `json:"id"`
}

type GetQuestRequest struct {
	ID string `json:"id" form:"id"`
}

type GetQuestResponse Quest

type GetListQuestRequest struct {
	Category string `json:"category" form:"category"`
	CoreOnly bool   `json:"core_only" form:"core_only"`
}

type GetListQuestResponse struct {
	Quests []Quest `json:"quests"`
}

type DeactivateQuestRequest struct {
	ID string `json:"id"`
}

type DeactivateQuestResponse struct{}
