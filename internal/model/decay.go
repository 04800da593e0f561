package model

type DecayRecord struct {
	DecayDate    string `json:"decay_date"`
	DaysInactive int    `json:"days_inactive"`
	XPBefore     int    `json:"xp_before"`
	XPLost       int    `json:"xp_lost"`
	XPAfter      int    `json:"xp_after"`
	LevelBefore  int    `json:"level_before"`
	LevelAfter   int    `json:"level_after"`
}

// DecayBatchStats sums up one batch run over all users.
type DecayBatchStats struct {
	TotalUsers    int `json:"total_users"`
	UsersDecayed  int `json:"users_decayed"`
	TotalXPLost   int `json:"total_xp_lost"`
	LevelsDropped int `json:"levels_dropped"`
}

type GetDecayStatusRequest struct{}

type GetDecayStatusResponse struct {
	DaysInactive    int  `json:"days_inactive"`
	DaysUntilDecay  int  `json:"days_until_decay"`
	AtRisk          bool `json:"at_risk"`
	ProjectedXPLoss int  `json:"projected_xp_loss"`
}

type GetDecayHistoryRequest struct {
	Limit int `json:"limit" form:"limit"`
}

type GetDecayHistoryResponse struct {
	Records []DecayRecord `json:"records"`
}
