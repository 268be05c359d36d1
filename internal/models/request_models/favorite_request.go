package request_models

type AddFavoriteRequest struct {
	TargetID string `json:"target_id" binding:"required,uuid"`
	Notes    string `json:"notes"`
}

type UpdateFavoriteNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}
