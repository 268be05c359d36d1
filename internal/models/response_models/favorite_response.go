package response_models

type FavoriteResponse struct {
	ID       string `json:"id"`
	TargetID string `json:"target_id"`
	Name     string `json:"name"`
	Notes    string `json:"notes,omitempty"`
	AddedAt  int64  `json:"added_at"`
}
