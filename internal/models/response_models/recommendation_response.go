package response_models

// RecommendationResponse is one ranked career or specialization. The same
// shape serves both kinds so callers and the cache stay monomorphic.
type RecommendationResponse struct {
	TargetID                string  `json:"target_id"`
	Name                    string  `json:"name"`
	Description             string  `json:"description"`
	CompatibilityPercentage float64 `json:"compatibility_percentage"`
	CareerName              string  `json:"career_name,omitempty"`
}
