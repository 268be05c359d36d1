package response_models

import "careercompass/internal/clients"

type CareerResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	DurationSemesters int     `json:"duration_semesters"`
	GraduateProfile   string  `json:"graduate_profile"`
	JobField          string  `json:"job_field"`
	AverageSalary     float64 `json:"average_salary"`
}

type CareerDetailResponse struct {
	CareerResponse
	Specializations []SpecializationResponse `json:"specializations"`
	CommunityPosts  []clients.CommunityPost  `json:"community_posts"`
}

type SpecializationResponse struct {
	ID                string `json:"id"`
	CareerID          string `json:"career_id"`
	CareerName        string `json:"career_name,omitempty"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	ApplicationFields string `json:"application_fields"`
	JobProjection     string `json:"job_projection"`
}

type SpecializationDetailResponse struct {
	SpecializationResponse
	CommunityPosts []clients.CommunityPost `json:"community_posts"`
}
