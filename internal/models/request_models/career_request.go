package request_models

type CreateCareerRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	DurationSemesters int     `json:"duration_semesters" binding:"min=0"`
	GraduateProfile   string  `json:"graduate_profile"`
	JobField          string  `json:"job_field"`
	AverageSalary     float64 `json:"average_salary" binding:"min=0"`
}

type UpdateCareerRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description" binding:"required"`
	DurationSemesters int     `json:"duration_semesters" binding:"min=0"`
	GraduateProfile   string  `json:"graduate_profile"`
	JobField          string  `json:"job_field"`
	AverageSalary     float64 `json:"average_salary" binding:"min=0"`
}

type CreateSpecializationRequest struct {
	CareerID          string `json:"career_id" binding:"required,uuid"`
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description" binding:"required"`
	ApplicationFields string `json:"application_fields"`
	JobProjection     string `json:"job_projection"`
}

type UpdateSpecializationRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description" binding:"required"`
	ApplicationFields string `json:"application_fields"`
	JobProjection     string `json:"job_projection"`
}
