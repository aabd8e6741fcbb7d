package dto

type CreateResumeInput struct {
	Title        string `json:"title" binding:"required,max=150"`
	RawText      string `json:"raw_text" binding:"required"`
	TemplateType string `json:"template_type" binding:"omitempty,oneof=simple modern compact"`
}

type ScanResumeInput struct {
	JobTitle       string `json:"job_title" binding:"required,max=150"`
	JobDescription string `json:"job_description" binding:"required"`
}

type CreateApplicationInput struct {
	Company         string `json:"company" binding:"required,max=150"`
	Role            string `json:"role" binding:"required,max=150"`
	Location        string `json:"location" binding:"max=150"`
	AppliedDate     string `json:"applied_date" binding:"omitempty,datetime=2006-01-02"`
	Status          string `json:"status" binding:"omitempty,oneof=TO_APPLY APPLIED ONLINE_TEST INTERVIEW OFFER REJECTED WITHDRAWN"`
	ATSScoreAtApply *int   `json:"ats_score_at_apply" binding:"omitempty,gte=0,lte=100"`
}

type UpdateApplicationStatusInput struct {
	Status          string `json:"status" binding:"required,oneof=TO_APPLY APPLIED ONLINE_TEST INTERVIEW OFFER REJECTED WITHDRAWN"`
	ATSScoreAtApply *int   `json:"ats_score_at_apply" binding:"omitempty,gte=0,lte=100"`
}
