package dto

type CreateRelationInput struct {
	TrainerID string `json:"trainer_id" binding:"required,uuid"`
}

type RateRelationInput struct {
	Rating float64 `json:"rating" binding:"required,gte=0,lte=5"`
}

type CreateDoubtInput struct {
	RelationID string `json:"relation_id" binding:"required,uuid"`
	Text       string `json:"text" binding:"required,min=1"`
	Type       string `json:"type" binding:"required,oneof=DOUBT ANSWER"`
}
