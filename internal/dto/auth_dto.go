package dto

import "github.com/placementhub/placement-mentor-hub/internal/model"

type RegisterInput struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=ADMIN TRAINER STUDENT"`
	College     string `json:"college"`
	YearOfStudy int    `json:"year_of_study" binding:"omitempty,gte=1,lte=6"`

	// Trainer fields, used when Role is TRAINER
	PricePerMonth int    `json:"price_per_month" binding:"omitempty,gte=0"`
	Bio           string `json:"bio"`
	Skills        string `json:"skills"`

	// Student fields, used when Role is STUDENT
	GoalTitle     string `json:"goal_title"`
	SelectedTrack string `json:"selected_track"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        *model.User `json:"user"`
}
