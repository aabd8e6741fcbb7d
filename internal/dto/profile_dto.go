package dto

type CreateTrainerInput struct {
	PricePerMonth int    `json:"price_per_month" binding:"gte=0"`
	Bio           string `json:"bio"`
	Skills        string `json:"skills"`
}

type CreateStudentInput struct {
	GoalTitle     string `json:"goal_title"`
	SelectedTrack string `json:"selected_track"`
}

type UpdateStudentStatsInput struct {
	LeetcodeRating         *int `json:"leetcode_rating" binding:"omitempty,gte=0"`
	LeetcodeProblemsSolved *int `json:"leetcode_problems_solved" binding:"omitempty,gte=0"`
	LeetcodeDailyStreak    *int `json:"leetcode_daily_streak" binding:"omitempty,gte=0"`
	TotalCodeHours         *int `json:"total_code_hours" binding:"omitempty,gte=0"`
	ConsistencyScore       *int `json:"consistency_score" binding:"omitempty,gte=0,lte=100"`

	// Reset allows explicit counter resets (e.g. a broken streak).
	// Without it, counters may only move forward.
	Reset bool `json:"reset"`
}
