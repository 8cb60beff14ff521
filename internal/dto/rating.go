package dto

import "time"

type CreateRatingRequestDTO struct {
	MissionID string  `json:"missionId" validate:"required"`
	Score     int     `json:"score" validate:"required,min=1,max=5" example:"5"`
	Comment   *string `json:"comment,omitempty"`
}

type RatingDTO struct {
	ID         string    `json:"id"`
	MissionID  string    `json:"missionId"`
	ClientID   string    `json:"clientId"`
	ProviderID string    `json:"providerId"`
	Score      int       `json:"score"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ProviderRatingsResponseDTO struct {
	Ratings      []RatingDTO `json:"ratings"`
	AverageScore float64     `json:"averageScore" example:"4.5"`
	TotalRatings int         `json:"totalRatings"`
}
