package dto

import "time"

type CreateMissionRequestDTO struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0" example:"100"`
	Urgent      bool    `json:"urgent"`
}

type MissionResponseDTO struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"clientId"`
	ProviderID  *string    `json:"providerId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Price       float64    `json:"price"`
	Urgent      bool       `json:"urgent"`
	Status      string     `json:"status" example:"PENDING"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type NearbyMissionDTO struct {
	MissionResponseDTO
	Distance float64 `json:"distance" example:"3.42"`
}

type UpdateMissionStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED CANCELLED"`
}

type SendMessageRequestDTO struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

type MessageDTO struct {
	ID         string    `json:"id"`
	MissionID  string    `json:"missionId"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}
