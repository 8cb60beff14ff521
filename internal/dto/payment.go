package dto

import "time"

type CreateIntentRequestDTO struct {
	MissionID string `json:"missionId" validate:"required"`
}

type PaymentDTO struct {
	ID             string    `json:"id"`
	MissionID      string    `json:"missionId"`
	Amount         float64   `json:"amount" example:"100"`
	PlatformFee    float64   `json:"platformFee" example:"15"`
	ProviderAmount float64   `json:"providerAmount" example:"85"`
	Status         string    `json:"status" example:"PENDING"`
	CreatedAt      time.Time `json:"createdAt"`
}

type CreateIntentResponseDTO struct {
	Payment      PaymentDTO `json:"payment"`
	ClientSecret string     `json:"clientSecret"`
}

type ConfirmPaymentRequestDTO struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}

type EarningsResponseDTO struct {
	Payments      []PaymentDTO `json:"payments"`
	TotalEarnings float64      `json:"totalEarnings"`
}
