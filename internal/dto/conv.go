package dto

import "github.com/ekarpova/taskhub/internal/domain"

func NewUserDTO(user domain.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		Role:        string(user.Role),
		IsAvailable: user.IsAvailable,
		IsBlocked:   user.IsBlocked,
		Latitude:    user.Latitude,
		Longitude:   user.Longitude,
		CreatedAt:   user.CreatedAt,
	}
}

func NewMissionDTO(mission domain.Mission) MissionResponseDTO {
	return MissionResponseDTO{
		ID:          mission.ID,
		ClientID:    mission.ClientID,
		ProviderID:  mission.ProviderID,
		Title:       mission.Title,
		Description: mission.Description,
		Address:     mission.Address,
		Latitude:    mission.Latitude,
		Longitude:   mission.Longitude,
		Price:       mission.Price,
		Urgent:      mission.Urgent,
		Status:      string(mission.Status),
		AcceptedAt:  mission.AcceptedAt,
		CompletedAt: mission.CompletedAt,
		CreatedAt:   mission.CreatedAt,
	}
}

func NewPaymentDTO(payment domain.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             payment.ID,
		MissionID:      payment.MissionID,
		Amount:         payment.Amount,
		PlatformFee:    payment.PlatformFee,
		ProviderAmount: payment.ProviderAmount,
		Status:         string(payment.Status),
		CreatedAt:      payment.CreatedAt,
	}
}

func NewRatingDTO(rating domain.Rating) RatingDTO {
	return RatingDTO{
		ID:         rating.ID,
		MissionID:  rating.MissionID,
		ClientID:   rating.ClientID,
		ProviderID: rating.ProviderID,
		Score:      rating.Score,
		Comment:    rating.Comment,
		CreatedAt:  rating.CreatedAt,
	}
}

func NewMessageDTO(message domain.Message) MessageDTO {
	return MessageDTO{
		ID:         message.ID,
		MissionID:  message.MissionID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
}
