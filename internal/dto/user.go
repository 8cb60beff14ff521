package dto

type UpdateLocationRequestDTO struct {
	Latitude  float64 `json:"latitude" example:"48.8566"`
	Longitude float64 `json:"longitude" example:"2.3522"`
}

type UpdateAvailabilityRequestDTO struct {
	IsAvailable bool `json:"isAvailable"`
}

type ProviderStatsDTO struct {
	CompletedMissions int     `json:"completedMissions"`
	TotalEarnings     float64 `json:"totalEarnings"`
	AverageRating     float64 `json:"averageRating"`
}

type ClientStatsDTO struct {
	TotalMissions     int `json:"totalMissions"`
	CompletedMissions int `json:"completedMissions"`
}
