package dto

type DashboardUsersDTO struct {
	Total              int `json:"total"`
	Clients            int `json:"clients"`
	Providers          int `json:"providers"`
	AvailableProviders int `json:"availableProviders"`
}

type DashboardMissionsDTO struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type DashboardRevenueDTO struct {
	Total    float64 `json:"total"`
	Platform float64 `json:"platform"`
}

type DashboardResponseDTO struct {
	Users    DashboardUsersDTO    `json:"users"`
	Missions DashboardMissionsDTO `json:"missions"`
	Revenue  DashboardRevenueDTO  `json:"revenue"`
}

type PaginationDTO struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type UsersPageResponseDTO struct {
	Users      []UserDTO     `json:"users"`
	Pagination PaginationDTO `json:"pagination"`
}

type MissionsPageResponseDTO struct {
	Missions   []MissionResponseDTO `json:"missions"`
	Pagination PaginationDTO        `json:"pagination"`
}

type PaymentsPageResponseDTO struct {
	Payments   []PaymentDTO  `json:"payments"`
	Pagination PaginationDTO `json:"pagination"`
}

type BlockUserRequestDTO struct {
	IsBlocked bool `json:"isBlocked"`
}
