package domain

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	TotalUsers         int
	Clients            int
	Providers          int
	AvailableProviders int
	TotalMissions      int
	PendingMissions    int
	ActiveMissions     int
	CompletedMissions  int
	TotalRevenue       float64
	PlatformRevenue    float64
}
