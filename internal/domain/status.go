package domain

type MissionStatus string

const (
	// MissionPending mission is published and waiting for a provider.
	MissionPending MissionStatus = "PENDING"
	// MissionAccepted a provider committed to the mission.
	MissionAccepted MissionStatus = "ACCEPTED"
	// MissionInProgress the provider started working.
	MissionInProgress MissionStatus = "IN_PROGRESS"
	// MissionCompleted work is done; payment and rating become possible.
	MissionCompleted MissionStatus = "COMPLETED"
	// MissionCancelled terminal, reachable from any non-terminal state.
	MissionCancelled MissionStatus = "CANCELLED"
)

var missionTransitions = map[MissionStatus][]MissionStatus{
	MissionPending:    {MissionAccepted, MissionCancelled},
	MissionAccepted:   {MissionInProgress, MissionCancelled},
	MissionInProgress: {MissionCompleted, MissionCancelled},
}

func (s MissionStatus) IsTerminal() bool {
	return s == MissionCompleted || s == MissionCancelled
}

func (s MissionStatus) CanTransitionTo(target MissionStatus) bool {
	for _, next := range missionTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
