package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    MissionStatus
		to      MissionStatus
		allowed bool
	}{
		{name: "pending to accepted", from: MissionPending, to: MissionAccepted, allowed: true},
		{name: "pending to cancelled", from: MissionPending, to: MissionCancelled, allowed: true},
		{name: "pending to in progress", from: MissionPending, to: MissionInProgress, allowed: false},
		{name: "pending to completed", from: MissionPending, to: MissionCompleted, allowed: false},
		{name: "accepted to in progress", from: MissionAccepted, to: MissionInProgress, allowed: true},
		{name: "accepted to cancelled", from: MissionAccepted, to: MissionCancelled, allowed: true},
		{name: "accepted to completed", from: MissionAccepted, to: MissionCompleted, allowed: false},
		{name: "in progress to completed", from: MissionInProgress, to: MissionCompleted, allowed: true},
		{name: "in progress to cancelled", from: MissionInProgress, to: MissionCancelled, allowed: true},
		{name: "in progress to accepted", from: MissionInProgress, to: MissionAccepted, allowed: false},
		{name: "completed is terminal", from: MissionCompleted, to: MissionCancelled, allowed: false},
		{name: "cancelled is terminal", from: MissionCancelled, to: MissionAccepted, allowed: false},
		{name: "no self transition", from: MissionAccepted, to: MissionAccepted, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, MissionPending.IsTerminal())
	assert.False(t, MissionAccepted.IsTerminal())
	assert.False(t, MissionInProgress.IsTerminal())
	assert.True(t, MissionCompleted.IsTerminal())
	assert.True(t, MissionCancelled.IsTerminal())
}
