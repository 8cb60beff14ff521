package missionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/geo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockMessageRepo, *MockUserRepo, *MockGeocoder) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	messageRepo := NewMockMessageRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	geocoder := NewMockGeocoder(ctrl)

	service := New(repo, messageRepo, userRepo, geocoder)
	defer ctrl.Finish()
	return service, repo, messageRepo, userRepo, geocoder
}

func ptr[T any](v T) *T { return &v }

func TestCreateMission(t *testing.T) {
	service, repo, _, _, geocoder := NewMock(t)

	tests := []struct {
		name          string
		params        CreateMissionParams
		prepareMock   func()
		expectedError error
		check         func(t *testing.T, mission *domain.Mission)
	}{
		{
			name: "Successful creation",
			params: CreateMissionParams{
				Title:       "Fix kitchen sink",
				Description: "Leaking pipe under the sink",
				Address:     "12 Rue de Rivoli, Paris",
				Price:       80,
				Urgent:      true,
			},
			prepareMock: func() {
				geocoder.EXPECT().
					Resolve(context.Background(), "12 Rue de Rivoli, Paris").
					Return(geo.Point{Lat: 48.8556, Lng: 2.3571}, nil)
				repo.EXPECT().
					Save(context.Background(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, mission *domain.Mission) {
				assert.NotEmpty(t, mission.ID)
				assert.Equal(t, "client-1", mission.ClientID)
				assert.Equal(t, domain.MissionPending, mission.Status)
				assert.Equal(t, 48.8556, mission.Latitude)
				assert.Equal(t, 2.3571, mission.Longitude)
				assert.True(t, mission.Urgent)
				assert.Nil(t, mission.ProviderID)
			},
		},
		{
			name: "Markup stripped from user text",
			params: CreateMissionParams{
				Title:       `Fix <script>alert("x")</script>sink`,
				Description: "<b>urgent</b> job",
				Address:     "12 Rue de Rivoli, Paris",
				Price:       80,
			},
			prepareMock: func() {
				geocoder.EXPECT().
					Resolve(context.Background(), "12 Rue de Rivoli, Paris").
					Return(geo.Point{Lat: 48.8556, Lng: 2.3571}, nil)
				repo.EXPECT().
					Save(context.Background(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, mission *domain.Mission) {
				assert.Equal(t, "Fix sink", mission.Title)
				assert.Equal(t, "urgent job", mission.Description)
			},
		},
		{
			name: "Zero price rejected",
			params: CreateMissionParams{
				Title:   "Free work",
				Address: "somewhere",
				Price:   0,
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidPrice,
		},
		{
			name: "Negative price rejected",
			params: CreateMissionParams{
				Title:   "Pay me to work",
				Address: "somewhere",
				Price:   -5,
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidPrice,
		},
		{
			name: "Geocoding failure aborts creation",
			params: CreateMissionParams{
				Title:   "Fix sink",
				Address: "no such place",
				Price:   80,
			},
			prepareMock: func() {
				geocoder.EXPECT().
					Resolve(context.Background(), "no such place").
					Return(geo.Point{}, geo.ErrGeocoding)
				// No Save expected: nothing is persisted.
			},
			expectedError: geo.ErrGeocoding,
		},
		{
			name: "Save failure",
			params: CreateMissionParams{
				Title:   "Fix sink",
				Address: "12 Rue de Rivoli, Paris",
				Price:   80,
			},
			prepareMock: func() {
				geocoder.EXPECT().
					Resolve(context.Background(), "12 Rue de Rivoli, Paris").
					Return(geo.Point{Lat: 48.8556, Lng: 2.3571}, nil)
				repo.EXPECT().
					Save(context.Background(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			expectedError: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			mission, err := service.CreateMission(context.Background(), "client-1", tt.params)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, mission)
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, mission)
			}
		})
	}
}

func TestGetNearbyMissions(t *testing.T) {
	service, repo, _, userRepo, _ := NewMock(t)

	provider := &domain.User{
		ID:        "provider-1",
		Role:      domain.RoleProvider,
		Latitude:  ptr(48.8566),
		Longitude: ptr(2.3522),
	}

	// Distances from central Paris: ~0km, ~3.17km, ~5.7km, ~343km.
	pending := []domain.Mission{
		{ID: "far", Latitude: 51.5074, Longitude: -0.1278, Status: domain.MissionPending},
		{ID: "mid", Latitude: 48.8584, Longitude: 2.2945, Status: domain.MissionPending},
		{ID: "close", Latitude: 48.8566, Longitude: 2.3522, Status: domain.MissionPending},
	}

	t.Run("Filters and sorts ascending", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), "provider-1").Return(provider, nil)
		repo.EXPECT().FindPending(context.Background()).Return(pending, nil)

		nearby, err := service.GetNearbyMissions(context.Background(), "provider-1", 10)
		assert.NoError(t, err)
		assert.Len(t, nearby, 2)
		assert.Equal(t, "close", nearby[0].ID)
		assert.Equal(t, "mid", nearby[1].ID)
		assert.Equal(t, 0.0, nearby[0].Distance)
		assert.InDelta(t, 4.33, nearby[1].Distance, 0.5)
	})

	t.Run("Boundary is inclusive", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), "provider-1").Return(provider, nil)
		repo.EXPECT().FindPending(context.Background()).Return([]domain.Mission{
			{ID: "exact", Latitude: 48.8566, Longitude: 2.3522, Status: domain.MissionPending},
		}, nil)

		nearby, err := service.GetNearbyMissions(context.Background(), "provider-1", 0)
		assert.NoError(t, err)
		assert.Len(t, nearby, 1)
	})

	t.Run("Empty result is an empty slice", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), "provider-1").Return(provider, nil)
		repo.EXPECT().FindPending(context.Background()).Return(nil, nil)

		nearby, err := service.GetNearbyMissions(context.Background(), "provider-1", 10)
		assert.NoError(t, err)
		assert.NotNil(t, nearby)
		assert.Empty(t, nearby)
	})

	t.Run("Location not set", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), "provider-2").Return(&domain.User{ID: "provider-2"}, nil)

		nearby, err := service.GetNearbyMissions(context.Background(), "provider-2", 10)
		assert.ErrorIs(t, err, ErrLocationNotSet)
		assert.Nil(t, nearby)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		userRepo.EXPECT().FindByID(context.Background(), "ghost").Return(nil, nil)

		_, err := service.GetNearbyMissions(context.Background(), "ghost", 10)
		assert.ErrorIs(t, err, ErrLocationNotSet)
	})
}

func TestAcceptMission(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	pendingMission := &domain.Mission{ID: "m-1", Status: domain.MissionPending}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful accept",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), "m-1").Return(pendingMission, nil)
				repo.EXPECT().
					AcceptPending(context.Background(), "m-1", "provider-1", gomock.Any()).
					Return(&domain.Mission{ID: "m-1", Status: domain.MissionAccepted, ProviderID: ptr("provider-1")}, nil)
			},
		},
		{
			name: "Mission not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), "m-1").Return(nil, nil)
			},
			expectedError: ErrMissionNotFound,
		},
		{
			name: "Already accepted",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), "m-1").
					Return(&domain.Mission{ID: "m-1", Status: domain.MissionAccepted}, nil)
			},
			expectedError: ErrMissionUnavailable,
		},
		{
			name: "Lost the race",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), "m-1").Return(pendingMission, nil)
				repo.EXPECT().
					AcceptPending(context.Background(), "m-1", "provider-1", gomock.Any()).
					Return(nil, nil)
			},
			expectedError: ErrMissionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			mission, err := service.AcceptMission(context.Background(), "provider-1", "m-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, mission)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.MissionAccepted, mission.Status)
			assert.Equal(t, "provider-1", *mission.ProviderID)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	tests := []struct {
		name          string
		current       domain.MissionStatus
		target        domain.MissionStatus
		prepareExtra  func()
		expectedError error
		wantCompleted bool
	}{
		{name: "Accepted to in progress", current: domain.MissionAccepted, target: domain.MissionInProgress},
		{name: "In progress to completed", current: domain.MissionInProgress, target: domain.MissionCompleted, wantCompleted: true},
		{name: "Pending to cancelled", current: domain.MissionPending, target: domain.MissionCancelled},
		{name: "In progress to cancelled", current: domain.MissionInProgress, target: domain.MissionCancelled},
		{name: "Pending to completed rejected", current: domain.MissionPending, target: domain.MissionCompleted, expectedError: ErrInvalidTransition},
		{name: "Pending to in progress rejected", current: domain.MissionPending, target: domain.MissionInProgress, expectedError: ErrInvalidTransition},
		{name: "Completed is terminal", current: domain.MissionCompleted, target: domain.MissionCancelled, expectedError: ErrInvalidTransition},
		{name: "Cancelled is terminal", current: domain.MissionCancelled, target: domain.MissionPending, expectedError: ErrInvalidTransition},
		{name: "Backward transition rejected", current: domain.MissionInProgress, target: domain.MissionAccepted, expectedError: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindByID(context.Background(), "m-1").
				Return(&domain.Mission{ID: "m-1", Status: tt.current}, nil)
			if tt.expectedError == nil {
				repo.EXPECT().
					UpdateStatusFrom(context.Background(), "m-1", tt.current, tt.target, gomock.Any()).
					DoAndReturn(func(_ context.Context, id string, _, to domain.MissionStatus, completedAt *time.Time) (*domain.Mission, error) {
						if tt.wantCompleted {
							assert.NotNil(t, completedAt)
						} else {
							assert.Nil(t, completedAt)
						}
						return &domain.Mission{ID: id, Status: to, CompletedAt: completedAt}, nil
					})
			}

			mission, err := service.UpdateStatus(context.Background(), "m-1", tt.target)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.target, mission.Status)
		})
	}

	t.Run("Concurrent change loses", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), "m-1").
			Return(&domain.Mission{ID: "m-1", Status: domain.MissionAccepted}, nil)
		repo.EXPECT().
			UpdateStatusFrom(context.Background(), "m-1", domain.MissionAccepted, domain.MissionInProgress, gomock.Any()).
			Return(nil, nil)

		_, err := service.UpdateStatus(context.Background(), "m-1", domain.MissionInProgress)
		assert.ErrorIs(t, err, ErrMissionUnavailable)
	})
}

func TestGetMissionsForUser(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)

	t.Run("Client missions", func(t *testing.T) {
		repo.EXPECT().FindByClientID(context.Background(), "u-1").
			Return([]domain.Mission{{ID: "m-1"}}, nil)
		missions, err := service.GetMissionsForUser(context.Background(), "u-1", domain.RoleClient)
		assert.NoError(t, err)
		assert.Len(t, missions, 1)
	})

	t.Run("Provider missions", func(t *testing.T) {
		repo.EXPECT().FindByProviderID(context.Background(), "u-2").
			Return([]domain.Mission{{ID: "m-2"}, {ID: "m-3"}}, nil)
		missions, err := service.GetMissionsForUser(context.Background(), "u-2", domain.RoleProvider)
		assert.NoError(t, err)
		assert.Len(t, missions, 2)
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := service.GetMissionsForUser(context.Background(), "u-3", domain.Role("VISITOR"))
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestSendMessage(t *testing.T) {
	service, repo, messageRepo, _, _ := NewMock(t)

	t.Run("Successful send sanitizes content", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), "m-1").
			Return(&domain.Mission{ID: "m-1", Status: domain.MissionAccepted}, nil)
		messageRepo.EXPECT().
			Save(context.Background(), gomock.Any()).
			DoAndReturn(func(_ context.Context, message *domain.Message) error {
				assert.Equal(t, "hello there", message.Content)
				assert.NotEmpty(t, message.ID)
				return nil
			})

		message, err := service.SendMessage(context.Background(), "m-1", "sender", "receiver", "<img src=x>hello there")
		assert.NoError(t, err)
		assert.Equal(t, "m-1", message.MissionID)
		assert.Equal(t, "sender", message.SenderID)
		assert.Equal(t, "receiver", message.ReceiverID)
	})

	t.Run("Mission not found", func(t *testing.T) {
		repo.EXPECT().FindByID(context.Background(), "ghost").Return(nil, nil)
		_, err := service.SendMessage(context.Background(), "ghost", "sender", "receiver", "hi")
		assert.ErrorIs(t, err, ErrMissionNotFound)
	})
}

func TestGetMessages(t *testing.T) {
	service, _, messageRepo, _, _ := NewMock(t)

	messages := []domain.Message{
		{ID: "msg-1", Content: "first"},
		{ID: "msg-2", Content: "second"},
	}
	messageRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(messages, nil)

	got, err := service.GetMessages(context.Background(), "m-1")
	assert.NoError(t, err)
	assert.Equal(t, messages, got)
}
