package ratingservice

import (
	"context"
	"testing"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRatingRepo, *MockMissionRepo) {
	ctrl := gomock.NewController(t)
	ratingRepo := NewMockRatingRepo(ctrl)
	missionRepo := NewMockMissionRepo(ctrl)

	service := New(ratingRepo, missionRepo)
	defer ctrl.Finish()
	return service, ratingRepo, missionRepo
}

func ptr[T any](v T) *T { return &v }

func TestCreateRating(t *testing.T) {
	service, ratingRepo, missionRepo := NewMock(t)

	completedMission := &domain.Mission{
		ID:         "m-1",
		ClientID:   "client-1",
		ProviderID: ptr("provider-1"),
		Status:     domain.MissionCompleted,
	}

	tests := []struct {
		name          string
		clientID      string
		score         int
		comment       *string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful rating",
			clientID: "client-1",
			score:    5,
			comment:  ptr("great <b>work</b>"),
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
				ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(nil, nil)
				ratingRepo.EXPECT().
					Save(context.Background(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rating *domain.Rating) error {
						assert.Equal(t, "provider-1", rating.ProviderID)
						assert.Equal(t, 5, rating.Score)
						assert.Equal(t, "great work", *rating.Comment)
						return nil
					})
			},
		},
		{
			name:     "Mission not found",
			clientID: "client-1",
			score:    5,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(nil, nil)
			},
			expectedError: ErrMissionNotFound,
		},
		{
			name:     "Mission not completed",
			clientID: "client-1",
			score:    5,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").
					Return(&domain.Mission{ID: "m-1", ClientID: "client-1", Status: domain.MissionInProgress}, nil)
			},
			expectedError: ErrMissionNotCompleted,
		},
		{
			name:     "Not the mission's client",
			clientID: "intruder",
			score:    5,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
			},
			expectedError: ErrNotMissionClient,
		},
		{
			name:     "Mission has no provider",
			clientID: "client-1",
			score:    5,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").
					Return(&domain.Mission{ID: "m-1", ClientID: "client-1", Status: domain.MissionCompleted}, nil)
			},
			expectedError: ErrMissionHasNoProvider,
		},
		{
			name:     "Already rated",
			clientID: "client-1",
			score:    5,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
				ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").
					Return(&domain.Rating{ID: "r-1"}, nil)
			},
			expectedError: ErrAlreadyRated,
		},
		{
			name:     "Score too low",
			clientID: "client-1",
			score:    0,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
				ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(nil, nil)
			},
			expectedError: ErrInvalidScore,
		},
		{
			name:     "Score too high",
			clientID: "client-1",
			score:    6,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
				ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(nil, nil)
			},
			expectedError: ErrInvalidScore,
		},
		{
			name:     "Lost creation race on unique index",
			clientID: "client-1",
			score:    4,
			prepareMock: func() {
				missionRepo.EXPECT().FindByID(context.Background(), "m-1").Return(completedMission, nil)
				ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(nil, nil)
				ratingRepo.EXPECT().Save(context.Background(), gomock.Any()).
					Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrAlreadyRated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rating, err := service.CreateRating(context.Background(), tt.clientID, "m-1", tt.score, tt.comment)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, rating)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "m-1", rating.MissionID)
		})
	}
}

func TestGetProviderRatings(t *testing.T) {
	service, ratingRepo, _ := NewMock(t)

	tests := []struct {
		name            string
		ratings         []domain.Rating
		expectedAverage float64
		expectedTotal   int
	}{
		{
			name:            "Average rounds to one decimal",
			ratings:         []domain.Rating{{Score: 5}, {Score: 4}, {Score: 4}},
			expectedAverage: 4.3,
			expectedTotal:   3,
		},
		{
			name:            "Exact average",
			ratings:         []domain.Rating{{Score: 4}, {Score: 5}},
			expectedAverage: 4.5,
			expectedTotal:   2,
		},
		{
			name:            "No ratings gives zero",
			ratings:         nil,
			expectedAverage: 0,
			expectedTotal:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratingRepo.EXPECT().FindByProviderID(context.Background(), "provider-1").
				Return(tt.ratings, nil)

			ratings, average, total, err := service.GetProviderRatings(context.Background(), "provider-1")
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAverage, average)
			assert.Equal(t, tt.expectedTotal, total)
			assert.Len(t, ratings, tt.expectedTotal)
		})
	}
}

func TestGetRatingByMission(t *testing.T) {
	service, ratingRepo, _ := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").
			Return(&domain.Rating{ID: "r-1", Score: 5}, nil)
		rating, err := service.GetRatingByMission(context.Background(), "m-1")
		assert.NoError(t, err)
		assert.Equal(t, "r-1", rating.ID)
	})

	t.Run("Not found", func(t *testing.T) {
		ratingRepo.EXPECT().FindByMissionID(context.Background(), "m-1").Return(nil, nil)
		_, err := service.GetRatingByMission(context.Background(), "m-1")
		assert.ErrorIs(t, err, ErrRatingNotFound)
	})
}
