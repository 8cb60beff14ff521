package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)

	service := New(repo, userRepo)
	defer ctrl.Finish()
	return service, repo, userRepo
}

func TestGetDashboard(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Returns platform stats", func(t *testing.T) {
		repo.EXPECT().GetPlatformStats(ctx).
			Return(&domain.PlatformStats{Clients: 40, Providers: 12, TotalMissions: 95}, nil)
		stats, err := service.GetDashboard(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 40, stats.Clients)
		assert.Equal(t, 12, stats.Providers)
	})

	t.Run("Repo failure", func(t *testing.T) {
		repo.EXPECT().GetPlatformStats(ctx).Return(nil, errors.New("db error"))
		_, err := service.GetDashboard(ctx)
		assert.Error(t, err)
	})
}

func TestListUsers(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		page, limit    int
		expectedLimit  int
		expectedOffset int
		total          int
		expectedPages  int
	}{
		{
			name: "Defaults applied",
			page: 0, limit: 0,
			expectedLimit: 20, expectedOffset: 0,
			total: 45, expectedPages: 3,
		},
		{
			name: "Second page",
			page: 2, limit: 10,
			expectedLimit: 10, expectedOffset: 10,
			total: 45, expectedPages: 5,
		},
		{
			name: "Exact page boundary",
			page: 1, limit: 15,
			expectedLimit: 15, expectedOffset: 0,
			total: 45, expectedPages: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().ListUsers(ctx, tt.expectedLimit, tt.expectedOffset).
				Return([]domain.User{{ID: "u-1"}}, tt.total, nil)

			users, pagination, err := service.ListUsers(ctx, tt.page, tt.limit)
			assert.NoError(t, err)
			assert.Len(t, users, 1)
			assert.Equal(t, tt.expectedLimit, pagination.Limit)
			assert.Equal(t, tt.total, pagination.Total)
			assert.Equal(t, tt.expectedPages, pagination.Pages)
		})
	}
}

func TestListMissions(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	repo.EXPECT().ListMissions(ctx, 20, 0).
		Return([]domain.Mission{{ID: "m-1"}, {ID: "m-2"}}, 2, nil)

	missions, pagination, err := service.ListMissions(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, missions, 2)
	assert.Equal(t, 1, pagination.Pages)
}

func TestListPayments(t *testing.T) {
	service, repo, _ := NewMock(t)
	ctx := context.Background()

	t.Run("Successful listing", func(t *testing.T) {
		repo.EXPECT().ListPayments(ctx, 5, 5).
			Return([]domain.Payment{{ID: "pay-1"}}, 11, nil)

		payments, pagination, err := service.ListPayments(ctx, 2, 5)
		assert.NoError(t, err)
		assert.Len(t, payments, 1)
		assert.Equal(t, 3, pagination.Pages)
	})

	t.Run("Repo failure", func(t *testing.T) {
		repo.EXPECT().ListPayments(ctx, 20, 0).Return(nil, 0, errors.New("db error"))
		_, _, err := service.ListPayments(ctx, 1, 20)
		assert.Error(t, err)
	})
}

func TestBlockUser(t *testing.T) {
	service, _, userRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Successful block", func(t *testing.T) {
		userRepo.EXPECT().SetBlocked(ctx, "u-1", true).
			Return(&domain.User{ID: "u-1", IsBlocked: true}, nil)
		user, err := service.BlockUser(ctx, "u-1", true)
		assert.NoError(t, err)
		assert.True(t, user.IsBlocked)
	})

	t.Run("Unblock", func(t *testing.T) {
		userRepo.EXPECT().SetBlocked(ctx, "u-1", false).
			Return(&domain.User{ID: "u-1", IsBlocked: false}, nil)
		user, err := service.BlockUser(ctx, "u-1", false)
		assert.NoError(t, err)
		assert.False(t, user.IsBlocked)
	})

	t.Run("User not found", func(t *testing.T) {
		userRepo.EXPECT().SetBlocked(ctx, "missing", true).Return(nil, nil)
		_, err := service.BlockUser(ctx, "missing", true)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	service, _, userRepo := NewMock(t)
	ctx := context.Background()

	t.Run("Successful deletion", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, "u-1").Return(&domain.User{ID: "u-1"}, nil)
		userRepo.EXPECT().Delete(ctx, "u-1").Return(nil)
		assert.NoError(t, service.DeleteUser(ctx, "u-1"))
	})

	t.Run("User not found", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, "missing").Return(nil, nil)
		assert.ErrorIs(t, service.DeleteUser(ctx, "missing"), ErrUserNotFound)
	})

	t.Run("Delete failure", func(t *testing.T) {
		userRepo.EXPECT().FindByID(ctx, "u-1").Return(&domain.User{ID: "u-1"}, nil)
		userRepo.EXPECT().Delete(ctx, "u-1").Return(errors.New("db error"))
		assert.Error(t, service.DeleteUser(ctx, "u-1"))
	})
}
