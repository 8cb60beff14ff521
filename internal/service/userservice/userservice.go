package userservice

import (
	"context"
	"errors"
	"math"

	"github.com/ekarpova/taskhub/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateLocation(ctx context.Context, userID string, latitude, longitude float64) (*domain.User, error)
	UpdateAvailability(ctx context.Context, userID string, isAvailable bool) (*domain.User, error)
}

type MissionRepo interface {
	CountByClientID(ctx context.Context, clientID string, status *domain.MissionStatus) (int, error)
	CountByProviderID(ctx context.Context, providerID string, status *domain.MissionStatus) (int, error)
}

type PaymentRepo interface {
	FindSucceededByProviderID(ctx context.Context, providerID string) ([]domain.Payment, error)
}

type RatingRepo interface {
	FindByProviderID(ctx context.Context, providerID string) ([]domain.Rating, error)
}

type Service struct {
	userRepo    UserRepo
	missionRepo MissionRepo
	paymentRepo PaymentRepo
	ratingRepo  RatingRepo
}

func New(userRepo UserRepo, missionRepo MissionRepo, paymentRepo PaymentRepo, ratingRepo RatingRepo) *Service {
	return &Service{
		userRepo:    userRepo,
		missionRepo: missionRepo,
		paymentRepo: paymentRepo,
		ratingRepo:  ratingRepo,
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// UpdateLocation stores the provider's last known position, read later by
// the nearby-mission matching.
func (s *Service) UpdateLocation(ctx context.Context, userID string, latitude, longitude float64) (*domain.User, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return nil, ErrInvalidCoordinates
	}

	user, err := s.userRepo.UpdateLocation(ctx, userID, latitude, longitude)
	if err != nil {
		zap.L().Error("can't update location", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) SetAvailability(ctx context.Context, userID string, isAvailable bool) (*domain.User, error) {
	user, err := s.userRepo.UpdateAvailability(ctx, userID, isAvailable)
	if err != nil {
		zap.L().Error("can't update availability", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

type ProviderStats struct {
	CompletedMissions int
	TotalEarnings     float64
	AverageRating     float64
}

type ClientStats struct {
	TotalMissions     int
	CompletedMissions int
}

func (s *Service) GetProviderStats(ctx context.Context, providerID string) (*ProviderStats, error) {
	completed := domain.MissionCompleted
	completedMissions, err := s.missionRepo.CountByProviderID(ctx, providerID, &completed)
	if err != nil {
		zap.L().Error("can't count provider missions", zap.Error(err))
		return nil, err
	}

	payments, err := s.paymentRepo.FindSucceededByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("can't get provider payments", zap.Error(err))
		return nil, err
	}
	var totalEarnings float64
	for _, payment := range payments {
		totalEarnings += payment.ProviderAmount
	}

	ratings, err := s.ratingRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("can't get provider ratings", zap.Error(err))
		return nil, err
	}
	var averageRating float64
	if len(ratings) > 0 {
		var sum int
		for _, rating := range ratings {
			sum += rating.Score
		}
		averageRating = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	return &ProviderStats{
		CompletedMissions: completedMissions,
		TotalEarnings:     totalEarnings,
		AverageRating:     averageRating,
	}, nil
}

func (s *Service) GetClientStats(ctx context.Context, clientID string) (*ClientStats, error) {
	totalMissions, err := s.missionRepo.CountByClientID(ctx, clientID, nil)
	if err != nil {
		zap.L().Error("can't count client missions", zap.Error(err))
		return nil, err
	}

	completed := domain.MissionCompleted
	completedMissions, err := s.missionRepo.CountByClientID(ctx, clientID, &completed)
	if err != nil {
		zap.L().Error("can't count completed client missions", zap.Error(err))
		return nil, err
	}

	return &ClientStats{
		TotalMissions:     totalMissions,
		CompletedMissions: completedMissions,
	}, nil
}
