package ratingservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/pg"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type RatingRepo interface {
	Save(ctx context.Context, rating *domain.Rating) error
	FindByMissionID(ctx context.Context, missionID string) (*domain.Rating, error)
	FindByProviderID(ctx context.Context, providerID string) ([]domain.Rating, error)
}

type MissionRepo interface {
	FindByID(ctx context.Context, missionID string) (*domain.Mission, error)
}

type Service struct {
	ratingRepo  RatingRepo
	missionRepo MissionRepo
	sanitizer   *bluemonday.Policy
}

func New(ratingRepo RatingRepo, missionRepo MissionRepo) *Service {
	return &Service{
		ratingRepo:  ratingRepo,
		missionRepo: missionRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

var (
	ErrMissionNotFound     = errors.New("mission not found")
	ErrMissionNotCompleted = errors.New("can only rate completed missions")
	ErrNotMissionClient    = errors.New("only the mission's client can rate it")
	ErrMissionHasNoProvider = errors.New("mission has no provider")
	ErrAlreadyRated        = errors.New("mission already rated")
	ErrInvalidScore        = errors.New("score must be between 1 and 5")
	ErrRatingNotFound      = errors.New("rating not found")
)

func (s *Service) CreateRating(ctx context.Context, clientID, missionID string, score int, comment *string) (*domain.Rating, error) {
	mission, err := s.missionRepo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}
	if mission.Status != domain.MissionCompleted {
		return nil, ErrMissionNotCompleted
	}
	if mission.ClientID != clientID {
		return nil, ErrNotMissionClient
	}
	if mission.ProviderID == nil {
		return nil, ErrMissionHasNoProvider
	}

	existing, err := s.ratingRepo.FindByMissionID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyRated
	}

	if score < 1 || score > 5 {
		return nil, ErrInvalidScore
	}

	if comment != nil {
		clean := s.sanitizer.Sanitize(*comment)
		comment = &clean
	}

	rating := &domain.Rating{
		ID:         uuid.NewString(),
		MissionID:  missionID,
		ClientID:   clientID,
		ProviderID: *mission.ProviderID,
		Score:      score,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}
	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		if pg.IsUniqueViolation(err) {
			zap.L().Info("lost rating creation race", zap.String("mission_id", missionID))
			return nil, ErrAlreadyRated
		}
		zap.L().Error("can't save rating: ", zap.Error(err))
		return nil, err
	}
	return rating, nil
}

// GetProviderRatings returns all ratings with the mean score rounded to one
// decimal. A provider without ratings gets 0, not an error.
func (s *Service) GetProviderRatings(ctx context.Context, providerID string) ([]domain.Rating, float64, int, error) {
	ratings, err := s.ratingRepo.FindByProviderID(ctx, providerID)
	if err != nil {
		zap.L().Error("can't get provider ratings", zap.Error(err))
		return nil, 0, 0, err
	}

	var averageScore float64
	if len(ratings) > 0 {
		var sum int
		for _, rating := range ratings {
			sum += rating.Score
		}
		averageScore = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}
	return ratings, averageScore, len(ratings), nil
}

func (s *Service) GetRatingByMission(ctx context.Context, missionID string) (*domain.Rating, error) {
	rating, err := s.ratingRepo.FindByMissionID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}
	return rating, nil
}
