package missionservice

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/geo"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, mission *domain.Mission) error
	FindByID(ctx context.Context, missionID string) (*domain.Mission, error)
	FindPending(ctx context.Context) ([]domain.Mission, error)
	FindByClientID(ctx context.Context, clientID string) ([]domain.Mission, error)
	FindByProviderID(ctx context.Context, providerID string) ([]domain.Mission, error)
	AcceptPending(ctx context.Context, missionID, providerID string, acceptedAt time.Time) (*domain.Mission, error)
	UpdateStatusFrom(ctx context.Context, missionID string, from, to domain.MissionStatus, completedAt *time.Time) (*domain.Mission, error)
}

type MessageRepo interface {
	Save(ctx context.Context, message *domain.Message) error
	FindByMissionID(ctx context.Context, missionID string) ([]domain.Message, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (geo.Point, error)
}

type Service struct {
	repo        Repo
	messageRepo MessageRepo
	userRepo    UserRepo
	geocoder    Geocoder
	sanitizer   *bluemonday.Policy
}

func New(repo Repo, messageRepo MessageRepo, userRepo UserRepo, geocoder Geocoder) *Service {
	return &Service{
		repo:        repo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		geocoder:    geocoder,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

var (
	ErrMissionNotFound    = errors.New("mission not found")
	ErrMissionUnavailable = errors.New("mission is not available")
	ErrLocationNotSet     = errors.New("provider location not set")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidRole        = errors.New("invalid user role")
)

type CreateMissionParams struct {
	Title       string
	Description string
	Address     string
	Price       float64
	Urgent      bool
}

// CreateMission geocodes the address first; a geocoding failure aborts the
// whole operation, so no mission row exists without coordinates.
func (s *Service) CreateMission(ctx context.Context, clientID string, params CreateMissionParams) (*domain.Mission, error) {
	if params.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	point, err := s.geocoder.Resolve(ctx, params.Address)
	if err != nil {
		zap.L().Error("can't geocode mission address", zap.Error(err))
		return nil, err
	}

	mission := &domain.Mission{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Title:       s.sanitizer.Sanitize(params.Title),
		Description: s.sanitizer.Sanitize(params.Description),
		Address:     params.Address,
		Latitude:    point.Lat,
		Longitude:   point.Lng,
		Price:       params.Price,
		Urgent:      params.Urgent,
		Status:      domain.MissionPending,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, mission); err != nil {
		zap.L().Error("can't save mission: ", zap.Error(err))
		return nil, err
	}
	return mission, nil
}

func (s *Service) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}
	return mission, nil
}

type NearbyMission struct {
	domain.Mission
	Distance float64
}

// GetNearbyMissions scans every PENDING mission and ranks those within
// maxDistanceKm (inclusive) by distance. Linear scan, no spatial index.
func (s *Service) GetNearbyMissions(ctx context.Context, providerID string, maxDistanceKm float64) ([]NearbyMission, error) {
	provider, err := s.userRepo.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || provider.Latitude == nil || provider.Longitude == nil {
		return nil, ErrLocationNotSet
	}

	pending, err := s.repo.FindPending(ctx)
	if err != nil {
		zap.L().Error("can't get pending missions", zap.Error(err))
		return nil, err
	}

	nearby := make([]NearbyMission, 0)
	for _, mission := range pending {
		distance := geo.DistanceKm(*provider.Latitude, *provider.Longitude, mission.Latitude, mission.Longitude)
		if distance <= maxDistanceKm {
			nearby = append(nearby, NearbyMission{
				Mission:  mission,
				Distance: roundTo2(distance),
			})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}

// AcceptMission is first-come-first-served: the conditional update in the
// repo decides the winner, a fresh read is only used to tell NotFound apart.
func (s *Service) AcceptMission(ctx context.Context, providerID, missionID string) (*domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}
	if mission.Status != domain.MissionPending {
		return nil, ErrMissionUnavailable
	}

	accepted, err := s.repo.AcceptPending(ctx, missionID, providerID, time.Now())
	if err != nil {
		zap.L().Error("can't accept mission: ", zap.Error(err))
		return nil, err
	}
	if accepted == nil {
		zap.L().Info("lost accept race", zap.String("mission_id", missionID), zap.String("provider_id", providerID))
		return nil, ErrMissionUnavailable
	}
	return accepted, nil
}

// UpdateStatus applies one transition of the mission lifecycle. The write is
// conditional on the status the caller observed, so concurrent transitions
// cannot overwrite each other.
func (s *Service) UpdateStatus(ctx context.Context, missionID string, target domain.MissionStatus) (*domain.Mission, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}
	if !mission.Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	var completedAt *time.Time
	if target == domain.MissionCompleted {
		now := time.Now()
		completedAt = &now
	}

	updated, err := s.repo.UpdateStatusFrom(ctx, missionID, mission.Status, target, completedAt)
	if err != nil {
		zap.L().Error("can't update mission status: ", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrMissionUnavailable
	}
	return updated, nil
}

func (s *Service) GetMissionsForUser(ctx context.Context, userID string, role domain.Role) ([]domain.Mission, error) {
	switch role {
	case domain.RoleClient:
		return s.repo.FindByClientID(ctx, userID)
	case domain.RoleProvider:
		return s.repo.FindByProviderID(ctx, userID)
	default:
		return nil, ErrInvalidRole
	}
}

func (s *Service) SendMessage(ctx context.Context, missionID, senderID, receiverID, content string) (*domain.Message, error) {
	mission, err := s.repo.FindByID(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, ErrMissionNotFound
	}

	message := &domain.Message{
		ID:         uuid.NewString(),
		MissionID:  missionID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    s.sanitizer.Sanitize(content),
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.Save(ctx, message); err != nil {
		zap.L().Error("can't save message: ", zap.Error(err))
		return nil, err
	}
	return message, nil
}

func (s *Service) GetMessages(ctx context.Context, missionID string) ([]domain.Message, error) {
	messages, err := s.messageRepo.FindByMissionID(ctx, missionID)
	if err != nil {
		zap.L().Error("can't get messages", zap.Error(err))
		return nil, err
	}
	return messages, nil
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
