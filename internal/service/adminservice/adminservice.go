package adminservice

import (
	"context"
	"errors"

	"github.com/ekarpova/taskhub/internal/domain"
	"go.uber.org/zap"
)

const defaultPageLimit = 20

type Repo interface {
	GetPlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	ListMissions(ctx context.Context, limit, offset int) ([]domain.Mission, int, error)
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	SetBlocked(ctx context.Context, userID string, isBlocked bool) (*domain.User, error)
	Delete(ctx context.Context, userID string) error
}

type Service struct {
	repo     Repo
	userRepo UserRepo
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:     repo,
		userRepo: userRepo,
	}
}

var ErrUserNotFound = errors.New("user not found")

type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

func paginate(page, limit int) (Pagination, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return Pagination{Page: page, Limit: limit}, (page - 1) * limit
}

func (p *Pagination) fill(total int) {
	p.Total = total
	p.Pages = (total + p.Limit - 1) / p.Limit
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.PlatformStats, error) {
	stats, err := s.repo.GetPlatformStats(ctx)
	if err != nil {
		zap.L().Error("can't get dashboard stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (s *Service) ListUsers(ctx context.Context, page, limit int) ([]domain.User, Pagination, error) {
	pagination, offset := paginate(page, limit)
	users, total, err := s.repo.ListUsers(ctx, pagination.Limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, Pagination{}, err
	}
	pagination.fill(total)
	return users, pagination, nil
}

func (s *Service) ListMissions(ctx context.Context, page, limit int) ([]domain.Mission, Pagination, error) {
	pagination, offset := paginate(page, limit)
	missions, total, err := s.repo.ListMissions(ctx, pagination.Limit, offset)
	if err != nil {
		zap.L().Error("can't list missions", zap.Error(err))
		return nil, Pagination{}, err
	}
	pagination.fill(total)
	return missions, pagination, nil
}

func (s *Service) ListPayments(ctx context.Context, page, limit int) ([]domain.Payment, Pagination, error) {
	pagination, offset := paginate(page, limit)
	payments, total, err := s.repo.ListPayments(ctx, pagination.Limit, offset)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, Pagination{}, err
	}
	pagination.fill(total)
	return payments, pagination, nil
}

func (s *Service) BlockUser(ctx context.Context, userID string, isBlocked bool) (*domain.User, error) {
	user, err := s.userRepo.SetBlocked(ctx, userID, isBlocked)
	if err != nil {
		zap.L().Error("can't block user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, userID)
}
