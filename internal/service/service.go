package service

import (
	"github.com/ekarpova/taskhub/internal/config"
	"github.com/ekarpova/taskhub/internal/handlers/admin"
	"github.com/ekarpova/taskhub/internal/handlers/auth"
	"github.com/ekarpova/taskhub/internal/handlers/missions"
	"github.com/ekarpova/taskhub/internal/handlers/payments"
	"github.com/ekarpova/taskhub/internal/handlers/ratings"
	"github.com/ekarpova/taskhub/internal/handlers/users"

	pkgauth "github.com/ekarpova/taskhub/pkg/auth"

	"github.com/ekarpova/taskhub/internal/repo"
	"github.com/ekarpova/taskhub/internal/service/adminservice"
	"github.com/ekarpova/taskhub/internal/service/authservice"
	"github.com/ekarpova/taskhub/internal/service/missionservice"
	"github.com/ekarpova/taskhub/internal/service/paymentservice"
	"github.com/ekarpova/taskhub/internal/service/ratingservice"
	"github.com/ekarpova/taskhub/internal/service/userservice"
)

type Services struct {
	AuthService    auth.Service
	UserService    users.Service
	MissionService missions.Service
	PaymentService payments.Service
	RatingService  ratings.Service
	AdminService   admin.Service
}

func New(cfg *config.Config, repo *repo.Repositories, geocoder missionservice.Geocoder, proc paymentservice.Processor) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	userService := userservice.New(repo.UserRepo, repo.MissionRepo, repo.PaymentRepo, repo.RatingRepo)
	missionService := missionservice.New(repo.MissionRepo, repo.MessageRepo, repo.UserRepo, geocoder)
	paymentService := paymentservice.New(repo.PaymentRepo, repo.MissionRepo, proc, cfg.CommissionRate, cfg.Currency)
	ratingService := ratingservice.New(repo.RatingRepo, repo.MissionRepo)
	adminService := adminservice.New(repo.AdminRepo, repo.UserRepo)

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		MissionService: missionService,
		PaymentService: paymentService,
		RatingService:  ratingService,
		AdminService:   adminService,
	}
}
