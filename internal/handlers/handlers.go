package handlers

import (
	"net/http"

	_ "github.com/ekarpova/taskhub/docs"
	adminhandlers "github.com/ekarpova/taskhub/internal/handlers/admin"
	authhandlers "github.com/ekarpova/taskhub/internal/handlers/auth"
	missionhandlers "github.com/ekarpova/taskhub/internal/handlers/missions"
	paymenthandlers "github.com/ekarpova/taskhub/internal/handlers/payments"
	ratinghandlers "github.com/ekarpova/taskhub/internal/handlers/ratings"
	userhandlers "github.com/ekarpova/taskhub/internal/handlers/users"
	"github.com/ekarpova/taskhub/internal/service"
	"github.com/ekarpova/taskhub/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	UpdateLocation(w http.ResponseWriter, r *http.Request)
	UpdateAvailability(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type MissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetNearby(w http.ResponseWriter, r *http.Request)
	GetMyMissions(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)
	GetMessages(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	CreateIntent(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	GetByMission(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
}

type RatingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetForProvider(w http.ResponseWriter, r *http.Request)
	GetByMission(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListMissions(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	BlockUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	UserHandler    UserHandler
	MissionHandler MissionHandler
	PaymentHandler PaymentHandler
	RatingHandler  RatingHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		UserHandler:    userhandlers.New(s.UserService),
		MissionHandler: missionhandlers.New(s.MissionService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		RatingHandler:  ratinghandlers.New(s.RatingService),
		AdminHandler:   adminhandlers.New(s.AdminService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/me", h.AuthHandler.Profile)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Put("/location", h.UserHandler.UpdateLocation)
				r.Put("/availability", h.UserHandler.UpdateAvailability)
				r.Get("/stats", h.UserHandler.GetStats)
			})

			r.Route("/missions", func(r chi.Router) {
				r.Post("/", h.MissionHandler.Create)
				r.Get("/nearby", h.MissionHandler.GetNearby)
				r.Get("/my-missions", h.MissionHandler.GetMyMissions)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.MissionHandler.Get)
					r.Post("/accept", h.MissionHandler.Accept)
					r.Put("/status", h.MissionHandler.UpdateStatus)
					r.Post("/messages", h.MissionHandler.SendMessage)
					r.Get("/messages", h.MissionHandler.GetMessages)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/create-intent", h.PaymentHandler.CreateIntent)
				r.Post("/confirm", h.PaymentHandler.Confirm)
				r.Get("/mission/{id}", h.PaymentHandler.GetByMission)
				r.Get("/earnings", h.PaymentHandler.GetEarnings)
			})

			r.Route("/ratings", func(r chi.Router) {
				r.Post("/", h.RatingHandler.Create)
				r.Get("/provider/{id}", h.RatingHandler.GetForProvider)
				r.Get("/mission/{id}", h.RatingHandler.GetByMission)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireRole("ADMIN"))
				r.Get("/dashboard", h.AdminHandler.GetDashboard)
				r.Get("/users", h.AdminHandler.ListUsers)
				r.Get("/missions", h.AdminHandler.ListMissions)
				r.Get("/payments", h.AdminHandler.ListPayments)
				r.Put("/users/{id}/block", h.AdminHandler.BlockUser)
				r.Delete("/users/{id}", h.AdminHandler.DeleteUser)
			})
		})
	})

	return r
}
