package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/dto"
	"github.com/ekarpova/taskhub/internal/service/userservice"
	pkgauth "github.com/ekarpova/taskhub/pkg/auth"
	"github.com/ekarpova/taskhub/pkg/utils"
)

type Service interface {
	UpdateLocation(ctx context.Context, userID string, latitude, longitude float64) (*domain.User, error)
	SetAvailability(ctx context.Context, userID string, isAvailable bool) (*domain.User, error)
	GetProviderStats(ctx context.Context, providerID string) (*userservice.ProviderStats, error)
	GetClientStats(ctx context.Context, clientID string) (*userservice.ClientStats, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UpdateLocation godoc
//
//	@Summary		Update current user location
//	@Description	Store the caller's coordinates, used for nearby mission matching
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.UpdateLocationRequestDTO	true	"Coordinates"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		400	{object}	utils.Response	"Invalid coordinates"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/location [put]
func (h *UserHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)

	var req dto.UpdateLocationRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.userService.UpdateLocation(r.Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrInvalidCoordinates):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// UpdateAvailability godoc
//
//	@Summary		Toggle provider availability
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.UpdateAvailabilityRequestDTO	true	"Availability flag"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/availability [put]
func (h *UserHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)

	var req dto.UpdateAvailabilityRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.userService.SetAvailability(r.Context(), userID, req.IsAvailable)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// GetStats godoc
//
//	@Summary		Get activity stats for the current user
//	@Description	Providers get completed missions, earnings and average rating; clients get mission counts
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProviderStatsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/stats [get]
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	switch domain.Role(role) {
	case domain.RoleProvider:
		stats, err := h.userService.GetProviderStats(r.Context(), userID)
		if err != nil {
			h.respondStatsError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.ProviderStatsDTO{
			CompletedMissions: stats.CompletedMissions,
			TotalEarnings:     stats.TotalEarnings,
			AverageRating:     stats.AverageRating,
		})
	case domain.RoleClient:
		stats, err := h.userService.GetClientStats(r.Context(), userID)
		if err != nil {
			h.respondStatsError(w, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.ClientStatsDTO{
			TotalMissions:     stats.TotalMissions,
			CompletedMissions: stats.CompletedMissions,
		})
	default:
		utils.RespondWithError(w, http.StatusForbidden, "No stats for this role")
	}
}

func (h *UserHandler) respondStatsError(w http.ResponseWriter, err error) {
	if errors.Is(err, userservice.ErrUserNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}
