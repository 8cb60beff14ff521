package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/dto"
	"github.com/ekarpova/taskhub/internal/service/ratingservice"
	pkgauth "github.com/ekarpova/taskhub/pkg/auth"
	"github.com/ekarpova/taskhub/pkg/utils"
)

type Service interface {
	CreateRating(ctx context.Context, clientID, missionID string, score int, comment *string) (*domain.Rating, error)
	GetProviderRatings(ctx context.Context, providerID string) ([]domain.Rating, float64, int, error)
	GetRatingByMission(ctx context.Context, missionID string) (*domain.Rating, error)
}

type RatingHandler struct {
	ratingService Service
}

func New(ratingService Service) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Create godoc
//
//	@Summary		Rate a completed mission
//	@Description	The mission's client scores the provider once, 1 to 5
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateRatingRequestDTO	true	"Rating"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RatingDTO
//	@Failure		400	{object}	utils.Response	"Mission not completed or invalid score"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Caller is not the mission's client"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		409	{object}	utils.Response	"Mission already rated"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ratings [post]
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(pkgauth.UserIDKey).(string)

	var req dto.CreateRatingRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.MissionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	rating, err := h.ratingService.CreateRating(r.Context(), clientID, req.MissionID, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ratingservice.ErrMissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ratingservice.ErrNotMissionClient):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ratingservice.ErrAlreadyRated):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ratingservice.ErrMissionNotCompleted),
			errors.Is(err, ratingservice.ErrMissionHasNoProvider),
			errors.Is(err, ratingservice.ErrInvalidScore):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRatingDTO(*rating))
}

// GetForProvider godoc
//
//	@Summary		Get ratings for a provider
//	@Description	All ratings plus the average score rounded to one decimal
//	@Tags			Ratings
//	@Produce		json
//	@Param			id	path	string	true	"Provider ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProviderRatingsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ratings/provider/{id} [get]
func (h *RatingHandler) GetForProvider(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	ratingsList, average, total, err := h.ratingService.GetProviderRatings(r.Context(), providerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.ProviderRatingsResponseDTO{
		Ratings:      make([]dto.RatingDTO, 0, len(ratingsList)),
		AverageScore: average,
		TotalRatings: total,
	}
	for _, rating := range ratingsList {
		response.Ratings = append(response.Ratings, dto.NewRatingDTO(rating))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetByMission godoc
//
//	@Summary		Get the rating left on a mission
//	@Tags			Ratings
//	@Produce		json
//	@Param			id	path	string	true	"Mission ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RatingDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rating not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ratings/mission/{id} [get]
func (h *RatingHandler) GetByMission(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	rating, err := h.ratingService.GetRatingByMission(r.Context(), missionID)
	if err != nil {
		if errors.Is(err, ratingservice.ErrRatingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRatingDTO(*rating))
}
