package missions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/dto"
	"github.com/ekarpova/taskhub/internal/geo"
	"github.com/ekarpova/taskhub/internal/service/missionservice"
	pkgauth "github.com/ekarpova/taskhub/pkg/auth"
	"github.com/ekarpova/taskhub/pkg/utils"
)

// defaultMaxDistanceKm bounds the nearby search when the client sends no radius.
const defaultMaxDistanceKm = 10

type Service interface {
	CreateMission(ctx context.Context, clientID string, params missionservice.CreateMissionParams) (*domain.Mission, error)
	GetMission(ctx context.Context, missionID string) (*domain.Mission, error)
	GetNearbyMissions(ctx context.Context, providerID string, maxDistanceKm float64) ([]missionservice.NearbyMission, error)
	AcceptMission(ctx context.Context, providerID, missionID string) (*domain.Mission, error)
	UpdateStatus(ctx context.Context, missionID string, target domain.MissionStatus) (*domain.Mission, error)
	GetMissionsForUser(ctx context.Context, userID string, role domain.Role) ([]domain.Mission, error)
	SendMessage(ctx context.Context, missionID, senderID, receiverID, content string) (*domain.Message, error)
	GetMessages(ctx context.Context, missionID string) ([]domain.Message, error)
}

type MissionHandler struct {
	missionService Service
}

func New(missionService Service) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// Create godoc
//
//	@Summary		Post a new mission
//	@Description	Geocode the address and create a PENDING mission in one step
//	@Tags			Missions
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateMissionRequestDTO	true	"Mission to create"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MissionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		502	{object}	utils.Response	"Address could not be geocoded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions [post]
func (h *MissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientID := r.Context().Value(pkgauth.UserIDKey).(string)

	var req dto.CreateMissionRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.Address == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title, description and address are required")
		return
	}
	mission, err := h.missionService.CreateMission(r.Context(), clientID, missionservice.CreateMissionParams{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
		Urgent:      req.Urgent,
	})
	if err != nil {
		switch {
		case errors.Is(err, missionservice.ErrInvalidPrice):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, geo.ErrGeocoding):
			utils.RespondWithError(w, http.StatusBadGateway, "Failed to geocode address")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMissionDTO(*mission))
}

// GetNearby godoc
//
//	@Summary		List pending missions near the provider
//	@Description	Pending missions within maxDistance km of the caller's stored location, closest first
//	@Tags			Missions
//	@Produce		json
//	@Param			maxDistance	query	number	false	"Search radius in km"	default(10)
//	@Security		BearerAuth
//	@Success		200	{array}		dto.NearbyMissionDTO
//	@Failure		400	{object}	utils.Response	"Provider location not set"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/nearby [get]
func (h *MissionHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	providerID := r.Context().Value(pkgauth.UserIDKey).(string)

	maxDistance := float64(defaultMaxDistanceKm)
	if raw := r.URL.Query().Get("maxDistance"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid maxDistance")
			return
		}
		maxDistance = parsed
	}

	nearby, err := h.missionService.GetNearbyMissions(r.Context(), providerID, maxDistance)
	if err != nil {
		if errors.Is(err, missionservice.ErrLocationNotSet) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.NearbyMissionDTO, 0, len(nearby))
	for _, item := range nearby {
		response = append(response, dto.NearbyMissionDTO{
			MissionResponseDTO: dto.NewMissionDTO(item.Mission),
			Distance:           item.Distance,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMyMissions godoc
//
//	@Summary		List missions for the current user
//	@Description	Clients get missions they posted, providers get missions they accepted
//	@Tags			Missions
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.MissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Role has no missions"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/my-missions [get]
func (h *MissionHandler) GetMyMissions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(string)
	role, _ := r.Context().Value(pkgauth.RoleKey).(string)

	missions, err := h.missionService.GetMissionsForUser(r.Context(), userID, domain.Role(role))
	if err != nil {
		if errors.Is(err, missionservice.ErrInvalidRole) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MissionResponseDTO, 0, len(missions))
	for _, mission := range missions {
		response = append(response, dto.NewMissionDTO(mission))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a mission by id
//	@Tags			Missions
//	@Produce		json
//	@Param			id	path	string	true	"Mission ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/{id} [get]
func (h *MissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	mission, err := h.missionService.GetMission(r.Context(), missionID)
	if err != nil {
		if errors.Is(err, missionservice.ErrMissionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMissionDTO(*mission))
}

// Accept godoc
//
//	@Summary		Accept a pending mission
//	@Description	Atomically claim a PENDING mission for the calling provider
//	@Tags			Missions
//	@Produce		json
//	@Param			id	path	string	true	"Mission ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MissionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		409	{object}	utils.Response	"Mission is no longer available"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/{id}/accept [post]
func (h *MissionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	providerID := r.Context().Value(pkgauth.UserIDKey).(string)
	missionID := chi.URLParam(r, "id")

	mission, err := h.missionService.AcceptMission(r.Context(), providerID, missionID)
	if err != nil {
		switch {
		case errors.Is(err, missionservice.ErrMissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, missionservice.ErrMissionUnavailable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMissionDTO(*mission))
}

// UpdateStatus godoc
//
//	@Summary		Update mission status
//	@Description	Move a mission along ACCEPTED → IN_PROGRESS → COMPLETED, or cancel it
//	@Tags			Missions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string							true	"Mission ID"
//	@Param			request	body	dto.UpdateMissionStatusRequestDTO	true	"Target status"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MissionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid status transition"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		409	{object}	utils.Response	"Mission changed concurrently"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/{id}/status [put]
func (h *MissionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	var req dto.UpdateMissionStatusRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	mission, err := h.missionService.UpdateStatus(r.Context(), missionID, domain.MissionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, missionservice.ErrMissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, missionservice.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, missionservice.ErrMissionUnavailable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewMissionDTO(*mission))
}

// SendMessage godoc
//
//	@Summary		Send a message in a mission chat
//	@Tags			Missions
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string						true	"Mission ID"
//	@Param			request	body	dto.SendMessageRequestDTO	true	"Message"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MessageDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/{id}/messages [post]
func (h *MissionHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID := r.Context().Value(pkgauth.UserIDKey).(string)
	missionID := chi.URLParam(r, "id")

	var req dto.SendMessageRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ReceiverID == "" || req.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Receiver and content are required")
		return
	}
	message, err := h.missionService.SendMessage(r.Context(), missionID, senderID, req.ReceiverID, req.Content)
	if err != nil {
		if errors.Is(err, missionservice.ErrMissionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewMessageDTO(*message))
}

// GetMessages godoc
//
//	@Summary		Get the message history for a mission
//	@Description	Messages in chronological order; clients poll this endpoint
//	@Tags			Missions
//	@Produce		json
//	@Param			id	path	string	true	"Mission ID"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.MessageDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/missions/{id}/messages [get]
func (h *MissionHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	messages, err := h.missionService.GetMessages(r.Context(), missionID)
	if err != nil {
		if errors.Is(err, missionservice.ErrMissionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MessageDTO, 0, len(messages))
	for _, message := range messages {
		response = append(response, dto.NewMessageDTO(message))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
