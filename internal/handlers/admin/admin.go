package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/dto"
	"github.com/ekarpova/taskhub/internal/service/adminservice"
	"github.com/ekarpova/taskhub/pkg/utils"
)

type Service interface {
	GetDashboard(ctx context.Context) (*domain.PlatformStats, error)
	ListUsers(ctx context.Context, page, limit int) ([]domain.User, adminservice.Pagination, error)
	ListMissions(ctx context.Context, page, limit int) ([]domain.Mission, adminservice.Pagination, error)
	ListPayments(ctx context.Context, page, limit int) ([]domain.Payment, adminservice.Pagination, error)
	BlockUser(ctx context.Context, userID string, isBlocked bool) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

func paginationDTO(p adminservice.Pagination) dto.PaginationDTO {
	return dto.PaginationDTO{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}

// GetDashboard godoc
//
//	@Summary		Platform-wide counters
//	@Description	User, mission and revenue totals for the admin dashboard
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/dashboard [get]
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetDashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DashboardResponseDTO{
		Users: dto.DashboardUsersDTO{
			Total:              stats.TotalUsers,
			Clients:            stats.Clients,
			Providers:          stats.Providers,
			AvailableProviders: stats.AvailableProviders,
		},
		Missions: dto.DashboardMissionsDTO{
			Total:     stats.TotalMissions,
			Pending:   stats.PendingMissions,
			Active:    stats.ActiveMissions,
			Completed: stats.CompletedMissions,
		},
		Revenue: dto.DashboardRevenueDTO{
			Total:    stats.TotalRevenue,
			Platform: stats.PlatformRevenue,
		},
	})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query	int	false	"Page number"	default(1)
//	@Param			limit	query	int	false	"Page size"		default(20)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UsersPageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	usersList, pagination, err := h.adminService.ListUsers(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.UsersPageResponseDTO{
		Users:      make([]dto.UserDTO, 0, len(usersList)),
		Pagination: paginationDTO(pagination),
	}
	for _, user := range usersList {
		response.Users = append(response.Users, dto.NewUserDTO(user))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListMissions godoc
//
//	@Summary		List missions
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query	int	false	"Page number"	default(1)
//	@Param			limit	query	int	false	"Page size"		default(20)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MissionsPageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/missions [get]
func (h *AdminHandler) ListMissions(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	missionsList, pagination, err := h.adminService.ListMissions(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.MissionsPageResponseDTO{
		Missions:   make([]dto.MissionResponseDTO, 0, len(missionsList)),
		Pagination: paginationDTO(pagination),
	}
	for _, mission := range missionsList {
		response.Missions = append(response.Missions, dto.NewMissionDTO(mission))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListPayments godoc
//
//	@Summary		List payments
//	@Tags			Admin
//	@Produce		json
//	@Param			page	query	int	false	"Page number"	default(1)
//	@Param			limit	query	int	false	"Page size"		default(20)
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentsPageResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/payments [get]
func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	paymentsList, pagination, err := h.adminService.ListPayments(r.Context(), page, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.PaymentsPageResponseDTO{
		Payments:   make([]dto.PaymentDTO, 0, len(paymentsList)),
		Pagination: paginationDTO(pagination),
	}
	for _, payment := range paymentsList {
		response.Payments = append(response.Payments, dto.NewPaymentDTO(payment))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BlockUser godoc
//
//	@Summary		Block or unblock a user
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string					true	"User ID"
//	@Param			request	body	dto.BlockUserRequestDTO	true	"Block flag"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.UserDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/block [put]
func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req dto.BlockUserRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.adminService.BlockUser(r.Context(), userID, req.IsBlocked)
	if err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// DeleteUser godoc
//
//	@Summary		Delete a user
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path	string	true	"User ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"User deleted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	err := h.adminService.DeleteUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, adminservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "User deleted"})
}
