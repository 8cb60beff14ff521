package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekarpova/taskhub/internal/domain"
	"github.com/ekarpova/taskhub/internal/dto"
	"github.com/ekarpova/taskhub/internal/processor"
	"github.com/ekarpova/taskhub/internal/service/paymentservice"
	pkgauth "github.com/ekarpova/taskhub/pkg/auth"
	"github.com/ekarpova/taskhub/pkg/utils"
)

type Service interface {
	CreateIntent(ctx context.Context, missionID string) (*domain.Payment, string, error)
	Confirm(ctx context.Context, intentRef string) (*domain.Payment, error)
	GetPaymentByMission(ctx context.Context, missionID string) (*domain.Payment, error)
	GetProviderEarnings(ctx context.Context, providerID string) ([]domain.Payment, float64, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreateIntent godoc
//
//	@Summary		Create a payment intent for a completed mission
//	@Description	Registers the payment with the processor and stores the commission split
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateIntentRequestDTO	true	"Mission to pay for"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateIntentResponseDTO
//	@Failure		400	{object}	utils.Response	"Mission is not completed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Mission not found"
//	@Failure		409	{object}	utils.Response	"Payment already exists"
//	@Failure		502	{object}	utils.Response	"Payment processor error"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIntentRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.MissionID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.MissionID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrMissionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, paymentservice.ErrMissionNotCompleted):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, paymentservice.ErrPaymentExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, processor.ErrProcessor):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment processor error")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateIntentResponseDTO{
		Payment:      dto.NewPaymentDTO(*payment),
		ClientSecret: clientSecret,
	})
}

// Confirm godoc
//
//	@Summary		Confirm a payment after checkout
//	@Description	Re-queries the processor and settles the stored payment accordingly
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.ConfirmPaymentRequestDTO	true	"Processor intent id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		502	{object}	utils.Response	"Payment processor error"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/confirm [post]
func (h *PaymentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmPaymentRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.PaymentIntentID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.Confirm(r.Context(), req.PaymentIntentID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrPaymentNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, processor.ErrProcessor):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment processor error")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentDTO(*payment))
}

// GetByMission godoc
//
//	@Summary		Get the payment for a mission
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path	string	true	"Mission ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.PaymentDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/mission/{id} [get]
func (h *PaymentHandler) GetByMission(w http.ResponseWriter, r *http.Request) {
	missionID := chi.URLParam(r, "id")

	payment, err := h.paymentService.GetPaymentByMission(r.Context(), missionID)
	if err != nil {
		if errors.Is(err, paymentservice.ErrPaymentNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPaymentDTO(*payment))
}

// GetEarnings godoc
//
//	@Summary		Get settled earnings for the current provider
//	@Description	Succeeded payments for missions fulfilled by the caller, plus their provider-share total
//	@Tags			Payments
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EarningsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/payments/earnings [get]
func (h *PaymentHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	providerID := r.Context().Value(pkgauth.UserIDKey).(string)

	paymentsList, total, err := h.paymentService.GetProviderEarnings(r.Context(), providerID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.EarningsResponseDTO{
		Payments:      make([]dto.PaymentDTO, 0, len(paymentsList)),
		TotalEarnings: total,
	}
	for _, payment := range paymentsList {
		response.Payments = append(response.Payments, dto.NewPaymentDTO(payment))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
