package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/dto"
	"github.com/alexhernandez-git/freelanium/pkg/auth"
	"github.com/alexhernandez-git/freelanium/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	SubmitDelivery(ctx context.Context, orderID, actorID int, response, sourceFile string) error
	AcceptDelivery(ctx context.Context, orderID, deliveryID, actorID int) error
	RequestRevision(ctx context.Context, orderID, actorID int, reason string) error
	Cancel(ctx context.Context, orderID, actorID int, reason string) error
	GetActivities(ctx context.Context, orderID int) ([]domain.Activity, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func orderID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "orderID"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrAlreadyDelivered):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrGateway):
		utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SubmitDelivery lets the seller attach a delivery to an active order.
func (h *OrderHandler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.SubmitDeliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orderService.SubmitDelivery(r.Context(), id, userID, req.Response, req.SourceFile); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, "delivery submitted")
}

// AcceptDelivery finalizes the order on the buyer's approval of the named
// delivery.
func (h *OrderHandler) AcceptDelivery(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	deliveryID, err := strconv.Atoi(chi.URLParam(r, "deliveryID"))
	if err != nil || deliveryID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid delivery id")
		return
	}

	if err := h.orderService.AcceptDelivery(r.Context(), id, deliveryID, userID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "delivery accepted")
}

// RequestRevision reopens the pending delivery for changes.
func (h *OrderHandler) RequestRevision(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.RevisionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Reason == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Revision reason is required")
		return
	}

	if err := h.orderService.RequestRevision(r.Context(), id, userID, req.Reason); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "revision requested")
}

// Cancel moves the order to its terminal cancelled state.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req dto.CancelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.orderService.Cancel(r.Context(), id, userID, req.Reason); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "order cancelled")
}

// GetActivities returns the order's audit trail, oldest first.
func (h *OrderHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	activities, err := h.orderService.GetActivities(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.ActivityResponseDTO, len(activities))
	for i, activity := range activities {
		response[i] = dto.ActivityResponseDTO{
			ID:        activity.ID,
			Type:      activity.Type,
			CreatedAt: activity.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
