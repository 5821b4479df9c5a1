package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/reconciler"
	"github.com/alexhernandez-git/freelanium/pkg/utils"
)

type Service interface {
	Handle(ctx context.Context, event reconciler.Event) error
}

type WebhookHandler struct {
	reconciler Service
}

func New(r Service) *WebhookHandler {
	return &WebhookHandler{
		reconciler: r,
	}
}

// Receive ingests one provider event. The signature was verified upstream.
// 200 covers applied and idempotently-skipped outcomes so the provider stops
// redelivering; 400 means the payload is broken and retrying is pointless;
// 502 asks the provider to retry after a gateway failure.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	event, err := reconciler.ParseEvent(body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reconciler.Handle(r.Context(), event); err != nil {
		switch {
		case errors.Is(err, domain.ErrBadEvent), errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrGateway):
			utils.RespondWithError(w, http.StatusBadGateway, "Provider call failed, please retry")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, "event processed")
}
