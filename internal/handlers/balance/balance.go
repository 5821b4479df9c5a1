package balance

import (
	"context"
	"errors"
	"net/http"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/dto"
	"github.com/alexhernandez-git/freelanium/pkg/auth"
	"github.com/alexhernandez-git/freelanium/pkg/utils"
)

type Service interface {
	GetAccount(ctx context.Context, userID int) (*domain.User, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance returns the authenticated user's ledger buckets in major units.
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.ledgerService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Currency:               account.Currency,
		NetIncome:              account.NetIncome.Major(),
		PendingClearance:       account.PendingClearance.Major(),
		AvailableForWithdrawal: account.AvailableForWithdrawal.Major(),
		UsedForPurchases:       account.UsedForPurchases.Major(),
	})
}
