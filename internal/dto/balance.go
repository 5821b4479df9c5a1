package dto

type BalanceResponseDTO struct {
	Currency               string  `json:"currency" example:"USD"`
	NetIncome              float64 `json:"net_income" example:"1250.5"`
	PendingClearance       float64 `json:"pending_clearance" example:"100"`
	AvailableForWithdrawal float64 `json:"available_for_withdrawal" example:"1150.5"`
	UsedForPurchases       float64 `json:"used_for_purchases" example:"80"`
}
