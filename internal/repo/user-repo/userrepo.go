package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var currency string
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &currency, &user.CustomerID,
		&user.NetIncome.Amount, &user.PendingClearance.Amount,
		&user.AvailableForWithdrawal.Amount, &user.UsedForPurchases.Amount,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Currency = currency
	user.NetIncome.Currency = currency
	user.PendingClearance.Currency = currency
	user.AvailableForWithdrawal.Currency = currency
	user.UsedForPurchases.Currency = currency
	return &user, nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT id, username, email, currency, customer_id,
               net_income, pending_clearance, available_for_withdrawal, used_for_purchases,
               created_at
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdateBalances writes the four ledger buckets in one statement so a ledger
// operation is either fully applied or not applied at all.
func (r *Repository) UpdateBalances(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET net_income = $1, pending_clearance = $2,
            available_for_withdrawal = $3, used_for_purchases = $4
        WHERE id = $5
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			user.NetIncome.Amount, user.PendingClearance.Amount,
			user.AvailableForWithdrawal.Amount, user.UsedForPurchases.Amount,
			user.ID,
		)
		if err != nil {
			zap.L().Error("failed to update user balances", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
