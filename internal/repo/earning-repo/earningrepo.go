package earningrepo

import (
	"context"
	"time"

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

func (r *Repository) Create(ctx context.Context, earning *domain.Earning) error {
	query := `
        INSERT INTO earnings (user_id, type, amount, currency, available_for_withdrawn_date, matured, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			earning.UserID, earning.Type, earning.Amount.Amount, earning.Amount.Currency,
			earning.AvailableForWithdrawnDate, earning.Matured, earning.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't save earning", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// FindUserIDsWithDue returns users holding unmatured earnings whose maturity
// date has passed. The clearing sweep processes each user independently.
func (r *Repository) FindUserIDsWithDue(ctx context.Context, now time.Time, limit uint32) ([]int, error) {
	query := `
        SELECT DISTINCT user_id
        FROM earnings
        WHERE matured = FALSE AND available_for_withdrawn_date IS NOT NULL
          AND available_for_withdrawn_date <= $1
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get users with due earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var userIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, nil
}

func (r *Repository) FindDueByUser(ctx context.Context, userID int, now time.Time) ([]domain.Earning, error) {
	query := `
        SELECT id, user_id, type, amount, currency, available_for_withdrawn_date, matured, created_at
        FROM earnings
        WHERE user_id = $1 AND matured = FALSE AND available_for_withdrawn_date IS NOT NULL
          AND available_for_withdrawn_date <= $2
        ORDER BY available_for_withdrawn_date ASC
    `
	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		zap.L().Error("can't get due earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.Earning
	for rows.Next() {
		var earning domain.Earning
		err := rows.Scan(
			&earning.ID, &earning.UserID, &earning.Type,
			&earning.Amount.Amount, &earning.Amount.Currency,
			&earning.AvailableForWithdrawnDate, &earning.Matured, &earning.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, earning)
	}
	return earnings, nil
}

func (r *Repository) MarkMatured(ctx context.Context, earningID int) error {
	query := `
        UPDATE earnings
        SET matured = TRUE
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, earningID)
	if err != nil {
		zap.L().Error("can't mark earning matured", zap.Error(err))
		return err
	}
	return nil
}
