package subscriptionrepo

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

func (r *Repository) FindBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.PlanSubscription, error) {
	query := `
        SELECT id, user_id, subscription_id, product_id, status,
               to_be_cancelled, cancelled, payment_issue, current_period_end,
               plan_unit_amount, plan_currency, plan_price_id, free_trial, active_month,
               created_at
        FROM plan_subscriptions
        WHERE subscription_id = $1
    `
	row := r.db.QueryRow(ctx, query, subscriptionID)

	var sub domain.PlanSubscription
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.SubscriptionID, &sub.ProductID, &sub.Status,
		&sub.ToBeCancelled, &sub.Cancelled, &sub.PaymentIssue, &sub.CurrentPeriodEnd,
		&sub.PlanUnitAmount.Amount, &sub.PlanUnitAmount.Currency, &sub.PlanPriceID,
		&sub.FreeTrial, &sub.ActiveMonth, &sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find plan subscription", zap.Error(err))
		return nil, err
	}
	return &sub, nil
}

func (r *Repository) Update(ctx context.Context, sub *domain.PlanSubscription) error {
	query := `
        UPDATE plan_subscriptions
        SET status = $1, to_be_cancelled = $2, cancelled = $3, payment_issue = $4,
            current_period_end = $5, plan_unit_amount = $6, plan_currency = $7,
            plan_price_id = $8, free_trial = $9, active_month = $10
        WHERE id = $11
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			sub.Status, sub.ToBeCancelled, sub.Cancelled, sub.PaymentIssue,
			sub.CurrentPeriodEnd, sub.PlanUnitAmount.Amount, sub.PlanUnitAmount.Currency,
			sub.PlanPriceID, sub.FreeTrial, sub.ActiveMonth, sub.ID,
		)
		if err != nil {
			zap.L().Error("failed to update plan subscription", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindPlan(ctx context.Context, productID, currency string) (*domain.Plan, error) {
	query := `
        SELECT id, product_id, currency, unit_amount, price_id, interval, created_at
        FROM plans
        WHERE product_id = $1 AND currency = $2
    `
	row := r.db.QueryRow(ctx, query, productID, currency)

	var plan domain.Plan
	err := row.Scan(
		&plan.ID, &plan.ProductID, &plan.Currency,
		&plan.UnitAmount.Amount, &plan.PriceID, &plan.Interval, &plan.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find plan", zap.Error(err))
		return nil, err
	}
	plan.UnitAmount.Currency = plan.Currency
	return &plan, nil
}

func (r *Repository) UpdatePlanPriceID(ctx context.Context, planID int, priceID string) error {
	query := `
        UPDATE plans
        SET price_id = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, priceID, planID)
	if err != nil {
		zap.L().Error("failed to update plan price id", zap.Error(err))
		return err
	}
	return nil
}
