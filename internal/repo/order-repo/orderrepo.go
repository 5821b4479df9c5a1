package orderrepo

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

const orderColumns = `
        id, offer_id, buyer_id, seller_id, title, type, status,
        unit_amount, used_credits, first_payment, payment_at_delivery,
        service_fee, due_to_seller, currency, price_id, product_id,
        payment_at_delivery_price_id, subscription_id, interval_subscription,
        to_be_cancelled, cancelled, payment_issue, current_period_end,
        rate_date, created_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var currency string
	err := row.Scan(
		&order.ID, &order.OfferID, &order.BuyerID, &order.SellerID,
		&order.Title, &order.Type, &order.Status,
		&order.UnitAmount.Amount, &order.UsedCredits.Amount,
		&order.FirstPayment.Amount, &order.PaymentAtDelivery.Amount,
		&order.ServiceFee.Amount, &order.DueToSeller.Amount,
		&currency, &order.PriceID, &order.ProductID,
		&order.PaymentAtDeliveryPriceID, &order.SubscriptionID,
		&order.IntervalSubscription, &order.ToBeCancelled, &order.Cancelled,
		&order.PaymentIssue, &order.CurrentPeriodEnd, &order.RateDate,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.UnitAmount.Currency = currency
	order.UsedCredits.Currency = currency
	order.FirstPayment.Currency = currency
	order.PaymentAtDelivery.Currency = currency
	order.ServiceFee.Currency = currency
	order.DueToSeller.Currency = currency
	return &order, nil
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `
        SELECT` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.Order, error) {
	query := `
        SELECT` + orderColumns + `
        FROM orders
        WHERE subscription_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		zap.L().Error("can't get orders by subscription", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// Update persists the mutable billing fields of an order. Status changes go
// through UpdateStatusIf so concurrent transitions cannot clobber each other.
func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET used_credits = $1, price_id = $2, payment_at_delivery_price_id = $3,
            to_be_cancelled = $4, cancelled = $5, payment_issue = $6,
            current_period_end = $7, rate_date = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			order.UsedCredits.Amount, order.PriceID, order.PaymentAtDeliveryPriceID,
			order.ToBeCancelled, order.Cancelled, order.PaymentIssue,
			order.CurrentPeriodEnd, order.RateDate, order.ID,
		)
		if err != nil {
			zap.L().Error("failed to update order", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateStatusIf moves the order from one status to another and reports
// whether this call won the transition. A false result means another writer
// got there first and the caller's transition is a no-op.
func (r *Repository) UpdateStatusIf(ctx context.Context, orderID int, from, to string) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	var won bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, to, orderID, from)
		if err != nil {
			zap.L().Error("failed to update order status", zap.Error(err))
			return err
		}
		won = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return won, nil
}

func (r *Repository) FindOfferByID(ctx context.Context, offerID int) (*domain.Offer, error) {
	query := `
        SELECT id, buyer_id, seller_id, title, type, unit_amount, service_fee, currency, created_at
        FROM offers
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, offerID)

	var offer domain.Offer
	var currency string
	err := row.Scan(
		&offer.ID, &offer.BuyerID, &offer.SellerID, &offer.Title, &offer.Type,
		&offer.UnitAmount.Amount, &offer.ServiceFee.Amount, &currency, &offer.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find offer", zap.Error(err))
		return nil, err
	}
	offer.UnitAmount.Currency = currency
	offer.ServiceFee.Currency = currency
	return &offer, nil
}
