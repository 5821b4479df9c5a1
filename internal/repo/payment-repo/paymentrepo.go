package paymentrepo

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

func (r *Repository) CreateOrderPayment(ctx context.Context, payment *domain.OrderPayment) error {
	query := `
        INSERT INTO order_payments (order_id, invoice_id, charge_id, amount_paid, currency, status, invoice_pdf, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		payment.OrderID, payment.InvoiceID, payment.ChargeID,
		payment.AmountPaid.Amount, payment.AmountPaid.Currency,
		payment.Status, payment.InvoicePDF, payment.CreatedAt,
	)
	if err := row.Scan(&payment.ID); err != nil {
		zap.L().Error("can't save order payment", zap.Error(err))
		return err
	}
	return nil
}

// FindOrderPaymentByInvoiceID is the dedupe lookup for order invoice events.
func (r *Repository) FindOrderPaymentByInvoiceID(ctx context.Context, invoiceID string) (*domain.OrderPayment, error) {
	query := `
        SELECT id, order_id, invoice_id, charge_id, amount_paid, currency, status, invoice_pdf, created_at
        FROM order_payments
        WHERE invoice_id = $1
    `
	row := r.db.QueryRow(ctx, query, invoiceID)

	var payment domain.OrderPayment
	err := row.Scan(
		&payment.ID, &payment.OrderID, &payment.InvoiceID, &payment.ChargeID,
		&payment.AmountPaid.Amount, &payment.AmountPaid.Currency,
		&payment.Status, &payment.InvoicePDF, &payment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) CreatePlanPayment(ctx context.Context, payment *domain.PlanPayment) error {
	query := `
        INSERT INTO plan_payments (user_id, subscription_id, invoice_id, charge_id, amount_paid, currency, paid, status, invoice_pdf, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query,
		payment.UserID, payment.SubscriptionID, payment.InvoiceID, payment.ChargeID,
		payment.AmountPaid.Amount, payment.AmountPaid.Currency,
		payment.Paid, payment.Status, payment.InvoicePDF, payment.CreatedAt,
	)
	if err := row.Scan(&payment.ID); err != nil {
		zap.L().Error("can't save plan payment", zap.Error(err))
		return err
	}
	return nil
}

// FindPlanPaymentByInvoiceID is the dedupe lookup for plan invoice events.
func (r *Repository) FindPlanPaymentByInvoiceID(ctx context.Context, invoiceID string) (*domain.PlanPayment, error) {
	query := `
        SELECT id, user_id, subscription_id, invoice_id, charge_id, amount_paid, currency, paid, status, invoice_pdf, created_at
        FROM plan_payments
        WHERE invoice_id = $1
    `
	row := r.db.QueryRow(ctx, query, invoiceID)

	var payment domain.PlanPayment
	err := row.Scan(
		&payment.ID, &payment.UserID, &payment.SubscriptionID, &payment.InvoiceID, &payment.ChargeID,
		&payment.AmountPaid.Amount, &payment.AmountPaid.Currency,
		&payment.Paid, &payment.Status, &payment.InvoicePDF, &payment.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find plan payment", zap.Error(err))
		return nil, err
	}
	return &payment, nil
}
