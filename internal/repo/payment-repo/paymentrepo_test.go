package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func TestRepository_CreateOrderPayment(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	payment := &domain.OrderPayment{
		OrderID:    1,
		InvoiceID:  "in_1",
		ChargeID:   "ch_1",
		AmountPaid: money.Money{Amount: 10500, Currency: "USD"},
		Status:     "paid",
		InvoicePDF: "https://pay.example.com/in_1.pdf",
		CreatedAt:  timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Payment saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(42)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO order_payments")).
					WithArgs(1, "in_1", "ch_1", int64(10500), "USD", "paid", "https://pay.example.com/in_1.pdf", timeNow).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO order_payments")).
					WithArgs(1, "in_1", "ch_1", int64(10500), "USD", "paid", "https://pay.example.com/in_1.pdf", timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreateOrderPayment(context.Background(), payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 42, payment.ID)
			}
		})
	}
}

func TestRepository_FindOrderPaymentByInvoiceID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	cols := []string{"id", "order_id", "invoice_id", "charge_id", "amount_paid", "currency", "status", "invoice_pdf", "created_at"}

	tests := []struct {
		name      string
		invoiceID string
		mockSetup func()
		expectErr bool
		result    *domain.OrderPayment
	}{
		{
			name:      "Payment exists",
			invoiceID: "in_1",
			mockSetup: func() {
				rows := pgxmock.NewRows(cols).
					AddRow(42, 1, "in_1", "ch_1", int64(10500), "USD", "paid", "https://pay.example.com/in_1.pdf", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_payments")).
					WithArgs("in_1").
					WillReturnRows(rows)
			},
			result: &domain.OrderPayment{
				ID:         42,
				OrderID:    1,
				InvoiceID:  "in_1",
				ChargeID:   "ch_1",
				AmountPaid: money.Money{Amount: 10500, Currency: "USD"},
				Status:     "paid",
				InvoicePDF: "https://pay.example.com/in_1.pdf",
				CreatedAt:  timeNow,
			},
		},
		{
			name:      "No payment for invoice",
			invoiceID: "in_new",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_payments")).
					WithArgs("in_new").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:      "Database error",
			invoiceID: "in_1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM order_payments")).
					WithArgs("in_1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOrderPaymentByInvoiceID(context.Background(), tt.invoiceID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreatePlanPayment(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	payment := &domain.PlanPayment{
		UserID:         10,
		SubscriptionID: "sub_plan",
		InvoiceID:      "in_plan",
		ChargeID:       "ch_plan",
		AmountPaid:     money.Money{Amount: 2999, Currency: "USD"},
		Paid:           true,
		Status:         "paid",
		CreatedAt:      timeNow,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Payment saved",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(7)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO plan_payments")).
					WithArgs(10, "sub_plan", "in_plan", "ch_plan", int64(2999), "USD", true, "paid", "", timeNow).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO plan_payments")).
					WithArgs(10, "sub_plan", "in_plan", "ch_plan", int64(2999), "USD", true, "paid", "", timeNow).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.CreatePlanPayment(context.Background(), payment)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, payment.ID)
			}
		})
	}
}

func TestRepository_FindPlanPaymentByInvoiceID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	cols := []string{"id", "user_id", "subscription_id", "invoice_id", "charge_id", "amount_paid", "currency", "paid", "status", "invoice_pdf", "created_at"}

	tests := []struct {
		name      string
		invoiceID string
		mockSetup func()
		result    *domain.PlanPayment
	}{
		{
			name:      "Payment exists",
			invoiceID: "in_plan",
			mockSetup: func() {
				rows := pgxmock.NewRows(cols).
					AddRow(7, 10, "sub_plan", "in_plan", "ch_plan", int64(2999), "USD", true, "paid", "", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM plan_payments")).
					WithArgs("in_plan").
					WillReturnRows(rows)
			},
			result: &domain.PlanPayment{
				ID:             7,
				UserID:         10,
				SubscriptionID: "sub_plan",
				InvoiceID:      "in_plan",
				ChargeID:       "ch_plan",
				AmountPaid:     money.Money{Amount: 2999, Currency: "USD"},
				Paid:           true,
				Status:         "paid",
				CreatedAt:      timeNow,
			},
		},
		{
			name:      "No payment for invoice",
			invoiceID: "in_new",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM plan_payments")).
					WithArgs("in_new").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindPlanPaymentByInvoiceID(context.Background(), tt.invoiceID)
			assert.NoError(t, err)

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
