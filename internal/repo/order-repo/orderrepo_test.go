package orderrepo

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

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

var orderCols = []string{
	"id", "offer_id", "buyer_id", "seller_id", "title", "type", "status",
	"unit_amount", "used_credits", "first_payment", "payment_at_delivery",
	"service_fee", "due_to_seller", "currency", "price_id", "product_id",
	"payment_at_delivery_price_id", "subscription_id", "interval_subscription",
	"to_be_cancelled", "cancelled", "payment_issue", "current_period_end",
	"rate_date", "created_at",
}

func orderRow(rows *pgxmock.Rows, id int, subscriptionID string, createdAt time.Time) *pgxmock.Rows {
	return rows.AddRow(
		id, 7, 10, 20, "Logo design", domain.TwoPaymentsOrder, domain.OrderActive,
		int64(10000), int64(0), int64(6000), int64(4000),
		int64(500), int64(0), "USD", "price_1", "prod_1",
		"", subscriptionID, "",
		false, false, false, int64(0),
		"2026-08-01", createdAt,
	)
}

func expectOrder(id int, subscriptionID string, createdAt time.Time) *domain.Order {
	usd := func(amount int64) money.Money { return money.Money{Amount: amount, Currency: "USD"} }
	return &domain.Order{
		ID:                id,
		OfferID:           7,
		BuyerID:           10,
		SellerID:          20,
		Title:             "Logo design",
		Type:              domain.TwoPaymentsOrder,
		Status:            domain.OrderActive,
		UnitAmount:        usd(10000),
		UsedCredits:       usd(0),
		FirstPayment:      usd(6000),
		PaymentAtDelivery: usd(4000),
		ServiceFee:        usd(500),
		DueToSeller:       usd(0),
		PriceID:           "price_1",
		ProductID:         "prod_1",
		SubscriptionID:    subscriptionID,
		RateDate:          "2026-08-01",
		CreatedAt:         createdAt,
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		orderID   int
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name:    "Order exists",
			orderID: 1,
			mockSetup: func() {
				rows := orderRow(pgxmock.NewRows(orderCols), 1, "", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result:    expectOrder(1, "", timeNow),
		},
		{
			name:    "Order does not exist",
			orderID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:    "Database error",
			orderID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM orders")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.orderID)
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

func TestRepository_FindBySubscriptionID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		subID     string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name:  "Orders found",
			subID: "sub_1",
			mockSetup: func() {
				rows := orderRow(pgxmock.NewRows(orderCols), 1, "sub_1", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subscription_id = $1")).
					WithArgs("sub_1").
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name:  "No orders",
			subID: "sub_none",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderCols)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subscription_id = $1")).
					WithArgs("sub_none").
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     0,
		},
		{
			name:  "Database error",
			subID: "sub_1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE subscription_id = $1")).
					WithArgs("sub_1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindBySubscriptionID(context.Background(), tt.subID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		order     *domain.Order
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update order successfully",
			order: &domain.Order{
				ID:           1,
				UsedCredits:  money.Money{Amount: 2000, Currency: "USD"},
				PriceID:      "price_2",
				PaymentIssue: true,
				RateDate:     "2026-08-01",
			},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
						WithArgs(int64(2000), "price_2", "", false, false, true, int64(0), "2026-08-01", 1).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			expectErr: false,
		},
		{
			name:  "Database error",
			order: &domain.Order{ID: 1},
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
						WithArgs(int64(0), "", "", false, false, false, int64(0), "", 1).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), tt.order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UpdateStatusIf(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		won       bool
	}{
		{
			name: "Transition won",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
						WithArgs(domain.OrderDelivered, 1, domain.OrderActive).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
			won: true,
		},
		{
			name: "Another writer got there first",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
						WithArgs(domain.OrderDelivered, 1, domain.OrderActive).
						WillReturnResult(pgxmock.NewResult("UPDATE", 0))
					return fn(ctx)
				})
			},
			won: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1")).
						WithArgs(domain.OrderDelivered, 1, domain.OrderActive).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			won, err := repo.UpdateStatusIf(context.Background(), 1, domain.OrderActive, domain.OrderDelivered)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.won, won)
			}
		})
	}
}

func TestRepository_FindOfferByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		offerID   int
		mockSetup func()
		expectErr bool
		result    *domain.Offer
	}{
		{
			name:    "Offer exists",
			offerID: 7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "buyer_id", "seller_id", "title", "type", "unit_amount", "service_fee", "currency", "created_at"}).
					AddRow(7, 10, 20, "Logo design", domain.OnePaymentOrder, int64(10000), int64(500), "USD", timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: &domain.Offer{
				ID:         7,
				BuyerID:    10,
				SellerID:   20,
				Title:      "Logo design",
				Type:       domain.OnePaymentOrder,
				UnitAmount: money.Money{Amount: 10000, Currency: "USD"},
				ServiceFee: money.Money{Amount: 500, Currency: "USD"},
				CreatedAt:  timeNow,
			},
		},
		{
			name:    "Offer does not exist",
			offerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindOfferByID(context.Background(), tt.offerID)
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
