package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/pkg/gateway"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	orderRepo    *MockOrderRepo
	activityRepo *MockActivityRepo
	accountRepo  *MockAccountRepo
	paymentRepo  *MockPaymentRepo
	ledger       *MockLedger
	gateway      *MockGateway
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T, strict bool) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		orderRepo:    NewMockOrderRepo(ctrl),
		activityRepo: NewMockActivityRepo(ctrl),
		accountRepo:  NewMockAccountRepo(ctrl),
		paymentRepo:  NewMockPaymentRepo(ctrl),
		ledger:       NewMockLedger(ctrl),
		gateway:      NewMockGateway(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.orderRepo, m.activityRepo, m.accountRepo, m.paymentRepo, m.ledger, m.gateway, m.txManager, strict)
	defer ctrl.Finish()
	return service, m
}

func activeOrder(orderType string) *domain.Order {
	return &domain.Order{
		ID:         1,
		BuyerID:    10,
		SellerID:   20,
		Type:       orderType,
		Status:     domain.OrderActive,
		UnitAmount: money.New(10000, "USD"),
	}
}

func TestSubmitDelivery(t *testing.T) {
	tests := []struct {
		name        string
		actorID     int
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name:    "records a pending delivery",
			actorID: 20,
			prepareMock: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
				m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).Return(nil, nil)
				m.activityRepo.EXPECT().CreateDelivery(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, delivery *domain.Delivery) error {
						delivery.ID = 5
						return nil
					})
				m.activityRepo.EXPECT().CreateActivity(gomock.Any(), domain.DeliveryActivityType, 1).
					Return(&domain.Activity{ID: 7}, nil)
				m.activityRepo.EXPECT().CreateDeliveryActivity(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, da *domain.DeliveryActivity) error {
						assert.Equal(t, 7, da.ActivityID)
						assert.Equal(t, 5, da.DeliveryID)
						assert.Equal(t, domain.ActivityPending, da.Status)
						assert.True(t, da.Active)
						return nil
					})
			},
		},
		{
			name:    "rejects non-seller",
			actorID: 10,
			prepareMock: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
			},
			expectedErr: domain.ErrValidation,
		},
		{
			name:    "rejects recurrent orders",
			actorID: 20,
			prepareMock: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.RecurrentOrder), nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:    "rejects a second pending delivery",
			actorID: 20,
			prepareMock: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
				m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
					Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5, Status: domain.ActivityPending, Active: true}, nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:    "rejects non-active order",
			actorID: 20,
			prepareMock: func(m *mocks) {
				order := activeOrder(domain.OnePaymentOrder)
				order.Status = domain.OrderCancelled
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
			},
			expectedErr: domain.ErrInvalidState,
		},
		{
			name:    "unknown order",
			actorID: 20,
			prepareMock: func(m *mocks) {
				m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, false)
			tt.prepareMock(m)

			err := service.SubmitDelivery(context.Background(), 1, tt.actorID, "done", "file.zip")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Holding order with an explicit seller cut: accepting the delivery credits
// due_to_seller immediately and marks the order delivered.
func TestAcceptDelivery_HoldingOrder(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.HoldingPaymentOrder)
	order.DueToSeller = money.New(10000, "USD")

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5, Status: domain.ActivityPending, Active: true}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 20, money.New(10000, "USD"), domain.EarningOrderRevenue, 0).Return(nil)
	m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityAccepted, true).Return(nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.NoError(t, err)
}

func TestAcceptDelivery_OnePaymentUsesUnitAmount(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.OnePaymentOrder)

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 20, money.New(10000, "USD"), domain.EarningOrderRevenue, 0).Return(nil)
	m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityAccepted, true).Return(nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.NoError(t, err)
}

func TestAcceptDelivery_TwoPaymentsChargesSecondPayment(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.TwoPaymentsOrder)
	order.ProductID = "prod_1"
	order.PaymentAtDelivery = money.New(4000, "USD")

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil)
	m.accountRepo.EXPECT().GetUserByID(gomock.Any(), 10).
		Return(&domain.User{ID: 10, CustomerID: "cus_10", Currency: "USD"}, nil)
	m.gateway.EXPECT().CreatePrice(gomock.Any(), money.New(4000, "USD"), "prod_1", false).Return("price_2", nil)
	m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, updated *domain.Order) error {
			assert.Equal(t, "price_2", updated.PaymentAtDeliveryPriceID)
			return nil
		})
	m.gateway.EXPECT().PayInvoice(gomock.Any(), "cus_10", "price_2").Return(&gateway.Invoice{
		ID:         "in_1",
		ChargeID:   "ch_1",
		AmountPaid: 4000,
		Currency:   "USD",
		Status:     "paid",
	}, nil)
	m.paymentRepo.EXPECT().CreateOrderPayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, payment *domain.OrderPayment) error {
			assert.Equal(t, "in_1", payment.InvoiceID)
			assert.Equal(t, int64(4000), payment.AmountPaid.Amount)
			return nil
		})
	m.ledger.EXPECT().Credit(gomock.Any(), 20, money.New(10000, "USD"), domain.EarningOrderRevenue, 0).Return(nil)
	m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityAccepted, true).Return(nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.NoError(t, err)
}

func TestAcceptDelivery_TwoPaymentsReusesPriceID(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.TwoPaymentsOrder)
	order.PaymentAtDelivery = money.New(4000, "USD")
	order.PaymentAtDeliveryPriceID = "price_existing"

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil)
	m.accountRepo.EXPECT().GetUserByID(gomock.Any(), 10).
		Return(&domain.User{ID: 10, CustomerID: "cus_10", Currency: "USD"}, nil)
	m.gateway.EXPECT().PayInvoice(gomock.Any(), "cus_10", "price_existing").Return(&gateway.Invoice{
		ID: "in_2", AmountPaid: 4000, Currency: "USD", Status: "paid",
	}, nil)
	m.paymentRepo.EXPECT().CreateOrderPayment(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 20, money.New(10000, "USD"), domain.EarningOrderRevenue, 0).Return(nil)
	m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityAccepted, true).Return(nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.NoError(t, err)
}

func TestAcceptDelivery_TwoPaymentsGatewayFailure(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.TwoPaymentsOrder)
	order.PaymentAtDelivery = money.New(4000, "USD")
	order.PaymentAtDeliveryPriceID = "price_existing"

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil)
	m.accountRepo.EXPECT().GetUserByID(gomock.Any(), 10).
		Return(&domain.User{ID: 10, CustomerID: "cus_10", Currency: "USD"}, nil)
	m.gateway.EXPECT().PayInvoice(gomock.Any(), "cus_10", "price_existing").
		Return(nil, domain.ErrGateway)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.ErrorIs(t, err, domain.ErrGateway)
}

func TestAcceptDelivery_AlreadyDelivered(t *testing.T) {
	t.Run("idempotent by default", func(t *testing.T) {
		service, m := NewMock(t, false)
		order := activeOrder(domain.OnePaymentOrder)
		order.Status = domain.OrderDelivered
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)

		err := service.AcceptDelivery(context.Background(), 1, 5, 10)
		assert.NoError(t, err)
	})

	t.Run("strict mode surfaces the error", func(t *testing.T) {
		service, m := NewMock(t, true)
		order := activeOrder(domain.OnePaymentOrder)
		order.Status = domain.OrderDelivered
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)

		err := service.AcceptDelivery(context.Background(), 1, 5, 10)
		assert.ErrorIs(t, err, domain.ErrAlreadyDelivered)
	})
}

// Losing the status race to a concurrent cancellation is not a silent success.
func TestAcceptDelivery_LosesRaceToCancel(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.OnePaymentOrder)
	cancelled := activeOrder(domain.OnePaymentOrder)
	cancelled.Status = domain.OrderCancelled

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(false, nil)
	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(cancelled, nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAcceptDelivery_NoPendingDelivery(t *testing.T) {
	service, m := NewMock(t, false)

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).Return(nil, nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// The delivery named in the request must be the one actually pending; a stale
// reference does not accept whatever replaced it.
func TestAcceptDelivery_WrongDelivery(t *testing.T) {
	service, m := NewMock(t, false)

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)

	err := service.AcceptDelivery(context.Background(), 1, 6, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// A charge failure rolls the accept back but the minted price id survives, so
// the retry pays against the same provider price instead of creating another.
func TestAcceptDelivery_RetryAfterChargeFailureReusesPrice(t *testing.T) {
	service, m := NewMock(t, false)

	order := activeOrder(domain.TwoPaymentsOrder)
	order.ProductID = "prod_1"
	order.PaymentAtDelivery = money.New(4000, "USD")

	m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil).Times(2)
	m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
		Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil).Times(2)
	m.gateway.EXPECT().CreatePrice(gomock.Any(), money.New(4000, "USD"), "prod_1", false).Return("price_2", nil).Times(1)
	m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, updated *domain.Order) error {
			assert.Equal(t, "price_2", updated.PaymentAtDeliveryPriceID)
			return nil
		}).Times(1)
	m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderDelivered).Return(true, nil).Times(2)
	m.accountRepo.EXPECT().GetUserByID(gomock.Any(), 10).
		Return(&domain.User{ID: 10, CustomerID: "cus_10", Currency: "USD"}, nil).Times(2)
	gomock.InOrder(
		m.gateway.EXPECT().PayInvoice(gomock.Any(), "cus_10", "price_2").Return(nil, domain.ErrGateway),
		m.gateway.EXPECT().PayInvoice(gomock.Any(), "cus_10", "price_2").Return(&gateway.Invoice{
			ID: "in_1", AmountPaid: 4000, Currency: "USD", Status: "paid",
		}, nil),
	)
	m.paymentRepo.EXPECT().CreateOrderPayment(gomock.Any(), gomock.Any()).Return(nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 20, money.New(10000, "USD"), domain.EarningOrderRevenue, 0).Return(nil)
	m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityAccepted, true).Return(nil)

	err := service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.ErrorIs(t, err, domain.ErrGateway)

	err = service.AcceptDelivery(context.Background(), 1, 5, 10)
	assert.NoError(t, err)
}

func TestRequestRevision(t *testing.T) {
	t.Run("cancels the pending delivery and opens a revision", func(t *testing.T) {
		service, m := NewMock(t, false)

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
		m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).
			Return(&domain.DeliveryActivity{ID: 3, DeliveryID: 5}, nil)
		m.activityRepo.EXPECT().UpdateDeliveryActivityStatus(gomock.Any(), 3, domain.ActivityCancelled, true).Return(nil)
		m.activityRepo.EXPECT().CreateRevision(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, revision *domain.Revision) error {
				assert.Equal(t, "missing logo", revision.Reason)
				revision.ID = 9
				return nil
			})
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), domain.RevisionActivityType, 1).
			Return(&domain.Activity{ID: 11}, nil)
		m.activityRepo.EXPECT().CreateRevisionActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, ra *domain.RevisionActivity) error {
				assert.Equal(t, 11, ra.ActivityID)
				assert.Equal(t, 9, ra.RevisionID)
				assert.Equal(t, domain.ActivityPending, ra.Status)
				return nil
			})

		err := service.RequestRevision(context.Background(), 1, 10, "missing logo")
		assert.NoError(t, err)
	})

	t.Run("requires a pending delivery", func(t *testing.T) {
		service, m := NewMock(t, false)

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
		m.activityRepo.EXPECT().FindPendingDelivery(gomock.Any(), 1).Return(nil, nil)

		err := service.RequestRevision(context.Background(), 1, 10, "reason")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("rejects non-buyer", func(t *testing.T) {
		service, m := NewMock(t, false)

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)

		err := service.RequestRevision(context.Background(), 1, 20, "reason")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels an active order", func(t *testing.T) {
		service, m := NewMock(t, false)

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
		m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderCancelled).Return(true, nil)
		m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, order *domain.Order) error {
				assert.True(t, order.Cancelled)
				return nil
			})
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), domain.CancelActivityType, 1).
			Return(&domain.Activity{ID: 4}, nil)
		m.activityRepo.EXPECT().CreateCancelActivity(gomock.Any(), gomock.Any()).Return(nil)

		err := service.Cancel(context.Background(), 1, 10, "changed my mind")
		assert.NoError(t, err)
	})

	t.Run("recurrent order survives a gateway delete failure", func(t *testing.T) {
		service, m := NewMock(t, false)

		order := activeOrder(domain.RecurrentOrder)
		order.SubscriptionID = "sub_1"

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)
		m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderCancelled).Return(true, nil)
		m.orderRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), domain.CancelActivityType, 1).
			Return(&domain.Activity{ID: 4}, nil)
		m.activityRepo.EXPECT().CreateCancelActivity(gomock.Any(), gomock.Any()).Return(nil)
		m.gateway.EXPECT().DeleteSubscription(gomock.Any(), "sub_1").Return(errors.New("provider down"))

		err := service.Cancel(context.Background(), 1, 20, "seller unavailable")
		assert.NoError(t, err)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		service, m := NewMock(t, false)

		order := activeOrder(domain.OnePaymentOrder)
		order.Status = domain.OrderCancelled
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)

		err := service.Cancel(context.Background(), 1, 10, "again")
		assert.NoError(t, err)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		service, m := NewMock(t, false)

		order := activeOrder(domain.OnePaymentOrder)
		order.Status = domain.OrderDelivered
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(order, nil)

		err := service.Cancel(context.Background(), 1, 10, "too late")
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("losing the race to another cancel succeeds quietly", func(t *testing.T) {
		service, m := NewMock(t, false)

		cancelled := activeOrder(domain.OnePaymentOrder)
		cancelled.Status = domain.OrderCancelled

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)
		m.orderRepo.EXPECT().UpdateStatusIf(gomock.Any(), 1, domain.OrderActive, domain.OrderCancelled).Return(false, nil)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(cancelled, nil)

		err := service.Cancel(context.Background(), 1, 10, "race")
		assert.NoError(t, err)
	})

	t.Run("rejects a stranger", func(t *testing.T) {
		service, m := NewMock(t, false)

		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(activeOrder(domain.OnePaymentOrder), nil)

		err := service.Cancel(context.Background(), 1, 99, "nope")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
