package orderservice

import (
	"context"
	"fmt"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/pkg/gateway"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatusIf(ctx context.Context, orderID int, from, to string) (bool, error)
}

type ActivityRepo interface {
	CreateActivity(ctx context.Context, activityType string, orderID int) (*domain.Activity, error)
	CreateDelivery(ctx context.Context, delivery *domain.Delivery) error
	CreateRevision(ctx context.Context, revision *domain.Revision) error
	CreateDeliveryActivity(ctx context.Context, da *domain.DeliveryActivity) error
	CreateRevisionActivity(ctx context.Context, ra *domain.RevisionActivity) error
	CreateCancelActivity(ctx context.Context, ca *domain.CancelActivity) error
	FindPendingDelivery(ctx context.Context, orderID int) (*domain.DeliveryActivity, error)
	UpdateDeliveryActivityStatus(ctx context.Context, activityID int, status string, closed bool) error
	FindActivitiesByOrder(ctx context.Context, orderID int) ([]domain.Activity, error)
}

type AccountRepo interface {
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type PaymentRepo interface {
	CreateOrderPayment(ctx context.Context, payment *domain.OrderPayment) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount money.Money, earningType string, maturityDays int) error
}

type Gateway interface {
	CreatePrice(ctx context.Context, amount money.Money, productID string, recurring bool) (string, error)
	PayInvoice(ctx context.Context, customerID, priceID string) (*gateway.Invoice, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// Service owns the order lifecycle. Active is the only state transitions start
// from; Delivered and Cancelled are terminal. Concurrent transitions race on
// the status column and the loser becomes a no-op.
type Service struct {
	orderRepo    OrderRepo
	activityRepo ActivityRepo
	accountRepo  AccountRepo
	paymentRepo  PaymentRepo
	ledger       Ledger
	gateway      Gateway
	txManager    pg.TXManager
	strict       bool
}

// New builds the service. With strict true, accepting an already delivered
// order returns ErrAlreadyDelivered instead of succeeding idempotently.
func New(
	orderRepo OrderRepo,
	activityRepo ActivityRepo,
	accountRepo AccountRepo,
	paymentRepo PaymentRepo,
	ledger Ledger,
	gw Gateway,
	txManager pg.TXManager,
	strict bool,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
		accountRepo:  accountRepo,
		paymentRepo:  paymentRepo,
		ledger:       ledger,
		gateway:      gw,
		txManager:    txManager,
		strict:       strict,
	}
}

// SubmitDelivery records the seller's delivery as a pending activity. The
// order status does not change until the buyer accepts.
func (s *Service) SubmitDelivery(ctx context.Context, orderID, actorID int, response, sourceFile string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if order.SellerID != actorID {
		return fmt.Errorf("only the seller can deliver order %d: %w", orderID, domain.ErrValidation)
	}
	if order.Status != domain.OrderActive {
		return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrInvalidState)
	}
	if order.Type == domain.RecurrentOrder {
		return fmt.Errorf("recurrent orders are not delivered: %w", domain.ErrInvalidState)
	}

	pending, err := s.activityRepo.FindPendingDelivery(ctx, orderID)
	if err != nil {
		return err
	}
	if pending != nil {
		return fmt.Errorf("order %d already has a pending delivery: %w", orderID, domain.ErrInvalidState)
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		delivery := &domain.Delivery{
			OrderID:    orderID,
			Response:   response,
			SourceFile: sourceFile,
			CreatedAt:  time.Now(),
		}
		if err := s.activityRepo.CreateDelivery(ctx, delivery); err != nil {
			return err
		}

		activity, err := s.activityRepo.CreateActivity(ctx, domain.DeliveryActivityType, orderID)
		if err != nil {
			return err
		}

		da := &domain.DeliveryActivity{
			ActivityID: activity.ID,
			DeliveryID: delivery.ID,
			Status:     domain.ActivityPending,
			Active:     true,
			CreatedAt:  time.Now(),
		}
		if err := s.activityRepo.CreateDeliveryActivity(ctx, da); err != nil {
			return err
		}

		zap.L().Info("delivery submitted", zap.Int("orderID", orderID), zap.Int("deliveryID", delivery.ID))
		return nil
	})
}

// AcceptDelivery finalizes the order. OnePayment and HoldingPayment orders
// credit the seller straight from the ledger; TwoPayments orders charge the
// second payment through the gateway first. The transition to Delivered is
// claimed with an optimistic status check so a racing cancel cannot interleave.
func (s *Service) AcceptDelivery(ctx context.Context, orderID, deliveryID, actorID int) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if order.BuyerID != actorID {
		return fmt.Errorf("only the buyer can accept order %d: %w", orderID, domain.ErrValidation)
	}
	if order.Type == domain.RecurrentOrder {
		return fmt.Errorf("recurrent orders are not delivered: %w", domain.ErrInvalidState)
	}
	if order.Status == domain.OrderDelivered {
		if s.strict {
			return fmt.Errorf("order %d: %w", orderID, domain.ErrAlreadyDelivered)
		}
		return nil
	}
	if order.Status != domain.OrderActive {
		return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrInvalidState)
	}

	pending, err := s.activityRepo.FindPendingDelivery(ctx, orderID)
	if err != nil {
		return err
	}
	if pending == nil {
		return fmt.Errorf("order %d has no pending delivery: %w", orderID, domain.ErrInvalidState)
	}
	if pending.DeliveryID != deliveryID {
		return fmt.Errorf("delivery %d is not pending on order %d: %w", deliveryID, orderID, domain.ErrNotFound)
	}

	if order.Type == domain.TwoPaymentsOrder {
		if err := s.ensureSecondPaymentPrice(ctx, order); err != nil {
			return err
		}
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		won, err := s.orderRepo.UpdateStatusIf(ctx, orderID, domain.OrderActive, domain.OrderDelivered)
		if err != nil {
			return err
		}
		if !won {
			// Another transition got there first; re-read to decide.
			current, err := s.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return err
			}
			if current != nil && current.Status == domain.OrderDelivered {
				if s.strict {
					return fmt.Errorf("order %d: %w", orderID, domain.ErrAlreadyDelivered)
				}
				return nil
			}
			return fmt.Errorf("order %d is no longer active: %w", orderID, domain.ErrInvalidState)
		}

		if order.Type == domain.TwoPaymentsOrder {
			if err := s.chargeSecondPayment(ctx, order); err != nil {
				return err
			}
		}

		if err := s.ledger.Credit(ctx, order.SellerID, sellerTake(order), domain.EarningOrderRevenue, 0); err != nil {
			return err
		}

		if err := s.activityRepo.UpdateDeliveryActivityStatus(ctx, pending.ID, domain.ActivityAccepted, true); err != nil {
			return err
		}

		zap.L().Info("delivery accepted",
			zap.Int("orderID", orderID),
			zap.String("type", order.Type),
			zap.String("sellerTake", sellerTake(order).String()),
		)
		return nil
	})
}

// sellerTake is the amount credited to the seller on delivery. Holding orders
// carry an explicit due_to_seller; everything else pays out the unit amount.
func sellerTake(order *domain.Order) money.Money {
	if !order.DueToSeller.IsZero() {
		return order.DueToSeller
	}
	return order.UnitAmount
}

// ensureSecondPaymentPrice mints and persists the payment-at-delivery price
// before the accept transaction opens. A failed charge rolls that transaction
// back but keeps the price id, so a retried accept reuses it instead of
// minting another provider-side price.
func (s *Service) ensureSecondPaymentPrice(ctx context.Context, order *domain.Order) error {
	if order.PaymentAtDeliveryPriceID != "" {
		return nil
	}
	priceID, err := s.gateway.CreatePrice(ctx, order.PaymentAtDelivery, order.ProductID, false)
	if err != nil {
		return err
	}
	order.PaymentAtDeliveryPriceID = priceID
	return s.orderRepo.Update(ctx, order)
}

// chargeSecondPayment drives the payment-at-delivery charge for TwoPayments
// orders against the price ensureSecondPaymentPrice persisted.
func (s *Service) chargeSecondPayment(ctx context.Context, order *domain.Order) error {
	buyer, err := s.accountRepo.GetUserByID(ctx, order.BuyerID)
	if err != nil {
		return err
	}
	if buyer == nil {
		return fmt.Errorf("buyer %d: %w", order.BuyerID, domain.ErrNotFound)
	}

	invoice, err := s.gateway.PayInvoice(ctx, buyer.CustomerID, order.PaymentAtDeliveryPriceID)
	if err != nil {
		return err
	}

	payment := &domain.OrderPayment{
		OrderID:    order.ID,
		InvoiceID:  invoice.ID,
		ChargeID:   invoice.ChargeID,
		AmountPaid: money.New(invoice.AmountPaid, invoice.Currency),
		Status:     invoice.Status,
		InvoicePDF: invoice.InvoicePDF,
		CreatedAt:  time.Now(),
	}
	return s.paymentRepo.CreateOrderPayment(ctx, payment)
}

// RequestRevision reopens a pending delivery: the buyer asks for changes, the
// delivery activity closes as cancelled and a revision activity opens. The
// order stays Active.
func (s *Service) RequestRevision(ctx context.Context, orderID, actorID int, reason string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if order.BuyerID != actorID {
		return fmt.Errorf("only the buyer can request a revision on order %d: %w", orderID, domain.ErrValidation)
	}
	if order.Status != domain.OrderActive {
		return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrInvalidState)
	}

	pending, err := s.activityRepo.FindPendingDelivery(ctx, orderID)
	if err != nil {
		return err
	}
	if pending == nil {
		return fmt.Errorf("order %d has no pending delivery to revise: %w", orderID, domain.ErrInvalidState)
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.activityRepo.UpdateDeliveryActivityStatus(ctx, pending.ID, domain.ActivityCancelled, true); err != nil {
			return err
		}

		revision := &domain.Revision{
			OrderID:   orderID,
			Reason:    reason,
			CreatedAt: time.Now(),
		}
		if err := s.activityRepo.CreateRevision(ctx, revision); err != nil {
			return err
		}

		activity, err := s.activityRepo.CreateActivity(ctx, domain.RevisionActivityType, orderID)
		if err != nil {
			return err
		}

		ra := &domain.RevisionActivity{
			ActivityID: activity.ID,
			RevisionID: revision.ID,
			Status:     domain.ActivityPending,
			Active:     true,
			CreatedAt:  time.Now(),
		}
		if err := s.activityRepo.CreateRevisionActivity(ctx, ra); err != nil {
			return err
		}

		zap.L().Info("revision requested", zap.Int("orderID", orderID))
		return nil
	})
}

// Cancel moves the order to Cancelled. Either party may cancel an active
// order. For recurrent orders the provider-side subscription delete is best
// effort: the local transition is authoritative and a gateway failure is only
// logged.
func (s *Service) Cancel(ctx context.Context, orderID, actorID int, reason string) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	if order.BuyerID != actorID && order.SellerID != actorID {
		return fmt.Errorf("actor %d is not a party to order %d: %w", actorID, orderID, domain.ErrValidation)
	}
	if order.Status == domain.OrderCancelled {
		return nil
	}
	if order.Status != domain.OrderActive {
		return fmt.Errorf("order %d is %s: %w", orderID, order.Status, domain.ErrInvalidState)
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		won, err := s.orderRepo.UpdateStatusIf(ctx, orderID, domain.OrderActive, domain.OrderCancelled)
		if err != nil {
			return err
		}
		if !won {
			current, err := s.orderRepo.FindByID(ctx, orderID)
			if err != nil {
				return err
			}
			if current != nil && current.Status == domain.OrderCancelled {
				return nil
			}
			return fmt.Errorf("order %d is no longer active: %w", orderID, domain.ErrInvalidState)
		}

		order.Cancelled = true
		order.ToBeCancelled = false
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return err
		}

		activity, err := s.activityRepo.CreateActivity(ctx, domain.CancelActivityType, orderID)
		if err != nil {
			return err
		}
		ca := &domain.CancelActivity{
			ActivityID: activity.ID,
			Reason:     reason,
			Status:     domain.ActivityAccepted,
			Closed:     true,
			CreatedAt:  time.Now(),
		}
		return s.activityRepo.CreateCancelActivity(ctx, ca)
	})
	if err != nil {
		return err
	}

	if order.Type == domain.RecurrentOrder && order.SubscriptionID != "" {
		if err := s.gateway.DeleteSubscription(ctx, order.SubscriptionID); err != nil {
			zap.L().Error("subscription delete failed, order cancelled locally",
				zap.Int("orderID", orderID),
				zap.String("subscriptionID", order.SubscriptionID),
				zap.Error(err),
			)
		}
	}

	zap.L().Info("order cancelled", zap.Int("orderID", orderID), zap.String("reason", reason))
	return nil
}

func (s *Service) GetActivities(ctx context.Context, orderID int) ([]domain.Activity, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return s.activityRepo.FindActivitiesByOrder(ctx, orderID)
}
