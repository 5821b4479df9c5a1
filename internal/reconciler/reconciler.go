package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindBySubscriptionID(ctx context.Context, subscriptionID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	UpdateStatusIf(ctx context.Context, orderID int, from, to string) (bool, error)
}

type SubscriptionRepo interface {
	FindBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.PlanSubscription, error)
	Update(ctx context.Context, sub *domain.PlanSubscription) error
}

type PaymentRepo interface {
	CreateOrderPayment(ctx context.Context, payment *domain.OrderPayment) error
	CreatePlanPayment(ctx context.Context, payment *domain.PlanPayment) error
	FindOrderPaymentByInvoiceID(ctx context.Context, invoiceID string) (*domain.OrderPayment, error)
	FindPlanPaymentByInvoiceID(ctx context.Context, invoiceID string) (*domain.PlanPayment, error)
}

type ActivityRepo interface {
	CreateActivity(ctx context.Context, activityType string, orderID int) (*domain.Activity, error)
	CreateCancelActivity(ctx context.Context, ca *domain.CancelActivity) error
}

type Ledger interface {
	Credit(ctx context.Context, userID int, amount money.Money, earningType string, maturityDays int) error
	SettleWithCredits(ctx context.Context, userID int, usedCredits money.Money) error
}

type Pricing interface {
	RepriceOrderRenewal(ctx context.Context, order *domain.Order) error
	EnsurePlanPrice(ctx context.Context, sub *domain.PlanSubscription) error
	AdvanceTrialCycle(ctx context.Context, sub *domain.PlanSubscription) error
}

type Gateway interface {
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

// Service applies provider events to local state. The provider delivers at
// least once with no ordering guarantee, so every handler is idempotent by
// invoice-id lookup and all handlers for one subscription serialize on a
// keyed mutex. Events for distinct subscriptions proceed in parallel.
type Service struct {
	orderRepo        OrderRepo
	subscriptionRepo SubscriptionRepo
	paymentRepo      PaymentRepo
	activityRepo     ActivityRepo
	ledger           Ledger
	pricing          Pricing
	gateway          Gateway
	txManager        pg.TXManager
	clearanceDays    int
	locks            sync.Map
}

func New(
	orderRepo OrderRepo,
	subscriptionRepo SubscriptionRepo,
	paymentRepo PaymentRepo,
	activityRepo ActivityRepo,
	ledger Ledger,
	pricing Pricing,
	gw Gateway,
	txManager pg.TXManager,
	clearanceDays int,
) *Service {
	return &Service{
		orderRepo:        orderRepo,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		activityRepo:     activityRepo,
		ledger:           ledger,
		pricing:          pricing,
		gateway:          gw,
		txManager:        txManager,
		clearanceDays:    clearanceDays,
	}
}

// lock serializes handlers on one subscription. The dedupe lookup and the
// write it guards must not interleave with another handler for the same key.
func (s *Service) lock(key string) func() {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Handle applies one parsed event. A nil return covers both applied and
// idempotently-skipped outcomes; the webhook handler maps both to 200.
func (s *Service) Handle(ctx context.Context, event Event) error {
	switch ev := event.(type) {
	case InvoicePaymentSucceeded:
		return s.handleInvoicePaid(ctx, ev)
	case InvoicePaymentFailed:
		return s.handleInvoiceFailed(ctx, ev)
	case SubscriptionUpdated:
		return s.handleSubscriptionUpdated(ctx, ev)
	case SubscriptionDeleted:
		return s.handleSubscriptionDeleted(ctx, ev)
	case UnknownEvent:
		zap.L().Info("ignoring event of unknown type", zap.String("type", ev.Type))
		return nil
	default:
		return fmt.Errorf("unhandled event variant %T: %w", event, domain.ErrBadEvent)
	}
}

func (s *Service) handleInvoicePaid(ctx context.Context, ev InvoicePaymentSucceeded) error {
	if ev.SubscriptionID == "" {
		// One-off invoices (the payment-at-delivery charge pays one) carry no
		// subscription; their payment row is written at charge time.
		zap.L().Info("invoice without subscription acknowledged", zap.String("invoiceID", ev.InvoiceID))
		return nil
	}

	unlock := s.lock(ev.SubscriptionID)
	defer unlock()

	orders, err := s.orderRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return s.applyOrderInvoice(ctx, &orders[0], ev)
	}

	sub, err := s.subscriptionRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	if sub == nil {
		// The subscription may not exist locally yet; the provider will
		// resend once it does.
		zap.L().Warn("invoice for unknown subscription", zap.String("subscriptionID", ev.SubscriptionID))
		return nil
	}
	return s.applyPlanInvoice(ctx, sub, ev)
}

// applyOrderInvoice records the payment, settles the buyer's credits, credits
// the seller, and sets the next cycle's price. The payment row is the dedupe
// marker: once it exists, replays of the same invoice change nothing.
func (s *Service) applyOrderInvoice(ctx context.Context, order *domain.Order, ev InvoicePaymentSucceeded) error {
	var applied bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindOrderPaymentByInvoiceID(ctx, ev.InvoiceID)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("invoice already reconciled", zap.String("invoiceID", ev.InvoiceID))
			return nil
		}

		payment := &domain.OrderPayment{
			OrderID:    order.ID,
			InvoiceID:  ev.InvoiceID,
			ChargeID:   ev.ChargeID,
			AmountPaid: money.New(ev.AmountPaid, ev.Currency),
			Status:     ev.Status,
			InvoicePDF: ev.InvoicePDF,
			CreatedAt:  time.Now(),
		}
		if err := s.paymentRepo.CreateOrderPayment(ctx, payment); err != nil {
			return err
		}

		if !order.UsedCredits.IsZero() {
			if err := s.ledger.SettleWithCredits(ctx, order.BuyerID, order.UsedCredits); err != nil {
				return err
			}
			// The reset must commit with the settle. If it waited for the
			// post-commit repricing, a repricing failure would leave the
			// credits on the order and the next cycle would settle them again.
			order.UsedCredits = money.Zero(order.UsedCredits.Currency)
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return err
			}
		}

		if err := s.ledger.Credit(ctx, order.SellerID, sellerTake(order), domain.EarningOrderRevenue, s.clearanceDays); err != nil {
			return err
		}

		if _, err := s.activityRepo.CreateActivity(ctx, domain.MoneyReceivedActivity, order.ID); err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil || !applied {
		return err
	}

	// The ledger work above is committed. A repricing failure comes back as
	// a retryable error and the redelivered event finds the payment row, so
	// nothing is credited twice.
	if err := s.pricing.RepriceOrderRenewal(ctx, order); err != nil {
		return err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	zap.L().Info("order invoice reconciled",
		zap.Int("orderID", order.ID),
		zap.String("invoiceID", ev.InvoiceID),
	)
	return nil
}

// appendCancelActivity closes the audit trail for an order this service
// cancelled on the provider's behalf. Only the handler that won the status
// transition appends it, so a replayed event leaves a single entry.
func (s *Service) appendCancelActivity(ctx context.Context, orderID int, reason string) error {
	activity, err := s.activityRepo.CreateActivity(ctx, domain.CancelActivityType, orderID)
	if err != nil {
		return err
	}
	return s.activityRepo.CreateCancelActivity(ctx, &domain.CancelActivity{
		ActivityID: activity.ID,
		Reason:     reason,
		Status:     domain.ActivityAccepted,
		Closed:     true,
		CreatedAt:  time.Now(),
	})
}

func sellerTake(order *domain.Order) money.Money {
	if !order.DueToSeller.IsZero() {
		return order.DueToSeller
	}
	return order.UnitAmount
}

func (s *Service) applyPlanInvoice(ctx context.Context, sub *domain.PlanSubscription, ev InvoicePaymentSucceeded) error {
	var applied bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.paymentRepo.FindPlanPaymentByInvoiceID(ctx, ev.InvoiceID)
		if err != nil {
			return err
		}
		if existing != nil {
			zap.L().Info("invoice already reconciled", zap.String("invoiceID", ev.InvoiceID))
			return nil
		}

		payment := &domain.PlanPayment{
			UserID:         sub.UserID,
			SubscriptionID: ev.SubscriptionID,
			InvoiceID:      ev.InvoiceID,
			ChargeID:       ev.ChargeID,
			AmountPaid:     money.New(ev.AmountPaid, ev.Currency),
			Paid:           true,
			Status:         ev.Status,
			InvoicePDF:     ev.InvoicePDF,
			CreatedAt:      time.Now(),
		}
		if err := s.paymentRepo.CreatePlanPayment(ctx, payment); err != nil {
			return err
		}

		if _, err := s.activityRepo.CreateActivity(ctx, domain.MoneyReceivedActivity, 0); err != nil {
			return err
		}

		applied = true
		return nil
	})
	if err != nil || !applied {
		return err
	}

	if err := s.pricing.EnsurePlanPrice(ctx, sub); err != nil {
		return err
	}
	if err := s.pricing.AdvanceTrialCycle(ctx, sub); err != nil {
		return err
	}
	if err := s.subscriptionRepo.Update(ctx, sub); err != nil {
		return err
	}

	zap.L().Info("plan invoice reconciled",
		zap.String("subscriptionID", ev.SubscriptionID),
		zap.String("invoiceID", ev.InvoiceID),
	)
	return nil
}

// handleInvoiceFailed cancels everything riding on the subscription. The
// provider-side delete is best effort and a failure for one order never
// blocks another order's local transition.
func (s *Service) handleInvoiceFailed(ctx context.Context, ev InvoicePaymentFailed) error {
	if ev.SubscriptionID == "" {
		zap.L().Info("payment failure without subscription acknowledged", zap.String("invoiceID", ev.InvoiceID))
		return nil
	}

	unlock := s.lock(ev.SubscriptionID)
	defer unlock()

	orders, err := s.orderRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		sub, err := s.subscriptionRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
		if err != nil {
			return err
		}
		if sub == nil {
			zap.L().Warn("payment failure for unknown subscription", zap.String("subscriptionID", ev.SubscriptionID))
			return nil
		}
		sub.PaymentIssue = true
		sub.Status = domain.SubscriptionPastDue
		return s.subscriptionRepo.Update(ctx, sub)
	}

	for i := range orders {
		order := &orders[i]

		if err := s.gateway.DeleteSubscription(ctx, ev.SubscriptionID); err != nil {
			zap.L().Error("subscription delete failed, cancelling locally anyway",
				zap.Int("orderID", order.ID),
				zap.String("subscriptionID", ev.SubscriptionID),
				zap.Error(err),
			)
		}

		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			won, err := s.orderRepo.UpdateStatusIf(ctx, order.ID, domain.OrderActive, domain.OrderCancelled)
			if err != nil {
				return err
			}
			order.Cancelled = true
			order.PaymentIssue = true
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return err
			}
			if !won {
				return nil
			}
			return s.appendCancelActivity(ctx, order.ID, "payment failed")
		})
		if err != nil {
			return err
		}

		zap.L().Info("order cancelled after payment failure",
			zap.Int("orderID", order.ID),
			zap.String("invoiceID", ev.InvoiceID),
		)
	}
	return nil
}

func (s *Service) handleSubscriptionUpdated(ctx context.Context, ev SubscriptionUpdated) error {
	unlock := s.lock(ev.SubscriptionID)
	defer unlock()

	orders, err := s.orderRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	for i := range orders {
		order := &orders[i]
		switch ev.Status {
		case domain.SubscriptionActive:
			order.PaymentIssue = false
		case domain.SubscriptionPastDue:
			order.PaymentIssue = true
		}
		if ev.CurrentPeriodEnd != 0 {
			order.CurrentPeriodEnd = ev.CurrentPeriodEnd
		}
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return err
		}
	}
	if len(orders) > 0 {
		return nil
	}

	sub, err := s.subscriptionRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	if sub == nil {
		zap.L().Warn("update for unknown subscription", zap.String("subscriptionID", ev.SubscriptionID))
		return nil
	}

	sub.Status = ev.Status
	if ev.Status == domain.SubscriptionActive {
		sub.PaymentIssue = false
	}
	if ev.CurrentPeriodEnd != 0 {
		sub.CurrentPeriodEnd = ev.CurrentPeriodEnd
	}
	return s.subscriptionRepo.Update(ctx, sub)
}

func (s *Service) handleSubscriptionDeleted(ctx context.Context, ev SubscriptionDeleted) error {
	unlock := s.lock(ev.SubscriptionID)
	defer unlock()

	orders, err := s.orderRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	for i := range orders {
		order := &orders[i]
		err := s.txManager.Begin(ctx, func(ctx context.Context) error {
			won, err := s.orderRepo.UpdateStatusIf(ctx, order.ID, domain.OrderActive, domain.OrderCancelled)
			if err != nil {
				return err
			}
			order.Cancelled = true
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return err
			}
			if !won {
				return nil
			}
			return s.appendCancelActivity(ctx, order.ID, "subscription deleted by provider")
		})
		if err != nil {
			return err
		}
	}
	if len(orders) > 0 {
		return nil
	}

	sub, err := s.subscriptionRepo.FindBySubscriptionID(ctx, ev.SubscriptionID)
	if err != nil {
		return err
	}
	if sub == nil {
		zap.L().Warn("delete for unknown subscription", zap.String("subscriptionID", ev.SubscriptionID))
		return nil
	}

	sub.Cancelled = true
	return s.subscriptionRepo.Update(ctx, sub)
}
