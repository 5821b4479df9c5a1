package pricingservice

import (
	"context"
	"fmt"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"go.uber.org/zap"
)

type PlanRepo interface {
	FindPlan(ctx context.Context, productID, currency string) (*domain.Plan, error)
	UpdatePlanPriceID(ctx context.Context, planID int, priceID string) error
}

type OfferRepo interface {
	FindOfferByID(ctx context.Context, offerID int) (*domain.Offer, error)
}

type AccountRepo interface {
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type Gateway interface {
	CreatePrice(ctx context.Context, amount money.Money, productID string, recurring bool) (string, error)
	ModifySubscription(ctx context.Context, subscriptionID, priceID string) error
}

type RateSource interface {
	Rate(ctx context.Context, from, to string, on time.Time) (float64, error)
}

// Service recomputes recurring prices at each billing cycle. Unit price,
// used credits, and the buyer's billing currency can all drift between
// cycles, so every renewal gets a fresh price object.
type Service struct {
	planRepo    PlanRepo
	offerRepo   OfferRepo
	accountRepo AccountRepo
	gateway     Gateway
	rates       RateSource
}

func New(planRepo PlanRepo, offerRepo OfferRepo, accountRepo AccountRepo, gw Gateway, rates RateSource) *Service {
	return &Service{
		planRepo:    planRepo,
		offerRepo:   offerRepo,
		accountRepo: accountRepo,
		gateway:     gw,
		rates:       rates,
	}
}

// RepriceOrderRenewal sets the next cycle's price for a recurrent order: the
// offer's unit amount plus its service fee, converted into the buyer's
// billing currency at the rate in effect on the order's rate date. The offer
// is the price authority; the order only carries a snapshot discounted by
// first-cycle credits. The order is mutated in place and the caller persists
// it.
func (s *Service) RepriceOrderRenewal(ctx context.Context, order *domain.Order) error {
	if order.Type != domain.RecurrentOrder {
		return fmt.Errorf("order %d is not recurrent: %w", order.ID, domain.ErrValidation)
	}
	if order.SubscriptionID == "" {
		return fmt.Errorf("order %d has no subscription: %w", order.ID, domain.ErrInvalidState)
	}

	offer, err := s.offerRepo.FindOfferByID(ctx, order.OfferID)
	if err != nil {
		return err
	}
	if offer == nil {
		return fmt.Errorf("offer %d: %w", order.OfferID, domain.ErrNotFound)
	}

	buyer, err := s.accountRepo.GetUserByID(ctx, order.BuyerID)
	if err != nil {
		return err
	}
	if buyer == nil {
		return fmt.Errorf("buyer %d: %w", order.BuyerID, domain.ErrNotFound)
	}

	price, err := offer.UnitAmount.Add(offer.ServiceFee)
	if err != nil {
		return fmt.Errorf("reprice order %d: %w", order.ID, err)
	}

	if buyer.Currency != price.Currency {
		on := rateDate(order.RateDate)
		rate, err := s.rates.Rate(ctx, price.Currency, buyer.Currency, on)
		if err != nil {
			return fmt.Errorf("reprice order %d: %w", order.ID, err)
		}
		price = price.Convert(rate, buyer.Currency)
	}

	priceID, err := s.gateway.CreatePrice(ctx, price, order.ProductID, true)
	if err != nil {
		return err
	}
	if err := s.gateway.ModifySubscription(ctx, order.SubscriptionID, priceID); err != nil {
		return err
	}

	order.PriceID = priceID

	zap.L().Info("order renewal repriced",
		zap.Int("orderID", order.ID),
		zap.String("price", price.String()),
		zap.String("priceID", priceID),
	)
	return nil
}

func rateDate(raw string) time.Time {
	if on, err := time.Parse("2006-01-02", raw); err == nil {
		return on
	}
	return time.Now()
}

// EnsurePlanPrice reconciles a subscriber against the live plan catalog. When
// an admin changed the plan's unit amount after the subscriber signed up, the
// stale price id must not be reused: a fresh price object is minted, stored
// on the plan, and the subscription is moved onto it. The subscription is
// mutated in place and the caller persists it.
func (s *Service) EnsurePlanPrice(ctx context.Context, sub *domain.PlanSubscription) error {
	plan, err := s.planRepo.FindPlan(ctx, sub.ProductID, sub.PlanUnitAmount.Currency)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("plan %s/%s: %w", sub.ProductID, sub.PlanUnitAmount.Currency, domain.ErrNotFound)
	}

	if plan.UnitAmount == sub.PlanUnitAmount && plan.PriceID == sub.PlanPriceID {
		return nil
	}

	priceID := plan.PriceID
	if plan.UnitAmount != sub.PlanUnitAmount {
		priceID, err = s.gateway.CreatePrice(ctx, plan.UnitAmount, plan.ProductID, true)
		if err != nil {
			return err
		}
		if err := s.planRepo.UpdatePlanPriceID(ctx, plan.ID, priceID); err != nil {
			return err
		}
	}

	if err := s.gateway.ModifySubscription(ctx, sub.SubscriptionID, priceID); err != nil {
		return err
	}

	sub.PlanUnitAmount = plan.UnitAmount
	sub.PlanPriceID = priceID

	zap.L().Info("plan price reconciled",
		zap.String("subscriptionID", sub.SubscriptionID),
		zap.String("priceID", priceID),
	)
	return nil
}

// AdvanceTrialCycle flips a free-trial subscription between a zero-amount
// cycle and a full-price cycle after each paid invoice. active_month true
// means the cycle just paid was full price, so the next one is free, and the
// other way around. The subscription is mutated in place and the caller
// persists it.
func (s *Service) AdvanceTrialCycle(ctx context.Context, sub *domain.PlanSubscription) error {
	if !sub.FreeTrial {
		return nil
	}

	if sub.ActiveMonth {
		freePriceID, err := s.gateway.CreatePrice(ctx, money.Zero(sub.PlanUnitAmount.Currency), sub.ProductID, true)
		if err != nil {
			return err
		}
		if err := s.gateway.ModifySubscription(ctx, sub.SubscriptionID, freePriceID); err != nil {
			return err
		}
		sub.ActiveMonth = false
		zap.L().Info("trial subscription moved to free cycle", zap.String("subscriptionID", sub.SubscriptionID))
		return nil
	}

	plan, err := s.planRepo.FindPlan(ctx, sub.ProductID, sub.PlanUnitAmount.Currency)
	if err != nil {
		return err
	}
	if plan == nil {
		return fmt.Errorf("plan %s/%s: %w", sub.ProductID, sub.PlanUnitAmount.Currency, domain.ErrNotFound)
	}
	if err := s.gateway.ModifySubscription(ctx, sub.SubscriptionID, plan.PriceID); err != nil {
		return err
	}
	sub.ActiveMonth = true
	sub.PlanPriceID = plan.PriceID
	zap.L().Info("trial subscription moved to full-price cycle", zap.String("subscriptionID", sub.SubscriptionID))
	return nil
}
