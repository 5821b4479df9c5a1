package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"go.uber.org/zap"
)

type AccountRepo interface {
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalances(ctx context.Context, user *domain.User) error
}

type EarningRepo interface {
	Create(ctx context.Context, earning *domain.Earning) error
	FindDueByUser(ctx context.Context, userID int, now time.Time) ([]domain.Earning, error)
	MarkMatured(ctx context.Context, earningID int) error
}

// Service keeps the per-user ledger buckets consistent. Every operation is a
// single transaction: the bucket update and its earning record commit
// together or not at all. Buckets never go negative, money only moves
// between pending clearance and available for withdrawal.
type Service struct {
	accountRepo AccountRepo
	earningRepo EarningRepo
	txManager   pg.TXManager
}

func New(accountRepo AccountRepo, earningRepo EarningRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		earningRepo: earningRepo,
		txManager:   txManager,
	}
}

// Credit adds earned revenue to a user's ledger. With maturityDays zero the
// amount is withdrawable immediately; otherwise it sits in pending clearance
// until the clearing sweep matures it.
func (s *Service) Credit(ctx context.Context, userID int, amount money.Money, earningType string, maturityDays int) error {
	if amount.IsNegative() || amount.IsZero() {
		return fmt.Errorf("credit amount must be positive: %w", domain.ErrValidation)
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.accountRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}

		if user.NetIncome, err = user.NetIncome.Add(amount); err != nil {
			return fmt.Errorf("credit user %d: %w", userID, err)
		}

		earning := &domain.Earning{
			UserID:    userID,
			Type:      earningType,
			Amount:    amount,
			CreatedAt: time.Now(),
		}

		if maturityDays == 0 {
			if user.AvailableForWithdrawal, err = user.AvailableForWithdrawal.Add(amount); err != nil {
				return err
			}
			earning.Matured = true
		} else {
			if user.PendingClearance, err = user.PendingClearance.Add(amount); err != nil {
				return err
			}
			maturity := time.Now().AddDate(0, 0, maturityDays)
			earning.AvailableForWithdrawnDate = &maturity
		}

		if err := s.earningRepo.Create(ctx, earning); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalances(ctx, user); err != nil {
			return err
		}

		zap.L().Info("ledger credit applied",
			zap.Int("userID", userID),
			zap.String("amount", amount.String()),
			zap.String("type", earningType),
			zap.Int("maturityDays", maturityDays),
		)
		return nil
	})
}

// SettleWithCredits burns a buyer's credits against a purchase. Pending
// clearance is drained first; any overflow comes out of available for
// withdrawal. Both buckets clamp at zero, the full amount is recorded
// under used_for_purchases.
func (s *Service) SettleWithCredits(ctx context.Context, userID int, usedCredits money.Money) error {
	if usedCredits.IsNegative() {
		return fmt.Errorf("settle amount can't be negative: %w", domain.ErrValidation)
	}
	if usedCredits.IsZero() {
		return nil
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.accountRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}

		remainder, err := user.PendingClearance.Sub(usedCredits)
		if err != nil {
			return fmt.Errorf("settle user %d: %w", userID, err)
		}
		if remainder.IsNegative() {
			// Credits were spent before they matured: the deficit comes
			// out of the withdrawable bucket.
			deficit := remainder.Neg()
			user.PendingClearance = money.Zero(user.Currency)
			if user.AvailableForWithdrawal, err = user.AvailableForWithdrawal.Sub(deficit); err != nil {
				return err
			}
			user.AvailableForWithdrawal = user.AvailableForWithdrawal.ClampZero()
		} else {
			user.PendingClearance = remainder
		}

		if user.UsedForPurchases, err = user.UsedForPurchases.Add(usedCredits); err != nil {
			return err
		}

		earning := &domain.Earning{
			UserID:    userID,
			Type:      domain.EarningSpent,
			Amount:    usedCredits,
			Matured:   true,
			CreatedAt: time.Now(),
		}
		if err := s.earningRepo.Create(ctx, earning); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateBalances(ctx, user); err != nil {
			return err
		}

		zap.L().Info("credits settled",
			zap.Int("userID", userID),
			zap.String("usedCredits", usedCredits.String()),
		)
		return nil
	})
}

// Mature moves a user's due earnings from pending clearance to available for
// withdrawal. Earnings whose pending amount was partly consumed by
// SettleWithCredits move whatever pending clearance still covers, so no
// money is created.
func (s *Service) Mature(ctx context.Context, userID int, now time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.accountRepo.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}

		earnings, err := s.earningRepo.FindDueByUser(ctx, userID, now)
		if err != nil {
			return err
		}
		if len(earnings) == 0 {
			return nil
		}

		for _, earning := range earnings {
			move := earning.Amount
			if move.Amount > user.PendingClearance.Amount {
				move = user.PendingClearance
			}
			if user.PendingClearance, err = user.PendingClearance.Sub(move); err != nil {
				return err
			}
			if user.AvailableForWithdrawal, err = user.AvailableForWithdrawal.Add(move); err != nil {
				return err
			}
			if err := s.earningRepo.MarkMatured(ctx, earning.ID); err != nil {
				return err
			}
		}

		if err := s.accountRepo.UpdateBalances(ctx, user); err != nil {
			return err
		}

		zap.L().Info("earnings matured", zap.Int("userID", userID), zap.Int("count", len(earnings)))
		return nil
	})
}

func (s *Service) GetAccount(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.accountRepo.GetUserByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}
