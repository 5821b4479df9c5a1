// Package clearing runs the periodic sweep that matures pending earnings.
// Order revenue sits in pending clearance for a clearance window; once an
// earning's maturity date passes, the sweep moves it into the withdrawable
// bucket through the ledger.
package clearing

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var sweepingUsers sync.Map

type EarningRepo interface {
	FindUserIDsWithDue(ctx context.Context, now time.Time, limit uint32) ([]int, error)
}

type Ledger interface {
	Mature(ctx context.Context, userID int, now time.Time) error
}

type Service struct {
	earningRepo   EarningRepo
	ledger        Ledger
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, earningRepo EarningRepo, ledger Ledger) *Service {
	return &Service{
		earningRepo:   earningRepo,
		ledger:        ledger,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: time.Duration(cfg.ClearingInterval) * time.Second,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Clearing service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	now := time.Now()
	userIDs, err := s.earningRepo.FindUserIDsWithDue(ctx, now, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch users with due earnings", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, userID := range userIDs {
		userID := userID

		// A user still being matured by a previous tick is skipped; the
		// next tick picks up whatever is left.
		if _, loaded := sweepingUsers.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer sweepingUsers.Delete(userID)
				return s.ledger.Mature(ctx, userID, now)
			})
			if err != nil {
				sweepingUsers.Delete(userID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error maturing earnings", zap.Error(err))
	}
}
