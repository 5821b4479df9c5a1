package service

import (
	"github.com/alexhernandez-git/freelanium/internal/config"
	"github.com/alexhernandez-git/freelanium/internal/pg"
	"github.com/alexhernandez-git/freelanium/internal/reconciler"
	"github.com/alexhernandez-git/freelanium/internal/repo"
	"github.com/alexhernandez-git/freelanium/internal/service/ledgerservice"
	"github.com/alexhernandez-git/freelanium/internal/service/orderservice"
	"github.com/alexhernandez-git/freelanium/internal/service/pricingservice"
	"github.com/alexhernandez-git/freelanium/pkg/fxrates"
	"github.com/alexhernandez-git/freelanium/pkg/gateway"
)

type Services struct {
	LedgerService  *ledgerservice.Service
	OrderService   *orderservice.Service
	PricingService *pricingservice.Service
	Reconciler     *reconciler.Service
}

func New(cfg *config.Config, repo *repo.Repositories, gw *gateway.Client, rates *fxrates.Client, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.EarningRepo, txManager)
	pricingService := pricingservice.New(repo.SubscriptionRepo, repo.OrderRepo, repo.UserRepo, gw, rates)
	orderService := orderservice.New(
		repo.OrderRepo, repo.ActivityRepo, repo.UserRepo, repo.PaymentRepo,
		ledgerService, gw, txManager, false,
	)
	rec := reconciler.New(
		repo.OrderRepo, repo.SubscriptionRepo, repo.PaymentRepo, repo.ActivityRepo,
		ledgerService, pricingService, gw, txManager, cfg.ClearanceDays,
	)

	return &Services{
		LedgerService:  ledgerService,
		OrderService:   orderService,
		PricingService: pricingService,
		Reconciler:     rec,
	}
}
