package repo

import (
	"github.com/alexhernandez-git/freelanium/internal/pg"
	activityrepo "github.com/alexhernandez-git/freelanium/internal/repo/activity-repo"
	earningrepo "github.com/alexhernandez-git/freelanium/internal/repo/earning-repo"
	orderrepo "github.com/alexhernandez-git/freelanium/internal/repo/order-repo"
	paymentrepo "github.com/alexhernandez-git/freelanium/internal/repo/payment-repo"
	subscriptionrepo "github.com/alexhernandez-git/freelanium/internal/repo/subscription-repo"
	userrepo "github.com/alexhernandez-git/freelanium/internal/repo/user-repo"
)

type Repositories struct {
	OrderRepo        *orderrepo.Repository
	UserRepo         *userrepo.Repository
	EarningRepo      *earningrepo.Repository
	ActivityRepo     *activityrepo.Repository
	SubscriptionRepo *subscriptionrepo.Repository
	PaymentRepo      *paymentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		OrderRepo:        orderrepo.New(conn, txManager),
		UserRepo:         userrepo.New(conn, txManager),
		EarningRepo:      earningrepo.New(conn, txManager),
		ActivityRepo:     activityrepo.New(conn, txManager),
		SubscriptionRepo: subscriptionrepo.New(conn, txManager),
		PaymentRepo:      paymentrepo.New(conn, txManager),
	}
}
