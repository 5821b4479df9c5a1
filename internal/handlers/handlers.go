package handlers

import (
	"net/http"

	balancehandlers "github.com/alexhernandez-git/freelanium/internal/handlers/balance"
	ordershandlers "github.com/alexhernandez-git/freelanium/internal/handlers/orders"
	webhookhandlers "github.com/alexhernandez-git/freelanium/internal/handlers/webhook"
	"github.com/alexhernandez-git/freelanium/internal/service"
	"github.com/alexhernandez-git/freelanium/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type WebhookHandler interface {
	Receive(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	SubmitDelivery(w http.ResponseWriter, r *http.Request)
	AcceptDelivery(w http.ResponseWriter, r *http.Request)
	RequestRevision(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	GetActivities(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	WebhookHandler WebhookHandler
	OrderHandler   OrderHandler
	BalanceHandler BalanceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		WebhookHandler: webhookhandlers.New(s.Reconciler),
		OrderHandler:   ordershandlers.New(s.OrderService),
		BalanceHandler: balancehandlers.New(s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Post("/api/webhooks/billing", h.WebhookHandler.Receive)

	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Use(auth.AuthMiddleware)

		r.Route("/api/orders/{orderID}", func(r chi.Router) {
			r.Post("/deliveries", h.OrderHandler.SubmitDelivery)
			r.Post("/deliveries/{deliveryID}/accept", h.OrderHandler.AcceptDelivery)
			r.Post("/revisions", h.OrderHandler.RequestRevision)
			r.Post("/cancel", h.OrderHandler.Cancel)
			r.Get("/activities", h.OrderHandler.GetActivities)
		})
		r.Get("/api/user/balance", h.BalanceHandler.GetBalance)
	})

	return r
}
