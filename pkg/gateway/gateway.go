// Package gateway is the HTTP client for the billing provider's API.
// Services depend on narrow interfaces of their own and receive this
// client by injection, never through a process-wide singleton.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/config"
	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/pkg/clients"
	"github.com/alexhernandez-git/freelanium/pkg/money"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Subscription struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	PriceID          string `json:"price_id"`
	CurrentPeriodEnd int64  `json:"current_period_end"`
}

type Invoice struct {
	ID         string `json:"id"`
	ChargeID   string `json:"charge"`
	AmountPaid int64  `json:"amount_paid"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	InvoicePDF string `json:"invoice_pdf"`
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.GatewayAddress,
		apiKey: cfg.GatewayAPIKey,
		client: client,
	}
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.apiKey)
	h.Set("Content-Type", "application/json")
	// The provider dedupes retried writes by this key.
	h.Set("Idempotency-Key", uuid.NewString())
	return h
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("can't marshal gateway request: %w", err)
	}

	headers := c.headers()
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respBody, _, err = c.client.Post(c.url+path, headers, body)
		if err != nil || statusCode >= http.StatusInternalServerError {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return fmt.Errorf("%s failed after %d retries (status %d): %w", path, maxRetries, statusCode, domain.ErrGateway)
		}
		break
	}

	if statusCode >= http.StatusBadRequest {
		zap.L().Error("gateway rejected request", zap.String("path", path), zap.Int("status", statusCode))
		return fmt.Errorf("%s returned status %d: %w", path, statusCode, domain.ErrGateway)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("can't parse gateway response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		statusCode, respBody, _, err = c.client.Get(c.url+path, c.headers())
		if err != nil || statusCode >= http.StatusInternalServerError {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return fmt.Errorf("%s failed after %d retries (status %d): %w", path, maxRetries, statusCode, domain.ErrGateway)
		}
		break
	}

	if statusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	if statusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s returned status %d: %w", path, statusCode, domain.ErrGateway)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("can't parse gateway response: %w", err)
	}
	return nil
}

// CreatePrice registers a new price object and returns its id. Amount is in
// minor units of the given currency.
func (c *Client) CreatePrice(ctx context.Context, amount money.Money, productID string, recurring bool) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	payload := map[string]any{
		"unit_amount": amount.Amount,
		"currency":    amount.Currency,
		"product":     productID,
		"recurring":   recurring,
	}
	if err := c.post(ctx, "/v1/prices", payload, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// ModifySubscription switches the subscription onto a new price.
func (c *Client) ModifySubscription(ctx context.Context, subscriptionID, priceID string) error {
	payload := map[string]any{"price": priceID}
	return c.post(ctx, "/v1/subscriptions/"+subscriptionID, payload, nil)
}

// DeleteSubscription cancels the subscription on the provider side.
func (c *Client) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	payload := map[string]any{"cancel": true}
	return c.post(ctx, "/v1/subscriptions/"+subscriptionID+"/cancel", payload, nil)
}

func (c *Client) RetrieveSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var sub Subscription
	if err := c.get(ctx, "/v1/subscriptions/"+subscriptionID, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// PayInvoice charges a one-off invoice for the given price against the
// customer's default payment method. Used for the second payment of
// two-payment orders.
func (c *Client) PayInvoice(ctx context.Context, customerID, priceID string) (*Invoice, error) {
	var inv Invoice
	payload := map[string]any{
		"customer": customerID,
		"price":    priceID,
	}
	if err := c.post(ctx, "/v1/invoices/pay", payload, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
