// Package fxrates fetches historical exchange rates from the FX provider.
// Renewal pricing converts amounts at the rate in effect on the order's
// rate date, not at today's rate.
package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/alexhernandez-git/freelanium/internal/config"
	"github.com/alexhernandez-git/freelanium/internal/domain"
	"github.com/alexhernandez-git/freelanium/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.FXAddress,
		client: client,
	}
}

// Rate returns the from→to conversion rate in effect on the given date.
func (c *Client) Rate(ctx context.Context, from, to string, on time.Time) (float64, error) {
	query := url.Values{}
	query.Set("base", from)
	query.Set("symbol", to)
	query.Set("date", on.Format("2006-01-02"))
	path := "/v1/rates?" + query.Encode()

	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		statusCode, respBody, _, err = c.client.Get(c.url+path, nil)
		if err != nil || statusCode >= http.StatusInternalServerError {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return 0, fmt.Errorf("rate %s/%s failed after %d retries (status %d): %w", from, to, maxRetries, statusCode, domain.ErrGateway)
		}
		break
	}

	if statusCode >= http.StatusBadRequest {
		return 0, fmt.Errorf("rate %s/%s returned status %d: %w", from, to, statusCode, domain.ErrGateway)
	}

	var resp struct {
		Rate float64 `json:"rate"`
	}
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return 0, fmt.Errorf("can't parse rate response: %w", err)
	}
	if resp.Rate <= 0 {
		return 0, fmt.Errorf("rate %s/%s is not positive: %w", from, to, domain.ErrGateway)
	}
	return resp.Rate, nil
}
