package reconciler

import (
	"encoding/json"
	"fmt"

	"github.com/alexhernandez-git/freelanium/internal/domain"
)

// Provider event type strings.
const (
	eventInvoicePaymentSucceeded = "invoice.payment_succeeded"
	eventInvoicePaymentFailed    = "invoice.payment_failed"
	eventSubscriptionUpdated     = "customer.subscription.updated"
	eventSubscriptionDeleted     = "customer.subscription.deleted"
)

// Event is the parsed form of a provider webhook. The closed set of variants
// lets Handle switch exhaustively; adding an event type means adding a case.
type Event interface {
	isEvent()
}

type InvoicePaymentSucceeded struct {
	InvoiceID      string
	SubscriptionID string
	ChargeID       string
	AmountPaid     int64
	Currency       string
	Status         string
	InvoicePDF     string
}

type InvoicePaymentFailed struct {
	InvoiceID      string
	SubscriptionID string
}

type SubscriptionUpdated struct {
	SubscriptionID   string
	Status           string
	CurrentPeriodEnd int64
}

type SubscriptionDeleted struct {
	SubscriptionID string
}

// UnknownEvent is a well-formed payload of a type this service does not
// consume. It is accepted and ignored so the provider stops redelivering.
type UnknownEvent struct {
	Type string
}

func (InvoicePaymentSucceeded) isEvent() {}
func (InvoicePaymentFailed) isEvent()    {}
func (SubscriptionUpdated) isEvent()     {}
func (SubscriptionDeleted) isEvent()     {}
func (UnknownEvent) isEvent()            {}

type envelope struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID               string `json:"id"`
			Subscription     string `json:"subscription"`
			Charge           string `json:"charge"`
			AmountPaid       int64  `json:"amount_paid"`
			Currency         string `json:"currency"`
			Status           string `json:"status"`
			InvoicePDF       string `json:"invoice_pdf"`
			CurrentPeriodEnd int64  `json:"current_period_end"`
		} `json:"object"`
	} `json:"data"`
}

// ParseEvent turns a raw webhook payload into a typed event. Unparseable
// payloads and payloads missing the fields their type requires fail with
// ErrBadEvent; unknown types parse into UnknownEvent.
func ParseEvent(raw []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unparseable payload: %w", domain.ErrBadEvent)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("payload has no type: %w", domain.ErrBadEvent)
	}

	obj := env.Data.Object
	switch env.Type {
	case eventInvoicePaymentSucceeded:
		if obj.ID == "" {
			return nil, fmt.Errorf("%s missing invoice id: %w", env.Type, domain.ErrBadEvent)
		}
		return InvoicePaymentSucceeded{
			InvoiceID:      obj.ID,
			SubscriptionID: obj.Subscription,
			ChargeID:       obj.Charge,
			AmountPaid:     obj.AmountPaid,
			Currency:       obj.Currency,
			Status:         obj.Status,
			InvoicePDF:     obj.InvoicePDF,
		}, nil
	case eventInvoicePaymentFailed:
		if obj.ID == "" {
			return nil, fmt.Errorf("%s missing invoice id: %w", env.Type, domain.ErrBadEvent)
		}
		return InvoicePaymentFailed{
			InvoiceID:      obj.ID,
			SubscriptionID: obj.Subscription,
		}, nil
	case eventSubscriptionUpdated:
		if obj.ID == "" {
			return nil, fmt.Errorf("%s missing subscription id: %w", env.Type, domain.ErrBadEvent)
		}
		return SubscriptionUpdated{
			SubscriptionID:   obj.ID,
			Status:           obj.Status,
			CurrentPeriodEnd: obj.CurrentPeriodEnd,
		}, nil
	case eventSubscriptionDeleted:
		if obj.ID == "" {
			return nil, fmt.Errorf("%s missing subscription id: %w", env.Type, domain.ErrBadEvent)
		}
		return SubscriptionDeleted{SubscriptionID: obj.ID}, nil
	default:
		return UnknownEvent{Type: env.Type}, nil
	}
}
