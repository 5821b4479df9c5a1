package domain

import (
	"time"

	"github.com/alexhernandez-git/freelanium/pkg/money"
)

// Order type codes.
const (
	OnePaymentOrder     string = "OP"
	TwoPaymentsOrder    string = "TP"
	HoldingPaymentOrder string = "HO"
	RecurrentOrder      string = "RO"
)

// Order status codes. Delivered and Cancelled are terminal.
const (
	OrderActive    string = "AC"
	OrderDelivered string = "DE"
	OrderCancelled string = "CA"
)

// Subscription interval codes.
const (
	IntervalMonth string = "MO"
	IntervalYear  string = "AN"
)

// Activity type codes.
const (
	OfferActivity              string = "OF"
	ChangeDeliveryTimeActivity string = "CT"
	IncreaseAmountActivity     string = "IA"
	DeliveryActivityType       string = "DE"
	RevisionActivityType       string = "RE"
	CancelActivityType         string = "CA"
	MoneyReceivedActivity      string = "MR"
)

// Sub-activity status codes.
const (
	ActivityPending   string = "PE"
	ActivityAccepted  string = "AC"
	ActivityCancelled string = "CA"
)

// Earning type codes.
const (
	EarningOrderRevenue string = "OR"
	EarningRefund       string = "RE"
	EarningSpent        string = "SP"
)

// Provider-side subscription statuses consumed from webhook events.
const (
	SubscriptionActive  string = "active"
	SubscriptionPastDue string = "past_due"
)

type User struct {
	ID                     int         `db:"id"`
	Username               string      `db:"username"`
	Email                  string      `db:"email"`
	Currency               string      `db:"currency"`
	CustomerID             string      `db:"customer_id"`
	NetIncome              money.Money `db:"net_income"`
	PendingClearance       money.Money `db:"pending_clearance"`
	AvailableForWithdrawal money.Money `db:"available_for_withdrawal"`
	UsedForPurchases       money.Money `db:"used_for_purchases"`
	CreatedAt              time.Time   `db:"created_at"`
}

type Offer struct {
	ID         int         `db:"id"`
	BuyerID    int         `db:"buyer_id"`
	SellerID   int         `db:"seller_id"`
	Title      string      `db:"title"`
	Type       string      `db:"type"`
	UnitAmount money.Money `db:"unit_amount"`
	ServiceFee money.Money `db:"service_fee"`
	CreatedAt  time.Time   `db:"created_at"`
}

type Order struct {
	ID                       int         `db:"id"`
	OfferID                  int         `db:"offer_id"`
	BuyerID                  int         `db:"buyer_id"`
	SellerID                 int         `db:"seller_id"`
	Title                    string      `db:"title"`
	Type                     string      `db:"type"`
	Status                   string      `db:"status"`
	UnitAmount               money.Money `db:"unit_amount"`
	UsedCredits              money.Money `db:"used_credits"`
	FirstPayment             money.Money `db:"first_payment"`
	PaymentAtDelivery        money.Money `db:"payment_at_delivery"`
	ServiceFee               money.Money `db:"service_fee"`
	DueToSeller              money.Money `db:"due_to_seller"`
	PriceID                  string      `db:"price_id"`
	ProductID                string      `db:"product_id"`
	PaymentAtDeliveryPriceID string      `db:"payment_at_delivery_price_id"`
	SubscriptionID           string      `db:"subscription_id"`
	IntervalSubscription     string      `db:"interval_subscription"`
	ToBeCancelled            bool        `db:"to_be_cancelled"`
	Cancelled                bool        `db:"cancelled"`
	PaymentIssue             bool        `db:"payment_issue"`
	CurrentPeriodEnd         int64       `db:"current_period_end"`
	RateDate                 string      `db:"rate_date"`
	CreatedAt                time.Time   `db:"created_at"`
}

// Activity is the append-only audit record tied to an order. MoneyReceived
// activities for plan subscriptions carry no order and keep OrderID zero.
type Activity struct {
	ID        int       `db:"id"`
	Type      string    `db:"type"`
	OrderID   int       `db:"order_id"`
	CreatedAt time.Time `db:"created_at"`
}

type Delivery struct {
	ID         int       `db:"id"`
	OrderID    int       `db:"order_id"`
	Response   string    `db:"response"`
	SourceFile string    `db:"source_file"`
	CreatedAt  time.Time `db:"created_at"`
}

type Revision struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
}

type DeliveryActivity struct {
	ID         int       `db:"id"`
	ActivityID int       `db:"activity_id"`
	DeliveryID int       `db:"delivery_id"`
	Status     string    `db:"status"`
	Closed     bool      `db:"closed"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

type RevisionActivity struct {
	ID         int       `db:"id"`
	ActivityID int       `db:"activity_id"`
	RevisionID int       `db:"revision_id"`
	Status     string    `db:"status"`
	Closed     bool      `db:"closed"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

type CancelActivity struct {
	ID         int       `db:"id"`
	ActivityID int       `db:"activity_id"`
	Reason     string    `db:"reason"`
	Status     string    `db:"status"`
	Closed     bool      `db:"closed"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

// Earning is an immutable ledger entry. Matured flips exactly once when the
// clearing sweep moves the amount from pending clearance to available.
type Earning struct {
	ID                        int         `db:"id"`
	UserID                    int         `db:"user_id"`
	Type                      string      `db:"type"`
	Amount                    money.Money `db:"amount"`
	AvailableForWithdrawnDate *time.Time  `db:"available_for_withdrawn_date"`
	Matured                   bool        `db:"matured"`
	CreatedAt                 time.Time   `db:"created_at"`
}

type Plan struct {
	ID         int         `db:"id"`
	ProductID  string      `db:"product_id"`
	Currency   string      `db:"currency"`
	UnitAmount money.Money `db:"unit_amount"`
	PriceID    string      `db:"price_id"`
	Interval   string      `db:"interval"`
	CreatedAt  time.Time   `db:"created_at"`
}

type PlanSubscription struct {
	ID               int         `db:"id"`
	UserID           int         `db:"user_id"`
	SubscriptionID   string      `db:"subscription_id"`
	ProductID        string      `db:"product_id"`
	Status           string      `db:"status"`
	ToBeCancelled    bool        `db:"to_be_cancelled"`
	Cancelled        bool        `db:"cancelled"`
	PaymentIssue     bool        `db:"payment_issue"`
	CurrentPeriodEnd int64       `db:"current_period_end"`
	PlanUnitAmount   money.Money `db:"plan_unit_amount"`
	PlanPriceID      string      `db:"plan_price_id"`
	FreeTrial        bool        `db:"free_trial"`
	ActiveMonth      bool        `db:"active_month"`
	CreatedAt        time.Time   `db:"created_at"`
}

type OrderPayment struct {
	ID         int         `db:"id"`
	OrderID    int         `db:"order_id"`
	InvoiceID  string      `db:"invoice_id"`
	ChargeID   string      `db:"charge_id"`
	AmountPaid money.Money `db:"amount_paid"`
	Status     string      `db:"status"`
	InvoicePDF string      `db:"invoice_pdf"`
	CreatedAt  time.Time   `db:"created_at"`
}

type PlanPayment struct {
	ID             int         `db:"id"`
	UserID         int         `db:"user_id"`
	SubscriptionID string      `db:"subscription_id"`
	InvoiceID      string      `db:"invoice_id"`
	ChargeID       string      `db:"charge_id"`
	AmountPaid     money.Money `db:"amount_paid"`
	Paid           bool        `db:"paid"`
	Status         string      `db:"status"`
	InvoicePDF     string      `db:"invoice_pdf"`
	CreatedAt      time.Time   `db:"created_at"`
}
