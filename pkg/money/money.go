package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrUnknownCurrency  = errors.New("unknown currency")
)

// Money is an amount of a single currency held in integer minor units
// (cents for two-decimal currencies). All arithmetic between two Money
// values requires the same currency; crossing currencies goes through
// Convert with an explicit rate.
type Money struct {
	Amount   int64  `json:"amount" db:"amount"`
	Currency string `json:"currency" db:"currency"`
}

func New(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// FromMajor builds a Money from a major-unit value, e.g. FromMajor(19.99, "USD")
// is 1999 cents. Rounds half away from zero.
func FromMajor(major float64, currency string) Money {
	return Money{Amount: int64(math.Round(major * 100)), Currency: currency}
}

func Zero(currency string) Money {
	return Money{Amount: 0, Currency: currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) IsNegative() bool {
	return m.Amount < 0
}

// Major returns the amount in major units for display purposes only.
func (m Money) Major() float64 {
	return float64(m.Amount) / 100
}

func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("add %s to %s: %w", other.Currency, m.Currency, ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", other.Currency, m.Currency, ErrCurrencyMismatch)
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

func (m Money) Neg() Money {
	return Money{Amount: -m.Amount, Currency: m.Currency}
}

// ClampZero floors the amount at zero. Ledger buckets are never negative.
func (m Money) ClampZero() Money {
	if m.Amount < 0 {
		return Money{Amount: 0, Currency: m.Currency}
	}
	return m
}

// Convert applies an exchange rate and retags the currency. The rate is
// major-unit to major-unit; the result rounds half away from zero.
func (m Money) Convert(rate float64, toCurrency string) Money {
	if m.Currency == toCurrency {
		return m
	}
	return Money{Amount: int64(math.Round(float64(m.Amount) * rate)), Currency: toCurrency}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Major(), m.Currency)
}
