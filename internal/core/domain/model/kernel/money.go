package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrMoneyIsNotConstructed is returned when a Money instance was not
	// created through NewMoney or Zero.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or Zero")

	// ErrCurrencyMismatch is returned when two Money values with different
	// currencies are combined.
	ErrCurrencyMismatch = errors.New("money currency mismatch")

	// ErrAmountOverflow is returned when an arithmetic operation would
	// exceed the int64 range of the amount.
	ErrAmountOverflow = errors.New("money amount overflow")

	// ErrFactorIsNegative is returned when Multiply is called with a
	// negative factor.
	ErrFactorIsNegative = errors.New("multiply factor cannot be negative")
)

// Money is an immutable monetary value. The amount is held in the smallest
// currency unit (e.g. cents) to avoid floating-point arithmetic; the
// currency is an ISO 4217 code normalized to upper case at construction.
//
// Invariants:
//   - amount is never negative
//   - currency is always upper-cased
//   - arithmetic is checked: overflow and currency mismatch surface errors
//     instead of producing a silently wrong value
type Money struct {
	amount   int64
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount in minor units and
// currency code. Fails when the amount is negative.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}

	return Money{
		amount:   amount,
		currency: strings.ToUpper(currency),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Zero creates a Money value of zero amount in the given currency.
// It always succeeds.
func Zero(currency string) Money {
	return Money{
		amount:   0,
		currency: strings.ToUpper(currency),
		guard:    guard.NewConstructorGuard(),
	}
}

// Amount returns the monetary amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the upper-cased ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two Money values of the same currency.
// Fails with ErrCurrencyMismatch when the currencies differ and with
// ErrAmountOverflow when the sum does not fit into int64.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, ErrAmountOverflow
	}

	return Money{
		amount:   m.amount + other.amount,
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Multiply scales the amount by an integer factor, keeping the currency.
// Fails with ErrFactorIsNegative for negative factors and with
// ErrAmountOverflow when the product does not fit into int64.
func (m Money) Multiply(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, ErrFactorIsNegative
	}
	if factor > 0 && m.amount > math.MaxInt64/int64(factor) {
		return Money{}, ErrAmountOverflow
	}

	return Money{
		amount:   m.amount * int64(factor),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String renders the value as "<amount> <currency>", e.g. "2999 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
