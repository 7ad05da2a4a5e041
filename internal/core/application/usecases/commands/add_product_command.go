package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceAmountIsInvalid  = errors.New("price amount must not be negative")
	ErrPriceCurrencyRequired = errors.New("price currency is required")
)

// AddProductCommand registers a product in the catalog so that orders can
// resolve its unit price.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	name          string
	priceAmount   int64
	priceCurrency string

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a product with the
// given display name and unit price in minor currency units.
func NewAddProductCommand(name string, priceAmount int64, priceCurrency string) (AddProductCommand, error) {
	command := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPriceAmount(priceAmount),
		command.setPriceCurrency(priceCurrency),
	); err != nil {
		return AddProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// Name returns the product display name.
func (c AddProductCommand) Name() string {
	return c.name
}

// PriceAmount returns the unit price in minor currency units.
func (c AddProductCommand) PriceAmount() int64 {
	return c.priceAmount
}

// PriceCurrency returns the currency code of the unit price.
func (c AddProductCommand) PriceCurrency() string {
	return c.priceCurrency
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPriceAmount(amount int64) error {
	if amount < 0 {
		return ErrPriceAmountIsInvalid
	}

	c.priceAmount = amount
	return nil
}

func (c *AddProductCommand) setPriceCurrency(currency string) error {
	if currency == "" {
		return ErrPriceCurrencyRequired
	}

	c.priceCurrency = currency
	return nil
}
