package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/xenking/coffee-shop/internal/domain/ingredient"
)

// Order is a coffee with its milk and syrup. Orders are values: once built
// they never change, and copying one yields an independent snapshot.
type Order struct {
	coffee ingredient.Coffee
	milk   ingredient.Milk
	syrup  ingredient.Syrup
}

// Coffee returns the coffee of the order.
func (o Order) Coffee() ingredient.Coffee { return o.coffee }

// Milk returns the milk of the order.
func (o Order) Milk() ingredient.Milk { return o.milk }

// Syrup returns the syrup of the order.
func (o Order) Syrup() ingredient.Syrup { return o.syrup }

// Copy returns a duplicate of the order.
func (o Order) Copy() Order {
	return o
}

// Price returns the total menu price of the order.
func (o Order) Price() decimal.Decimal {
	return o.coffee.Price().Add(o.milk.Price()).Add(o.syrup.Price())
}

// Validate returns an *IncompleteOrderError unless every field is set.
// A zero Order, which did not come from a Builder, never validates.
func (o Order) Validate() error {
	var missing []string
	if !o.coffee.IsValid() {
		missing = append(missing, FieldCoffee)
	}
	if !o.milk.IsValid() {
		missing = append(missing, FieldMilk)
	}
	if !o.syrup.IsValid() {
		missing = append(missing, FieldSyrup)
	}
	if len(missing) > 0 {
		return &IncompleteOrderError{Missing: missing}
	}
	return nil
}

// String renders the order as "Coffee: X, Milk: Y, Syrup: Z".
func (o Order) String() string {
	return fmt.Sprintf("Coffee: %s, Milk: %s, Syrup: %s", o.coffee.Name(), o.milk.Name(), o.syrup.Name())
}
