package ingredient

import "github.com/shopspring/decimal"

// Coffee is the base drink of an order. The zero value is not a valid coffee.
type Coffee int

const (
	// CoffeeUnknown marks an unset coffee.
	CoffeeUnknown Coffee = iota
	// Espresso is a single shot of espresso.
	Espresso
	// Cappuccino is espresso topped with steamed milk foam.
	Cappuccino
)

var coffees = map[Coffee]variant{
	Espresso:   {name: "Espresso", price: decimal.RequireFromString("2.50")},
	Cappuccino: {name: "Cappuccino", price: decimal.RequireFromString("3.20")},
}

var coffeeKeys = map[string]Coffee{
	"espresso":   Espresso,
	"cappuccino": Cappuccino,
}

// CreateCoffee returns the coffee for the given style name, e.g. "espresso".
func CreateCoffee(style string) (Coffee, error) {
	return lookup("coffee", style, coffees, coffeeKeys)
}

// Name returns the display name, or an empty string for an unknown coffee.
func (c Coffee) Name() string {
	return coffees[c].name
}

// Price returns the menu price of the coffee.
func (c Coffee) Price() decimal.Decimal {
	return coffees[c].price
}

// IsValid reports whether c is one of the known coffees.
func (c Coffee) IsValid() bool {
	_, ok := coffees[c]
	return ok
}

func (c Coffee) String() string {
	if !c.IsValid() {
		return "Unknown"
	}
	return c.Name()
}
