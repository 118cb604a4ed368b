package ingredient

import "github.com/shopspring/decimal"

// Milk is the milk added to an order. The zero value is not a valid milk.
type Milk int

const (
	// MilkUnknown marks an unset milk.
	MilkUnknown Milk = iota
	// WholeMilk is regular whole milk.
	WholeMilk
	// AlmondMilk is a plant-based alternative.
	AlmondMilk
)

var milks = map[Milk]variant{
	WholeMilk:  {name: "Whole milk", price: decimal.RequireFromString("0.30")},
	AlmondMilk: {name: "Almond milk", price: decimal.RequireFromString("0.60")},
}

var milkKeys = map[string]Milk{
	"whole":  WholeMilk,
	"almond": AlmondMilk,
}

// ParseMilk returns the milk for a name such as "almond" or "Almond milk".
func ParseMilk(name string) (Milk, error) {
	return lookup("milk", name, milks, milkKeys)
}

// Name returns the display name, or an empty string for an unknown milk.
func (m Milk) Name() string {
	return milks[m].name
}

// Price returns the menu price of the milk.
func (m Milk) Price() decimal.Decimal {
	return milks[m].price
}

// IsValid reports whether m is one of the known milks.
func (m Milk) IsValid() bool {
	_, ok := milks[m]
	return ok
}

func (m Milk) String() string {
	if !m.IsValid() {
		return "Unknown"
	}
	return m.Name()
}
