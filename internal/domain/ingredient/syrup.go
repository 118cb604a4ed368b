package ingredient

import "github.com/shopspring/decimal"

// Syrup is the flavouring added to an order. The zero value is not a valid syrup.
type Syrup int

const (
	// SyrupUnknown marks an unset syrup.
	SyrupUnknown Syrup = iota
	// VanillaSyrup is vanilla flavoured syrup.
	VanillaSyrup
	// CaramelSyrup is caramel flavoured syrup.
	CaramelSyrup
)

var syrups = map[Syrup]variant{
	VanillaSyrup: {name: "Vanilla syrup", price: decimal.RequireFromString("0.50")},
	CaramelSyrup: {name: "Caramel syrup", price: decimal.RequireFromString("0.50")},
}

var syrupKeys = map[string]Syrup{
	"vanilla": VanillaSyrup,
	"caramel": CaramelSyrup,
}

// ParseSyrup returns the syrup for a name such as "caramel" or "Caramel syrup".
func ParseSyrup(name string) (Syrup, error) {
	return lookup("syrup", name, syrups, syrupKeys)
}

// Name returns the display name, or an empty string for an unknown syrup.
func (s Syrup) Name() string {
	return syrups[s].name
}

// Price returns the menu price of the syrup.
func (s Syrup) Price() decimal.Decimal {
	return syrups[s].price
}

// IsValid reports whether s is one of the known syrups.
func (s Syrup) IsValid() bool {
	_, ok := syrups[s]
	return ok
}

func (s Syrup) String() string {
	if !s.IsValid() {
		return "Unknown"
	}
	return s.Name()
}
