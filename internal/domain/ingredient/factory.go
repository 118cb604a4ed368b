package ingredient

import (
	"strings"

	"github.com/go-faster/errors"
)

// Ingredient profile names accepted by NewIngredientsFactory.
const (
	ProfileCappuccino = "cappuccino"
	ProfileCustom     = "custom"
)

// IngredientsFactory produces a matching milk and syrup for one coffee style.
type IngredientsFactory struct {
	profile string
	milk    Milk
	syrup   Syrup
}

var (
	// CappuccinoIngredients pairs whole milk with vanilla syrup.
	CappuccinoIngredients = IngredientsFactory{profile: ProfileCappuccino, milk: WholeMilk, syrup: VanillaSyrup}
	// CustomIngredients pairs almond milk with caramel syrup.
	CustomIngredients = IngredientsFactory{profile: ProfileCustom, milk: AlmondMilk, syrup: CaramelSyrup}
)

var profiles = map[string]IngredientsFactory{
	ProfileCappuccino: CappuccinoIngredients,
	ProfileCustom:     CustomIngredients,
}

// NewIngredientsFactory returns the ingredients factory for the named profile.
func NewIngredientsFactory(profile string) (IngredientsFactory, error) {
	f, ok := profiles[strings.ToLower(strings.TrimSpace(profile))]
	if !ok {
		return IngredientsFactory{}, &UnknownVariantError{Kind: "ingredient profile", Name: profile}
	}
	return f, nil
}

// Profile returns the profile name of the factory.
func (f IngredientsFactory) Profile() string { return f.profile }

// CreateMilk returns the milk of the factory's profile.
func (f IngredientsFactory) CreateMilk() Milk { return f.milk }

// CreateSyrup returns the syrup of the factory's profile.
func (f IngredientsFactory) CreateSyrup() Syrup { return f.syrup }

// CreateMilk returns the milk that belongs to the given ingredient profile.
func CreateMilk(profile string) (Milk, error) {
	f, err := NewIngredientsFactory(profile)
	if err != nil {
		return MilkUnknown, errors.Wrap(err, "create milk")
	}
	return f.CreateMilk(), nil
}

// CreateSyrup returns the syrup that belongs to the given ingredient profile.
func CreateSyrup(profile string) (Syrup, error) {
	f, err := NewIngredientsFactory(profile)
	if err != nil {
		return SyrupUnknown, errors.Wrap(err, "create syrup")
	}
	return f.CreateSyrup(), nil
}
