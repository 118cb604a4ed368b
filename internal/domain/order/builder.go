package order

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/coffee-shop/internal/domain/ingredient"
)

// Field names reported by IncompleteOrderError.
const (
	FieldCoffee = "coffee"
	FieldMilk   = "milk"
	FieldSyrup  = "syrup"
)

// ErrIncompleteOrder is matched by errors for orders missing a field.
var ErrIncompleteOrder = errors.New("incomplete order")

// IncompleteOrderError lists the fields that were not set before Build.
type IncompleteOrderError struct {
	Missing []string
}

func (e *IncompleteOrderError) Error() string {
	return fmt.Sprintf("incomplete order: missing %s", strings.Join(e.Missing, ", "))
}

// Is reports ErrIncompleteOrder as the kind of this error.
func (e *IncompleteOrderError) Is(target error) bool {
	return target == ErrIncompleteOrder
}

// Builder accumulates selections for an Order. Setters return a new Builder,
// so a partially filled Builder can be reused as a template.
type Builder struct {
	o Order
}

// NewBuilder returns an empty Builder.
func NewBuilder() Builder {
	return Builder{}
}

// WithCoffee selects the coffee.
func (b Builder) WithCoffee(c ingredient.Coffee) Builder {
	b.o.coffee = c
	return b
}

// WithMilk selects the milk.
func (b Builder) WithMilk(m ingredient.Milk) Builder {
	b.o.milk = m
	return b
}

// WithSyrup selects the syrup.
func (b Builder) WithSyrup(s ingredient.Syrup) Builder {
	b.o.syrup = s
	return b
}

// WithIngredients selects milk and syrup from an ingredients factory.
func (b Builder) WithIngredients(f ingredient.IngredientsFactory) Builder {
	return b.WithMilk(f.CreateMilk()).WithSyrup(f.CreateSyrup())
}

// Build returns the assembled Order, or an *IncompleteOrderError if any
// field is unset.
func (b Builder) Build() (Order, error) {
	if err := b.o.Validate(); err != nil {
		return Order{}, err
	}
	return b.o, nil
}
