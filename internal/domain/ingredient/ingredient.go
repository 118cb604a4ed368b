// Package ingredient defines the closed sets of coffee, milk and syrup
// variants a shop can put into an order, and the factories that select them.
package ingredient

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrInvalidArgument is matched by every error returned for an unknown
// variant or ingredient profile.
var ErrInvalidArgument = errors.New("invalid argument")

// UnknownVariantError indicates a factory was asked for a tag it does not know.
type UnknownVariantError struct {
	Kind string
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// Is reports ErrInvalidArgument as the kind of this error.
func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// variant is the menu entry behind a tag.
type variant struct {
	name  string
	price decimal.Decimal
}

// lookup finds the tag whose display name or short key matches name,
// ignoring case and surrounding whitespace.
func lookup[T ~int](kind, name string, menu map[T]variant, keys map[string]T) (T, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if tag, ok := keys[key]; ok {
		return tag, nil
	}
	for tag, v := range menu {
		if strings.EqualFold(v.name, key) {
			return tag, nil
		}
	}
	var zero T
	return zero, &UnknownVariantError{Kind: kind, Name: name}
}
