package shop

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/coffee-shop/internal/domain/order"
)

// Format selects how served orders are reported.
type Format string

const (
	// FormatText prints "Your coffee is ready: <order>".
	FormatText Format = "text"
	// FormatJSON prints one JSON receipt per served order.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.Errorf("unknown output format %q", s)
	}
}

// Receipt is the JSON form of a served order.
type Receipt struct {
	Coffee string
	Milk   string
	Syrup  string
	Price  string
}

// NewReceipt describes o.
func NewReceipt(o order.Order) Receipt {
	return Receipt{
		Coffee: o.Coffee().Name(),
		Milk:   o.Milk().Name(),
		Syrup:  o.Syrup().Name(),
		Price:  o.Price().StringFixed(2),
	}
}

// Encode writes r as a JSON object.
func (r Receipt) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("coffee")
	e.Str(r.Coffee)
	e.FieldStart("milk")
	e.Str(r.Milk)
	e.FieldStart("syrup")
	e.Str(r.Syrup)
	e.FieldStart("price")
	e.Str(r.Price)
	e.ObjEnd()
}

// Decode reads r from a JSON object. Unknown fields are skipped.
func (r *Receipt) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "coffee":
			r.Coffee, err = d.Str()
		case "milk":
			r.Milk, err = d.Str()
		case "syrup":
			r.Syrup, err = d.Str()
		case "price":
			r.Price, err = d.Str()
		default:
			return d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		return nil
	})
}
