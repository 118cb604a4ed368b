package shop

import (
	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/xenking/coffee-shop/internal/shop"

type shopMetrics struct {
	placed      metric.Int64Counter
	served      metric.Int64Counter
	interrupted metric.Int64Counter
	duration    metric.Float64Histogram
}

func newMetrics(mp metric.MeterProvider) (*shopMetrics, error) {
	meter := mp.Meter(instrumentationName)

	var (
		m   shopMetrics
		err error
	)
	if m.placed, err = meter.Int64Counter("coffee_shop.orders.placed",
		metric.WithDescription("Orders accepted by the shop"),
	); err != nil {
		return nil, errors.Wrap(err, "placed counter")
	}
	if m.served, err = meter.Int64Counter("coffee_shop.orders.served",
		metric.WithDescription("Orders handed to the customer"),
	); err != nil {
		return nil, errors.Wrap(err, "served counter")
	}
	if m.interrupted, err = meter.Int64Counter("coffee_shop.orders.interrupted",
		metric.WithDescription("Preparations cut short by cancellation"),
	); err != nil {
		return nil, errors.Wrap(err, "interrupted counter")
	}
	if m.duration, err = meter.Float64Histogram("coffee_shop.preparation.duration",
		metric.WithDescription("Time spent preparing an order"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, errors.Wrap(err, "duration histogram")
	}

	return &m, nil
}
