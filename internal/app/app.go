package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xenking/coffee-shop/internal/domain/ingredient"
	"github.com/xenking/coffee-shop/internal/domain/order"
	"github.com/xenking/coffee-shop/internal/shop"
)

// Telemetry provides the metric and trace providers for the shop.
type Telemetry interface {
	MeterProvider() metric.MeterProvider
	TracerProvider() trace.TracerProvider
}

// App owns the process-wide Shop and runs the demo scenario against it.
type App struct {
	cfg  *Config
	lg   *zap.Logger
	tel  Telemetry
	out  io.Writer
	wait shop.WaitFunc

	once    sync.Once
	shop    *shop.Shop
	shopErr error
}

// New creates an App writing status lines to out.
func New(lg *zap.Logger, tel Telemetry, cfg *Config, out io.Writer) *App {
	return &App{
		cfg:  cfg,
		lg:   lg,
		tel:  tel,
		out:  out,
		wait: shop.Sleep,
	}
}

// Shop returns the single Shop of this App, creating it on first use.
func (a *App) Shop() (*shop.Shop, error) {
	a.once.Do(func() {
		delays := a.cfg.Prep.Delays()
		format, err := shop.ParseFormat(a.cfg.Output.Format)
		if err != nil {
			a.shopErr = err
			return
		}
		a.shop, a.shopErr = shop.New(shop.Options{
			Output:         a.out,
			Logger:         a.lg.Named("shop"),
			Wait:           a.wait,
			Delays:         &delays,
			Format:         format,
			MeterProvider:  a.tel.MeterProvider(),
			TracerProvider: a.tel.TracerProvider(),
		})
	})
	return a.shop, a.shopErr
}

// NewOrder builds the configured order: a coffee from the coffee factory and
// milk and syrup from the ingredients factory.
func (a *App) NewOrder() (order.Order, error) {
	coffee, err := ingredient.CreateCoffee(a.cfg.Order.Coffee)
	if err != nil {
		return order.Order{}, errors.Wrap(err, "create coffee")
	}
	ingredients, err := ingredient.NewIngredientsFactory(a.cfg.Order.Ingredients)
	if err != nil {
		return order.Order{}, errors.Wrap(err, "create ingredients factory")
	}

	o, err := order.NewBuilder().
		WithCoffee(coffee).
		WithMilk(ingredients.CreateMilk()).
		WithSyrup(ingredients.CreateSyrup()).
		Build()
	if err != nil {
		return order.Order{}, errors.Wrap(err, "build order")
	}
	return o, nil
}

// Demo places and serves the configured order, then places and serves a
// copy of it.
func (a *App) Demo(ctx context.Context) error {
	s, err := a.Shop()
	if err != nil {
		return errors.Wrap(err, "create shop")
	}

	o, err := a.NewOrder()
	if err != nil {
		return err
	}
	a.lg.Info("Order built", zap.Stringer("order", o))

	s.PlaceOrder(ctx, o)
	s.ServeOrder(ctx, o)

	dup := o.Copy()
	s, err = a.Shop()
	if err != nil {
		return errors.Wrap(err, "get shop")
	}
	s.PlaceOrder(ctx, dup)
	s.ServeOrder(ctx, dup)

	return nil
}

// Run wires the application and runs the demo scenario, writing status lines
// to stdout.
func Run(ctx context.Context, lg *zap.Logger, tel Telemetry, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("coffee", cfg.Order.Coffee),
		zap.String("ingredients", cfg.Order.Ingredients),
		zap.String("format", cfg.Output.Format),
	)

	if err := New(lg, tel, cfg, os.Stdout).Demo(ctx); err != nil {
		return errors.Wrap(err, "demo")
	}

	lg.Info("Done")
	return nil
}
