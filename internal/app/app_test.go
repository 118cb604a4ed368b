package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/xenking/coffee-shop/internal/domain/ingredient"
	"github.com/xenking/coffee-shop/internal/domain/order"
	"github.com/xenking/coffee-shop/internal/shop"
)

type noopTelemetry struct{}

func (noopTelemetry) MeterProvider() metric.MeterProvider { return metricnoop.NewMeterProvider() }
func (noopTelemetry) TracerProvider() trace.TracerProvider { return tracenoop.NewTracerProvider() }

func testConfig() *Config {
	return &Config{
		Order:  OrderConfig{Coffee: "espresso", Ingredients: "cappuccino"},
		Prep:   PrepConfig{MilkDelay: 2 * time.Second, SyrupDelay: time.Second, BrewDelay: time.Second},
		Output: OutputConfig{Format: "text"},
	}
}

func newTestApp(t *testing.T, cfg *Config) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	a := New(zaptest.NewLogger(t), noopTelemetry{}, cfg, out)
	a.wait = shop.NoWait
	return a, out
}

func TestApp_ShopIdentity(t *testing.T) {
	a, _ := newTestApp(t, testConfig())

	first, err := a.Shop()
	require.NoError(t, err)
	second, err := a.Shop()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestApp_ShopError(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Format = "yaml"
	a, _ := newTestApp(t, cfg)

	_, err := a.Shop()
	require.Error(t, err)
	_, again := a.Shop()
	assert.Equal(t, err, again)

	require.Error(t, a.Demo(context.Background()))
}

func TestApp_NewOrder(t *testing.T) {
	cfg := testConfig()
	cfg.Order = OrderConfig{Coffee: "cappuccino", Ingredients: "custom"}
	a, _ := newTestApp(t, cfg)

	o, err := a.NewOrder()
	require.NoError(t, err)
	assert.Equal(t, ingredient.Cappuccino, o.Coffee())
	assert.Equal(t, ingredient.AlmondMilk, o.Milk())
	assert.Equal(t, ingredient.CaramelSyrup, o.Syrup())
}

func TestApp_NewOrder_InvalidArgument(t *testing.T) {
	tests := []struct {
		name    string
		order   OrderConfig
		wantMsg string
	}{
		{name: "unknown coffee", order: OrderConfig{Coffee: "mocha", Ingredients: "custom"}, wantMsg: "create coffee"},
		{name: "unknown profile", order: OrderConfig{Coffee: "espresso", Ingredients: "oat"}, wantMsg: "create ingredients factory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Order = tt.order
			a, out := newTestApp(t, cfg)

			_, err := a.NewOrder()
			require.ErrorIs(t, err, ingredient.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantMsg)

			require.ErrorIs(t, a.Demo(context.Background()), ingredient.ErrInvalidArgument)
			assert.Empty(t, out.String())
		})
	}
}

func TestApp_Demo(t *testing.T) {
	a, out := newTestApp(t, testConfig())

	require.NoError(t, a.Demo(context.Background()))

	cycle := []string{
		"Order accepted: Coffee: Espresso, Milk: Whole milk, Syrup: Vanilla syrup",
		"Preparing your coffee...",
		"Adding: Whole milk",
		"Adding: Vanilla syrup",
		"Coffee Espresso is ready!",
		"Your coffee is ready: Coffee: Espresso, Milk: Whole milk, Syrup: Vanilla syrup",
	}
	want := append(append([]string{}, cycle...), cycle...)
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n"))
}

func TestApp_DemoInterrupted(t *testing.T) {
	a, out := newTestApp(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Demo(ctx))
	assert.Equal(t, 2, strings.Count(out.String(), "Error while preparing coffee."))
	assert.Equal(t, 2, strings.Count(out.String(), "Your coffee is ready:"))
}

func TestApp_DemoJSON(t *testing.T) {
	cfg := testConfig()
	cfg.Output.Format = "json"
	a, out := newTestApp(t, cfg)

	require.NoError(t, a.Demo(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), `{"coffee":"Espresso","milk":"Whole milk","syrup":"Vanilla syrup","price":"3.30"}`))
}

func TestBuilderRejectsPartialOrder(t *testing.T) {
	_, err := order.NewBuilder().WithCoffee(ingredient.Espresso).Build()
	require.ErrorIs(t, err, order.ErrIncompleteOrder)
}

func TestRun(t *testing.T) {
	cfg := testConfig()
	cfg.Prep = PrepConfig{}

	require.NoError(t, Run(context.Background(), zap.NewNop(), noopTelemetry{}, cfg))
}
