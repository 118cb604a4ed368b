// Package shop implements the coffee shop that accepts, prepares and serves
// orders.
//
// A process runs one Shop. Orders are handled strictly one at a time: PlaceOrder
// blocks the caller until the preparation sequence has finished or been
// interrupted.
package shop

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/xenking/coffee-shop/internal/domain/order"
)

// ErrPreparationInterrupted is matched by the error returned when a
// preparation wait is cancelled.
var ErrPreparationInterrupted = errors.New("preparation interrupted")

// InterruptedError records the stage at which a preparation stopped.
type InterruptedError struct {
	Stage Stage
	Err   error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("preparation interrupted while %s: %v", e.Stage, e.Err)
}

// Is reports ErrPreparationInterrupted as the kind of this error.
func (e *InterruptedError) Is(target error) bool {
	return target == ErrPreparationInterrupted
}

func (e *InterruptedError) Unwrap() error { return e.Err }

// Options configures a Shop. Zero fields take defaults: stdout, a no-op
// logger, real timers, DefaultDelays, text output and no-op telemetry.
type Options struct {
	Output         io.Writer
	Logger         *zap.Logger
	Wait           WaitFunc
	Delays         *Delays
	Format         Format
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

func (o *Options) setDefaults() {
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Wait == nil {
		o.Wait = Sleep
	}
	if o.Delays == nil {
		d := DefaultDelays()
		o.Delays = &d
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.MeterProvider == nil {
		o.MeterProvider = metricnoop.NewMeterProvider()
	}
	if o.TracerProvider == nil {
		o.TracerProvider = tracenoop.NewTracerProvider()
	}
}

// Shop accepts orders, prepares them and serves them.
type Shop struct {
	out    io.Writer
	lg     *zap.Logger
	wait   WaitFunc
	delays Delays
	format Format

	tracer  trace.Tracer
	metrics *shopMetrics
}

// New creates a Shop.
func New(opts Options) (*Shop, error) {
	opts.setDefaults()

	if _, err := ParseFormat(string(opts.Format)); err != nil {
		return nil, err
	}
	m, err := newMetrics(opts.MeterProvider)
	if err != nil {
		return nil, errors.Wrap(err, "create metrics")
	}

	return &Shop{
		out:     opts.Output,
		lg:      opts.Logger,
		wait:    opts.Wait,
		delays:  *opts.Delays,
		format:  opts.Format,
		tracer:  opts.TracerProvider.Tracer(instrumentationName),
		metrics: m,
	}, nil
}

// PlaceOrder accepts o and prepares it before returning. An interrupted
// preparation is reported and logged; it is not returned to the caller.
func (s *Shop) PlaceOrder(ctx context.Context, o order.Order) {
	if err := o.Validate(); err != nil {
		s.lg.Error("Order rejected", zap.Error(err))
		return
	}

	ticket := uuid.New().String()
	ctx = zctx.Base(ctx, s.lg.With(zap.String("ticket", ticket)))
	lg := zctx.From(ctx)

	attrs := metric.WithAttributes(attribute.String("coffee", o.Coffee().Name()))
	s.metrics.placed.Add(ctx, 1, attrs)

	lg.Info("Order accepted", zap.Stringer("order", o))
	s.say("Order accepted: %s", o)

	start := time.Now()
	err := s.prepareOrder(ctx, o)
	s.metrics.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		s.metrics.interrupted.Add(ctx, 1, attrs)
		lg.Warn("Preparation interrupted", zap.Error(err))
		s.say("Error while preparing coffee.")
		return
	}
	lg.Info("Order prepared")
}

// prepareOrder runs the preparation sequence for o. It stops at the first
// cancelled wait and returns an *InterruptedError.
func (s *Shop) prepareOrder(ctx context.Context, o order.Order) error {
	ctx, span := s.tracer.Start(ctx, "shop.PrepareOrder",
		trace.WithAttributes(
			attribute.String("order.coffee", o.Coffee().Name()),
			attribute.String("order.milk", o.Milk().Name()),
			attribute.String("order.syrup", o.Syrup().Name()),
		),
	)
	defer span.End()

	lg := zctx.From(ctx)
	s.say("Preparing your coffee...")

	steps := []struct {
		stage Stage
		delay time.Duration
		msg   string
	}{
		{StageAddingMilk, s.delays.Milk, "Adding: " + o.Milk().Name()},
		{StageAddingSyrup, s.delays.Syrup, "Adding: " + o.Syrup().Name()},
		{StageReady, s.delays.Brew, "Coffee " + o.Coffee().Name() + " is ready!"},
	}

	for _, step := range steps {
		lg.Debug("Stage", zap.Stringer("stage", step.stage), zap.Duration("delay", step.delay))
		if err := s.wait(ctx, step.delay); err != nil {
			err = &InterruptedError{Stage: step.stage, Err: err}
			span.RecordError(err)
			span.SetStatus(codes.Error, "interrupted")
			return err
		}
		span.AddEvent(step.stage.String())
		s.say("%s", step.msg)
	}

	return nil
}

// ServeOrder reports o as served.
func (s *Shop) ServeOrder(ctx context.Context, o order.Order) {
	if err := o.Validate(); err != nil {
		s.lg.Error("Nothing to serve", zap.Error(err))
		return
	}

	s.metrics.served.Add(ctx, 1, metric.WithAttributes(attribute.String("coffee", o.Coffee().Name())))
	s.lg.Info("Order served", zap.Stringer("order", o), zap.String("price", o.Price().StringFixed(2)))

	switch s.format {
	case FormatJSON:
		var e jx.Encoder
		NewReceipt(o).Encode(&e)
		s.say("%s", e.Bytes())
	default:
		s.say("Your coffee is ready: %s", o)
	}
}

func (s *Shop) say(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format+"\n", args...); err != nil {
		s.lg.Warn("Write status line", zap.Error(err))
	}
}
