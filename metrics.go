package pointerfx

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/phanxgames/pointerfx"

func defaultMeter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// engineMetrics are the engine's OpenTelemetry instruments. With no global
// provider configured they are no-ops.
type engineMetrics struct {
	frames           metric.Int64Counter
	directiveChanges metric.Int64Counter
	zonesBound       metric.Int64Counter
	zonesDisposed    metric.Int64Counter
	zonesLive        metric.Int64ObservableGauge
}

// newEngineMetrics creates the instruments on m. An instrument that cannot be
// created is logged and replaced by a no-op; metrics never stop the engine.
// live is polled for the zone gauge.
func newEngineMetrics(m metric.Meter, log zerolog.Logger, live func() int) engineMetrics {
	var (
		em  engineMetrics
		err error
	)

	em.frames, err = m.Int64Counter(
		"pointerfx.frames",
		metric.WithDescription("Total frames produced by the animation driver"),
	)
	if err != nil {
		log.Warn().Err(err).Str("instrument", "pointerfx.frames").Msg("creating counter")
		em.frames = noop.Int64Counter{}
	}

	em.directiveChanges, err = m.Int64Counter(
		"pointerfx.directive.changes",
		metric.WithDescription("Total writes that changed the live directive"),
	)
	if err != nil {
		log.Warn().Err(err).Str("instrument", "pointerfx.directive.changes").Msg("creating counter")
		em.directiveChanges = noop.Int64Counter{}
	}

	em.zonesBound, err = m.Int64Counter(
		"pointerfx.zones.bound",
		metric.WithDescription("Total zones bound through the engine"),
	)
	if err != nil {
		log.Warn().Err(err).Str("instrument", "pointerfx.zones.bound").Msg("creating counter")
		em.zonesBound = noop.Int64Counter{}
	}

	em.zonesDisposed, err = m.Int64Counter(
		"pointerfx.zones.disposed",
		metric.WithDescription("Total zones disposed"),
	)
	if err != nil {
		log.Warn().Err(err).Str("instrument", "pointerfx.zones.disposed").Msg("creating counter")
		em.zonesDisposed = noop.Int64Counter{}
	}

	em.zonesLive, err = m.Int64ObservableGauge(
		"pointerfx.zones.live",
		metric.WithDescription("Current number of live zones"),
	)
	if err != nil {
		log.Warn().Err(err).Str("instrument", "pointerfx.zones.live").Msg("creating gauge")
		return em
	}
	_, err = m.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			o.ObserveInt64(em.zonesLive, int64(live()))
			return nil
		},
		em.zonesLive,
	)
	if err != nil {
		log.Warn().Err(err).Msg("registering zone gauge callback")
	}
	return em
}

func (em engineMetrics) frame() {
	em.frames.Add(context.Background(), 1)
}

func (em engineMetrics) directive(d Directive) {
	em.directiveChanges.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("kind", d.Kind.String())))
}

func (em engineMetrics) zoneBound() {
	em.zonesBound.Add(context.Background(), 1)
}

func (em engineMetrics) zoneDisposed() {
	em.zonesDisposed.Add(context.Background(), 1)
}
