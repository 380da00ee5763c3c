package pointerfx

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"
)

// defaultFrameDelta is the dt assumed for the first frame after (re)enabling,
// when there is no previous tick to measure from.
const defaultFrameDelta = 1.0 / 60

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithSink installs a DirectiveSink on the engine's store.
func WithSink(sink DirectiveSink) Option {
	return func(e *Engine) {
		e.store.SetSink(sink)
	}
}

// WithLayer replaces the layer function of id.
func WithLayer(id LayerID, fn LayerFunc) Option {
	return func(e *Engine) {
		e.driver.SetLayer(id, fn)
	}
}

// WithClock sets the time source used for events without a timestamp and for
// synchronous frames. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// WithMeter sets the OpenTelemetry meter. The default is the global
// provider's meter, a no-op unless the application installs one.
func WithMeter(m metric.Meter) Option {
	return func(e *Engine) {
		e.meter = m
	}
}

// Engine wires a pointer source, a store, zones and an animation driver
// together. It is constructed once at application start and passed by
// reference to whatever binds zones or renders frames.
//
// Like the hosts that drive it, Engine is single-threaded: every method and
// every callback it registers must run on the UI thread.
type Engine struct {
	cfg       Config
	store     *Store
	sampler   Sampler
	driver    *Driver
	source    PointerSource
	scheduler FrameScheduler

	log     zerolog.Logger
	meter   metric.Meter
	metrics engineMetrics
	clock   func() time.Time

	enabled bool
	closed  bool
	debug   bool

	zones          []*Zone
	sourceHandles  [3]CallbackHandle
	storeSub       Subscription
	cancelFrame    func()
	lastTick       time.Time
	frameListeners handlerList[Frame]
	nextID         uint32
}

// New creates an engine sampling source and animating on scheduler's frames.
//
// A nil source means the host has no pointer: the engine stays available for
// zone binding but reports Available() == false and only ever produces hidden
// frames at cfg.NeutralPosition. A nil scheduler means every published sample
// renders a synchronous snap-to-target frame instead of an animated one.
func New(source PointerSource, scheduler FrameScheduler, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		store:     NewStore(),
		driver:    NewDriver(cfg),
		source:    source,
		scheduler: scheduler,
		log:       zerolog.Nop(),
		clock:     time.Now,
		debug:     cfg.Debug,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.meter == nil {
		e.meter = defaultMeter()
	}
	e.metrics = newEngineMetrics(e.meter, e.log, func() int { return len(e.zones) })
	e.store.onDirective = e.directiveWritten
	// Opened by enable once there is a pointer to follow.
	e.store.SetZoneWrites(false)

	if source == nil {
		e.log.Warn().Msg("pointer source unavailable, pointer feedback disabled")
	}
	if scheduler == nil {
		e.log.Debug().Msg("no frame scheduler, rendering synchronously")
	}
	if cfg.Enabled {
		e.enable()
	} else {
		e.driver.Neutral(cfg.NeutralPosition, e.clock())
	}
	return e
}

// Store returns the engine's store.
func (e *Engine) Store() *Store {
	return e.store
}

// Config returns the configuration the engine was created with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Available reports whether the engine has a pointer source.
func (e *Engine) Available() bool {
	return e.source != nil
}

// Enabled reports whether the engine is sampling and animating.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// SetEnabled is the master switch. Disabling removes the pointer listeners,
// detaches every zone, switches off zone writes on the store (so zones bound
// directly with BindZone cannot write either), cancels the pending frame and
// resets the directive, so the host can fall back to its native pointer. Zones survive and reattach
// when the engine is enabled again. Has no effect after Close.
func (e *Engine) SetEnabled(enabled bool) {
	if enabled {
		e.enable()
	} else {
		e.disable()
	}
}

// SetDebugMode enables or disables per-frame debug logging.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// BindZone binds target to desc on the engine's store. While the engine is
// disabled or has no pointer source the zone is created detached; it attaches
// once the engine is enabled with a source. After Close
// the returned zone is already disposed.
func (e *Engine) BindZone(target Element, desc Descriptor) *Zone {
	if e.closed {
		return &Zone{store: e.store, desc: desc, disposed: true}
	}
	return e.track(newZone(e.store, desc, target, nil))
}

// BindZoneRef binds whatever element ref holds, now or later.
func (e *Engine) BindZoneRef(ref *Ref, desc Descriptor) *Zone {
	if e.closed {
		return &Zone{store: e.store, desc: desc, disposed: true}
	}
	return e.track(newZone(e.store, desc, nil, ref))
}

// ZoneCount returns the number of live zones bound through the engine.
func (e *Engine) ZoneCount() int {
	return len(e.zones)
}

// ListenerCount returns the number of host callbacks the engine currently
// holds: pointer listeners plus every zone's enter/leave listeners.
func (e *Engine) ListenerCount() int {
	n := 0
	for _, h := range e.sourceHandles {
		if h.Active() {
			n++
		}
	}
	for _, z := range e.zones {
		if z.enterH.Active() {
			n++
		}
		if z.leaveH.Active() {
			n++
		}
	}
	return n
}

// OnFrame registers fn to receive every frame the driver produces.
func (e *Engine) OnFrame(fn func(Frame)) Subscription {
	e.nextID++
	id := e.nextID
	e.frameListeners.add(id, fn)
	return Subscription{id: id, list: &e.frameListeners}
}

// Frame returns the most recent frame.
func (e *Engine) Frame() Frame {
	return e.driver.Frame()
}

// Close disposes every zone and disables the engine permanently.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	zones := append([]*Zone(nil), e.zones...)
	for _, z := range zones {
		z.Dispose()
	}
	e.disable()
	e.closed = true
	e.frameListeners.clear()
	e.log.Debug().Msg("engine closed")
}

func (e *Engine) enable() {
	if e.enabled || e.closed {
		return
	}
	e.enabled = true
	e.log.Debug().Bool("available", e.source != nil).Int("zones", len(e.zones)).Msg("pointer feedback enabled")

	if e.source == nil {
		// Without a pointer the directive stays default; zones stay detached.
		e.publish(e.driver.Neutral(e.cfg.NeutralPosition, e.clock()))
		return
	}
	e.store.SetZoneWrites(true)
	for _, z := range e.zones {
		z.resume()
	}
	e.sourceHandles[0] = e.source.OnMove(e.handleMove)
	e.sourceHandles[1] = e.source.OnPress(e.handlePress)
	e.sourceHandles[2] = e.source.OnRelease(e.handleRelease)

	if e.scheduler == nil {
		e.storeSub = e.store.Subscribe(e.snap)
		return
	}
	e.requestFrame()
}

func (e *Engine) disable() {
	if !e.enabled {
		return
	}
	e.enabled = false
	e.store.SetZoneWrites(false)
	for i := range e.sourceHandles {
		e.sourceHandles[i].Remove()
		e.sourceHandles[i] = CallbackHandle{}
	}
	for _, z := range e.zones {
		z.suspend()
	}
	e.storeSub.Remove()
	e.storeSub = Subscription{}
	if e.cancelFrame != nil {
		e.cancelFrame()
		e.cancelFrame = nil
	}
	e.lastTick = time.Time{}

	e.store.ResetDirective()
	e.sampler.Reset()
	e.driver.Reset()
	// One hidden frame so renderers clear what they drew.
	e.publish(e.driver.Neutral(e.cfg.NeutralPosition, e.clock()))
	e.log.Debug().Msg("pointer feedback disabled")
}

func (e *Engine) track(z *Zone) *Zone {
	z.onDispose = e.forget
	z.suspended = !e.enabled || e.source == nil
	z.attach()
	e.zones = append(e.zones, z)
	e.metrics.zoneBound()
	e.log.Debug().Str("kind", z.desc.Kind).Str("label", z.desc.Label).Bool("attached", z.Attached()).Msg("zone bound")
	debugCheckZoneCount(e.log, len(e.zones))
	return z
}

func (e *Engine) forget(z *Zone) {
	for i, live := range e.zones {
		if live == z {
			copy(e.zones[i:], e.zones[i+1:])
			e.zones[len(e.zones)-1] = nil
			e.zones = e.zones[:len(e.zones)-1]
			break
		}
	}
	e.metrics.zoneDisposed()
	e.log.Debug().Str("kind", z.desc.Kind).Int("zones", len(e.zones)).Msg("zone disposed")
}

func (e *Engine) directiveWritten(prev, next Directive) {
	if prev == next {
		return
	}
	e.metrics.directive(next)
	if e.debug {
		e.log.Debug().Str("from", prev.Kind.String()).Str("to", next.Kind.String()).Bool("hovering", next.Hovering).Msg("directive")
	}
}

func (e *Engine) eventTime(ev PointerEvent) time.Time {
	if ev.Time.IsZero() {
		return e.clock()
	}
	return ev.Time
}

func (e *Engine) handleMove(ev PointerEvent) {
	e.store.SetSample(e.sampler.Sample(ev.Position.X, ev.Position.Y, e.eventTime(ev)))
}

func (e *Engine) handlePress(PointerEvent) {
	e.driver.Press()
	if e.scheduler == nil {
		e.snap(e.store.Get())
	}
}

func (e *Engine) handleRelease(PointerEvent) {
	e.driver.Release()
	if e.scheduler == nil {
		e.snap(e.store.Get())
	}
}

func (e *Engine) requestFrame() {
	if e.cancelFrame != nil {
		return
	}
	e.cancelFrame = e.scheduler.RequestFrame(e.tick)
}

// tick is one animation frame: read the store once, step every layer,
// publish, and ask for the next frame.
func (e *Engine) tick(now time.Time) {
	e.cancelFrame = nil
	if !e.enabled {
		return
	}
	dt := defaultFrameDelta
	if !e.lastTick.IsZero() {
		dt = now.Sub(e.lastTick).Seconds()
	}
	e.lastTick = now

	snap := e.store.Get()
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	var f Frame
	if snap.Sample.Timestamp.IsZero() {
		// No pointer yet.
		f = e.driver.Neutral(e.cfg.NeutralPosition, now)
	} else {
		f = e.driver.Step(snap, dt, now)
	}
	if e.debug {
		e.debugLog(f, e.collectStats(f, dt, time.Since(start)))
	}
	e.publish(f)
	e.requestFrame()
}

// snap renders a synchronous frame; used when there is no scheduler.
func (e *Engine) snap(s Snapshot) {
	if !e.enabled || s.Sample.Timestamp.IsZero() {
		return
	}
	f := e.driver.Snap(s, e.clock())
	if e.debug {
		e.debugLog(f, e.collectStats(f, 0, 0))
	}
	e.publish(f)
}

func (e *Engine) publish(f Frame) {
	e.metrics.frame()
	e.frameListeners.emit(f)
}
