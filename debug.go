package pointerfx

import (
	"time"

	"github.com/rs/zerolog"
)

// debugStats holds per-frame timing and layer metrics.
// Only populated when the engine is in debug mode.
type debugStats struct {
	stepTime  time.Duration
	dt        float64
	distances [LayerCount]float64
	listeners int
	zones     int
}

func (e *Engine) collectStats(f Frame, dt float64, step time.Duration) debugStats {
	st := debugStats{
		stepTime:  step,
		dt:        dt,
		listeners: e.frameListeners.len(),
		zones:     len(e.zones),
	}
	for id := LayerID(0); id < LayerCount; id++ {
		st.distances[id] = f.Distance(id)
	}
	return st
}

// debugLog writes the frame's timing and per-layer distance to the engine logger.
func (e *Engine) debugLog(f Frame, stats debugStats) {
	if !e.debug {
		return
	}
	e.log.Debug().
		Uint64("seq", f.Seq).
		Dur("step", stats.stepTime).
		Float64("dt", stats.dt).
		Float64("dot", stats.distances[LayerDot]).
		Float64("ring", stats.distances[LayerRing]).
		Float64("trail", stats.distances[LayerTrail]).
		Float64("label", stats.distances[LayerLabel]).
		Str("kind", f.Directive.Kind.String()).
		Int("listeners", stats.listeners).
		Int("zones", stats.zones).
		Msg("frame")
}

// debugMaxZones is the live zone count above which a leak warning is logged.
const debugMaxZones = 256

// debugCheckZoneCount warns when zones pile up, which usually means bindings
// are created on every mount without being disposed.
func debugCheckZoneCount(log zerolog.Logger, n int) {
	if n > debugMaxZones {
		log.Warn().Int("zones", n).Int("threshold", debugMaxZones).Msg("live zone count exceeds threshold")
	}
}
