package pointerfx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDebugModeOffIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, s, sched := newTestEngine(WithLogger(log))
	buf.Reset()

	s.Move(1, 1, sched.now)
	sched.advance(5)

	if strings.Contains(buf.String(), `"message":"frame"`) {
		t.Errorf("frame stats logged with debug mode off: %s", buf.String())
	}
}

func TestCollectStats(t *testing.T) {
	e, s, sched := newTestEngine()
	e.OnFrame(func(Frame) {})
	s.Move(0, 0, sched.now)
	sched.advance(1)
	s.Move(100, 0, sched.now)
	sched.advance(1)

	st := e.collectStats(e.Frame(), 1.0/60, 0)
	if st.listeners != 1 {
		t.Errorf("listeners = %d, want 1", st.listeners)
	}
	if !(st.distances[LayerDot] < st.distances[LayerRing] && st.distances[LayerRing] < st.distances[LayerTrail]) {
		t.Errorf("distances = %v, want dot < ring < trail", st.distances)
	}
}

func TestDebugCheckZoneCount(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	debugCheckZoneCount(log, debugMaxZones)
	if buf.Len() != 0 {
		t.Errorf("warning at threshold: %s", buf.String())
	}
	debugCheckZoneCount(log, debugMaxZones+1)
	if !strings.Contains(buf.String(), "exceeds threshold") {
		t.Errorf("no warning above threshold: %s", buf.String())
	}
}
