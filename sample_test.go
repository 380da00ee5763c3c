package pointerfx

import (
	"math"
	"testing"
	"time"
)

func TestSamplerFirstSampleAtRest(t *testing.T) {
	var s Sampler
	got := s.Sample(10, 20, time.Unix(0, 0))
	if got.Position != (Vec2{10, 20}) {
		t.Errorf("Position = %v, want (10,20)", got.Position)
	}
	if got.Velocity != (Vec2{}) {
		t.Errorf("Velocity = %v, want zero", got.Velocity)
	}
}

func TestSamplerVelocity(t *testing.T) {
	var s Sampler
	t0 := time.Unix(0, 0)
	s.Sample(0, 0, t0)
	got := s.Sample(10, -5, t0.Add(100*time.Millisecond))

	if math.Abs(got.Velocity.X-100) > 1e-9 || math.Abs(got.Velocity.Y+50) > 1e-9 {
		t.Errorf("Velocity = %v, want (100,-50)", got.Velocity)
	}
}

func TestSamplerZeroDeltaKeepsVelocity(t *testing.T) {
	var s Sampler
	t0 := time.Unix(0, 0)
	t1 := t0.Add(10 * time.Millisecond)
	s.Sample(0, 0, t0)
	want := s.Sample(5, 0, t1).Velocity

	tests := []struct {
		name string
		at   time.Time
	}{
		{"zero delta", t1},
		{"zero delta again", t1},
		{"negative delta", t0},
	}
	x := 5.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x += 37
			got := s.Sample(x, 12, tt.at)
			if got.Velocity != want {
				t.Errorf("Velocity = %v, want %v", got.Velocity, want)
			}
			if math.IsNaN(got.Velocity.X) || math.IsInf(got.Velocity.X, 0) {
				t.Errorf("Velocity not finite: %v", got.Velocity)
			}
			if got.Position != (Vec2{x, 12}) {
				t.Errorf("Position = %v, want (%v,12)", got.Position, x)
			}
		})
	}
}

func TestSamplerTinyDeltaIsFinite(t *testing.T) {
	var s Sampler
	t0 := time.Unix(0, 0)
	s.Sample(0, 0, t0)
	got := s.Sample(1, 0, t0.Add(time.Nanosecond))
	if math.IsInf(got.Velocity.X, 0) || math.IsNaN(got.Velocity.X) {
		t.Fatalf("Velocity not finite: %v", got.Velocity)
	}
	if math.Abs(got.Velocity.X-1e6) > 1e-3 {
		t.Errorf("Velocity.X = %v, want 1e6 (clamped to epsilon)", got.Velocity.X)
	}
}

func TestSamplerReset(t *testing.T) {
	var s Sampler
	t0 := time.Unix(0, 0)
	s.Sample(0, 0, t0)
	s.Sample(10, 0, t0.Add(time.Second))
	s.Reset()
	if s.Last() != (PointerSample{}) {
		t.Errorf("Last after Reset = %+v, want zero", s.Last())
	}
	got := s.Sample(50, 50, t0.Add(2*time.Second))
	if got.Velocity != (Vec2{}) {
		t.Errorf("Velocity after Reset = %v, want zero", got.Velocity)
	}
}
