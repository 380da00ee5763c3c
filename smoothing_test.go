package pointerfx

import (
	"math"
	"testing"
	"time"
)

func TestSmoothingFactor(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
		tau  time.Duration
		want float64
	}{
		{"zero tau snaps", 0.016, 0, 1},
		{"negative tau snaps", 0.016, -time.Second, 1},
		{"zero dt holds", 0, 50 * time.Millisecond, 0},
		{"negative dt holds", -0.1, 50 * time.Millisecond, 0},
		{"one time-constant", 0.25, 250 * time.Millisecond, 1 - math.Exp(-1)},
		{"two time-constants", 0.1, 50 * time.Millisecond, 1 - math.Exp(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmoothingFactor(tt.dt, tt.tau); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SmoothingFactor(%v, %v) = %v, want %v", tt.dt, tt.tau, got, tt.want)
			}
		})
	}
}

func TestSmoothingFrameRateIndependent(t *testing.T) {
	tau := 250 * time.Millisecond
	target := Vec2{100, 0}

	var once, twice follower
	once.snap(Vec2{})
	twice.snap(Vec2{})

	once.step(target, 1.0/30, tau)
	twice.step(target, 1.0/60, tau)
	twice.step(target, 1.0/60, tau)

	if math.Abs(once.pos.X-twice.pos.X) > 1e-9 {
		t.Errorf("30fps step = %v, two 60fps steps = %v", once.pos.X, twice.pos.X)
	}
}

func TestFollowerFirstStepSnaps(t *testing.T) {
	var f follower
	got := f.step(Vec2{40, 50}, 0.016, time.Second)
	if got != (Vec2{40, 50}) {
		t.Errorf("first step = %v, want (40,50)", got)
	}
}

func TestFollowerApproachesMonotonically(t *testing.T) {
	var f follower
	f.snap(Vec2{})
	prev := 100.0
	for i := 0; i < 120; i++ {
		pos := f.step(Vec2{100, 0}, 1.0/60, 250*time.Millisecond)
		d := 100 - pos.X
		if d < 0 || d > prev {
			t.Fatalf("frame %d: distance %v after %v", i, d, prev)
		}
		prev = d
	}
}
