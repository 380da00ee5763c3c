package pointerfx

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the engine's tunables. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// Enabled is the master switch. When false the engine samples nothing,
	// zones never mutate the directive, and no frames are requested, so the
	// host can fall back to its native pointer.
	Enabled bool

	// Time-constants of the per-layer exponential smoothing.
	DotLag   time.Duration
	RingLag  time.Duration
	TrailLag time.Duration
	LabelLag time.Duration

	// LabelOffset is how far above the pointer the label is rendered.
	LabelOffset float64

	// Press feedback: the scale the dot and ring compress to, and how long
	// compressing and restoring take.
	DotPressScale   float64
	RingPressScale  float64
	PressDuration   time.Duration
	ReleaseDuration time.Duration

	// NeutralPosition is where hidden layers sit when no pointer source is
	// available.
	NeutralPosition Vec2

	// Debug enables per-frame debug logging.
	Debug bool
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DotLag:          50 * time.Millisecond,
		RingLag:         250 * time.Millisecond,
		TrailLag:        800 * time.Millisecond,
		LabelLag:        300 * time.Millisecond,
		LabelOffset:     32,
		DotPressScale:   0.75,
		RingPressScale:  0.85,
		PressDuration:   100 * time.Millisecond,
		ReleaseDuration: 200 * time.Millisecond,
	}
}

// Lag returns the smoothing time-constant of layer id.
func (c Config) Lag(id LayerID) time.Duration {
	switch id {
	case LayerDot:
		return c.DotLag
	case LayerRing:
		return c.RingLag
	case LayerTrail:
		return c.TrailLag
	case LayerLabel:
		return c.LabelLag
	default:
		return 0
	}
}

// LoadConfig reads configuration from an optional file and POINTERFX_*
// environment variables on top of DefaultConfig. An empty path skips the
// file. Durations accept Go syntax ("50ms").
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setConfigDefaults(v)

	v.SetEnvPrefix("pointerfx")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	return configFromViper(v), nil
}

func setConfigDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("enabled", d.Enabled)
	v.SetDefault("lag.dot", d.DotLag)
	v.SetDefault("lag.ring", d.RingLag)
	v.SetDefault("lag.trail", d.TrailLag)
	v.SetDefault("lag.label", d.LabelLag)
	v.SetDefault("labelOffset", d.LabelOffset)
	v.SetDefault("press.dotScale", d.DotPressScale)
	v.SetDefault("press.ringScale", d.RingPressScale)
	v.SetDefault("press.duration", d.PressDuration)
	v.SetDefault("release.duration", d.ReleaseDuration)
	v.SetDefault("neutral.x", d.NeutralPosition.X)
	v.SetDefault("neutral.y", d.NeutralPosition.Y)
	v.SetDefault("debug", d.Debug)
}

func configFromViper(v *viper.Viper) Config {
	return Config{
		Enabled:         v.GetBool("enabled"),
		DotLag:          v.GetDuration("lag.dot"),
		RingLag:         v.GetDuration("lag.ring"),
		TrailLag:        v.GetDuration("lag.trail"),
		LabelLag:        v.GetDuration("lag.label"),
		LabelOffset:     v.GetFloat64("labelOffset"),
		DotPressScale:   v.GetFloat64("press.dotScale"),
		RingPressScale:  v.GetFloat64("press.ringScale"),
		PressDuration:   v.GetDuration("press.duration"),
		ReleaseDuration: v.GetDuration("release.duration"),
		NeutralPosition: Vec2{X: v.GetFloat64("neutral.x"), Y: v.GetFloat64("neutral.y")},
		Debug:           v.GetBool("debug"),
	}
}
