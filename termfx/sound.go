package termfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	clickRate   = beep.SampleRate(44100)
	clickFreq   = 880
	clickLength = 30 * time.Millisecond
	clickGain   = -0.6
)

// Clicker plays a short sine tick on press. Without an audio device it is
// silent.
type Clicker struct {
	ready bool
	log   zerolog.Logger
}

// NewClicker initializes the speaker. Audio failure is not fatal: it is
// logged and the returned Clicker stays silent.
func NewClicker(log zerolog.Logger) *Clicker {
	c := &Clicker{log: log}
	if err := speaker.Init(clickRate, clickRate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, press tick disabled")
		return c
	}
	c.ready = true
	return c
}

// Ready reports whether the speaker was initialized.
func (c *Clicker) Ready() bool {
	return c != nil && c.ready
}

// Click plays the press tick.
func (c *Clicker) Click() {
	if !c.Ready() {
		return
	}
	tone, err := clickTone(clickRate)
	if err != nil {
		c.log.Warn().Err(err).Msg("building press tick")
		return
	}
	speaker.Play(tone)
}

// Close releases the speaker.
func (c *Clicker) Close() {
	if !c.Ready() {
		return
	}
	speaker.Close()
	c.ready = false
}

// clickTone is the press tick: a quiet 880 Hz sine cut to clickLength.
func clickTone(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, clickFreq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return &effects.Gain{Streamer: beep.Take(sr.N(clickLength), sine), Gain: clickGain}, nil
}
