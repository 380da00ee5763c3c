package ebitenfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/pointerfx"
)

// RunConfig configures Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool

	// Config defaults to pointerfx.DefaultConfig when left zero.
	Config  pointerfx.Config
	Logger  zerolog.Logger
	Options []pointerfx.Option

	// ScreenshotDir defaults to "screenshots".
	ScreenshotDir string
	// TestScript, when set, replaces real input with a scripted sequence
	// (see pointerfx.LoadTestScript). The game exits once it finishes.
	TestScript []byte

	// Setup runs once after the engine exists, to add regions and bind
	// zones.
	Setup func(g *Game)
	// Update runs at the end of every Game.Update.
	Update func(g *Game) error
	// Backdrop draws the page under the pointer layers.
	Backdrop func(screen *ebiten.Image)
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Config == (pointerfx.Config{}) {
		c.Config = pointerfx.DefaultConfig()
	}
	if c.Width <= 0 {
		c.Width = 960
	}
	if c.Height <= 0 {
		c.Height = 540
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Run opens a window and runs the game until it is closed or its test
// script finishes.
func Run(cfg RunConfig) error {
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
