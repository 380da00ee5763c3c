package ebitenfx

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/pointerfx"
)

// scriptFrame is the simulated frame time while a test script drives input,
// so scripted runs are deterministic regardless of the real frame rate.
const scriptFrame = time.Second / 60

// Game is an ebiten.Game hosting a pointerfx engine.
type Game struct {
	width, height int
	showFPS       bool

	surface  *pointerfx.Surface
	input    *Input
	sched    pointerfx.TickScheduler
	engine   *pointerfx.Engine
	renderer Renderer
	shots    *Screenshotter
	runner   *pointerfx.TestRunner
	log      zerolog.Logger

	frame    pointerfx.Frame
	frameSub pointerfx.Subscription
	backdrop func(*ebiten.Image)
	onUpdate func(*Game) error

	clock         func() time.Time
	scriptTime    time.Time
	cursorHidden  bool
	setCursorMode func(ebiten.CursorModeType)
}

// NewGame builds a game from cfg. It fails only when cfg.TestScript cannot
// be parsed.
func NewGame(cfg RunConfig) (*Game, error) {
	cfg = cfg.withDefaults()
	g := &Game{
		width:         cfg.Width,
		height:        cfg.Height,
		showFPS:       cfg.ShowFPS,
		surface:       pointerfx.NewSurface(),
		shots:         NewScreenshotter(cfg.ScreenshotDir, cfg.Logger),
		log:           cfg.Logger,
		backdrop:      cfg.Backdrop,
		onUpdate:      cfg.Update,
		clock:         time.Now,
		setCursorMode: ebiten.SetCursorMode,
	}
	g.input = NewInput(g.surface)

	if len(cfg.TestScript) > 0 {
		runner, err := pointerfx.LoadTestScript(cfg.TestScript)
		if err != nil {
			return nil, fmt.Errorf("load test script: %w", err)
		}
		runner.OnSnapshot = g.shots.Queue
		g.runner = runner
		g.scriptTime = time.Unix(0, 0)
		g.clock = func() time.Time { return g.scriptTime }
	}

	opts := append([]pointerfx.Option{
		pointerfx.WithLogger(cfg.Logger),
		pointerfx.WithClock(func() time.Time { return g.clock() }),
	}, cfg.Options...)
	g.engine = pointerfx.New(g.surface, &g.sched, cfg.Config, opts...)
	g.frame = g.engine.Frame()
	g.frameSub = g.engine.OnFrame(func(f pointerfx.Frame) { g.frame = f })

	if cfg.Setup != nil {
		cfg.Setup(g)
	}
	return g, nil
}

// Engine returns the game's engine.
func (g *Game) Engine() *pointerfx.Engine { return g.engine }

// Surface returns the surface input is fed into.
func (g *Game) Surface() *pointerfx.Surface { return g.surface }

// Screenshots returns the game's screenshotter.
func (g *Game) Screenshots() *Screenshotter { return g.shots }

// Frame returns the frame that the next Draw renders.
func (g *Game) Frame() pointerfx.Frame { return g.frame }

// Update polls input, or steps the test script, then runs the engine's
// frame and keeps the native cursor in sync with the enabled switch.
func (g *Game) Update() error {
	var now time.Time
	if g.runner != nil {
		g.scriptTime = g.scriptTime.Add(scriptFrame)
		now = g.scriptTime
		g.runner.Step(g.surface, now)
	} else {
		now = g.clock()
		g.input.Poll(now)
		g.surface.ProcessInjected(now)
	}
	g.sched.Tick(now)
	g.syncCursor()

	if g.onUpdate != nil {
		if err := g.onUpdate(g); err != nil {
			return err
		}
	}
	if g.runner != nil && g.runner.Done() && g.shots.Pending() == 0 {
		g.log.Info().Msg("test script finished")
		return ebiten.Termination
	}
	return nil
}

// syncCursor hides the native cursor while the engine draws its own.
func (g *Game) syncCursor() {
	hide := g.engine.Enabled() && g.engine.Available()
	if hide == g.cursorHidden {
		return
	}
	g.cursorHidden = hide
	if hide {
		g.setCursorMode(ebiten.CursorModeHidden)
	} else {
		g.setCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw renders the backdrop, the pointer layers and any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.backdrop != nil {
		g.backdrop(screen)
	}
	g.renderer.Draw(screen, g.frame)
	if g.showFPS {
		drawStats(screen, g.frame)
	}
	g.shots.Flush(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Close releases the engine.
func (g *Game) Close() {
	g.frameSub.Remove()
	g.engine.Close()
}
