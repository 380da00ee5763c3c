package termfx

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/pointerfx"
)

// frameInterval is the default ticker period, about 60 frames per second.
const frameInterval = 16 * time.Millisecond

// RunConfig configures a terminal host.
type RunConfig struct {
	// Config defaults to pointerfx.DefaultConfig when left zero.
	Config pointerfx.Config
	Grid   Grid
	// Sound enables the press tick.
	Sound  bool
	Logger zerolog.Logger
	// FrameInterval defaults to 16ms.
	FrameInterval time.Duration
	// Options are passed to pointerfx.New after the host's own.
	Options []pointerfx.Option
	// Setup runs once after the engine exists, to add regions and bind
	// zones.
	Setup func(h *Host)
}

// Host owns a tcell screen and the engine drawing into it.
type Host struct {
	screen   tcell.Screen
	grid     Grid
	surface  *pointerfx.Surface
	input    *Input
	sched    pointerfx.TickScheduler
	engine   *pointerfx.Engine
	renderer *Renderer
	clicker  *Clicker
	log      zerolog.Logger

	backdrop func(tcell.Screen)
	frame    pointerfx.Frame
	frameSub pointerfx.Subscription
	pressH   pointerfx.CallbackHandle
}

// NewHost initializes screen and builds the engine on it. The caller owns
// the host and must Close it.
func NewHost(screen tcell.Screen, cfg RunConfig) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if cfg.Config == (pointerfx.Config{}) {
		cfg.Config = pointerfx.DefaultConfig()
	}
	g := cfg.Grid.normalized()
	h := &Host{
		screen:   screen,
		grid:     g,
		surface:  pointerfx.NewSurface(),
		renderer: NewRenderer(screen, g),
		log:      cfg.Logger,
	}
	h.input = NewInput(h.surface, g)

	opts := append([]pointerfx.Option{pointerfx.WithLogger(cfg.Logger)}, cfg.Options...)
	h.engine = pointerfx.New(h.surface, &h.sched, cfg.Config, opts...)
	h.frame = h.engine.Frame()
	h.frameSub = h.engine.OnFrame(func(f pointerfx.Frame) { h.frame = f })

	if cfg.Sound {
		h.clicker = NewClicker(cfg.Logger)
		h.pressH = h.surface.OnPress(func(pointerfx.PointerEvent) {
			if h.engine.Enabled() {
				h.clicker.Click()
			}
		})
	}
	if cfg.Setup != nil {
		cfg.Setup(h)
	}
	return h, nil
}

// Engine returns the host's engine.
func (h *Host) Engine() *pointerfx.Engine { return h.engine }

// Surface returns the surface mouse events are fed into.
func (h *Host) Surface() *pointerfx.Surface { return h.surface }

// Grid returns the cell grid.
func (h *Host) Grid() Grid { return h.grid }

// Screen returns the tcell screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// SetBackdrop sets the function that draws page content under the pointer
// layers each frame.
func (h *Host) SetBackdrop(fn func(tcell.Screen)) {
	h.backdrop = fn
}

// HandleEvent processes one tcell event and reports whether the host should
// keep running. q, Esc and Ctrl-C quit; e toggles the engine.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'e':
				h.engine.SetEnabled(!h.engine.Enabled())
			}
		}
	case *tcell.EventMouse:
		h.input.HandleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// Tick runs one frame: it fires the engine's frame request and redraws.
func (h *Host) Tick(now time.Time) {
	h.sched.Tick(now)
	h.Draw()
}

// Draw redraws the backdrop and the latest frame. While the engine is
// disabled the terminal's own cursor is shown at the pointer instead.
func (h *Host) Draw() {
	h.screen.Clear()
	if h.backdrop != nil {
		h.backdrop(h.screen)
	}
	h.renderer.Draw(h.frame)
	if p, ok := h.surface.Pointer(); ok && !h.engine.Enabled() {
		col, row := h.grid.Cell(p)
		h.screen.ShowCursor(col, row)
	} else {
		h.screen.HideCursor()
	}
	h.screen.Show()
}

// Close tears down the engine, the audio device and the screen.
func (h *Host) Close() {
	h.pressH.Remove()
	h.frameSub.Remove()
	h.engine.Close()
	h.clicker.Close()
	h.screen.Fini()
}

// Run creates a terminal screen and runs the host until the user quits.
func Run(cfg RunConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	h, err := NewHost(screen, cfg)
	if err != nil {
		return err
	}
	defer h.Close()

	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = frameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done, eventBuffer)

	h.Draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			h.Tick(now)
		}
	}
}

// eventBuffer is how many terminal events may queue between frames.
const eventBuffer = 100

// pollEvents forwards screen events on the returned channel until the screen
// is finalized or done is closed. The channel is closed when it stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
