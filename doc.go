// Package pointerfx is a continuous pointer-feedback engine: a custom pointer
// indicator made of four independently lagged layers (dot, ring, trail and
// label) that page elements restyle by registering hover zones.
//
// # Quick start
//
// A host supplies a [PointerSource] and a [FrameScheduler]. [Surface] is the
// built-in source: feed it raw moves, presses and releases and add a
// [Region] per hoverable element. [TickScheduler] serves hosts that own their
// update loop.
//
//	surface := pointerfx.NewSurface()
//	var frames pointerfx.TickScheduler
//	engine := pointerfx.New(surface, &frames, pointerfx.DefaultConfig())
//	defer engine.Close()
//
//	play := pointerfx.NewRegion("video", 200, 120, pointerfx.HitRect{Width: 320, Height: 180})
//	surface.AddRegion(play)
//	engine.BindZone(play, pointerfx.Descriptor{Kind: "video", Label: "Play"})
//
//	engine.OnFrame(func(f pointerfx.Frame) {
//		for _, id := range pointerfx.DrawOrder {
//			draw(f.Visuals[id])
//		}
//	})
//
// The ebitenfx and termfx packages wire all of this to Ebitengine and to a
// tcell terminal.
//
// # Data flow
//
// Moves go through the [Sampler] into the [Store] as a [PointerSample] with a
// finite-difference velocity. Zones write the live [Directive] on enter and
// reset it on leave. Once per frame the [Driver] reads the store once,
// advances each layer toward the pointer with exponential smoothing, applies
// the press [Pulse] to the dot and ring, and renders each layer through its
// [LayerFunc].
//
// # Overlapping zones
//
// The last zone to fire enter or leave wins. Leaving any zone resets the
// directive to default, even when the pointer is still inside an enclosing
// zone; there is no zone stack.
//
// # Enabled switch
//
// [Engine.SetEnabled](false) removes every listener the engine holds, cancels
// the pending frame and resets the directive, so the host can show its native
// pointer. Zones survive and reattach on [Engine.SetEnabled](true).
//
// # Configuration
//
// [LoadConfig] reads an optional JSON, YAML or TOML file and POINTERFX_*
// environment variables on top of [DefaultConfig].
//
// # Scripted input
//
// [LoadTestScript] turns a JSON list of moves, presses, glides, waits and
// snapshots into a [TestRunner] that replays them through a Surface, one
// event per frame.
package pointerfx
