// Package ebitenfx hosts a pointerfx engine in an Ebitengine game.
//
// Ebitengine has no pointer events, so Input polls the cursor (or the first
// touch) once per Update and turns changes into surface moves, presses and
// releases. Game.Update ticks a pointerfx.TickScheduler, which makes
// Update the engine's frame primitive, and Game.Draw renders the latest
// frame with vector strokes and triangles.
//
// The quickest way in is Run:
//
//	err := ebitenfx.Run(ebitenfx.RunConfig{
//		Title:  "Save the Date",
//		Width:  1280,
//		Height: 720,
//		Config: pointerfx.DefaultConfig(),
//		Setup: func(g *ebitenfx.Game) {
//			gallery := pointerfx.NewRegion("gallery", 100, 100, pointerfx.HitRect{Width: 400, Height: 300})
//			g.Surface().AddRegion(gallery)
//			g.Engine().BindZone(gallery, pointerfx.Descriptor{Kind: "gallery", Label: "View"})
//		},
//	})
package ebitenfx
