// Package termfx hosts a pointerfx engine in a terminal.
//
// Mouse events from a tcell screen are mapped from cells to pixel
// coordinates through a Grid and fed into a pointerfx.Surface. The frame
// loop ticks a pointerfx.TickScheduler, and every frame the four layers are
// rasterized into cells. A short sine tick plays on press when an audio
// device is available.
//
//	err := termfx.Run(termfx.RunConfig{
//		Config: pointerfx.DefaultConfig(),
//		Setup: func(h *termfx.Host) {
//			rsvp := h.Grid().Region("rsvp", 4, 2, 12, 3)
//			h.Surface().AddRegion(rsvp)
//			h.Engine().BindZone(rsvp, pointerfx.Descriptor{Kind: "button", Label: "RSVP"})
//		},
//	})
package termfx
