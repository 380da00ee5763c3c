package ebitenfx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pointerfx"
)

// drawStats prints FPS, TPS and the live directive in the top-left corner.
func drawStats(dst *ebiten.Image, f pointerfx.Frame) {
	ebitenutil.DebugPrintAt(dst, statsLine(ebiten.ActualFPS(), ebiten.ActualTPS(), f), 4, 4)
}

func statsLine(fps, tps float64, f pointerfx.Frame) string {
	kind := f.Directive.Kind.String()
	if !f.Visible {
		kind = "off"
	}
	return fmt.Sprintf("FPS: %.0f  TPS: %.0f  %s", fps, tps, kind)
}
