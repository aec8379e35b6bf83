package ebitenhost

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/flourish"
)

// overlayRefresh is how often the stats text is rebuilt, in seconds.
const overlayRefresh = 0.5

// overlay prints frame rates and group states in the window corner.
type overlay struct {
	text    string
	elapsed float64
}

func (o *overlay) update(scene *flourish.Scene, dt float64) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.text = statsText(ebiten.ActualFPS(), ebiten.ActualTPS(), scene.Groups())
}

func (o *overlay) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, o.text)
}

// statsText formats the overlay: rates first, then one line per group.
func statsText(fps, tps float64, groups []*flourish.Group) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	for i, g := range groups {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("group%d", i)
		}
		dir := "withered"
		if g.Flourishing() {
			dir = "flourishing"
		}
		d := g.Durations()
		fmt.Fprintf(&b, "%s: %s (%.2fs/%.2fs)\n", name, dir, d.Flourish, d.Wither)
	}
	return b.String()
}
