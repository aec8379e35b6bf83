// Package ebitenhost runs a flourish Scene in an Ebitengine window.
//
// Every visible node with a size is drawn as a tinted rectangle through its
// world transform, so flourish effects (opacity, translation, rotation,
// scale) show up exactly as the tween hosts render them.
package ebitenhost

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/flourish"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// TPS is the update rate; 0 keeps Ebitengine's default of 60.
	TPS int

	// ToggleOnInput makes clicks, taps and the space key toggle every group
	// in the scene.
	ToggleOnInput bool

	// ShowStats draws frame rates and group states in the top-left corner.
	ShowStats bool

	// CaptureDir, when set, makes F12 save the next frame there as a PNG.
	CaptureDir string
}

// WhitePixel is a 1x1 white image scaled to draw solid rectangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(toRGBA(flourish.ColorWhite))
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *flourish.Scene
	cfg   RunConfig
	op    ebiten.DrawImageOptions

	stats       overlay
	captureNext bool
}

// Run opens a window and drives scene until the window closes. Errors from
// the scene's update callback stop the loop and are returned.
func Run(scene *flourish.Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("ebitenhost: window size must be positive")
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(&game{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	if fn := g.scene.UpdateFunc(); fn != nil {
		if err := fn(); err != nil {
			return err
		}
	}
	if g.cfg.ToggleOnInput && toggled() {
		for _, grp := range g.scene.Groups() {
			grp.Toggle()
		}
	}
	if g.cfg.CaptureDir != "" && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.captureNext = true
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.scene.Update(dt)
	if g.cfg.ShowStats {
		g.stats.update(g.scene, dt)
	}
	return nil
}

// toggled reports a click, tap or space press this tick.
func toggled() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(toRGBA(g.scene.ClearColor))
	g.scene.Root().Walk(func(n *flourish.Node) {
		g.drawNode(screen, n)
	})

	// Captured before the overlay so stats never end up in the image.
	if g.captureNext {
		g.captureNext = false
		path, err := capture(screen, g.cfg.CaptureDir, captureLabel(g.scene))
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[flourish] %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "[flourish] captured %s\n", path)
		}
	}
	if g.cfg.ShowStats {
		g.stats.draw(screen)
	}
}

// captureLabel names a capture after the first group and its direction.
func captureLabel(scene *flourish.Scene) string {
	groups := scene.Groups()
	if len(groups) == 0 {
		return ""
	}
	g := groups[0]
	if g.Flourishing() {
		return g.Name + "-flourishing"
	}
	return g.Name + "-withered"
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// drawNode draws n as a rectangle of its Width and Height.
func (g *game) drawNode(screen *ebiten.Image, n *flourish.Node) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	alpha := n.WorldAlpha() * n.Color.A
	if alpha <= 0 {
		return
	}

	op := &g.op
	op.GeoM.Reset()
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(worldGeoM(n.WorldTransform()))

	op.ColorScale.Reset()
	a := float32(alpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)

	screen.DrawImage(WhitePixel, op)
}

// worldGeoM converts a flourish affine matrix [a, b, c, d, tx, ty] to an
// ebiten.GeoM.
func worldGeoM(m [6]float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.SetElement(0, 0, m[0])
	geo.SetElement(1, 0, m[1])
	geo.SetElement(0, 1, m[2])
	geo.SetElement(1, 1, m[3])
	geo.SetElement(0, 2, m[4])
	geo.SetElement(1, 2, m[5])
	return geo
}
