package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/flourish"
)

// Terminal cells are roughly twice as tall as wide; one cell covers this
// many scene units.
const (
	cellW = 8.0
	cellH = 16.0
)

// shades maps world alpha to a fill rune, from transparent to opaque.
var shades = []rune{' ', '░', '▒', '▓', '█'}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fps := fs.Int("fps", 30, "frames per second")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("preview: need exactly one document")
	}
	if *fps <= 0 {
		return errors.New("preview: -fps must be positive")
	}

	doc, err := flourish.LoadDocument(fs.Arg(0))
	if err != nil {
		return err
	}
	scene := flourish.NewScene()
	stage, err := scene.Build(doc)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen.PollEvent, events, done)

	dt := 1.0 / float64(*fps)
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC,
					ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				case ev.Key() == tcell.KeyEnter,
					ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					stage.Group.Toggle()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			scene.Update(dt)
			drawScene(screen, scene, stage)
		}
	}
}

// drawScene rasterises every sized node's world-space bounding box into
// terminal cells, shaded by world alpha.
func drawScene(screen tcell.Screen, scene *flourish.Scene, stage *flourish.Stage) {
	screen.Clear()
	scene.Root().Walk(func(n *flourish.Node) {
		if n.Width <= 0 || n.Height <= 0 {
			return
		}
		alpha := clampUnit(n.WorldAlpha() * n.Color.A)
		shade := shades[int(math.Round(alpha*float64(len(shades)-1)))]
		if shade == ' ' {
			return
		}
		c := n.Color
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(
			int32(clampUnit(c.R)*255), int32(clampUnit(c.G)*255), int32(clampUnit(c.B)*255)))

		x0, y0, x1, y1 := worldBounds(n)
		for cy := int(y0 / cellH); cy < int(math.Ceil(y1/cellH)); cy++ {
			for cx := int(x0 / cellW); cx < int(math.Ceil(x1/cellW)); cx++ {
				screen.SetContent(cx, cy, shade, nil, style)
			}
		}
	})

	state := stage.Group.State()
	status := fmt.Sprintf(" %s | flourishing: %t | playhead: %.2fs | space toggles, q quits ",
		stage.Container.Name, state.IsFlourishing, state.Playhead)
	for i, r := range []rune(status) {
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

// worldBounds returns the axis-aligned world box around n's rectangle.
func worldBounds(n *flourish.Node) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{0, 0}, {n.Width, 0}, {0, n.Height}, {n.Width, n.Height}} {
		wx, wy := n.LocalToWorld(corner[0], corner[1])
		x0, y0 = min(x0, wx), min(y0, wy)
		x1, y1 = max(x1, wx), max(y1, wy)
	}
	return max(x0, 0), max(y0, 0), x1, y1
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

// pollEvents forwards events from poll until poll returns nil, which closes
// events, or until done is closed.
func pollEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
