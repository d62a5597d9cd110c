// Package viewer draws a flocking.World in an ebiten window and advances it
// once per ebiten tick.
package viewer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// StepFunc advances the world by dt seconds inside b.
type StepFunc func(dt float64, b geometry.Bounds) error

type Game struct {
	world  *flocking.World
	step   StepFunc
	bounds geometry.Bounds

	panel      *Panel
	paused     bool
	showRadius bool
	ticks      uint64

	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame shows w inside bounds until the first Layout call resizes them
// to the window.
func NewGame(w *flocking.World, b geometry.Bounds, step StepFunc) *Game {
	g := &Game{
		world:  w,
		step:   step,
		bounds: b,
		panel:  NewPanel(10, 10),
	}
	if w != nil {
		for i, f := range w.Flocks() {
			g.panel.AddFlock(f, flockColor(i))
		}
	}
	g.panel.AddToggle("Safe radius", &g.showRadius)
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Keyboard toggles
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Visible = !g.panel.Visible
	}

	// 2. Tuning panel, edits land before the next tick reads them
	g.panel.Update(g.bounds.Height())
	if g.paused {
		return nil
	}

	// 3. Advance the world by one fixed tick
	dt := 1.0 / float64(ebiten.TPS())
	if err := g.step(dt, g.bounds); err != nil {
		return fmt.Errorf("tick %d: %w", g.ticks, err)
	}
	g.ticks++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	// 1. One batch of triangles per flock
	for i, f := range g.world.Flocks() {
		clr := flockColor(i)
		for _, idx := range f.Members {
			a := g.world.Agent(idx)
			if g.showRadius {
				x, y := toScreen(a.Position, g.bounds)
				vector.StrokeCircle(screen, float32(x), float32(y), float32(a.Params.SafeRadius), 1,
					color.RGBA{R: clr.R, G: clr.G, B: clr.B, A: 60}, true)
			}
			if len(g.vertices)+3 > maxBatchVertices {
				g.flush(screen)
			}
			g.appendAgent(a, clr)
		}
		g.flush(screen)
	}

	// 2. Tuning panel
	g.panel.Draw(screen)

	// 3. Display timing breakdown
	state := "running"
	if g.paused {
		state = "paused"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nAgents: %d  Flocks: %d\nTick: %d (%s)\n\nUpdate: %.2fms\nDraw:   %.2fms\n\n[space] pause",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.world.Len(),
		len(g.world.Flocks()),
		g.ticks,
		state,
		g.updateAvg,
		g.drawAvg)
	// Print stats on the right side
	ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-170, 10)
}

// indices are uint16
const maxBatchVertices = 1 << 16

func (g *Game) flush(screen *ebiten.Image) {
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}

func (g *Game) appendAgent(a *flocking.Agent, clr color.RGBA) {
	r := float32(clr.R) / 255
	gr := float32(clr.G) / 255
	bl := float32(clr.B) / 255

	base := uint16(len(g.vertices))
	for _, p := range triangle(a.Position, a.Heading, g.bounds) {
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX: float32(p[0]),
			DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: gr, ColorB: bl, ColorA: 1,
		})
	}
	g.indices = append(g.indices, base, base+1, base+2)
}

// Layout follows the window: the toroidal domain is always the visible area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.bounds = geometry.NewBounds(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Bounds returns the domain used by the next tick.
func (g *Game) Bounds() geometry.Bounds { return g.bounds }
