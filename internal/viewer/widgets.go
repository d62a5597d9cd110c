package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// widget is anything the panel can stack vertically.
type widget interface {
	update(mx, my int, pressed bool)
	draw(screen *ebiten.Image)
	height() float64
	moveTo(x, y float64)
}

func inside(x, y, w, h float64, mx, my int) bool {
	return float64(mx) >= x && float64(mx) <= x+w &&
		float64(my) >= y && float64(my) <= y+h
}

// Slider edits the float it is bound to, live.
type Slider struct {
	Label    string
	Min, Max float64
	X, Y     float64
	W, H     float64
	value    *float64
}

func newSlider(label string, min, max float64, value *float64, width float64) *Slider {
	return &Slider{Label: label, Min: min, Max: max, W: width, H: 12, value: value}
}

func (s *Slider) Value() float64 { return *s.value }

// valueAt converts a cursor x into a value in [Min, Max].
func (s *Slider) valueAt(mx int) float64 {
	p := (float64(mx) - s.X) / s.W
	v := s.Min + p*(s.Max-s.Min)
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

func (s *Slider) update(mx, my int, pressed bool) {
	if pressed && inside(s.X, s.Y, s.W, s.H, mx, my) {
		*s.value = s.valueAt(mx)
	}
}

func (s *Slider) draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.Label, int(s.X), int(s.Y)-16)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (*s.value - s.Min) / (s.Max - s.Min)
	ratio = max(0, min(1, ratio))
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}

func (s *Slider) height() float64 { return s.H + 22 }

// moveTo places the bar; its label sits above it.
func (s *Slider) moveTo(x, y float64) { s.X, s.Y = x, y+16 }

// Checkbox toggles the bool it is bound to.
type Checkbox struct {
	Label   string
	X, Y    float64
	Size    float64
	value   *bool
	clicked bool // debounce: one toggle per press
}

func newCheckbox(label string, value *bool) *Checkbox {
	return &Checkbox{Label: label, Size: 14, value: value}
}

func (c *Checkbox) update(mx, my int, pressed bool) {
	if pressed && inside(c.X, c.Y, c.Size, c.Size, mx, my) {
		if !c.clicked {
			*c.value = !*c.value
			c.clicked = true
		}
		return
	}
	c.clicked = false
}

func (c *Checkbox) draw(screen *ebiten.Image) {
	vector.StrokeRect(screen, float32(c.X), float32(c.Y), float32(c.Size), float32(c.Size), 2,
		color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	if *c.value {
		vector.FillRect(screen, float32(c.X+3), float32(c.Y+3), float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}

func (c *Checkbox) height() float64 { return c.Size + 8 }

func (c *Checkbox) moveTo(x, y float64) { c.X, c.Y = x, y }
