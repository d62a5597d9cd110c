package viewer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flocking"
)

const (
	panelWidth    = 240.0
	sectionHeight = 24.0
	titleHeight   = 28.0
)

// section is a titled run of widgets, one per flock plus the display one.
type section struct {
	title   string
	color   color.RGBA
	widgets []widget
}

// Panel is a scrollable column of sections drawn over the left edge of the
// window. It edits flock parameters in place between two ticks.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Visible       bool
	scroll        float64
	sections      []section

	BGColor     color.RGBA
	BorderColor color.RGBA
}

func NewPanel(x, y float64) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       panelWidth,
		Visible:     true,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 220},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

func (p *Panel) addSection(title string, clr color.RGBA, widgets ...widget) {
	p.sections = append(p.sections, section{title: title, color: clr, widgets: widgets})
}

// AddFlock binds four sliders to the steering parameters of f.
func (p *Panel) AddFlock(f *flocking.Flock, clr color.RGBA) {
	w := p.Width - 20
	p.addSection(string(f.ID), clr,
		newSlider("Radius", 5, 200, &f.Params.Radius, w),
		newSlider("Alignment", 0, 3, &f.Params.Alignment, w),
		newSlider("Cohesion", 0, 3, &f.Params.Cohesion, w),
		newSlider("Separation", 0, 3, &f.Params.Separation, w),
	)
}

// AddToggle adds a checkbox in a "Display" section.
func (p *Panel) AddToggle(label string, value *bool) {
	p.addSection("Display", color.RGBA{R: 220, G: 220, B: 220, A: 255}, newCheckbox(label, value))
}

func (p *Panel) contentHeight() float64 {
	h := titleHeight
	for _, s := range p.sections {
		h += sectionHeight
		for _, w := range s.widgets {
			h += w.height()
		}
	}
	return h
}

// scrollBy moves the content and keeps it within [0, content - viewport].
func (p *Panel) scrollBy(dy float64) {
	p.scroll -= dy * 20
	maxScroll := max(0, p.contentHeight()-p.Height)
	p.scroll = max(0, min(maxScroll, p.scroll))
}

// layout places every widget for the current scroll offset.
func (p *Panel) layout() {
	y := p.Y + titleHeight - p.scroll
	for _, s := range p.sections {
		y += sectionHeight
		for _, w := range s.widgets {
			w.moveTo(p.X+10, y)
			y += w.height()
		}
	}
}

// Update resizes the panel to the screen and feeds the mouse to its widgets.
func (p *Panel) Update(screenHeight float64) {
	p.Height = screenHeight - 2*p.Y
	if !p.Visible {
		return
	}
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && inside(p.X, p.Y, p.Width, p.Height, mx, my) {
		p.scrollBy(dy)
	}
	p.layout()

	// clicks on the title or outside the panel never reach a widget
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		inside(p.X, p.Y+titleHeight, p.Width, p.Height-titleHeight, mx, my)
	for _, s := range p.sections {
		for _, w := range s.widgets {
			w.update(mx, my, pressed)
		}
	}
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if !p.Visible {
		return
	}
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, "Flocks  [tab] hide", int(p.X+10), int(p.Y+6))

	top, bottom := p.Y+titleHeight, p.Y+p.Height
	y := p.Y + titleHeight - p.scroll
	for _, s := range p.sections {
		if y >= top && y+sectionHeight <= bottom {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), sectionHeight-4,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			vector.FillRect(screen, float32(p.X+5), float32(y), 4, sectionHeight-4, s.color, true)
			ebitenutil.DebugPrintAt(screen, s.title, int(p.X+14), int(y+3))
		}
		y += sectionHeight
		for _, w := range s.widgets {
			if y >= top && y+w.height() <= bottom {
				w.draw(screen)
			}
			y += w.height()
		}
	}
}
