package viewer

import (
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Triangle half sizes in pixels, nose and wings.
const (
	noseLength = 7.0
	wingLength = 5.0
	wingAngle  = 2.5
)

// palette cycles for flocks beyond its length.
var palette = []color.RGBA{
	{R: 255, G: 60, B: 60, A: 255},
	{R: 60, G: 140, B: 255, A: 255},
	{R: 80, G: 220, B: 100, A: 255},
	{R: 255, G: 200, B: 40, A: 255},
	{R: 200, G: 90, B: 255, A: 255},
	{R: 40, G: 230, B: 230, A: 255},
}

func flockColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

// toScreen maps a world point, origin at the center with y up, to pixel
// coordinates with the origin top-left and y down.
func toScreen(p geometry.Vector2D, b geometry.Bounds) (float64, float64) {
	return p.X - b.Lower.X, b.Upper.Y - p.Y
}

// triangle returns the nose, right wing and left wing of an agent drawn at
// p facing heading, in screen coordinates.
func triangle(p geometry.Vector2D, heading float64, b geometry.Bounds) [3][2]float64 {
	x, y := toScreen(p, b)
	// y is flipped on screen so is the rotation
	angle := -heading
	return [3][2]float64{
		{x + math.Cos(angle)*noseLength, y + math.Sin(angle)*noseLength},
		{x + math.Cos(angle+wingAngle)*wingLength, y + math.Sin(angle+wingAngle)*wingLength},
		{x + math.Cos(angle-wingAngle)*wingLength, y + math.Sin(angle-wingAngle)*wingLength},
	}
}
