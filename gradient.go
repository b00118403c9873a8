package favgen

import (
	"image"
	"image/color"
)

// Axis is the direction along which a Gradient interpolates.
type Axis int

const (
	// AxisDiagonal interpolates along x+y, from the top-left corner to the bottom-right corner.
	AxisDiagonal Axis = iota
	// AxisVertical interpolates along y only.
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisDiagonal:
		return "diagonal"
	case AxisVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Gradient is a two-stop linear gradient.
type Gradient struct {
	Start color.RGBA
	End   color.RGBA
	Axis  Axis
}

// At returns the opaque color at the normalized position t.
// t is clamped to [0, 1].
func (g Gradient) At(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	return color.RGBA{
		R: lerp(g.Start.R, g.End.R, t),
		G: lerp(g.Start.G, g.End.G, t),
		B: lerp(g.Start.B, g.End.B, t),
		A: 0xff,
	}
}

// Position returns the normalized position of the pixel (x, y) on a size x size canvas.
func (g Gradient) Position(x, y, size int) float64 {
	switch g.Axis {
	case AxisVertical:
		if size <= 0 {
			return 0
		}
		return float64(y) / float64(size)
	default:
		denom := 1
		if size > 1 {
			denom = 2 * (size - 1)
		}
		return float64(x+y) / float64(denom)
	}
}

// Fill returns a fully opaque size x size canvas painted with the gradient.
func (g Gradient) Fill(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, g.At(g.Position(x, y, size)))
		}
	}
	return img
}

// lerp truncates toward zero like an integer conversion of the interpolated value.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}
