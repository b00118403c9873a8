package favgen

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// RoundedRect is a rectangle with circular corners in canvas coordinates.
// Pixel (x, y) is sampled at its center (x+0.5, y+0.5).
type RoundedRect struct {
	X0, Y0 float64
	X1, Y1 float64
	Radius float64
}

// RoundedSquare returns a rounded rectangle covering a whole size x size canvas.
func RoundedSquare(size int, radius float64) RoundedRect {
	return RoundedRect{X0: 0, Y0: 0, X1: float64(size), Y1: float64(size), Radius: radius}
}

// radius returns the corner radius clamped to half the shorter side.
func (r RoundedRect) radius() float64 {
	half := min(r.X1-r.X0, r.Y1-r.Y0) / 2
	return max(0, min(r.Radius, half))
}

// Distance returns the signed distance from (x, y) to the outline.
// It is negative inside, zero on the outline and positive outside.
func (r RoundedRect) Distance(x, y float64) float64 {
	rad := r.radius()
	cx, cy := (r.X0+r.X1)/2, (r.Y0+r.Y1)/2
	bx, by := (r.X1-r.X0)/2, (r.Y1-r.Y0)/2
	qx := math.Abs(x-cx) - bx + rad
	qy := math.Abs(y-cy) - by + rad
	ox, oy := math.Max(qx, 0), math.Max(qy, 0)
	outside := math.Sqrt(ox*ox + oy*oy)
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - rad
}

// Contains reports whether the center of pixel (x, y) lies inside the shape.
func (r RoundedRect) Contains(x, y int) bool {
	return r.Distance(float64(x)+0.5, float64(y)+0.5) <= 0
}

// Mask returns a size x size mask that is opaque where the pixel center is inside the shape.
func (r RoundedRect) Mask(size int) *image.Alpha {
	return distanceMask(size, r, func(d float64) bool {
		return d <= 0
	})
}

// Outline returns a size x size mask of the inner band of the given width along the outline.
func (r RoundedRect) Outline(size int, width float64) *image.Alpha {
	return distanceMask(size, r, func(d float64) bool {
		return d <= 0 && d > -width
	})
}

func distanceMask(size int, r RoundedRect, in func(d float64) bool) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if in(r.Distance(float64(x)+0.5, float64(y)+0.5)) {
				mask.Pix[mask.PixOffset(x, y)] = 0xff
			}
		}
	}
	return mask
}

// Clip returns a new canvas that holds src only where mask is set.
func Clip(src image.Image, mask *image.Alpha) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	draw.DrawMask(dst, b, src, b.Min, mask, b.Min, draw.Over)
	return dst
}
