package favgen

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

var (
	faviconGradient = Gradient{
		Start: color.RGBA{0x0e, 0xa5, 0xe9, 0xff}, // #0EA5E9
		End:   color.RGBA{0x63, 0x66, 0xf1, 0xff}, // #6366F1
		Axis:  AxisDiagonal,
	}
	mytabGradient = Gradient{
		Start: color.RGBA{0x1e, 0x40, 0xaf, 0xff}, // #1E40AF
		End:   color.RGBA{0x3b, 0x82, 0xf6, 0xff}, // #3B82F6
		Axis:  AxisVertical,
	}

	shadowColor  = color.NRGBA{0, 0, 0, 90}
	tabColor     = color.NRGBA{255, 255, 255, 245}
	outlineColor = color.NRGBA{15, 23, 42, 28} // slate-900
	tileColor    = color.NRGBA{15, 23, 42, 230}
)

const (
	faviconCornerRatio = 0.22
	highlightAlpha     = 55
)

// FaviconShape is the rounded square behind the browser tab icon.
func FaviconShape(size int) RoundedRect {
	return RoundedSquare(size, float64(size)*faviconCornerRatio)
}

// MytabShape is the rounded square behind the letter icon.
// Its corners are measured from integer pixel coordinates: pixel (x, y) is kept
// when (x, y) lies within size/8 of the corner center (r, r), (size-r, r) and so on.
// Shifting the box by half a pixel makes center sampling hit those coordinates.
func MytabShape(size int) RoundedRect {
	s := float64(size)
	return RoundedRect{X0: 0.5, Y0: 0.5, X1: s + 0.5, Y1: s + 0.5, Radius: float64(size / 8)}
}

// RenderFavicon renders the browser tab icon on a size x size canvas.
func RenderFavicon(size int) *image.RGBA {
	s := float64(size)
	base := FaviconShape(size).Mask(size)
	img := Clip(faviconGradient.Fill(size), base)
	Over(img, Clip(highlight(size), base), image.Point{})

	tab := RoundedRect{X0: s * 0.18, Y0: s * 0.30, X1: s * 0.82, Y1: s * 0.80, Radius: s * 0.10}
	header := RoundedRect{X0: tab.X0, Y0: s * 0.22, X1: s * 0.58, Y1: s * 0.36, Radius: s * 0.09}

	shadow := NewLayer(size)
	Paint(shadow, tab.Mask(size), shadowColor)
	Paint(shadow, header.Mask(size), shadowColor)
	Over(img, GaussianBlur(shadow, s*0.02), image.Pt(0, int(s*0.02)))

	layer := NewLayer(size)
	Paint(layer, tab.Mask(size), tabColor)
	Paint(layer, header.Mask(size), tabColor)
	Paint(layer, tab.Outline(size, math.Max(1, math.Floor(s*0.01))), outlineColor)
	for _, tile := range tiles(size, tab) {
		Paint(layer, tile.Mask(size), tileColor)
	}
	Over(img, layer, image.Point{})
	// The blurred shadow may bleed past the tab; keep the corners clear.
	return Clip(img, base)
}

// highlight is a white wash that fades out from the top-left corner.
func highlight(size int) *image.RGBA {
	img := NewLayer(size)
	d := float64(max(size-1, 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := 1.0 - (float64(x)/d*0.75 + float64(y)/d*0.75)
			if t <= 0 {
				continue
			}
			a := uint8(highlightAlpha * math.Min(1, t))
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}

// tiles lays out the 2x2 grid inside the tab body.
func tiles(size int, tab RoundedRect) []RoundedRect {
	s := float64(size)
	innerLeft := tab.X0 + s*0.12
	innerRight := tab.X1 - s*0.12
	innerTop := tab.Y0 + s*0.14
	innerBottom := tab.Y1 - s*0.12

	spacing := s * 0.05
	tile := math.Min((innerRight-innerLeft-spacing)/2, (innerBottom-innerTop-spacing)/2)
	grid := tile*2 + spacing

	startX := (s - grid) / 2
	startY := (tab.Y0+tab.Y1)/2 - grid/2 + s*0.02

	var rects []RoundedRect
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			x0 := startX + float64(col)*(tile+spacing)
			y0 := startY + float64(row)*(tile+spacing)
			rects = append(rects, RoundedRect{X0: x0, Y0: y0, X1: x0 + tile, Y1: y0 + tile, Radius: tile * 0.25})
		}
	}
	return rects
}

// RenderMytab renders the letter icon natively at size x size.
func RenderMytab(size int) *image.RGBA {
	base := MytabShape(size).Mask(size)
	img := Clip(mytabGradient.Fill(size), base)

	var r vector.Rasterizer
	r.Reset(size, size)
	pts := letterM(size)
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()

	glyph := NewLayer(size)
	r.Draw(glyph, glyph.Bounds(), image.White, image.Point{})
	draw.DrawMask(img, img.Bounds(), glyph, image.Point{}, base, image.Point{}, draw.Over)
	return img
}

// letterM returns the polygon approximating an "M" inside the margins.
func letterM(size int) [][2]float32 {
	s := float64(size)
	margin := s * 0.15
	left, right := margin, s-margin
	bottom := s - margin
	top := margin + s*0.16
	mid := bottom - s*0.12
	pt := func(x, y float64) [2]float32 { return [2]float32{float32(x), float32(y)} }
	return [][2]float32{
		pt(left, top),
		pt(left, bottom),
		pt(s/2, mid),
		pt(right, bottom),
		pt(right, top),
	}
}
