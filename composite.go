package favgen

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Paint replaces the pixels of layer under mask with c.
// Unlike Over, the previous content of layer is not blended in.
func Paint(layer *image.RGBA, mask *image.Alpha, c color.NRGBA) {
	p := color.RGBAModel.Convert(c).(color.RGBA)
	b := layer.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			layer.SetRGBA(x, y, p)
		}
	}
}

// Over alpha-composites src onto dst with its origin moved by offset.
func Over(dst *image.RGBA, src image.Image, offset image.Point) {
	sb := src.Bounds()
	draw.Draw(dst, sb.Add(offset), src, sb.Min, draw.Over)
}

// NewLayer returns a transparent size x size canvas.
func NewLayer(size int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, size, size))
}

// toRGBA converts img into a premultiplied canvas anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
