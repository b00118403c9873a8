package favgen

import (
	"image"

	"github.com/disintegration/imaging"
)

// GaussianBlur returns a copy of src blurred with a Gaussian kernel of standard deviation sigma.
func GaussianBlur(src *image.RGBA, sigma float64) *image.RGBA {
	if sigma <= 0 {
		dst := image.NewRGBA(src.Bounds())
		copy(dst.Pix, src.Pix)
		return dst
	}
	return toRGBA(imaging.Blur(src, sigma))
}
