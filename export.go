package favgen

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/k1LoW/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// Resize resamples src into a new size x size canvas with a Lanczos filter.
func Resize(src image.Image, size int) *image.RGBA {
	return toRGBA(imaging.Resize(src, size, size, imaging.Lanczos))
}

// EncodePNG writes img as PNG with the best compression.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return errors.WithStack(enc.Encode(w, img))
}

// Encode renders the target and returns the encoded file contents.
func (s *Set) Encode(t Target) (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	buf := new(bytes.Buffer)
	switch t.Format {
	case FormatPNG:
		if err := EncodePNG(buf, s.Image(t.Size)); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", t.Name, err)
		}
	case FormatICO:
		if len(t.Sizes) == 0 {
			return nil, fmt.Errorf("no sizes to embed in %s", t.Name)
		}
		base := s.Image(t.Size)
		images := make([]image.Image, 0, len(t.Sizes))
		for _, size := range t.Sizes {
			if size == t.Size {
				images = append(images, base)
				continue
			}
			images = append(images, Resize(base, size))
		}
		if err := ico.EncodeAll(buf, images); err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", t.Name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q for %s", t.Format, t.Name)
	}
	return buf.Bytes(), nil
}
