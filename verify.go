package favgen

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"

	"github.com/corona10/goimagehash"
	"github.com/k1LoW/errors"
	ico "github.com/sergeymakinen/go-ico"
)

// pHashThreshold is the largest perceptual hash distance still treated as the same picture.
const pHashThreshold = 5

// Image is an encoded picture with lazily computed fingerprints.
type Image struct {
	i        image.Image
	b        []byte
	checksum uint32
	pHash    *goimagehash.ImageHash
}

// NewImage wraps encoded file contents. i may be nil and is decoded on demand.
func NewImage(b []byte, i image.Image) *Image {
	return &Image{b: b, i: i}
}

func (i *Image) Checksum() uint32 {
	if i == nil {
		return 0
	}
	if i.checksum == 0 {
		i.checksum = crc32.ChecksumIEEE(i.b)
	}
	return i.checksum
}

func (i *Image) Image() (image.Image, error) {
	if i == nil {
		return nil, fmt.Errorf("image is nil")
	}
	if i.i == nil {
		img, err := png.Decode(bytes.NewReader(i.b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		i.i = img
	}
	return i.i, nil
}

func (i *Image) PHash() (_ *goimagehash.ImageHash, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i.pHash == nil {
		img, err := i.Image()
		if err != nil {
			return nil, err
		}
		pHash, err := goimagehash.PerceptionHash(img)
		if err != nil {
			return nil, fmt.Errorf("failed to compute perceptual hash: %w", err)
		}
		i.pHash = pHash
	}
	return i.pHash, nil
}

// Equivalent reports whether both images hold the same picture.
// Identical encoded bytes match directly; otherwise the perceptual hashes are compared.
func (i *Image) Equivalent(ii *Image) bool {
	if i == nil || ii == nil {
		return false
	}
	if len(i.b) > 0 && i.Checksum() == ii.Checksum() && bytes.Equal(i.b, ii.b) {
		return true
	}
	aHash, err := i.PHash()
	if err != nil {
		return false
	}
	bHash, err := ii.PHash()
	if err != nil {
		return false
	}
	distance, err := aHash.Distance(bHash)
	if err != nil {
		return false
	}
	return distance < pHashThreshold
}

// Result is the outcome of verifying one target.
type Result struct {
	Target Target
	Path   string
	Err    error
}

func (r *Result) OK() bool {
	return r.Err == nil
}

// Verify checks the files of the set in dir against a fresh rendering.
func Verify(s *Set, dir string) (_ []*Result, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var results []*Result
	for _, t := range s.Targets {
		p := filepath.Join(dir, t.Name)
		want, err := s.Encode(t)
		if err != nil {
			return nil, err
		}
		results = append(results, &Result{
			Target: t,
			Path:   p,
			Err:    verifyTarget(s, t, p, want),
		})
	}
	return results, nil
}

// Failed reports whether any result carries an error.
func Failed(results []*Result) bool {
	return slices.ContainsFunc(results, func(r *Result) bool { return !r.OK() })
}

func verifyTarget(s *Set, t Target, p string, want []byte) error {
	b, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	var got, expected *Image
	switch t.Format {
	case FormatPNG:
		img, err := png.Decode(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", t.Name, err)
		}
		if err := checkSquare(img, t.Size); err != nil {
			return err
		}
		if s.MasterSize == 0 {
			if err := checkCorners(img, s.Shape(t.Size)); err != nil {
				return err
			}
		}
		got = NewImage(b, img)
		expected = NewImage(want, nil)
	case FormatICO:
		images, err := ico.DecodeAll(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", t.Name, err)
		}
		var sizes []int
		for _, img := range images {
			sizes = append(sizes, img.Bounds().Dx())
			if err := checkSquare(img, img.Bounds().Dx()); err != nil {
				return err
			}
		}
		if !slices.Equal(sizes, t.Sizes) {
			return fmt.Errorf("%s embeds sizes %v, want %v", t.Name, sizes, t.Sizes)
		}
		if bytes.Equal(b, want) {
			return nil
		}
		base := s.Image(t.Size)
		for _, img := range images {
			size := img.Bounds().Dx()
			ref := base
			if size != t.Size {
				ref = Resize(base, size)
			}
			if !NewImage(nil, img).Equivalent(NewImage(nil, ref)) {
				return fmt.Errorf("%s: %dx%d entry differs from the rendered design", t.Name, size, size)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q for %s", t.Format, t.Name)
	}
	if !got.Equivalent(expected) {
		return fmt.Errorf("%s differs from the rendered design", t.Name)
	}
	return nil
}

func checkSquare(img image.Image, size int) error {
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		return fmt.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), size, size)
	}
	return nil
}

// checkCorners fails when a pixel outside the rounded square is not fully transparent.
func checkCorners(img image.Image, shape RoundedRect) error {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if shape.Contains(x, y) {
				continue
			}
			if _, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA(); a != 0 {
				return fmt.Errorf("pixel (%d,%d) outside the rounded corner has alpha %d", x, y, a>>8)
			}
		}
	}
	return nil
}
