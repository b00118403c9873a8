package favgen

import (
	"encoding/json"
	"fmt"
	"image"
	"slices"

	"github.com/k1LoW/errors"
)

// Format is the container format of an exported file.
type Format string

const (
	FormatPNG Format = "png"
	FormatICO Format = "ico"
)

// Target describes one exported file.
type Target struct {
	Name   string `json:"name"`
	Size   int    `json:"size"`
	Format Format `json:"format"`
	// Sizes lists the resolutions embedded in an ICO container.
	Sizes []int `json:"sizes,omitempty"`
}

// Set is a fixed icon design together with the files it is exported to.
type Set struct {
	Name string

	// MasterSize is the working resolution that every target is resampled from.
	// Zero means the design is rendered natively at each target size.
	MasterSize int

	Render func(size int) *image.RGBA

	// Shape is the rounded square that clips the design at a given size.
	Shape func(size int) RoundedRect

	Targets []Target
}

// Favicon returns the browser favicon set.
func Favicon() *Set {
	return &Set{
		Name:       "favicon",
		MasterSize: 512,
		Render:     RenderFavicon,
		Shape:      FaviconShape,
		Targets: []Target{
			{Name: "favicon.ico", Size: 256, Format: FormatICO, Sizes: []int{16, 32, 48, 64, 128, 256}},
			{Name: "favicon-16x16.png", Size: 16, Format: FormatPNG},
			{Name: "favicon-32x32.png", Size: 32, Format: FormatPNG},
			{Name: "apple-touch-icon.png", Size: 180, Format: FormatPNG},
		},
	}
}

// Mytab returns the app icon set.
func Mytab() *Set {
	s := &Set{
		Name:   "mytab",
		Render: RenderMytab,
		Shape:  MytabShape,
	}
	for _, size := range []int{16, 32, 48, 128} {
		s.Targets = append(s.Targets, Target{Name: fmt.Sprintf("mytab-%d.png", size), Size: size, Format: FormatPNG})
	}
	return s
}

// Sets returns all known icon sets.
func Sets() []*Set {
	return []*Set{Favicon(), Mytab()}
}

// Lookup returns the set with the given name.
func Lookup(name string) (*Set, error) {
	idx := slices.IndexFunc(Sets(), func(s *Set) bool { return s.Name == name })
	if idx < 0 {
		return nil, errors.WithStack(fmt.Errorf("unknown icon set: %s", name))
	}
	return Sets()[idx], nil
}

type manifest struct {
	Name       string   `json:"name"`
	MasterSize int      `json:"master_size,omitempty"`
	Targets    []Target `json:"targets"`
}

// Manifest returns a JSON description of the files the set produces.
func (s *Set) Manifest() (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	return json.MarshalIndent(&manifest{
		Name:       s.Name,
		MasterSize: s.MasterSize,
		Targets:    s.Targets,
	}, "", "  ")
}

// Image returns the design at size x size, resampled from the master when the set has one.
func (s *Set) Image(size int) *image.RGBA {
	if s.MasterSize == 0 {
		return s.render(size)
	}
	return Resize(s.render(s.MasterSize), size)
}

func (s *Set) render(size int) *image.RGBA {
	key := fmt.Sprintf("%s@%d", s.Name, size)
	if img, ok := LoadRenderCache(key); ok {
		return img
	}
	img := s.Render(size)
	StoreRenderCache(key, img)
	return img
}
