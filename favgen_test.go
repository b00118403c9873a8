package favgen

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	ico "github.com/sergeymakinen/go-ico"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		set       *Set
		wantFiles []string
	}{
		{
			set:       Favicon(),
			wantFiles: []string{"apple-touch-icon.png", "favicon-16x16.png", "favicon-32x32.png", "favicon.ico"},
		},
		{
			set:       Mytab(),
			wantFiles: []string{"mytab-128.png", "mytab-16.png", "mytab-32.png", "mytab-48.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.set.Name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "icons")
			g, err := New(WithOutDir(dir))
			if err != nil {
				t.Fatal(err)
			}
			paths, err := g.Generate(context.Background(), tt.set)
			if err != nil {
				t.Fatal(err)
			}
			if len(paths) != len(tt.set.Targets) {
				t.Fatalf("got %d paths, want %d", len(paths), len(tt.set.Targets))
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, e := range entries {
				got = append(got, e.Name())
			}
			sort.Strings(got)
			if diff := cmp.Diff(tt.wantFiles, got); diff != "" {
				t.Error(diff)
			}

			for _, target := range tt.set.Targets {
				b, err := os.ReadFile(filepath.Join(dir, target.Name))
				if err != nil {
					t.Fatal(err)
				}
				switch target.Format {
				case FormatPNG:
					img, err := png.Decode(bytes.NewReader(b))
					if err != nil {
						t.Fatalf("%s: %v", target.Name, err)
					}
					if got := img.Bounds(); got != image.Rect(0, 0, target.Size, target.Size) {
						t.Errorf("%s bounds = %v, want %dx%d", target.Name, got, target.Size, target.Size)
					}
				case FormatICO:
					images, err := ico.DecodeAll(bytes.NewReader(b))
					if err != nil {
						t.Fatalf("%s: %v", target.Name, err)
					}
					var sizes []int
					for _, img := range images {
						sizes = append(sizes, img.Bounds().Dx())
					}
					if diff := cmp.Diff(target.Sizes, sizes); diff != "" {
						t.Errorf("%s sizes: %s", target.Name, diff)
					}
				}
			}
		})
	}
}

func TestGenerateMytabCorners(t *testing.T) {
	dir := t.TempDir()
	g, err := New(WithOutDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(context.Background(), Mytab()); err != nil {
		t.Fatal(err)
	}
	for _, target := range Mytab().Targets {
		f, err := os.Open(filepath.Join(dir, target.Name))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := img.(*image.NRGBA); !ok {
			if _, ok := img.(*image.RGBA); !ok {
				t.Errorf("%s decoded as %T, want an RGBA image", target.Name, img)
			}
		}
		last := target.Size - 1
		for _, p := range []image.Point{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0 {
				t.Errorf("%s corner %v alpha = %d, want 0", target.Name, p, a>>8)
			}
		}
		if err := checkCorners(img, MytabShape(target.Size)); err != nil {
			t.Errorf("%s: %v", target.Name, err)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, s := range Sets() {
		t.Run(s.Name, func(t *testing.T) {
			dirs := []string{t.TempDir(), t.TempDir()}
			for _, dir := range dirs {
				// Drop cached masters so each run renders from scratch.
				globalCache = &cache{}
				g, err := New(WithOutDir(dir))
				if err != nil {
					t.Fatal(err)
				}
				if _, err := g.Generate(context.Background(), s); err != nil {
					t.Fatal(err)
				}
			}
			for _, target := range s.Targets {
				a, err := os.ReadFile(filepath.Join(dirs[0], target.Name))
				if err != nil {
					t.Fatal(err)
				}
				b, err := os.ReadFile(filepath.Join(dirs[1], target.Name))
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(a, b) {
					t.Errorf("%s differs between runs", target.Name)
				}
			}
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	dir := t.TempDir()
	g, err := New(WithOutDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := g.Generate(ctx, Mytab())
	if err == nil {
		t.Fatal("Generate() error = nil, want error")
	}
	if len(paths) != 0 {
		t.Errorf("Generate() wrote %v", paths)
	}
}

func TestGenerateUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := New(WithOutDir(filepath.Join(file, "icons")))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.Generate(context.Background(), Mytab()); err == nil {
		t.Error("Generate() error = nil, want error")
	}
}

func TestNew(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if got := g.OutDir(); got != defaultOutDir {
		t.Errorf("OutDir() = %q, want %q", got, defaultOutDir)
	}
	if _, err := New(WithOutDir("")); err == nil {
		t.Error("New(WithOutDir(\"\")) error = nil, want error")
	}
}
