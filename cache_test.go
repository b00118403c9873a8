package favgen

import (
	"image"
	"testing"
)

func clearCache() {
	globalCache = &cache{}
}

func TestRenderCache(t *testing.T) {
	clearCache()
	defer clearCache() // don't use t.Cleanup here, want to clear before next test

	if _, ok := LoadRenderCache("mytab@16"); ok {
		t.Fatal("LoadRenderCache found an entry in an empty cache")
	}
	StoreRenderCache("nil", nil)
	if _, ok := LoadRenderCache("nil"); ok {
		t.Error("StoreRenderCache stored a nil image")
	}

	calls := 0
	s := &Set{
		Name: "counting",
		Render: func(size int) *image.RGBA {
			calls++
			return NewLayer(size)
		},
	}
	a := s.Image(16)
	b := s.Image(16)
	if calls != 1 {
		t.Errorf("Render called %d times, want 1", calls)
	}
	if a != b {
		t.Error("cached rendering was not reused")
	}
	s.Image(32)
	if calls != 2 {
		t.Errorf("Render called %d times, want 2", calls)
	}
}
