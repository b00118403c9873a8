package favgen

import (
	"image"
	"sync"
)

var globalCache = &cache{}

// cache holds rendered masters for the lifetime of the process.
// Cached images are shared and must not be modified.
type cache struct {
	m sync.Map
}

func LoadRenderCache(key string) (*image.RGBA, bool) {
	if v, ok := globalCache.m.Load(key); ok {
		if img, ok := v.(*image.RGBA); ok {
			return img, true
		}
	}
	return nil, false
}

func StoreRenderCache(key string, img *image.RGBA) {
	if img == nil {
		return
	}
	globalCache.m.Store(key, img)
}
