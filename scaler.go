package ninepatch

import (
	"slices"

	"github.com/gogpu/ninepatch/internal/cache"
)

// CacheStats is a snapshot of Scaler cache counters.
type CacheStats = cache.Stats

// Size is a target size in pixels.
type Size struct {
	Width, Height int
}

// hashSize mixes both axes into the low bits used for shard selection.
func hashSize(s Size) uint64 {
	return uint64(uint32(s.Width))*0x9E3779B97F4A7C15 ^ uint64(uint32(s.Height))*0xC2B2AE3D27D4EB4F
}

// Scaler memoizes the patch grids of one Drawable by target size.
// It is safe for concurrent use. Every call returns a slice owned by the
// caller; cached grids are never handed out directly.
type Scaler struct {
	d     *Drawable
	grids *cache.Sharded[Size, []Patch]
}

// NewScaler returns a Scaler for d keeping up to capacity grids per cache
// shard. capacity <= 0 selects a default.
func NewScaler(d *Drawable, capacity int) *Scaler {
	return &Scaler{
		d:     d,
		grids: cache.New[Size, []Patch](capacity, hashSize),
	}
}

// Drawable returns the drawable being scaled.
func (s *Scaler) Drawable() *Drawable {
	return s.d
}

// ScaleTo returns a copy of d.ScaleTo(width, height), computing it at most
// once per size while the grid stays cached. It panics under the same
// conditions as Drawable.ScaleTo, before touching the cache.
func (s *Scaler) ScaleTo(width, height int) []Patch {
	if !s.d.CanScaleTo(width, height) {
		return s.d.ScaleTo(width, height) // panics
	}
	grid := s.grids.GetOrCreate(Size{Width: width, Height: height}, func() []Patch {
		return s.d.ScaleTo(width, height)
	})
	return slices.Clone(grid)
}

// Stats reports cache usage.
func (s *Scaler) Stats() CacheStats {
	return s.grids.Stats()
}
