package ninepatch

import (
	"context"
	"fmt"
	"log/slog"
)

// Patch maps one cell of the source bitmap onto the scaled output.
type Patch struct {
	Source RectF
	Target RectF
	HKind  Kind
	VKind  Kind
}

// span is the [lo, hi) extent of a segment on one axis.
type span struct {
	lo, hi float64
}

// CanScaleTo reports whether ScaleTo accepts the target size.
func (d *Drawable) CanScaleTo(width, height int) bool {
	return width >= d.width && height >= d.height
}

// ScaleTo computes the patch grid for drawing d at width×height.
//
// Patches are returned row by row, top to bottom and left to right, one per
// pair of vertical and horizontal segment. Fixed segments keep their length;
// the remaining segments split the extra space in proportion to their
// source length. Target edges are cumulative sums starting at 1, so
// neighbouring patches share edges exactly.
//
// ScaleTo panics if width < d.Width() or height < d.Height(). Use CanScaleTo to
// check the size first.
func (d *Drawable) ScaleTo(width, height int) []Patch {
	if !d.CanScaleTo(width, height) {
		panic(fmt.Sprintf("ninepatch: cannot scale %dx%d drawable down to %dx%d",
			d.width, d.height, width, height))
	}

	cols := layoutAxis(d.horizontal, d.width, width)
	rows := layoutAxis(d.vertical, d.height, height)

	patches := make([]Patch, 0, len(rows)*len(cols))
	for i, v := range d.vertical {
		for j, h := range d.horizontal {
			patches = append(patches, Patch{
				Source: RectF{
					Left:   h.Start + 1,
					Top:    v.Start + 1,
					Right:  h.End() + 1,
					Bottom: v.End() + 1,
				},
				Target: RectF{
					Left:   cols[j].lo,
					Top:    rows[i].lo,
					Right:  cols[j].hi,
					Bottom: rows[i].hi,
				},
				HKind: h.Kind,
				VKind: v.Kind,
			})
		}
	}

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("ninepatch: scaled",
			"width", width,
			"height", height,
			"patches", len(patches))
	}
	return patches
}

// layoutAxis returns the target extent of every segment on one axis when an
// axis of size bitmap pixels (border included) is drawn at size target.
//
// Each edge is derived from the fixed and stretch lengths consumed so far
// rather than from the previous edge, so the last edge of an axis with
// stretch lands exactly on target-1 and identity scaling reproduces the
// source edges. The stretch total is only divided by inside the non-fixed
// branch, and such a segment always has positive length.
func layoutAxis(segs []Segment, bitmap, target int) []span {
	stretch := stretchLength(segs)
	extra := float64(target) - (float64(bitmap) - stretch)

	spans := make([]span, len(segs))
	var fixedSoFar, stretchSoFar, scaled float64
	lo := 1.0
	for i, s := range segs {
		if s.Kind == KindFixed {
			fixedSoFar += s.Length
		} else {
			stretchSoFar += s.Length
			scaled = stretchSoFar * extra / stretch
		}
		hi := 1 + fixedSoFar + scaled
		spans[i] = span{lo: lo, hi: hi}
		lo = hi
	}
	return spans
}
