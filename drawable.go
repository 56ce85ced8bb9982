package ninepatch

import (
	"context"
	"log/slog"
	"slices"
)

// Drawable is a decoded nine-patch bitmap.
//
// The segment lists cover the content area only, so their lengths sum to
// Width()-2 and Height()-2.
//
// A Drawable is immutable and safe for concurrent use. It holds no reference
// to the buffer it was decoded from.
type Drawable struct {
	width  int
	height int

	// Left and Right come from the bottom row, Top and Bottom from the
	// right column. Zero when absent.
	margins RectF

	horizontal []Segment
	vertical   []Segment
}

// New decodes a nine-patch bitmap from a 4-byte-per-pixel buffer in RGBA or
// BGRA order. stride is the distance in bytes between the starts of two
// consecutive rows.
//
// The buffer must be exactly stride*height bytes long, stride must hold at
// least width pixels, and both dimensions must be at least 3. Violations
// return a *DecodeError wrapping ErrMalformedBuffer. A right or bottom border
// line that declares anything other than 0 or 3 runs returns a *DecodeError
// wrapping ErrMalformedMargin. On error the returned Drawable is nil.
func New(buf []byte, stride, width, height int, opts ...Option) (*Drawable, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log()

	switch {
	case width < 3 || height < 3:
		return nil, bufferError("size %dx%d is smaller than 3x3", width, height)
	case stride < width*bytesPerPixel:
		return nil, bufferError("stride %d is too small for width %d", stride, width)
	case len(buf) != stride*height:
		return nil, bufferError("buffer has %d bytes, want %d", len(buf), stride*height)
	}

	horizontal := scanLine(buf, 0, bytesPerPixel, width)
	vertical := scanLine(buf, 0, stride, height)
	right := scanLine(buf, (width-1)*bytesPerPixel, stride, height)
	bottom := scanLine(buf, (height-1)*stride, bytesPerPixel, width)

	if log.Enabled(context.Background(), slog.LevelDebug) {
		logSegments(log, EdgeTop, horizontal)
		logSegments(log, EdgeLeft, vertical)
		logSegments(log, EdgeRight, right)
		logSegments(log, EdgeBottom, bottom)
	}

	if n := len(right); n != 0 && n != 3 {
		return nil, marginError(EdgeRight, n)
	}
	if n := len(bottom); n != 0 && n != 3 {
		return nil, marginError(EdgeBottom, n)
	}

	d := &Drawable{
		width:      width,
		height:     height,
		horizontal: horizontal,
		vertical:   vertical,
	}
	if len(bottom) == 3 {
		d.margins.Left = bottom[0].Length
		d.margins.Right = bottom[2].Length
	}
	if len(right) == 3 {
		d.margins.Top = right[0].Length
		d.margins.Bottom = right[2].Length
	}

	log.Debug("ninepatch: decoded",
		"width", width,
		"height", height,
		"columns", len(horizontal),
		"rows", len(vertical),
		"margins", d.Margins())
	return d, nil
}

func logSegments(log *slog.Logger, edge Edge, segs []Segment) {
	log.Debug("ninepatch: scanned border",
		"edge", edge.String(),
		"segments", len(segs),
		"runs", segs)
}

// Width returns the bitmap width, border included.
func (d *Drawable) Width() int {
	return d.width
}

// Height returns the bitmap height, border included.
func (d *Drawable) Height() int {
	return d.height
}

// Horizontal returns a copy of the column segments, left to right.
func (d *Drawable) Horizontal() []Segment {
	return slices.Clone(d.horizontal)
}

// Vertical returns a copy of the row segments, top to bottom.
func (d *Drawable) Vertical() []Segment {
	return slices.Clone(d.vertical)
}

// ContentSize returns the bitmap size without the border.
func (d *Drawable) ContentSize() (width, height int) {
	return d.width - 2, d.height - 2
}

// Margins returns the four margins as a rectangle of insets. The left and
// right margins are declared by the bottom row, the top and bottom margins
// by the right column.
func (d *Drawable) Margins() RectF {
	return d.margins
}

// MarginLeft returns the left margin, the leading run of the bottom row.
func (d *Drawable) MarginLeft() float64 { return d.margins.Left }

// MarginTop returns the top margin, the leading run of the right column.
func (d *Drawable) MarginTop() float64 { return d.margins.Top }

// MarginRight returns the right margin, the trailing run of the bottom row.
func (d *Drawable) MarginRight() float64 { return d.margins.Right }

// MarginBottom returns the bottom margin, the trailing run of the right column.
func (d *Drawable) MarginBottom() float64 { return d.margins.Bottom }
