package ninepatch

import "fmt"

// Kind classifies how a segment behaves when the bitmap is scaled.
type Kind uint8

const (
	// KindUnknown is the zero value. Decoded segments never carry it.
	KindUnknown Kind = iota

	// KindFixed segments keep their pixel length at every target size.
	KindFixed

	// KindStretching segments share the extra target space in proportion
	// to their source length.
	KindStretching

	// KindTiling is reserved for repeat markers. The border classifier does
	// not produce it yet; ScaleTo treats it like KindStretching.
	KindTiling
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindFixed:
		return "Fixed"
	case KindStretching:
		return "Stretching"
	case KindTiling:
		return "Tiling"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is a run of same-kind pixels along one axis. Start is measured
// from the first content pixel, so the border is not included.
type Segment struct {
	Start  float64
	Length float64
	Kind   Kind
}

// End returns Start + Length.
func (s Segment) End() float64 {
	return s.Start + s.Length
}

// bytesPerPixel is the sample size of every accepted buffer.
const bytesPerPixel = 4

// classify maps the three color channels of a border pixel to a kind.
// Channel order does not matter since only pure white is special.
func classify(c0, c1, c2 byte) Kind {
	if c0 == 0xFF && c1 == 0xFF && c2 == 0xFF {
		return KindFixed
	}
	return KindStretching
}

// scanLine partitions one border line into segments. The line starts at
// offset and has count samples, step bytes apart. The first and last sample
// are corner markers and belong to no segment, so the result covers
// count-2 content pixels and is empty only when count < 3.
func scanLine(buf []byte, offset, step, count int) []Segment {
	if count < 3 {
		return nil
	}
	var (
		segs []Segment
		cur  Segment
	)
	for i := 1; i < count-1; i++ {
		p := offset + i*step
		kind := classify(buf[p], buf[p+1], buf[p+2])
		switch {
		case i == 1:
			cur = Segment{Start: 0, Length: 1, Kind: kind}
		case kind == cur.Kind:
			cur.Length++
		default:
			segs = append(segs, cur)
			cur = Segment{Start: float64(i - 1), Length: 1, Kind: kind}
		}
	}
	return append(segs, cur)
}

// stretchLength sums the lengths of all segments that are not fixed.
func stretchLength(segs []Segment) float64 {
	var n float64
	for _, s := range segs {
		if s.Kind != KindFixed {
			n += s.Length
		}
	}
	return n
}
