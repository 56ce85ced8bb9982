package ninepatch

import "fmt"

// RectF is a rectangle with floating-point edges in bitmap pixels.
// Nothing enforces Left <= Right or Top <= Bottom; rectangles built by this
// package always satisfy both.
type RectF struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// Width returns Right - Left.
func (r RectF) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r RectF) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle encloses no area.
func (r RectF) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

func (r RectF) String() string {
	return fmt.Sprintf("[%g,%g]-[%g,%g]", r.Left, r.Top, r.Right, r.Bottom)
}
