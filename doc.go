// Package ninepatch decodes nine-patch bitmaps and computes the patch grid
// needed to draw them at an arbitrary size.
//
// # Overview
//
// A nine-patch bitmap carries a 1-pixel border around its content. The top
// and left border lines mark which columns and rows of the content may
// stretch; the right and bottom border lines optionally declare margins
// (padding) for whatever is drawn on top of the image. The corner pixels of
// every border line are never inspected.
//
// A border pixel that is pure white (255, 255, 255) marks a fixed run, any
// other color marks a stretching run. Alpha is ignored, so both RGBA and BGRA
// buffers decode identically.
//
// # Quick Start
//
//	d, err := ninepatch.New(pix, stride, width, height)
//	if err != nil {
//	    return err
//	}
//	if d.CanScaleTo(200, 80) {
//	    for _, p := range d.ScaleTo(200, 80) {
//	        // copy p.Source of the bitmap into p.Target of the output
//	    }
//	}
//
// # Coordinate System
//
// Rectangles are expressed in bitmap pixels with the origin at the top-left
// corner of the bitmap, border included. Source and target rectangles both
// start at (1, 1); the target grid spans [1, width-1] × [1, height-1].
//
// # Thread Safety
//
// A Drawable is immutable once built and may be shared between goroutines.
// Every call to ScaleTo returns a freshly allocated slice owned by the caller.
// Scaler adds a concurrency-safe memo of patch grids keyed by target size.
package ninepatch
