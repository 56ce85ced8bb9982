package ninepatch

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage decodes a nine-patch bitmap from an already decoded image.
//
// *image.RGBA and *image.NRGBA images, sub-images included, are read with
// their channels untouched. Any other image is first converted to
// *image.NRGBA, which keeps opaque white markers white; a white marker with
// zero alpha in, say, a paletted image does not survive that conversion.
func FromImage(img image.Image, opts ...Option) (*Drawable, error) {
	pix, stride, w, h := pixels(img)
	return New(pix, stride, w, h, opts...)
}

// pixels returns a 4-byte-per-pixel view of img whose length is exactly
// stride*height.
func pixels(img image.Image) (pix []byte, stride, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.RGBA:
		pix, stride = frame(m.Pix, m.Stride, width, height)
		return pix, stride, width, height
	case *image.NRGBA:
		pix, stride = frame(m.Pix, m.Stride, width, height)
		return pix, stride, width, height
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst.Pix, dst.Stride, width, height
}

// frame returns pix unchanged when it holds exactly height rows, and a
// tightly packed copy otherwise (sub-images keep the parent's trailing rows).
func frame(pix []byte, stride, width, height int) ([]byte, int) {
	if len(pix) == stride*height {
		return pix, stride
	}
	row := width * bytesPerPixel
	out := make([]byte, row*height)
	for y := 0; y < height; y++ {
		copy(out[y*row:(y+1)*row], pix[y*stride:])
	}
	return out, row
}
