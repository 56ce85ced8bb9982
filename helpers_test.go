package ninepatch

// Pixel codes used by the test fixtures.
const (
	codeBlank   = 0 // transparent black
	codeContent = 1 // near-black content
	codeCorner  = 6 // grey
	codeMarker  = 9 // white
)

var codeColors = map[byte][4]byte{
	codeBlank:   {0, 0, 0, 0},
	codeContent: {1, 1, 1, 0},
	codeCorner:  {0x80, 0x80, 0x80, 0},
	codeMarker:  {0xFF, 0xFF, 0xFF, 0},
}

// expand turns a grid of pixel codes into a 4-byte-per-pixel buffer.
func expand(codes []byte) []byte {
	buf := make([]byte, 0, len(codes)*4)
	for _, c := range codes {
		col, ok := codeColors[c]
		if !ok {
			panic("unknown pixel code")
		}
		buf = append(buf, col[:]...)
	}
	return buf
}

// nineSlice is a 7x7 bitmap stored with a 9-pixel row stride: one stretch
// column, one stretch row and a 1-pixel margin on each side.
var nineSlice = []byte{
	0, 9, 0, 0, 0, 9, 0, 0, 0,
	9, 6, 1, 1, 1, 6, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 9, 0, 0,
	0, 1, 1, 1, 1, 1, 9, 0, 0,
	0, 1, 1, 1, 1, 1, 9, 0, 0,
	9, 6, 1, 1, 1, 6, 0, 0, 0,
	0, 0, 9, 9, 9, 0, 0, 0, 0,
}

// twentyFive alternates fixed and stretching pixels on the top and left
// border lines, yielding five segments per axis.
var twentyFive = []byte{
	0, 9, 0, 9, 0, 9, 0, 0, 0,
	9, 6, 1, 1, 1, 6, 0, 0, 0,
	0, 1, 1, 1, 1, 1, 9, 0, 0,
	9, 1, 1, 1, 1, 1, 9, 0, 0,
	0, 1, 1, 1, 1, 1, 9, 0, 0,
	9, 6, 1, 1, 1, 6, 0, 0, 0,
	0, 0, 9, 9, 9, 0, 0, 0, 0,
}

// testBitmap is a mutable tightly packed buffer for building fixtures.
type testBitmap struct {
	width, height, stride int
	pix                   []byte
}

func newTestBitmap(width, height int) *testBitmap {
	return &testBitmap{
		width:  width,
		height: height,
		stride: width * 4,
		pix:    make([]byte, width*height*4),
	}
}

func (b *testBitmap) set(x, y int, code byte) {
	col := codeColors[code]
	copy(b.pix[y*b.stride+x*4:], col[:])
}

// vrun sets column x, rows [y0, y1), to code.
func (b *testBitmap) vrun(x, y0, y1 int, code byte) {
	for y := y0; y < y1; y++ {
		b.set(x, y, code)
	}
}

// hrun sets row y, columns [x0, x1), to code.
func (b *testBitmap) hrun(y, x0, x1 int, code byte) {
	for x := x0; x < x1; x++ {
		b.set(x, y, code)
	}
}

// margins draws margin markers: lead and trail content pixels stay blank
// on the right column (top/bottom) and bottom row (left/right).
func (b *testBitmap) margins(top, bottom, left, right int) *testBitmap {
	b.vrun(b.width-1, 1+top, b.height-1-bottom, codeMarker)
	b.hrun(b.height-1, 1+left, b.width-1-right, codeMarker)
	return b
}

func (b *testBitmap) decode() (*Drawable, error) {
	return New(b.pix, b.stride, b.width, b.height)
}
