package oled

import "strings"

// Frame is a copy of what a Console shows.
type Frame struct {
	Width, Height int
	Raw           bool
	Lines         []string // text frames, one entry per row, bytes as written
	Bitmap        []byte   // raw frames, page-major
}

// Pixel reports the bitmap bit at (x, y) for raw frames.
func (f Frame) Pixel(x, y int) bool {
	if !f.Raw || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	i := x + (y/8)*f.Width
	if i >= len(f.Bitmap) {
		return false
	}
	return f.Bitmap[i]>>(uint(y)%8)&1 == 1
}

// Text renders the frame for a terminal: text rows with glyph bytes shown as
// '▒', or Pixels for raw frames.
func (f Frame) Text() string {
	if f.Raw {
		return f.Pixels()
	}
	var b strings.Builder
	for _, l := range f.Lines {
		for i := 0; i < len(l); i++ {
			ch := l[i]
			if ch < 0x20 || ch >= 0x7F {
				b.WriteRune('▒')
			} else {
				b.WriteByte(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Pixels draws the bitmap with half-block characters, two pixel rows per line.
func (f Frame) Pixels() string {
	var b strings.Builder
	for y := 0; y < f.Height; y += 2 {
		for x := 0; x < f.Width; x++ {
			top, bot := f.Pixel(x, y), f.Pixel(x, y+1)
			switch {
			case top && bot:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bot:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
