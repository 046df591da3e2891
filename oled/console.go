package oled

// Glyph cell size of the built-in panel font.
const (
	CellWidth  = 6
	CellHeight = 8
)

// Console is a character-cell frame buffer with the write semantics of the
// usual keyboard OLED drivers: text wraps at the end of a line, '\n' blanks
// the rest of the line, the cursor wraps from the last line to the first, and
// raw writes fill the bitmap from offset 0. The last kind of write decides
// what a flush shows.
type Console struct {
	width, height int
	cols, rows    int

	cells  []byte
	invert []bool
	cursor int

	raw     []byte
	rawMode bool
	dirty   bool
}

// ValidSize reports whether a width×height panel holds at least one cell and
// whole 8-pixel pages.
func ValidSize(width, height int) bool {
	return width >= CellWidth && height >= CellHeight && height%8 == 0
}

// NewConsole sizes a console for a width×height pixel panel. Sizes that fail
// ValidSize fall back to 128×64.
func NewConsole(width, height int) *Console {
	if !ValidSize(width, height) {
		width, height = 128, 64
	}
	c := &Console{
		width:  width,
		height: height,
		cols:   width / CellWidth,
		rows:   height / CellHeight,
	}
	c.cells = make([]byte, c.cols*c.rows)
	c.invert = make([]bool, len(c.cells))
	c.raw = make([]byte, width*height/8)
	c.Clear()
	return c
}

func (c *Console) Size() (width, height int) { return c.width, c.height }
func (c *Console) Grid() (cols, rows int)    { return c.cols, c.rows }

// Home moves the cursor to the top-left cell without clearing.
func (c *Console) Home() { c.cursor = 0 }

// SetCursor moves to (col, row); out-of-range positions are ignored.
func (c *Console) SetCursor(col, row int) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cursor = row*c.cols + col
}

// Cursor reports the current (col, row).
func (c *Console) Cursor() (col, row int) { return c.cursor % c.cols, c.cursor / c.cols }

// Clear blanks text and bitmap and homes the cursor.
func (c *Console) Clear() {
	for i := range c.cells {
		c.cells[i] = ' '
		c.invert[i] = false
	}
	for i := range c.raw {
		c.raw[i] = 0
	}
	c.cursor = 0
	c.rawMode = false
	c.dirty = true
}

func (c *Console) Write(s string, invert bool) {
	c.rawMode = false
	c.dirty = true
	for i := 0; i < len(s); i++ {
		c.writeByte(s[i], invert)
	}
}

func (c *Console) writeByte(b byte, invert bool) {
	if b == '\n' {
		end := (c.cursor/c.cols + 1) * c.cols
		for i := c.cursor; i < end; i++ {
			c.cells[i] = ' '
			c.invert[i] = false
		}
		c.cursor = end % len(c.cells)
		return
	}
	c.cells[c.cursor] = b
	c.invert[c.cursor] = invert
	c.cursor = (c.cursor + 1) % len(c.cells)
}

func (c *Console) WriteRaw(b []byte) {
	n := copy(c.raw, b)
	for i := n; i < len(c.raw); i++ {
		c.raw[i] = 0
	}
	c.rawMode = true
	c.dirty = true
}

// Dirty reports whether anything was written since the last TakeDirty.
func (c *Console) Dirty() bool { return c.dirty }

// TakeDirty returns and clears the dirty flag.
func (c *Console) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Raw reports whether the last write was a bitmap.
func (c *Console) Raw() bool { return c.rawMode }

// Bitmap returns the page-major bitmap (not a copy).
func (c *Console) Bitmap() []byte { return c.raw }

// Cell returns the byte and invert flag at (col, row).
func (c *Console) Cell(col, row int) (byte, bool) {
	i := row*c.cols + col
	return c.cells[i], c.invert[i]
}

// Snapshot copies the visible content.
func (c *Console) Snapshot() Frame {
	f := Frame{Width: c.width, Height: c.height, Raw: c.rawMode}
	if c.rawMode {
		f.Bitmap = append([]byte(nil), c.raw...)
		return f
	}
	f.Lines = make([]string, c.rows)
	for r := 0; r < c.rows; r++ {
		f.Lines[r] = string(c.cells[r*c.cols : (r+1)*c.cols])
	}
	return f
}
