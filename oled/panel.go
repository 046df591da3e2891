//go:build tinygo

package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	on  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off = color.RGBA{A: 255}
)

// Panel paints a Console onto an SSD1306 over I2C.
type Panel struct {
	dev  *ssd1306.Device
	font tinyfont.Fonter
}

// NewPanel configures the controller at addr and clears it.
func NewPanel(bus drivers.I2C, addr uint16, width, height int16, rot Rotation) *Panel {
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    width,
		Height:   height,
		Address:  addr,
		VccState: ssd1306.SWITCHCAPVCC,
		Rotation: rot.driver(),
	})
	dev.ClearDisplay()
	return &Panel{dev: dev, font: &proggy.TinySZ8pt7b}
}

func (r Rotation) driver() drivers.Rotation {
	switch r {
	case Rotation90:
		return drivers.Rotation90
	case Rotation180:
		return drivers.Rotation180
	case Rotation270:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}

// Flush sends the console to the panel if anything changed.
func (p *Panel) Flush(c *Console) error {
	if !c.TakeDirty() {
		return nil
	}
	if c.Raw() {
		if err := p.dev.SetBuffer(c.Bitmap()); err != nil {
			return err
		}
		return p.dev.Display()
	}
	p.dev.ClearBuffer()
	cols, rows := c.Grid()
	for row := 0; row < rows; row++ {
		y := int16(row * CellHeight)
		for col := 0; col < cols; col++ {
			ch, inv := c.Cell(col, row)
			x := int16(col * CellWidth)
			fg := on
			if inv {
				p.dev.FillRectangle(x, y, CellWidth, CellHeight, on)
				fg = off
			}
			// Bytes outside printable ASCII are logo glyph codes; proggy has
			// no glyphs for them, so those cells stay blank.
			if ch <= ' ' || ch >= 0x7F {
				continue
			}
			tinyfont.DrawChar(p.dev, p.font, x, y+CellHeight-1, rune(ch), fg)
		}
	}
	return p.dev.Display()
}
