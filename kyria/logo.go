package kyria

// kyriaLogo is the 128x64 page-major bitmap shown on the secondary half.
var kyriaLogo = [...]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x80, 0xc0,
	0xe0, 0xf0, 0x70, 0x78, 0x38, 0x3c, 0x1c, 0x1e, 0x0e, 0x0e, 0x0e, 0x07, 0x07, 0x07, 0x07, 0x07,
	0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x07, 0x0e, 0x0e, 0x0e, 0x1e, 0x1c,
	0x3c, 0x38, 0x78, 0x70, 0xf0, 0xe0, 0xc0, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0xe0, 0xf0, 0x7c, 0x3e, 0x1f, 0x0f, 0x07, 0x03,
	0x01, 0x80, 0xc0, 0xe0, 0xf0, 0x78, 0x38, 0x3c, 0x1c, 0x1e, 0x0e, 0x0e, 0x07, 0x07, 0x87, 0xe7,
	0x7f, 0x1f, 0xff, 0xff, 0x1f, 0x7f, 0xe7, 0x87, 0x07, 0x07, 0x0e, 0x0e, 0x1e, 0x1c, 0x3c, 0x38,
	0x78, 0xf0, 0xe0, 0xc0, 0x80, 0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3e, 0x7c, 0xf0, 0xe0, 0xc0, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xf0, 0xfc, 0xff, 0x1f, 0x07, 0x01, 0x00, 0x00, 0xc0, 0xf0, 0xfc, 0xfe,
	0xff, 0xf7, 0xf3, 0xb1, 0xb0, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0x78, 0xfe, 0x87, 0x01,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0x01, 0x87, 0xfe, 0x78, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30,
	0x30, 0xb0, 0xb1, 0xf3, 0xf7, 0xff, 0xfe, 0xfc, 0xf0, 0xc0, 0x00, 0x00, 0x01, 0x07, 0x1f, 0xff,
	0xfc, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0xfe, 0xff, 0xff, 0x01, 0x01,
	0x07, 0x1e, 0x78, 0xe1, 0x81, 0x83, 0x83, 0x86, 0x86, 0x8c, 0x8c, 0x98, 0x98, 0xb1, 0xb7, 0xfe,
	0xf8, 0xe0, 0xff, 0xff, 0xe0, 0xf8, 0xfe, 0xb7, 0xb1, 0x98, 0x98, 0x8c, 0x8c, 0x86, 0x86, 0x83,
	0x83, 0x81, 0xe1, 0x78, 0x1e, 0x07, 0x01, 0x01, 0xff, 0xff, 0xfe, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0xc0, 0xc0, 0x30, 0x30, 0x00,
	0x00, 0xf0, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0xf0, 0x00, 0x00, 0xf0, 0xf0, 0xc0,
	0xc0, 0x30, 0x30, 0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0x30, 0x30, 0xf3, 0xf3, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x30, 0x30, 0x30, 0x30, 0x30, 0x30, 0xc0, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7f, 0xff, 0xff, 0x80, 0x80,
	0xe0, 0x78, 0x1e, 0x87, 0x81, 0xc1, 0xc1, 0x61, 0x61, 0x31, 0x31, 0x19, 0x19, 0x8d, 0xed, 0x7f,
	0x1f, 0x07, 0xff, 0xff, 0x07, 0x1f, 0x7f, 0xed, 0x8d, 0x19, 0x19, 0x31, 0x31, 0x61, 0x61, 0xc1,
	0xc1, 0x81, 0x87, 0x1e, 0x78, 0xe0, 0x80, 0x80, 0xff, 0xff, 0x7f, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x3f, 0x03, 0x03, 0x0c, 0x0c, 0x30, 0x30, 0x00,
	0x00, 0x00, 0x00, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x0f, 0x0f, 0x00, 0x00, 0x3f, 0x3f, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x30, 0x3f, 0x3f, 0x30, 0x30, 0x00,
	0x00, 0x0c, 0x0c, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0x3f, 0x3f, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x0f, 0x3f, 0xff, 0xf8, 0xe0, 0x80, 0x00, 0x00, 0x03, 0x0f, 0x3f, 0x7f,
	0xff, 0xef, 0xcf, 0x8d, 0x0d, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x1e, 0x7f, 0xe1, 0x80,
	0x00, 0x00, 0xff, 0xff, 0x00, 0x00, 0x80, 0xe1, 0x7f, 0x1e, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c, 0x0c,
	0x0c, 0x0d, 0x8d, 0xcf, 0xef, 0xff, 0x7f, 0x3f, 0x0f, 0x03, 0x00, 0x00, 0x80, 0xe0, 0xf8, 0xff,
	0x3f, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x07, 0x0f, 0x3e, 0x7c, 0xf8, 0xf0, 0xe0, 0xc0,
	0x80, 0x01, 0x03, 0x07, 0x0f, 0x1e, 0x1c, 0x3c, 0x38, 0x78, 0x70, 0x70, 0xe0, 0xe0, 0xe1, 0xe7,
	0xfe, 0xf8, 0xff, 0xff, 0xf8, 0xfe, 0xe7, 0xe1, 0xe0, 0xe0, 0x70, 0x70, 0x78, 0x38, 0x3c, 0x1c,
	0x1e, 0x0f, 0x07, 0x03, 0x01, 0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0x7c, 0x3e, 0x0f, 0x07, 0x03, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x01, 0x03,
	0x07, 0x0f, 0x0e, 0x1e, 0x1c, 0x3c, 0x38, 0x78, 0x70, 0x70, 0x70, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0,
	0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0xe0, 0x70, 0x70, 0x70, 0x78, 0x38,
	0x3c, 0x1c, 0x1e, 0x0e, 0x0f, 0x07, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// qmkLogo is three rows of font glyphs 0x80-0x94, 0xa0-0xb4, 0xc0-0xd4 that
// draw the QMK logo across the full width of a 21-column screen.
var qmkLogo = glyphRows(0x80, 0xa0, 0xc0)

func glyphRows(starts ...byte) string {
	b := make([]byte, 0, 21*len(starts))
	for _, s := range starts {
		for i := byte(0); i < 21; i++ {
			b = append(b, s+i)
		}
	}
	return string(b)
}
