//go:build !rp2040

package platform

import (
	"kyria-go/errcode"
	"kyria-go/oled"
	"kyria-go/types"
)

// Open has no peripherals to offer off-target.
func Open(cfg types.KeyboardConfig, rot oled.Rotation) (*Board, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "platform.Open", Msg: "no board support on this target"}
}
