package keycode

// LEDs is the host keyboard LED report.
type LEDs uint8

const (
	LEDNumLock LEDs = 1 << iota
	LEDCapsLock
	LEDScrollLock
	LEDCompose
	LEDKana
)

func (l LEDs) IsOn(bit LEDs) bool { return l&bit != 0 }

// Set returns l with bit switched on or off.
func (l LEDs) Set(bit LEDs, on bool) LEDs {
	if on {
		return l | bit
	}
	return l &^ bit
}
