package keyboard

import "kyria-go/bus"

const (
	TokKbd     = "kbd"
	TokControl = "control"

	CtrlRenderNow  = "render_now"
	CtrlLayerState = "layer_state"
	CtrlLookup     = "lookup"
)

var (
	TopicConfig       = bus.T("config", "keyboard")
	TopicLayerRequest = bus.T(TokKbd, "layer", "request")
	TopicKeyEvent     = bus.T(TokKbd, "key", "event")
	TopicEncoderTurn  = bus.T(TokKbd, "encoder", "turn")
	TopicLEDs         = bus.T(TokKbd, "leds")
	TopicCtrl         = bus.T(TokKbd, TokControl, bus.SingleLevel)

	TopicState      = bus.T(TokKbd, "state")
	TopicLayerState = bus.T(TokKbd, "layer", "state")
	TopicKeyDefault = bus.T(TokKbd, "key", "default")
	TopicHIDOut     = bus.T(TokKbd, "hid", "out")
)

// CtrlTopic addresses a control verb.
func CtrlTopic(verb string) bus.Topic { return bus.T(TokKbd, TokControl, verb) }
