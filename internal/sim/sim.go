// Package sim runs a keyboard half on the host: the config and keyboard
// services on a private bus, driven by method calls instead of hardware.
package sim

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kyria-go/bus"
	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/kyria"
	"kyria-go/layer"
	"kyria-go/oled"
	"kyria-go/services/config"
	"kyria-go/services/keyboard"
	"kyria-go/types"
)

const settle = 20 * time.Millisecond

type Session struct {
	cfg    types.KeyboardConfig
	conn   *bus.Connection
	cancel context.CancelFunc

	hid *bus.Subscription
	def *bus.Subscription
}

// Start boots one half ("left" or "right") with the given keymap features.
func Start(side string, f kyria.Features) (*Session, error) {
	device := "kyria-" + side
	cfg, err := config.Load(device)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), config.CtxDeviceKey, device))
	b := bus.NewBus(64)
	s := &Session{cfg: cfg, conn: b.NewConnection("sim"), cancel: cancel}
	s.hid = s.conn.Subscribe(keyboard.TopicHIDOut)
	s.def = s.conn.Subscribe(keyboard.TopicKeyDefault)
	state := s.conn.Subscribe(keyboard.TopicState)
	defer s.conn.Unsubscribe(state)

	go keyboard.New(b.NewConnection("keyboard"), kyria.New(f), keyboard.Options{}).Run(ctx)
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-state.Channel():
			if st, ok := m.Payload.(types.KeyboardState); ok && st.Level == "ready" {
				return s, nil
			}
		case <-deadline:
			cancel()
			return nil, &errcode.E{C: errcode.Timeout, Op: "sim.Start", Msg: "keyboard service not ready"}
		}
	}
}

func (s *Session) Close()                       { s.cancel() }
func (s *Session) Config() types.KeyboardConfig { return s.cfg }

// Key publishes one key transition at a matrix position.
func (s *Session) Key(row, col uint8, pressed bool) {
	s.publish(keyboard.TopicKeyEvent, types.KeyEvent{Row: row, Col: col, Pressed: pressed})
}

// Code publishes a transition for an explicit keycode.
func (s *Session) Code(kc keycode.Keycode, pressed bool) {
	s.publish(keyboard.TopicKeyEvent, types.KeyEvent{Code: uint16(kc), Pressed: pressed})
}

// Layers sets the requested layer state, as the host's layer keys would.
func (s *Session) Layers(st layer.State) {
	s.publish(keyboard.TopicLayerRequest, types.LayerRequest{State: uint32(st)})
}

func (s *Session) LEDs(l keycode.LEDs) {
	s.publish(keyboard.TopicLEDs, types.LEDState{Bits: uint8(l)})
}

func (s *Session) Turn(index uint8, cw bool) {
	s.publish(keyboard.TopicEncoderTurn, types.EncoderTurn{Index: index, Clockwise: cw})
}

func (s *Session) publish(t bus.Topic, p any) {
	s.conn.Publish(s.conn.NewMessage(t, p, false))
	time.Sleep(settle)
}

// Drain collects what the keymap emitted since the last call: synthetic
// HID steps and events passed to default handling.
func (s *Session) Drain() (steps []types.HIDStep, defaults []types.KeyEvent) {
	for {
		select {
		case m := <-s.hid.Channel():
			steps = append(steps, m.Payload.(types.HIDStep))
		case m := <-s.def.Channel():
			defaults = append(defaults, m.Payload.(types.KeyEvent))
		default:
			return steps, defaults
		}
	}
}

func (s *Session) request(verb string, payload any) (any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := s.conn.RequestWait(ctx, s.conn.NewMessage(keyboard.CtrlTopic(verb), payload, false))
	if err != nil {
		return nil, err
	}
	if er, ok := reply.Payload.(types.ErrorReply); ok {
		return nil, errcode.Code(er.Error)
	}
	return reply.Payload, nil
}

// Render asks the service for a fresh OLED frame.
func (s *Session) Render() (oled.Frame, error) {
	p, err := s.request(keyboard.CtrlRenderNow, nil)
	if err != nil {
		return oled.Frame{}, err
	}
	f := p.(types.OLEDFrame)
	return oled.Frame{
		Width:  s.cfg.OLED.Width,
		Height: s.cfg.OLED.Height,
		Raw:    f.Raw,
		Lines:  f.Lines,
		Bitmap: f.Bitmap,
	}, nil
}

func (s *Session) LayerState() (types.LayerState, error) {
	p, err := s.request(keyboard.CtrlLayerState, nil)
	if err != nil {
		return types.LayerState{}, err
	}
	return p.(types.LayerState), nil
}

func (s *Session) Lookup(row, col uint8) (types.LookupReply, error) {
	p, err := s.request(keyboard.CtrlLookup, types.LookupReq{Row: row, Col: col})
	if err != nil {
		return types.LookupReply{}, err
	}
	return p.(types.LookupReply), nil
}

// ---- argument parsing shared by the CLI ----

var layerNames = map[string]layer.ID{
	"base":   kyria.Base,
	"qwerty": kyria.Base,
	"lower":  kyria.Lower,
	"nav":    kyria.Nav,
	"raise":  kyria.Raise,
	"adjust": kyria.Adjust,
}

// ParseLayers accepts layer names or numbers.
func ParseLayers(args []string) (layer.State, error) {
	var st layer.State
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			if id, ok := layerNames[tok]; ok {
				st = st.With(id)
				continue
			}
			n, err := strconv.Atoi(tok)
			if err != nil || n < 0 || n >= layer.MaxLayers {
				return 0, &errcode.E{C: errcode.UnknownLayer, Op: "sim.ParseLayers", Msg: tok}
			}
			st = st.With(layer.ID(n))
		}
	}
	return st, nil
}

var ledNames = map[string]keycode.LEDs{
	"num":    keycode.LEDNumLock,
	"caps":   keycode.LEDCapsLock,
	"scroll": keycode.LEDScrollLock,
}

func ParseLEDs(args []string) (keycode.LEDs, error) {
	var l keycode.LEDs
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			tok = strings.ToLower(strings.TrimSpace(tok))
			if tok == "" {
				continue
			}
			bit, ok := ledNames[tok]
			if !ok {
				return 0, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseLEDs", Msg: tok}
			}
			l = l.Set(bit, true)
		}
	}
	return l, nil
}

// ParsePos reads a "row col" pair.
func ParsePos(r, c string) (uint8, uint8, error) {
	row, err1 := strconv.ParseUint(r, 10, 8)
	col, err2 := strconv.ParseUint(c, 10, 8)
	if err1 != nil || err2 != nil {
		return 0, 0, &errcode.E{C: errcode.InvalidPosition, Op: "sim.ParsePos", Msg: r + " " + c}
	}
	return uint8(row), uint8(col), nil
}

// ParseDirection accepts cw/ccw and the usual synonyms.
func ParseDirection(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "cw", "clockwise", "right", "+":
		return true, nil
	case "ccw", "counterclockwise", "left", "-":
		return false, nil
	}
	return false, &errcode.E{C: errcode.InvalidParams, Op: "sim.ParseDirection", Msg: s}
}
