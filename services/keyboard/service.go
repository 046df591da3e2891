// Package keyboard runs the keymap callbacks against the bus: layer
// requests, key and encoder events, host LEDs and the OLED refresh.
package keyboard

import (
	"context"
	"time"

	"kyria-go/bus"
	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/keymap"
	"kyria-go/kyria"
	"kyria-go/layer"
	"kyria-go/macro"
	"kyria-go/oled"
	"kyria-go/types"
	"kyria-go/x/timex"
)

const defaultRefresh = 100 * time.Millisecond

// Options are the host-side pieces the service cannot get from the bus.
type Options struct {
	Panel Flusher      // physical display; nil on host builds
	HID   macro.Sender // USB HID output; nil publishes to the bus only
}

type Service struct {
	conn  *bus.Connection
	km    Keymap
	panel Flusher
	out   *hidOut

	cfg        types.KeyboardConfig
	configured bool

	requested layer.State
	effective layer.State
	leds      keycode.LEDs
	held      map[keymap.Pos]keycode.Keycode // resolved at press

	oledUser OLEDUser
	encUser  EncoderUser
	console  *oled.Console
	rotation oled.Rotation
	refresh  time.Duration

	timer      *time.Timer
	nextRender time.Time
}

func New(conn *bus.Connection, km Keymap, opts Options) *Service {
	return &Service{
		conn:  conn,
		km:    km,
		panel: opts.Panel,
		out:   &hidOut{conn: conn, next: opts.HID},
		held:  make(map[keymap.Pos]keycode.Keycode),
	}
}

func (s *Service) Run(ctx context.Context) {
	cfgSub := s.conn.Subscribe(TopicConfig)
	layerSub := s.conn.Subscribe(TopicLayerRequest)
	keySub := s.conn.Subscribe(TopicKeyEvent)
	encSub := s.conn.Subscribe(TopicEncoderTurn)
	ledSub := s.conn.Subscribe(TopicLEDs)
	ctrlSub := s.conn.Subscribe(TopicCtrl)
	defer s.conn.Unsubscribe(cfgSub)
	defer s.conn.Unsubscribe(layerSub)
	defer s.conn.Unsubscribe(keySub)
	defer s.conn.Unsubscribe(encSub)
	defer s.conn.Unsubscribe(ledSub)
	defer s.conn.Unsubscribe(ctrlSub)

	s.publishState("idle", "awaiting_config", nil)
	s.publishLayers()

	s.timer = timex.StoppedTimer()
	defer s.timer.Stop()

	for {
		if s.console != nil {
			timex.ResetTimer(s.timer, time.Until(s.nextRender))
		} else {
			timex.ResetTimer(s.timer, time.Hour)
		}

		select {
		case <-ctx.Done():
			s.publishState("stopped", "context_cancelled", nil)
			return

		case msg := <-cfgSub.Channel():
			cfg, ok := msg.Payload.(types.KeyboardConfig)
			if !ok {
				s.publishState("error", "config_wrong_type", nil)
				continue
			}
			s.applyConfig(cfg)
			s.publishState("ready", "configured", nil)

		case msg := <-layerSub.Channel():
			req, ok := msg.Payload.(types.LayerRequest)
			if !ok {
				continue
			}
			s.setLayers(layer.State(req.State))

		case msg := <-keySub.Channel():
			ev, ok := msg.Payload.(types.KeyEvent)
			if !ok {
				continue
			}
			s.handleKey(msg, ev)

		case msg := <-encSub.Channel():
			turn, ok := msg.Payload.(types.EncoderTurn)
			if !ok {
				continue
			}
			s.handleTurn(turn)

		case msg := <-ledSub.Channel():
			st, ok := msg.Payload.(types.LEDState)
			if !ok {
				continue
			}
			s.leds = keycode.LEDs(st.Bits)

		case msg := <-ctrlSub.Channel():
			s.handleControl(msg)

		case <-s.timer.C:
			s.render()
			s.nextRender = time.Now().Add(s.refresh)
		}
	}
}

func (s *Service) applyConfig(cfg types.KeyboardConfig) {
	s.cfg = cfg
	s.configured = true
	feat := s.km.Features()

	s.oledUser, s.console = nil, nil
	if u, ok := s.km.(OLEDUser); ok && feat.OLED && cfg.OLED.Enabled {
		s.oledUser = u
		s.console = oled.NewConsole(cfg.OLED.Width, cfg.OLED.Height)
		s.rotation = u.OLEDInit(oled.Rotation0)
		s.refresh = timex.Millis(cfg.OLED.RefreshMS, defaultRefresh)
		s.nextRender = time.Now()
	}

	s.encUser = nil
	if u, ok := s.km.(EncoderUser); ok && feat.Encoder && cfg.Encoders.Enabled {
		s.encUser = u
	}
}

// setLayers records the host's request and republishes the effective state.
// The tri-layer result is never fed back as the next request.
func (s *Service) setLayers(req layer.State) {
	s.requested = req
	s.effective = s.km.LayerStateSet(req)
	s.publishLayers()
}

func (s *Service) layerState() types.LayerState {
	hi := s.effective.Highest()
	return types.LayerState{
		Requested: uint32(s.requested),
		Effective: uint32(s.effective),
		Highest:   uint8(hi),
		Name:      kyria.LayerName(hi),
	}
}

func (s *Service) publishLayers() {
	s.conn.Publish(s.conn.NewMessage(TopicLayerState, s.layerState(), true))
}

// handleKey resolves position-only events against the layers active at press
// time; the release reuses that keycode even if the layers changed since.
func (s *Service) handleKey(msg *bus.Message, ev types.KeyEvent) {
	pos := keymap.Pos{Row: ev.Row, Col: ev.Col}
	kc := keycode.Keycode(ev.Code)
	if kc == keycode.No {
		if ev.Pressed {
			kc = s.km.Table().Resolve(s.effective, pos).TapCode()
			s.held[pos] = kc
		} else if pressed, ok := s.held[pos]; ok {
			kc = pressed
			delete(s.held, pos)
		} else {
			kc = s.km.Table().Resolve(s.effective, pos).TapCode()
		}
	}
	rec := keymap.Record{Pos: pos, Pressed: ev.Pressed}
	if s.km.ProcessRecord(kc, rec, s.out) {
		ev.Code = uint16(kc)
		s.conn.Publish(s.conn.NewMessage(TopicKeyDefault, ev, false))
	}
}

// handleTurn runs the encoder hook on the primary only; the secondary's
// turns reach the primary over the split link.
func (s *Service) handleTurn(turn types.EncoderTurn) {
	if s.encUser == nil || !s.cfg.Master {
		return
	}
	s.encUser.EncoderUpdate(turn.Index, turn.Clockwise, s.out)
}

func (s *Service) status() oled.Status {
	return oled.Status{Master: s.cfg.Master, Layers: s.effective, LEDs: s.leds}
}

// render runs one OLED pass: home the cursor, let the keymap draw, flush.
func (s *Service) render() {
	if s.oledUser == nil {
		return
	}
	s.console.Home()
	s.oledUser.OLEDTask(s.console, s.status())
	if s.panel != nil {
		if err := s.panel.Flush(s.console); err != nil {
			println("[keyboard] oled flush: " + err.Error())
		}
	}
}

func (s *Service) handleControl(msg *bus.Message) {
	if len(msg.Topic) < 3 {
		return
	}
	verb, _ := msg.Topic[2].(string)
	switch verb {
	case CtrlLayerState:
		s.conn.Reply(msg, s.layerState(), false)

	case CtrlRenderNow:
		if !s.configured {
			s.replyErr(msg, errcode.NotReady)
			return
		}
		if s.oledUser == nil {
			s.replyErr(msg, errcode.NoDisplay)
			return
		}
		s.render()
		s.conn.Reply(msg, frameOf(s.console.Snapshot(), s.rotation), false)

	case CtrlLookup:
		req, ok := msg.Payload.(types.LookupReq)
		if !ok {
			s.replyErr(msg, errcode.InvalidPayload)
			return
		}
		p := keymap.Pos{Row: req.Row, Col: req.Col}
		if !s.km.Table().Geometry().Contains(p) {
			s.replyErr(msg, errcode.InvalidPosition)
			return
		}
		a, from := s.km.Table().ResolveFrom(s.effective, p)
		s.conn.Reply(msg, types.LookupReply{OK: true, Action: a.String(), Code: uint16(a.TapCode()), Layer: uint8(from)}, false)

	default:
		s.replyErr(msg, errcode.Unsupported)
	}
}

func frameOf(f oled.Frame, r oled.Rotation) types.OLEDFrame {
	return types.OLEDFrame{
		Rotation: uint16(r) * 90,
		Raw:      f.Raw,
		Lines:    f.Lines,
		Bitmap:   f.Bitmap,
	}
}

// ---- bus helpers ----

func (s *Service) publishState(level, status string, err error) {
	pl := types.KeyboardState{Level: level, Status: status, TS: timex.NowMs()}
	if err != nil {
		pl.Error = err.Error()
	}
	s.conn.Publish(s.conn.NewMessage(TopicState, pl, true))
}

func (s *Service) replyErr(req *bus.Message, code errcode.Code) {
	if len(req.ReplyTo) == 0 {
		return
	}
	if code == "" {
		code = errcode.Error
	}
	s.conn.Reply(req, types.ErrorReply{OK: false, Error: string(code)}, false)
}
