package keyboard

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"kyria-go/bus"
	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/kyria"
	"kyria-go/layer"
	"kyria-go/oled"
	"kyria-go/types"
)

// ---- Test fakes ----

type fakePanel struct {
	mu      sync.Mutex
	flushes int
}

func (p *fakePanel) Flush(*oled.Console) error {
	p.mu.Lock()
	p.flushes++
	p.mu.Unlock()
	return nil
}

func (p *fakePanel) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}

func recvWithin[T any](t *testing.T, ch <-chan T, d time.Duration) (T, bool) {
	t.Helper()
	var zero T
	select {
	case v := <-ch:
		return v, true
	case <-time.After(d):
		return zero, false
	}
}

func masterConfig() types.KeyboardConfig {
	return types.KeyboardConfig{
		Side:     "left",
		Master:   true,
		OLED:     types.OLEDConfig{Enabled: true, Width: 128, Height: 64, RefreshMS: 20},
		Encoders: types.EncoderConfig{Enabled: true},
	}
}

// start runs the service and waits until it has applied cfg.
func start(t *testing.T, f kyria.Features, cfg types.KeyboardConfig, opts Options) (*bus.Connection, context.CancelFunc) {
	t.Helper()
	b := bus.NewBus(32)
	svcConn := b.NewConnection("keyboard")
	test := b.NewConnection("test")

	ctx, cancel := context.WithCancel(context.Background())
	go New(svcConn, kyria.New(f), opts).Run(ctx)

	stSub := test.Subscribe(TopicState)
	test.Publish(test.NewMessage(TopicConfig, cfg, true))
	deadline := time.After(time.Second)
	for {
		select {
		case m := <-stSub.Channel():
			if st, ok := m.Payload.(types.KeyboardState); ok && st.Level == "ready" {
				test.Unsubscribe(stSub)
				t.Cleanup(cancel)
				return test, cancel
			}
		case <-deadline:
			cancel()
			t.Fatal("service never became ready")
		}
	}
}

func waitLayers(t *testing.T, sub *bus.Subscription, pred func(types.LayerState) bool) types.LayerState {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case m := <-sub.Channel():
			ls := m.Payload.(types.LayerState)
			if pred(ls) {
				return ls
			}
		case <-deadline:
			t.Fatal("layer state not observed")
		}
	}
}

// ---- Tests ----

func TestService_TriLayerNotSticky(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	sub := test.Subscribe(TopicLayerState)

	req := func(s layer.State) {
		test.Publish(test.NewMessage(TopicLayerRequest, types.LayerRequest{State: uint32(s)}, false))
	}

	req(layer.Of(kyria.Lower, kyria.Raise))
	ls := waitLayers(t, sub, func(ls types.LayerState) bool { return ls.Requested == uint32(layer.Of(kyria.Lower, kyria.Raise)) })
	if layer.State(ls.Effective) != layer.Of(kyria.Lower, kyria.Raise, kyria.Adjust) || ls.Name != "Adjust" {
		t.Fatalf("effective = %+v", ls)
	}

	req(layer.Of(kyria.Lower))
	ls = waitLayers(t, sub, func(ls types.LayerState) bool { return ls.Requested == uint32(layer.Of(kyria.Lower)) })
	if layer.State(ls.Effective) != layer.Of(kyria.Lower) || ls.Name != "LOWER" {
		t.Fatalf("adjust stuck after raise release: %+v", ls)
	}
}

func TestService_MacroKeyEmitsHIDAndSuppressesDefault(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	hid := test.Subscribe(TopicHIDOut)
	def := test.Subscribe(TopicKeyDefault)

	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Code: uint16(kyria.BckDelWord), Pressed: true}, false))

	want := []types.HIDStep{
		{Op: "down", Code: uint16(keycode.LShift)},
		{Op: "down", Code: uint16(keycode.LAlt)},
		{Op: "tap", Code: uint16(keycode.Left)},
		{Op: "up", Code: uint16(keycode.LShift)},
		{Op: "up", Code: uint16(keycode.LAlt)},
		{Op: "tap", Code: uint16(keycode.Backspace)},
	}
	for i, w := range want {
		m, ok := recvWithin(t, hid.Channel(), time.Second)
		if !ok {
			t.Fatalf("step %d missing", i)
		}
		if got := m.Payload.(types.HIDStep); got != w {
			t.Fatalf("step %d = %+v, want %+v", i, got, w)
		}
	}
	if m, ok := recvWithin(t, def.Channel(), 50*time.Millisecond); ok {
		t.Fatalf("unexpected default handling: %+v", m.Payload)
	}

	// Release goes to the host.
	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Code: uint16(kyria.BckDelWord)}, false))
	if _, ok := recvWithin(t, def.Channel(), time.Second); !ok {
		t.Fatal("release not passed to default handling")
	}
	if m, ok := recvWithin(t, hid.Channel(), 50*time.Millisecond); ok {
		t.Fatalf("release emitted %+v", m.Payload)
	}
}

func TestService_ResolvesKeycodeFromPosition(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	def := test.Subscribe(TopicKeyDefault)

	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Row: 0, Col: 6, Pressed: true}, false))
	m, ok := recvWithin(t, def.Channel(), time.Second)
	if !ok {
		t.Fatal("no default event")
	}
	if ev := m.Payload.(types.KeyEvent); keycode.Keycode(ev.Code) != keycode.Q {
		t.Fatalf("resolved %s, want Q", keycode.Keycode(ev.Code))
	}
}

func TestService_ReleaseUsesPressTimeKeycode(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	layers := test.Subscribe(TopicLayerState)
	hid := test.Subscribe(TopicHIDOut)
	def := test.Subscribe(TopicKeyDefault)

	req := func(s layer.State) {
		test.Publish(test.NewMessage(TopicLayerRequest, types.LayerRequest{State: uint32(s)}, false))
		waitLayers(t, layers, func(ls types.LayerState) bool { return ls.Requested == uint32(s) })
	}

	// E on base, BckDelWord on Nav.
	req(layer.Of(kyria.Nav))
	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Row: 0, Col: 4, Pressed: true}, false))
	for i := 0; i < 6; i++ {
		if _, ok := recvWithin(t, hid.Channel(), time.Second); !ok {
			t.Fatalf("macro step %d missing", i)
		}
	}
	if m, ok := recvWithin(t, def.Channel(), 50*time.Millisecond); ok {
		t.Fatalf("press reached default handling: %+v", m.Payload)
	}

	req(0)
	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Row: 0, Col: 4}, false))
	m, ok := recvWithin(t, def.Channel(), time.Second)
	if !ok {
		t.Fatal("release not passed to default handling")
	}
	if ev := m.Payload.(types.KeyEvent); keycode.Keycode(ev.Code) != kyria.BckDelWord || ev.Pressed {
		t.Fatalf("release = %s pressed=%v, want %s release", keycode.Keycode(ev.Code), ev.Pressed, kyria.BckDelWord)
	}

	// The next press sees the base layer again.
	test.Publish(test.NewMessage(TopicKeyEvent, types.KeyEvent{Row: 0, Col: 4, Pressed: true}, false))
	m, ok = recvWithin(t, def.Channel(), time.Second)
	if !ok || keycode.Keycode(m.Payload.(types.KeyEvent).Code) != keycode.E {
		t.Fatalf("base press = %+v", m)
	}
}

func TestService_EncoderFeatureGate(t *testing.T) {
	cases := []struct {
		name string
		feat kyria.Features
		want bool
	}{
		{"enabled", kyria.Features{Encoder: true}, true},
		{"disabled", kyria.Features{}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			test, _ := start(t, c.feat, masterConfig(), Options{})
			hid := test.Subscribe(TopicHIDOut)
			test.Publish(test.NewMessage(TopicEncoderTurn, types.EncoderTurn{Index: 1, Clockwise: true}, false))
			m, ok := recvWithin(t, hid.Channel(), 100*time.Millisecond)
			if ok != c.want {
				t.Fatalf("emitted = %v, want %v", ok, c.want)
			}
			if ok && m.Payload.(types.HIDStep) != (types.HIDStep{Op: "tap", Code: uint16(keycode.PageDown)}) {
				t.Fatalf("step = %+v", m.Payload)
			}
		})
	}
}

func TestService_RenderNow(t *testing.T) {
	panel := &fakePanel{}
	test, _ := start(t, kyria.Features{OLED: true}, masterConfig(), Options{Panel: panel})

	test.Publish(test.NewMessage(TopicLEDs, types.LEDState{Bits: uint8(keycode.LEDNumLock)}, false))
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := test.RequestWait(ctx, test.NewMessage(CtrlTopic(CtrlRenderNow), nil, false))
	if err != nil {
		t.Fatalf("render_now: %v", err)
	}
	f, ok := reply.Payload.(types.OLEDFrame)
	if !ok {
		t.Fatalf("reply %T", reply.Payload)
	}
	if f.Raw || f.Rotation != 180 {
		t.Fatalf("frame raw=%v rotation=%d", f.Raw, f.Rotation)
	}
	if !strings.HasPrefix(f.Lines[5], "Layer: Default") || !strings.HasPrefix(f.Lines[6], "NUMLCK ") {
		t.Fatalf("lines = %q", f.Lines)
	}
	if panel.count() == 0 {
		t.Fatal("panel never flushed")
	}
}

func TestService_RenderNowSecondary(t *testing.T) {
	cfg := masterConfig()
	cfg.Master = false
	test, _ := start(t, kyria.Features{OLED: true}, cfg, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := test.RequestWait(ctx, test.NewMessage(CtrlTopic(CtrlRenderNow), nil, false))
	if err != nil {
		t.Fatalf("render_now: %v", err)
	}
	if f := reply.Payload.(types.OLEDFrame); !f.Raw || len(f.Bitmap) != 1024 {
		t.Fatalf("secondary frame raw=%v len=%d", f.Raw, len(f.Bitmap))
	}
}

func TestService_ControlErrors(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	cases := []struct {
		verb    string
		payload any
		want    errcode.Code
	}{
		{CtrlRenderNow, nil, errcode.NoDisplay},
		{CtrlLookup, "bogus", errcode.InvalidPayload},
		{CtrlLookup, types.LookupReq{Row: 9}, errcode.InvalidPosition},
		{"reboot", nil, errcode.Unsupported},
	}
	for _, c := range cases {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		reply, err := test.RequestWait(ctx, test.NewMessage(CtrlTopic(c.verb), c.payload, false))
		cancel()
		if err != nil {
			t.Fatalf("%s: %v", c.verb, err)
		}
		er, ok := reply.Payload.(types.ErrorReply)
		if !ok || er.Error != string(c.want) {
			t.Fatalf("%s: reply %+v, want %s", c.verb, reply.Payload, c.want)
		}
	}
}

func TestService_Lookup(t *testing.T) {
	test, _ := start(t, kyria.Features{}, masterConfig(), Options{})
	ls := test.Subscribe(TopicLayerState)
	test.Publish(test.NewMessage(TopicLayerRequest, types.LayerRequest{State: uint32(layer.Of(kyria.Nav))}, false))
	waitLayers(t, ls, func(s types.LayerState) bool { return s.Name == "knothc" })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	reply, err := test.RequestWait(ctx, test.NewMessage(CtrlTopic(CtrlLookup), types.LookupReq{Row: 0, Col: 3}, false))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	lr := reply.Payload.(types.LookupReply)
	if keycode.Keycode(lr.Code) != kyria.FwdDelWord || lr.Layer != uint8(kyria.Nav) {
		t.Fatalf("lookup = %+v", lr)
	}
}

func TestService_StopsOnCancel(t *testing.T) {
	test, cancel := start(t, kyria.Features{}, masterConfig(), Options{})
	sub := test.Subscribe(TopicState)
	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case m := <-sub.Channel():
			if m.Payload.(types.KeyboardState).Level == "stopped" {
				return
			}
		case <-deadline:
			t.Fatal("no stopped state")
		}
	}
}
