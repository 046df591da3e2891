package split

import (
	"context"
	"time"

	"kyria-go/bus"
	"kyria-go/services/keyboard"
	"kyria-go/types"
)

const resyncEvery = time.Second

// Bridge moves keyboard traffic between the local bus and the other half.
// The primary sends its effective layers and host LEDs and receives encoder
// turns; the secondary does the reverse.
type Bridge struct {
	conn    *bus.Connection
	link    *Link
	primary bool

	last    StateSync
	haveAny bool
}

func NewBridge(conn *bus.Connection, link *Link, primary bool) *Bridge {
	return &Bridge{conn: conn, link: link, primary: primary}
}

func (b *Bridge) Run(ctx context.Context) {
	stop := b.link.Start(ctx)
	defer stop()

	if b.primary {
		b.runPrimary(ctx)
		return
	}
	b.runSecondary(ctx)
}

func (b *Bridge) runPrimary(ctx context.Context) {
	layerSub := b.conn.Subscribe(keyboard.TopicLayerState)
	ledSub := b.conn.Subscribe(keyboard.TopicLEDs)
	defer b.conn.Unsubscribe(layerSub)
	defer b.conn.Unsubscribe(ledSub)

	tick := time.NewTicker(resyncEvery)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-layerSub.Channel():
			if ls, ok := msg.Payload.(types.LayerState); ok {
				b.sendState(StateSync{Layers: ls.Effective, LEDs: b.last.LEDs}, false)
			}
		case msg := <-ledSub.Channel():
			if st, ok := msg.Payload.(types.LEDState); ok {
				b.sendState(StateSync{Layers: b.last.Layers, LEDs: st.Bits}, false)
			}
		case <-tick.C:
			if b.haveAny {
				b.sendState(b.last, true)
			}
		case f := <-b.link.Frames():
			if f.Type != TypeEncoder {
				continue
			}
			turn, err := DecodeEncoder(f.Payload)
			if err != nil {
				continue
			}
			b.conn.Publish(b.conn.NewMessage(keyboard.TopicEncoderTurn, turn, false))
		}
	}
}

func (b *Bridge) sendState(s StateSync, force bool) {
	if !force && b.haveAny && s == b.last {
		return
	}
	b.last, b.haveAny = s, true
	if err := b.link.Send(TypeState, EncodeState(s)); err != nil {
		println("[split] send state: " + err.Error())
	}
}

func (b *Bridge) runSecondary(ctx context.Context) {
	encSub := b.conn.Subscribe(keyboard.TopicEncoderTurn)
	defer b.conn.Unsubscribe(encSub)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-encSub.Channel():
			turn, ok := msg.Payload.(types.EncoderTurn)
			if !ok {
				continue
			}
			if err := b.link.Send(TypeEncoder, EncodeEncoder(turn)); err != nil {
				println("[split] send encoder: " + err.Error())
			}
		case f := <-b.link.Frames():
			if f.Type != TypeState {
				continue
			}
			st, err := DecodeState(f.Payload)
			if err != nil {
				continue
			}
			b.conn.Publish(b.conn.NewMessage(keyboard.TopicLayerRequest, types.LayerRequest{State: st.Layers}, false))
			b.conn.Publish(b.conn.NewMessage(keyboard.TopicLEDs, types.LEDState{Bits: st.LEDs}, false))
		}
	}
}
