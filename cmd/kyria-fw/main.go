//go:build rp2040

// Command kyria-fw is the RP2040 firmware entry point for one Kyria half.
// Build each half with -ldflags "-X main.device=kyria-right" as needed.
//
// Key events are published on kbd/key/event and layer requests on
// kbd/layer/request by the matrix scanner, which lives outside this module.
package main

import (
	"context"
	"time"

	"kyria-go/bus"
	"kyria-go/encoder"
	"kyria-go/kyria"
	"kyria-go/oled"
	"kyria-go/platform"
	"kyria-go/services/config"
	"kyria-go/services/heartbeat"
	"kyria-go/services/keyboard"
	"kyria-go/split"
	"kyria-go/types"
	"kyria-go/x/timex"
)

var device = "kyria-left"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, device)

	println("[main] bootstrapping bus …")
	b := bus.NewBus(8)
	mainConn := b.NewConnection("main")

	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	cfgSub := mainConn.Subscribe(keyboard.TopicConfig)
	msg := <-cfgSub.Channel()
	mainConn.Unsubscribe(cfgSub)
	cfg, ok := msg.Payload.(types.KeyboardConfig)
	if !ok {
		println("[main] config has wrong type")
		return
	}
	println("[main] " + device + " side=" + cfg.Side)

	km := kyria.New(kyria.Features{OLED: true, Encoder: true})
	board, err := platform.Open(cfg, km.OLEDInit(oled.Rotation0))
	if err != nil {
		println("[main] platform: " + err.Error())
		return
	}

	println("[main] starting keyboard service …")
	svc := keyboard.New(b.NewConnection("keyboard"), km, keyboard.Options{Panel: board.Panel, HID: board.HID})
	go svc.Run(ctx)

	if board.Split != nil {
		link := split.NewLink(board.Split, 16)
		go split.NewBridge(b.NewConnection("split"), link, cfg.Master).Run(ctx)
	}

	if len(board.Encoders) > 0 {
		go pollEncoders(ctx, b.NewConnection("encoder"), cfg.Encoders, board.Encoders)
	}

	heartbeat.New().Start(ctx, b.NewConnection("heartbeat"))
	select {}
}

// pollEncoders samples the encoders and publishes one turn per detent.
// Indices are offset so both halves share one numbering.
func pollEncoders(ctx context.Context, conn *bus.Connection, cfg types.EncoderConfig, srcs []encoder.Positioner) {
	// The quadrature driver already divides by the configured precision.
	p := encoder.NewPoller(func(idx uint8, cw bool) {
		turn := types.EncoderTurn{Index: cfg.IndexBase + idx, Clockwise: cw}
		conn.Publish(conn.NewMessage(keyboard.TopicEncoderTurn, turn, false))
	}, 1, srcs...)

	tick := time.NewTicker(timex.Millis(cfg.PollMS, 2*time.Millisecond))
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			p.Poll()
		}
	}
}
