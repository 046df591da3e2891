// Package heartbeat publishes a periodic liveness beat with runtime memory
// stats. The interval follows heartbeat_ms in the keyboard config.
package heartbeat

import (
	"context"
	"runtime"
	"time"

	"kyria-go/bus"
	"kyria-go/services/config"
	"kyria-go/types"
	"kyria-go/x/timex"
)

var TopicHeartbeat = bus.T("kbd", "heartbeat")

type Service struct {
	// Quiet suppresses the console line; the beat is still published.
	Quiet bool

	start time.Time
	seq   uint32
}

func New() *Service { return &Service{} }

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(config.TopicKeyboard)
	defer conn.Unsubscribe(cfgSub)

	s.start = time.Now()
	tick := timex.StoppedTimer()
	defer tick.Stop()
	var every time.Duration

	for {
		select {
		case <-ctx.Done():
			println("[heartbeat] stopping")
			return
		case <-tick.C:
			s.beat(conn)
			timex.ResetTimer(tick, every)
		case msg := <-cfgSub.Channel():
			cfg, ok := msg.Payload.(types.KeyboardConfig)
			if !ok {
				continue
			}
			if cfg.HeartbeatMS <= 0 {
				every = 0
				if !tick.Stop() {
					timex.DrainTimer(tick)
				}
				println("[heartbeat] disabled")
				continue
			}
			every = time.Duration(cfg.HeartbeatMS) * time.Millisecond
			timex.ResetTimer(tick, every)
		}
	}
}

func (s *Service) beat(conn *bus.Connection) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	s.seq++
	hb := types.Heartbeat{
		Seq:       s.seq,
		UptimeMS:  time.Since(s.start).Milliseconds(),
		Alloc:     uint32(ms.Alloc),
		HeapInuse: uint32(ms.HeapInuse),
		Mallocs:   uint32(ms.Mallocs),
		Frees:     uint32(ms.Frees),
	}
	conn.Publish(conn.NewMessage(TopicHeartbeat, hb, false))
	if !s.Quiet {
		println("[mem]", "alloc:", hb.Alloc, "heapInuse:", hb.HeapInuse, "mallocs:", hb.Mallocs, "frees:", hb.Frees)
	}
}

// Start runs the heartbeat service in a goroutine.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) {
	go s.serviceLoop(ctx, conn)
}
