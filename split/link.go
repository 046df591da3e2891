package split

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Port is the serial line between the halves.
type Port interface {
	Write(p []byte) (int, error)
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

// Link reads frames from a Port on its own goroutine and queues them on a
// bounded channel; frames are dropped when the consumer is slow.
type Link struct {
	port Port
	outQ chan Frame

	txMu sync.Mutex
	tx   []byte

	bad     atomic.Uint32
	dropped atomic.Uint32
}

func NewLink(port Port, outBuf int) *Link {
	if outBuf <= 0 {
		outBuf = 16
	}
	return &Link{port: port, outQ: make(chan Frame, outBuf)}
}

func (l *Link) Frames() <-chan Frame { return l.outQ }

// BadFrames counts frames discarded for length or checksum.
func (l *Link) BadFrames() uint32 { return l.bad.Load() }

// Dropped counts good frames lost to a full queue.
func (l *Link) Dropped() uint32 { return l.dropped.Load() }

// Start launches the reader. Returns cancel.
func (l *Link) Start(ctx context.Context) func() {
	cctx, cancel := context.WithCancel(ctx)
	go func() {
		buf := make([]byte, 64)
		var dec Decoder
		push := func(f Frame) {
			select {
			case l.outQ <- f:
			default:
				l.dropped.Add(1)
			}
		}
		for {
			if cctx.Err() != nil {
				return
			}
			// Bound the blocking wait to assist shutdown.
			rctx, rcancel := context.WithTimeout(cctx, 250*time.Millisecond)
			n, _ := l.port.RecvSomeContext(rctx, buf)
			rcancel()
			if n <= 0 {
				continue
			}
			before := dec.Bad
			dec.Feed(buf[:n], push)
			if d := dec.Bad - before; d > 0 {
				l.bad.Add(uint32(d))
			}
		}
	}()
	return cancel
}

// Send writes one frame.
func (l *Link) Send(t MsgType, payload []byte) error {
	l.txMu.Lock()
	defer l.txMu.Unlock()
	var err error
	l.tx, err = AppendFrame(l.tx[:0], t, payload)
	if err != nil {
		return err
	}
	_, err = l.port.Write(l.tx)
	return err
}
