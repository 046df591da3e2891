// Package split carries events between the two halves of a split keyboard
// over a serial link.
//
// Frame: 0xA5 | type | len | payload[len] | xor(type, len, payload).
package split

import (
	"encoding/binary"

	"kyria-go/errcode"
	"kyria-go/types"
)

const (
	Sync       byte = 0xA5
	MaxPayload      = 32
	overhead        = 4
)

type MsgType uint8

const (
	TypeEncoder MsgType = 0x01 // secondary -> primary
	TypeState   MsgType = 0x02 // primary -> secondary
)

type Frame struct {
	Type    MsgType
	Payload []byte
}

// AppendFrame appends one encoded frame to dst.
func AppendFrame(dst []byte, t MsgType, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return dst, &errcode.E{C: errcode.BadFrame, Op: "split.AppendFrame", Msg: "payload too long"}
	}
	sum := byte(t) ^ byte(len(payload))
	dst = append(dst, Sync, byte(t), byte(len(payload)))
	for _, b := range payload {
		sum ^= b
	}
	dst = append(dst, payload...)
	return append(dst, sum), nil
}

// ---- payloads ----

// StateSync mirrors the primary's effective layers and host LEDs.
type StateSync struct {
	Layers uint32
	LEDs   uint8
}

func EncodeEncoder(t types.EncoderTurn) []byte {
	cw := byte(0)
	if t.Clockwise {
		cw = 1
	}
	return []byte{t.Index, cw}
}

func DecodeEncoder(p []byte) (types.EncoderTurn, error) {
	if len(p) != 2 || p[1] > 1 {
		return types.EncoderTurn{}, errcode.BadFrame
	}
	return types.EncoderTurn{Index: p[0], Clockwise: p[1] == 1}, nil
}

func EncodeState(s StateSync) []byte {
	p := make([]byte, 5)
	binary.LittleEndian.PutUint32(p, s.Layers)
	p[4] = s.LEDs
	return p
}

func DecodeState(p []byte) (StateSync, error) {
	if len(p) != 5 {
		return StateSync{}, errcode.BadFrame
	}
	return StateSync{Layers: binary.LittleEndian.Uint32(p), LEDs: p[4]}, nil
}

// ---- decoder ----

// Decoder reassembles frames from arbitrary chunks. Garbage before a sync
// byte is skipped; a frame with a bad length or checksum costs one byte and
// the search resumes.
type Decoder struct {
	buf []byte
	Bad int
}

func (d *Decoder) Feed(b []byte, fn func(Frame)) {
	d.buf = append(d.buf, b...)
	for {
		i := 0
		for i < len(d.buf) && d.buf[i] != Sync {
			i++
		}
		d.buf = d.buf[i:]
		if len(d.buf) < 3 {
			break
		}
		n := int(d.buf[2])
		if n > MaxPayload {
			d.Bad++
			d.buf = d.buf[1:]
			continue
		}
		if len(d.buf) < n+overhead {
			break
		}
		sum := d.buf[1] ^ d.buf[2]
		for _, c := range d.buf[3 : 3+n] {
			sum ^= c
		}
		if sum != d.buf[3+n] {
			d.Bad++
			d.buf = d.buf[1:]
			continue
		}
		fn(Frame{Type: MsgType(d.buf[1]), Payload: append([]byte(nil), d.buf[3:3+n]...)})
		d.buf = d.buf[n+overhead:]
	}
	// Keep the backing array from growing without bound.
	if len(d.buf) == 0 {
		d.buf = d.buf[:0:0]
	}
}
