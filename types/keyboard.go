package types

// ---- Service state (retained) ----

type KeyboardState struct {
	Level  string `yaml:"level"`  // "idle", "ready", "stopped"
	Status string `yaml:"status"` // short code
	Error  string `yaml:"error,omitempty"`
	TS     int64  `yaml:"ts_ms"`
}

// Heartbeat is published on "kbd/heartbeat" while the half is alive.
type Heartbeat struct {
	Seq       uint32 `yaml:"seq"`
	UptimeMS  int64  `yaml:"uptime_ms"`
	Alloc     uint32 `yaml:"alloc"`
	HeapInuse uint32 `yaml:"heap_inuse"`
	Mallocs   uint32 `yaml:"mallocs"`
	Frees     uint32 `yaml:"frees"`
}

// ---- Inputs from the host framework ----

// LayerRequest carries the layer bits the host's layer keys currently hold.
type LayerRequest struct {
	State uint32
}

// KeyEvent is one physical key transition. Code zero asks the service to
// resolve the keycode from the layer table at (Row, Col).
type KeyEvent struct {
	Code    uint16
	Row     uint8
	Col     uint8
	Pressed bool
}

type EncoderTurn struct {
	Index     uint8
	Clockwise bool
}

// LEDState is the host keyboard LED report.
type LEDState struct {
	Bits uint8
}

// ---- Outputs ----

// LayerState is published retained on "kbd/layer/state".
type LayerState struct {
	Requested uint32 `yaml:"requested"`
	Effective uint32 `yaml:"effective"`
	Highest   uint8  `yaml:"highest"`
	Name      string `yaml:"name"`
}

// HIDStep is one synthetic key step emitted by the keymap.
type HIDStep struct {
	Op   string `yaml:"op"` // "down" | "up" | "tap"
	Code uint16 `yaml:"code"`
}

// OLEDFrame is a copy of the status screen.
type OLEDFrame struct {
	Rotation uint16   `yaml:"rotation"`
	Raw      bool     `yaml:"raw"`
	Lines    []string `yaml:"lines,omitempty"`
	Bitmap   []byte   `yaml:"bitmap,omitempty"`
}

// ---- Controls ----

type LookupReq struct {
	Row uint8
	Col uint8
}

type LookupReply struct {
	OK     bool   `yaml:"ok"`
	Action string `yaml:"action"`
	Code   uint16 `yaml:"code"`
	Layer  uint8  `yaml:"layer"` // layer the action came from
}

// Generic replies
type OKReply struct {
	OK bool `yaml:"ok"`
}
type ErrorReply struct {
	OK    bool   `yaml:"ok"`
	Error string `yaml:"error"`
}
