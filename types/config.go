package types

// Keyboard configuration supplied retained on topic "config/keyboard".

type KeyboardConfig struct {
	Side   string `yaml:"side"`   // "left" | "right"
	Master bool   `yaml:"master"` // half wired to USB

	OLED     OLEDConfig    `yaml:"oled"`
	Encoders EncoderConfig `yaml:"encoders"`
	Split    SplitConfig   `yaml:"split"`

	HeartbeatMS int `yaml:"heartbeat_ms"` // 0 disables the beat
}

type OLEDConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Address   uint16 `yaml:"address"`
	RefreshMS int    `yaml:"refresh_ms"`
}

type EncoderConfig struct {
	Enabled    bool         `yaml:"enabled"`
	Resolution int          `yaml:"resolution"` // counts per detent
	PollMS     int          `yaml:"poll_ms"`
	IndexBase  uint8        `yaml:"index_base"` // first encoder index on this half
	Pins       []EncoderPin `yaml:"pins"`
}

type EncoderPin struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

type SplitConfig struct {
	Enabled bool   `yaml:"enabled"`
	Baud    uint32 `yaml:"baud"`
	TX      int    `yaml:"tx"`
	RX      int    `yaml:"rx"`
}
