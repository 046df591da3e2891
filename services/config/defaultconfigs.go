package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw YAML for that half
// -----------------------------------------------------------------------------

const cfgKyriaLeft = `
side: left
master: true
heartbeat_ms: 5000
oled:
  enabled: true
  width: 128
  height: 64
  address: 0x3C
  refresh_ms: 100
encoders:
  enabled: true
  resolution: 4
  poll_ms: 2
  index_base: 0
  pins:
    - {a: 22, b: 26}
split:
  enabled: true
  baud: 115200
  tx: 0
  rx: 1
`

const cfgKyriaRight = `
side: right
master: false
heartbeat_ms: 5000
oled:
  enabled: true
  width: 128
  height: 64
  address: 0x3C
  refresh_ms: 500
encoders:
  enabled: true
  resolution: 4
  poll_ms: 2
  index_base: 1
  pins:
    - {a: 26, b: 22}
split:
  enabled: true
  baud: 115200
  tx: 0
  rx: 1
`

var embeddedConfigs = map[string][]byte{
	"kyria-left":  []byte(cfgKyriaLeft),
	"kyria-right": []byte(cfgKyriaRight),
}
