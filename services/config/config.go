package config

import (
	"context"
	"strconv"

	"kyria-go/bus"
	"kyria-go/errcode"
	"kyria-go/oled"
	"kyria-go/types"
	"kyria-go/x/strx"

	"gopkg.in/yaml.v3"
)

const (
	serviceName  = "config"
	configPrefix = "config"
	configKey    = "keyboard"
	CtxDeviceKey = "device" // context key used for device ID
)

// TopicKeyboard carries the retained types.KeyboardConfig.
var TopicKeyboard = bus.T(configPrefix, configKey)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Devices lists the embedded device IDs.
func Devices() []string {
	out := make([]string, 0, len(embeddedConfigs))
	for k := range embeddedConfigs {
		out = append(out, k)
	}
	return out
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// Load decodes the embedded config for device.
func Load(device string) (types.KeyboardConfig, error) {
	var cfg types.KeyboardConfig
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return cfg, &errcode.E{C: errcode.UnknownDevice, Op: "config.Load", Msg: device}
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errcode.Wrap(errcode.InvalidConfig, "config.Load", err)
	}
	cfg.Side = strx.Coalesce(cfg.Side, "left")
	if cfg.Side != "left" && cfg.Side != "right" {
		return cfg, &errcode.E{C: errcode.InvalidConfig, Op: "config.Load", Msg: "side " + cfg.Side}
	}
	if cfg.OLED.Width == 0 {
		cfg.OLED.Width = 128
	}
	if cfg.OLED.Height == 0 {
		cfg.OLED.Height = 64
	}
	if cfg.OLED.Address == 0 {
		cfg.OLED.Address = 0x3C
	}
	if !oled.ValidSize(cfg.OLED.Width, cfg.OLED.Height) {
		return cfg, &errcode.E{C: errcode.InvalidConfig, Op: "config.Load",
			Msg: "oled size " + strconv.Itoa(cfg.OLED.Width) + "x" + strconv.Itoa(cfg.OLED.Height)}
	}
	if cfg.Encoders.Resolution <= 0 {
		cfg.Encoders.Resolution = 4
	}
	return cfg, nil
}

// publishConfig decodes the device config and publishes it retained.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return &errcode.E{C: errcode.InvalidConfig, Op: "config.publish", Msg: "missing device ID in context"}
	}
	cfg, err := Load(device)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(TopicKeyboard, cfg, true))
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			println("[config] " + err.Error())
		}
	}()
}
