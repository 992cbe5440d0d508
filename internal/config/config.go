package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tasknet/taskrt/internal/fcs"
)

// Config is one device's runtime configuration, per the deployment's
// configuration surface.
type Config struct {
	ProtocolVersion uint8  `toml:"protocol_version"`
	BoardID         uint8  `toml:"board_id"`
	DeviceN         uint8  `toml:"device_n"`
	PacketSize      int    `toml:"packet_size"`
	WordSize        int    `toml:"word_size"`
	FCSPolicy       string `toml:"fcs_policy"`
}

// Load reads and validates a Config from path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if cfg.WordSize == 0 {
		cfg.WordSize = 4
	}
	if cfg.FCSPolicy == "" {
		cfg.FCSPolicy = "none"
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the deployment's configuration surface:
// PROTOCOL_VERSION in 0..3, DEVICE_N in 1..255, a packet size that is a
// positive multiple of the word size, and a recognized fcs policy name.
func Validate(cfg Config) error {
	if cfg.ProtocolVersion > 3 {
		return fmt.Errorf("protocol_version must be 0..3, got %d", cfg.ProtocolVersion)
	}
	if cfg.DeviceN < 1 {
		return fmt.Errorf("device_n must be at least 1, got %d", cfg.DeviceN)
	}
	if cfg.WordSize <= 0 {
		return fmt.Errorf("word_size must be positive, got %d", cfg.WordSize)
	}
	if cfg.PacketSize <= 0 || cfg.PacketSize%cfg.WordSize != 0 {
		return fmt.Errorf("packet_size must be a positive multiple of word_size %d, got %d", cfg.WordSize, cfg.PacketSize)
	}
	if _, err := fcs.ParsePolicy(cfg.FCSPolicy); err != nil {
		return fmt.Errorf("fcs_policy invalid: %w", err)
	}
	return nil
}

// Policy resolves cfg's fcs_policy string to an fcs.Policy.
func (cfg Config) Policy() (fcs.Policy, error) {
	return fcs.ParsePolicy(cfg.FCSPolicy)
}
