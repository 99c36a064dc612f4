package main

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/govalues/numeric"
	"go.uber.org/zap/zapcore"
)

// Config is the configuration of the command line tool.
// It is read from a TOML file; flags override the values of the file.
type Config struct {
	Type     numeric.Type     `toml:"type"`
	Rounding numeric.Rounding `toml:"rounding"`
	Level    zapcore.Level    `toml:"log_level"`
}

func NewDefaultConfig() Config {
	return Config{
		Type:     numeric.MustNewType(numeric.MaxPrec, 8),
		Rounding: numeric.HalfUp,
		Level:    zapcore.WarnLevel,
	}
}

// LoadConfig reads the configuration from a TOML file.
// Keys missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := NewDefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading configuration %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("reading configuration %v: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// Encode renders the configuration as TOML.
func (c Config) Encode() (string, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
