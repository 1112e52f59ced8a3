package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xyproto/env/v2"

	"github.com/eigerco/rvdis/pkg/log"
	"github.com/eigerco/rvdis/pkg/riscv"
)

// Environment variables read by Load.
const (
	EnvRegisterNames = "RVDIS_REGISTER_NAMES"
	EnvLogLevel      = "RVDIS_LOG_LEVEL"
)

const (
	DefaultRegisterNames = "abi"
	DefaultLogLevel      = "info"
)

// Config holds renderer settings.
type Config struct {
	DisplayMode riscv.DisplayMode
	LogLevel    zerolog.Level
}

// Load reads the configuration from the environment, falling back to defaults
// for unset variables. The environment is re-read on every call.
func Load() (Config, error) {
	env.Load()
	return Parse(
		env.Str(EnvRegisterNames, DefaultRegisterNames),
		env.Str(EnvLogLevel, DefaultLogLevel),
	)
}

// Parse validates raw setting values.
func Parse(registerNames, logLevel string) (Config, error) {
	mode, err := riscv.ParseDisplayMode(registerNames)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvRegisterNames, err)
	}
	level, err := log.ParseLogLevel(logLevel)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return Config{DisplayMode: mode, LogLevel: level}, nil
}
