// Package config loads host runner settings from POCKETCALC_* environment variables,
// then lets command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"pocketcalc/hal"

	"github.com/joeshaw/envdecode"
)

const (
	defaultHz    = 60
	defaultScale = 2
)

type Config struct {
	// Headless runs without a window. ENV: POCKETCALC_HEADLESS
	Headless bool `env:"POCKETCALC_HEADLESS,default=false"`
	// Hz is the headless frame rate. ENV: POCKETCALC_HZ
	Hz int `env:"POCKETCALC_HZ,default=60"`
	// Ticks stops the headless runner after N frames; 0 runs forever. ENV: POCKETCALC_TICKS
	Ticks uint64 `env:"POCKETCALC_TICKS,default=0"`
	// Keys is typed into the calculator, one symbol per frame, in headless mode. ENV: POCKETCALC_KEYS
	Keys string `env:"POCKETCALC_KEYS"`
	// Scale is the window zoom factor. ENV: POCKETCALC_SCALE
	Scale int `env:"POCKETCALC_SCALE,default=2"`
}

// FromEnv decodes Config from the environment. Unset variables keep their defaults;
// values that do not parse are errors.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// Load reads the environment and then parses args (without the program name).
func Load(name string, args []string, usage io.Writer) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run without a window.")
	fs.IntVar(&cfg.Hz, "hz", cfg.Hz, "Frame rate in headless mode.")
	fs.Uint64Var(&cfg.Ticks, "ticks", cfg.Ticks, "Stop after N frames in headless mode (0 = run forever).")
	fs.StringVar(&cfg.Keys, "keys", cfg.Keys, "Symbols to type in headless mode, e.g. \"12+30=\".")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window zoom factor.")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected argument %q", fs.Arg(0))
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	if c.Hz <= 0 {
		c.Hz = defaultHz
	}
	if c.Scale <= 0 {
		c.Scale = defaultScale
	}
	return c
}

func (c Config) HeadlessConfig() hal.HeadlessConfig {
	return hal.HeadlessConfig{Enabled: c.Headless, Hz: c.Hz, Ticks: c.Ticks, Keys: c.Keys}
}

func (c Config) WindowConfig() hal.WindowConfig {
	return hal.WindowConfig{Scale: c.Scale}
}
