// Package config resolves host settings from flags, environment and an optional .env file
// Precedence: flags over COSMIC_* environment over .env over defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/cosmic-arcade/constants"
	"github.com/lixenwraith/cosmic-arcade/systems"
)

// Sentinel errors
var (
	ErrInvalidFPS       = errors.New("fps out of range")
	ErrInvalidMode      = errors.New("unknown mode")
	ErrInvalidLevel     = errors.New("level must be at least 1")
	ErrInvalidParticles = errors.New("particle count must not be negative")
	ErrInvalidValue     = errors.New("invalid value")
)

// EnvPrefix namespaces environment variables
const EnvPrefix = "COSMIC_"

// Mode selects the hosted simulation
type Mode string

const (
	ModeField Mode = "field"
	ModeGame  Mode = "game"
)

// Config is read once at startup and never changes
type Config struct {
	Mode      Mode
	Preset    systems.Preset
	Variant   systems.Variant
	FPS       int
	Level     int
	Particles int // 0 uses the preset size
	Mute      bool
	Debug     bool
	HUDAddr   string // empty disables the feed
	Seed      uint64 // 0 seeds from entropy
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Mode:    ModeField,
		Preset:  systems.PresetCosmic,
		Variant: systems.VariantEnhanced,
		FPS:     constants.DefaultFPS,
		Level:   constants.InitialLevel,
	}
}

// setting names shared by flags and environment keys
var settings = []string{"mode", "preset", "variant", "fps", "level", "particles", "mute", "debug", "hud-addr", "seed"}

// Load resolves settings for args using the process environment
func Load(args []string) (Config, error) {
	return LoadWith(args, os.LookupEnv)
}

// LoadWith resolves settings with an injected environment lookup
func LoadWith(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	fset := flag.NewFlagSet("cosmic-arcade", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.String("mode", string(cfg.Mode), "simulation to host: field or game")
	fset.String("preset", cfg.Preset.String(), "field preset: cosmic or footer")
	fset.String("variant", cfg.Variant.String(), "game variant: enhanced or basic")
	fset.Int("fps", cfg.FPS, "frame rate")
	fset.Int("level", cfg.Level, "starting level")
	fset.Int("particles", cfg.Particles, "field particle count, 0 for the preset size")
	fset.Bool("mute", cfg.Mute, "disable sound")
	fset.Bool("debug", cfg.Debug, "write logs to logs/")
	fset.String("hud-addr", cfg.HUDAddr, "HUD feed listen address, empty to disable")
	fset.Uint64("seed", cfg.Seed, "random seed, 0 for entropy")
	envFile := fset.String("env-file", ".env", "optional dotenv file")

	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("failed to parse flags: %w", err)
	}

	dotenv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to read %s: %w", *envFile, err)
	}

	for _, name := range settings {
		key := EnvKey(name)
		raw, ok := lookupEnv(key)
		if !ok {
			raw, ok = dotenv[key]
		}
		if !ok {
			continue
		}
		if err := cfg.set(name, raw); err != nil {
			return cfg, fmt.Errorf("failed to apply %s: %w", key, err)
		}
	}

	var flagErr error
	fset.Visit(func(f *flag.Flag) {
		if flagErr != nil || f.Name == "env-file" {
			return
		}
		if err := cfg.set(f.Name, f.Value.String()); err != nil {
			flagErr = fmt.Errorf("failed to apply -%s: %w", f.Name, err)
		}
	})
	if flagErr != nil {
		return cfg, flagErr
	}

	return cfg, cfg.Validate()
}

// EnvKey returns the environment variable for a setting name
func EnvKey(name string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (c *Config) set(name, raw string) error {
	raw = strings.TrimSpace(raw)
	var err error
	switch name {
	case "mode":
		c.Mode = Mode(strings.ToLower(raw))
	case "preset":
		c.Preset, err = systems.ParsePreset(strings.ToLower(raw))
	case "variant":
		c.Variant, err = systems.ParseVariant(strings.ToLower(raw))
	case "fps":
		c.FPS, err = strconv.Atoi(raw)
	case "level":
		c.Level, err = strconv.Atoi(raw)
	case "particles":
		c.Particles, err = strconv.Atoi(raw)
	case "mute":
		c.Mute, err = strconv.ParseBool(raw)
	case "debug":
		c.Debug, err = strconv.ParseBool(raw)
	case "hud-addr":
		c.HUDAddr = raw
	case "seed":
		c.Seed, err = strconv.ParseUint(raw, 10, 64)
	}
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidValue, raw, err)
	}
	return nil
}

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case c.Mode != ModeField && c.Mode != ModeGame:
		return fmt.Errorf("%w %q", ErrInvalidMode, c.Mode)
	case c.FPS < 1 || c.FPS > constants.MaxFPS:
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidFPS, c.FPS, constants.MaxFPS)
	case c.Level < 1:
		return fmt.Errorf("%w: %d", ErrInvalidLevel, c.Level)
	case c.Particles < 0:
		return fmt.Errorf("%w: %d", ErrInvalidParticles, c.Particles)
	}
	return nil
}
