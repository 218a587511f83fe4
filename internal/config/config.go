// Package config loads cmd/sqlfront's own settings from an optional TOML
// file. The parser library itself takes no configuration of any kind
// (spec.md section 5): everything here is CLI-only surface — default
// output mode and logging level — layered under whatever flags the
// invocation passes.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// OutputMode selects how cmd/sqlfront renders parsed requests.
type OutputMode string

const (
	OutputText OutputMode = "text"
	OutputJSON OutputMode = "json"
)

// Level names the logging verbosity cmd/sqlfront's zap logger is built at.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
	LevelNone  Level = "none"
)

// Config holds cmd/sqlfront's resolved settings.
type Config struct {
	Output OutputMode
	Level  Level
}

// Default returns the settings cmd/sqlfront uses when no config file and no
// overriding flags are given.
func Default() Config {
	return Config{Output: OutputText, Level: LevelNone}
}

// file is the TOML document shape read from disk; unset fields keep
// Default's values, decoded via the zero-value-then-decode pattern rather
// than pointer fields since every setting here already has an unambiguous
// zero meaning ("use the default").
type file struct {
	Output string `toml:"output"`
	Level  string `toml:"level"`
}

// Load reads path as TOML and overlays it onto Default, validating both
// fields against their closed sets of values.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) (Config, error) {
	cfg := Default()
	var doc file
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Config{}, fmt.Errorf("config: decode error: %w", err)
	}

	if doc.Output != "" {
		mode, err := parseOutputMode(doc.Output)
		if err != nil {
			return Config{}, err
		}
		cfg.Output = mode
	}
	if doc.Level != "" {
		level, err := parseLevel(doc.Level)
		if err != nil {
			return Config{}, err
		}
		cfg.Level = level
	}
	return cfg, nil
}

func parseOutputMode(raw string) (OutputMode, error) {
	switch OutputMode(strings.ToLower(raw)) {
	case OutputText:
		return OutputText, nil
	case OutputJSON:
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("config: unsupported output %q; supported: text, json", raw)
	}
}

func parseLevel(raw string) (Level, error) {
	switch Level(strings.ToLower(raw)) {
	case LevelDebug:
		return LevelDebug, nil
	case LevelInfo:
		return LevelInfo, nil
	case LevelError:
		return LevelError, nil
	case LevelNone:
		return LevelNone, nil
	default:
		return "", fmt.Errorf("config: unsupported level %q; supported: debug, info, error, none", raw)
	}
}
