// Package main is the sqlfront command-line front end: it feeds a SQL
// buffer through internal/facade and prints the resulting requests as
// text or JSON, per SPEC_FULL.md section 6.5.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sqlcore-engine/sqlfront/internal/config"
	"github.com/sqlcore-engine/sqlfront/internal/facade"
	"github.com/sqlcore-engine/sqlfront/internal/logging"
)

type rootFlags struct {
	configPath string
	jsonOutput bool
	logLevel   string
}

func main() {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "sqlfront [file]",
		Short: "Parse SQL and print the resulting request records",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %q: %w", args[0], err)
				}
				defer f.Close()
				input = f
			}
			return run(input, os.Stdout, os.Stderr, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "print requests as JSON instead of text")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "override the configured logging level: debug, info, error, none")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run resolves configuration, parses the SQL read from in, and writes the
// rendered requests to out. It returns a non-nil error for any parse or
// build failure so main exits non-zero, after the full (possibly partial)
// dump has already reached out.
func run(in io.Reader, out, errOut io.Writer, flags *rootFlags) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	sql, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger, sync, err := buildLogger(cfg.Level)
	if err != nil {
		return err
	}
	defer sync()

	p := facade.New(facade.WithLogger(logger))
	if err := p.Parse(string(sql)); err != nil {
		fmt.Fprintln(errOut, p.ErrorMessage())
		return err
	}

	if flags.jsonOutput || cfg.Output == config.OutputJSON {
		err = p.DumpJSON(out)
	} else {
		err = p.Dump(out)
	}
	if err != nil {
		fmt.Fprintln(errOut, p.ErrorMessage())
	}
	return err
}

func resolveConfig(flags *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if flags.logLevel != "" {
		switch config.Level(flags.logLevel) {
		case config.LevelDebug, config.LevelInfo, config.LevelError, config.LevelNone:
			cfg.Level = config.Level(flags.logLevel)
		default:
			return config.Config{}, fmt.Errorf("sqlfront: unsupported --log-level %q", flags.logLevel)
		}
	}
	return cfg, nil
}

// buildLogger maps a config.Level onto a logging.Logger, returning a sync
// func the caller should defer regardless of which branch was taken.
func buildLogger(level config.Level) (logging.Logger, func(), error) {
	if level == config.LevelNone {
		return logging.Noop, func() {}, nil
	}

	zapLevel, err := zapcore.ParseLevel(string(level))
	if err != nil {
		return nil, nil, fmt.Errorf("sqlfront: %w", err)
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	zl, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("sqlfront: build logger: %w", err)
	}
	return logging.NewZap(zl), func() { _ = zl.Sync() }, nil
}
