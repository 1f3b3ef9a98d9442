// Package config parses runtime configuration for the demo binary from CLI
// flags with environment-variable fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ripred/bettermenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth      = "BETTERMENU_WIDTH"
	envHeight     = "BETTERMENU_HEIGHT"
	envNumbering  = "BETTERMENU_NUMBERING"
	envShowFooter = "BETTERMENU_FOOTER"
	envStackDepth = "BETTERMENU_STACK_DEPTH"
	envTrace      = "BETTERMENU_TRACE"
	envLogFile    = "BETTERMENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("bettermenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "display width in columns (0 uses the terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "visible menu rows (0 uses the terminal height)")
	numbering := fs.Bool("numbering", envOrBool(env, envNumbering, false), "prefix rows with their 1-based ordinal")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key-hint footer row")
	stackDepth := fs.Int("stack-depth", envOrInt(env, envStackDepth, 0), "submenu nesting bound (0 uses the engine default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			Numbering:  *numbering,
			ShowFooter: *footer,
			StackDepth: *stackDepth,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"numbering":  strconv.FormatBool(*numbering),
			"footer":     strconv.FormatBool(*footer),
			"stackDepth": strconv.Itoa(*stackDepth),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the loaded configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.StackDepth < 0 {
		return fmt.Errorf("stack-depth must be >= 0 (got %d)", cfg.App.StackDepth)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
