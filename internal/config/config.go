package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/editor-menubar/internal/app"
	"github.com/atomicstack/editor-menubar/internal/menu"
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
	envFile       = "EDITOR_MENUBAR_FILE"
	envAutosave   = "EDITOR_MENUBAR_AUTOSAVE"
	envFloating   = "EDITOR_MENUBAR_FLOATING"
	envDropdowns  = "EDITOR_MENUBAR_DROPDOWNS"
	envWidth      = "EDITOR_MENUBAR_WIDTH"
	envHeight     = "EDITOR_MENUBAR_HEIGHT"
	envShowFooter = "EDITOR_MENUBAR_FOOTER"
	envTrace      = "EDITOR_MENUBAR_TRACE"
	envLogFile    = "EDITOR_MENUBAR_LOG_FILE"
)

// LoadArgs parses configuration from CLI arguments with environment
// fallbacks and validates the result.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("editor-menubar", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	file := fs.String("file", envOrDefault(env, envFile, ""), "document to edit (plain text, # headings, > callouts)")
	autosave := fs.Bool("autosave", envOrBool(env, envAutosave, true), "write the document back to -file after every change")
	floating := fs.Bool("floating", envOrBool(env, envFloating, false), "paint the toolbar above the selection instead of docking it")
	dropdowns := fs.String("dropdowns", envOrDefault(env, envDropdowns, menu.PolicyExclusive.String()), "top-level dropdown policy: exclusive or independent")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	policy, err := menu.ParsePolicy(*dropdowns)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			File:       *file,
			Autosave:   *autosave,
			Floating:   *floating,
			Dropdowns:  policy,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"file":      *file,
			"autosave":  strconv.FormatBool(*autosave),
			"floating":  strconv.FormatBool(*floating),
			"dropdowns": policy.String(),
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, Validate(cfg)
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

// Validate rejects sizes and policies the application cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	switch cfg.App.Dropdowns {
	case menu.PolicyExclusive, menu.PolicyIndependent:
	default:
		return fmt.Errorf("unknown dropdown policy %s", cfg.App.Dropdowns)
	}
	return nil
}
