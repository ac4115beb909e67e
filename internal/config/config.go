package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/gridmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose     bool
	SharedSlots bool
}

const (
	envMenus           = "GRIDMENU_MENUS"
	envRootMenu        = "GRIDMENU_ROOT_MENU"
	envViewers         = "GRIDMENU_VIEWERS"
	envDB              = "GRIDMENU_DB"
	envSharedSlots     = "GRIDMENU_LEGACY_SHARED_SLOTS"
	envPersistInterval = "GRIDMENU_PERSIST_INTERVAL"
	envWidth           = "GRIDMENU_WIDTH"
	envHeight          = "GRIDMENU_HEIGHT"
	envVerbose         = "GRIDMENU_VERBOSE"
	envTrace           = "GRIDMENU_TRACE"
	envLogFile         = "GRIDMENU_LOG_FILE"
)

const defaultViewers = "alex"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("gridmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	menus := fs.String("menus", envOrDefault(env, envMenus, ""), "path to a YAML or TOML menu catalog (empty uses the built-in demo)")
	root := fs.String("root-menu", envOrDefault(env, envRootMenu, ""), "menu opened at startup (defaults to the catalog root)")
	viewers := fs.String("viewers", envOrDefault(env, envViewers, defaultViewers), "comma separated local viewer names")
	db := fs.String("db", envOrDefault(env, envDB, ""), "path to the grant ledger (empty keeps it in memory)")
	shared := fs.Bool("legacy-shared-slots", envOrBool(env, envSharedSlots, false), "share one slot table between all sessions")
	interval := fs.Duration("persist-interval", envOrDuration(env, envPersistInterval, 50*time.Millisecond), "minimum spacing between ledger writes")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show a status line for every dispatched click")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *interval < 0 {
		return Config{}, fmt.Errorf("persist-interval must be >= 0 (got %s)", *interval)
	}

	names := splitViewers(*viewers)

	cfg := Config{
		App: app.Config{
			CatalogPath:     strings.TrimSpace(*menus),
			RootMenu:        strings.TrimSpace(*root),
			Viewers:         names,
			DBPath:          strings.TrimSpace(*db),
			SharedSlots:     *shared,
			PersistInterval: *interval,
			Width:           *width,
			Height:          *height,
			Verbose:         *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose:     *verbose,
			SharedSlots: *shared,
		},
		Flags: map[string]string{
			"menus":             *menus,
			"rootMenu":          *root,
			"viewers":           strings.Join(names, ","),
			"db":                *db,
			"legacySharedSlots": strconv.FormatBool(*shared),
			"persistInterval":   interval.String(),
			"width":             strconv.Itoa(*width),
			"height":            strconv.Itoa(*height),
			"trace":             strconv.FormatBool(*trace),
			"verbose":           strconv.FormatBool(*verbose),
			"logFile":           *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func splitViewers(raw string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.App.Viewers) == 0 {
		return fmt.Errorf("at least one viewer is required")
	}
	return nil
}
