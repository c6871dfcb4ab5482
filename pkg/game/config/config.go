// Package config resolves the game settings from defaults, an optional
// .env file, MAZECRAWL_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"mazecrawl/pkg/engine/logging"
	"mazecrawl/pkg/game/generator"
	"mazecrawl/pkg/game/i18n"
)

// EnvPrefix prefixes every environment variable the game reads
const EnvPrefix = "MAZECRAWL_"

// Front-ends
const (
	FrontendTUI    = "tui"
	FrontendScreen = "screen"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds the game settings
type Config struct {
	Width       int     // Maze columns
	Height      int     // Maze rows
	Exploration float64 // Curiosity of the generator, in [0, 1]
	Enemies     int     // Enemies spawned at the start
	Rewards     int     // Rewards spawned at the start
	Attacks     int     // Attacks the player starts with
	Seed        int64   // Random seed, 0 picks one from the clock
	Frontend    string  // "tui" or "screen"
	Language    string  // Catalog used for messages
	LogFile     string  // Debug log destination, empty discards
	LogLevel    string  // debug, info, warn or error
	DumpFile    string  // Write a map dump here and exit instead of playing
}

// Default returns the settings of the classic game
func Default() Config {
	return Config{
		Width:       39,
		Height:      20,
		Exploration: generator.DefaultExploration,
		Enemies:     80,
		Rewards:     0,
		Attacks:     20,
		Frontend:    FrontendTUI,
		Language:    "en",
		LogLevel:    "info",
	}
}

// FreeCells returns how many cells can hold an enemy or reward.
// The start and goal cells are never free; on a 1x1 grid they coincide.
func (c Config) FreeCells() int {
	return max(0, c.Width*c.Height-2)
}

// Validate checks every field and reports the first bad one
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width %d: %w", c.Width, ErrInvalid)
	case c.Height <= 0:
		return fmt.Errorf("height %d: %w", c.Height, ErrInvalid)
	case c.Exploration < 0 || c.Exploration > 1:
		return fmt.Errorf("exploration %v: %w", c.Exploration, ErrInvalid)
	case c.Enemies < 0 || c.Enemies > c.FreeCells():
		return fmt.Errorf("enemies %d with %d free cells: %w", c.Enemies, c.FreeCells(), ErrInvalid)
	case c.Rewards < 0 || c.Rewards > c.FreeCells():
		return fmt.Errorf("rewards %d with %d free cells: %w", c.Rewards, c.FreeCells(), ErrInvalid)
	case c.Attacks < 0:
		return fmt.Errorf("attacks %d: %w", c.Attacks, ErrInvalid)
	case c.Frontend != FrontendTUI && c.Frontend != FrontendScreen:
		return fmt.Errorf("frontend %q: %w", c.Frontend, ErrInvalid)
	case !slices.Contains(i18n.Languages(), c.Language):
		return fmt.Errorf("language %q: %w", c.Language, ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	return nil
}

// Load resolves the configuration for the command line args.
// envFile is read if it exists; a missing file is not an error.
func Load(args []string, envFile string) (Config, error) {
	env, err := readEnv(envFile, os.Environ())
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := cfg.applyEnv(env); err != nil {
		return Config{}, err
	}

	flags := flag.NewFlagSet("mazecrawl", flag.ContinueOnError)
	cfg.bindFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// readEnv merges the .env file under the process environment
func readEnv(envFile string, environ []string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env, nil
}

// applyEnv overrides fields from MAZECRAWL_* variables
func (c *Config) applyEnv(env map[string]string) error {
	ints := map[string]*int{
		"WIDTH":   &c.Width,
		"HEIGHT":  &c.Height,
		"ENEMIES": &c.Enemies,
		"REWARDS": &c.Rewards,
		"ATTACKS": &c.Attacks,
	}
	for name, field := range ints {
		v, ok := env[EnvPrefix+name]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s must be an integer: %w", EnvPrefix, name, err)
		}
		*field = n
	}

	if v, ok := env[EnvPrefix+"EXPLORATION"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sEXPLORATION must be a number: %w", EnvPrefix, err)
		}
		c.Exploration = f
	}
	if v, ok := env[EnvPrefix+"SEED"]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED must be an integer: %w", EnvPrefix, err)
		}
		c.Seed = n
	}

	strs := map[string]*string{
		"FRONTEND":  &c.Frontend,
		"LANGUAGE":  &c.Language,
		"LOG_FILE":  &c.LogFile,
		"LOG_LEVEL": &c.LogLevel,
		"DUMP_FILE": &c.DumpFile,
	}
	for name, field := range strs {
		if v, ok := env[EnvPrefix+name]; ok {
			*field = v
		}
	}
	return nil
}

// bindFlags registers a flag per field, defaulting to the current value
func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "maze width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "maze height in cells")
	fs.Float64Var(&c.Exploration, "exploration", c.Exploration, "probability of looping back while carving, 0 for a perfect maze")
	fs.IntVar(&c.Enemies, "enemies", c.Enemies, "number of enemies")
	fs.IntVar(&c.Rewards, "rewards", c.Rewards, "number of rewards")
	fs.IntVar(&c.Attacks, "attacks", c.Attacks, "number of attacks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for a random game")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "display: tui or screen")
	fs.StringVar(&c.Language, "lang", c.Language, "message language")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write a debug log to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.DumpFile, "dump", c.DumpFile, "write the generated map to this file and exit")
}
