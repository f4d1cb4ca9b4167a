// Package settings resolves the Fetch.toml configuration of a run.
package settings

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"aocfetch/lib/configutil"
	"aocfetch/lib/telemetry"

	"github.com/joho/godotenv"
)

//go:embed default_config.toml
var DefaultConfig string

const (
	DefaultPath = "Fetch.toml"
	// SessionEnv overrides configuration.session when set, either in the
	// process environment or in a .env file next to the config file.
	SessionEnv = "AOC_SESSION"
)

var ErrNoSession = errors.New("no session cookie in configuration.session (copy it from your browser into Fetch.toml or set AOC_SESSION)")

// Config is immutable once loaded.
type Config struct {
	Year      int
	Path      string
	Extension string
	Session   string
	Telemetry telemetry.Config
}

// Validate is the pre-flight check that has to pass before any network activity.
func (c Config) Validate() error {
	if c.Session == "" {
		return ErrNoSession
	}
	return nil
}

// Load reads the settings file at `path`. If it is missing or is not valid
// TOML the default file is written in its place and read once more.
func Load(path string) (Config, error) {
	table, err := readOrCreate(path)
	if err != nil {
		return Config{}, err
	}

	cfg, err := FromTable(table)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	session, err := envSession(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return Config{}, err
	}
	if session != "" {
		slog.Debug("using session from environment", "var", SessionEnv)
		cfg.Session = session
	}

	return cfg, nil
}

func readOrCreate(path string) (map[string]any, error) {
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	// a local override alone does not count, the main file is still created
	if err == nil {
		table, readErr := configutil.ReadConfig(path)
		if readErr == nil || !recoverable(path, readErr) {
			return table, readErr
		}
		err = readErr
	}

	writeErr := os.WriteFile(path, []byte(DefaultConfig), 0644)
	if writeErr != nil {
		slog.Warn("failed to create default configuration", "path", path, "err", writeErr)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	slog.Info("created default configuration", "path", path, "reason", err.Error())

	return configutil.ReadConfig(path)
}

// only the main file gets recreated, a broken local override is left for
// the user to fix
func recoverable(path string, err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	var parseErr *configutil.ParseError
	return errors.As(err, &parseErr) && parseErr.Path == path
}

func envSession(dotenv string) (string, error) {
	if session := strings.TrimSpace(os.Getenv(SessionEnv)); session != "" {
		return session, nil
	}
	values, err := godotenv.Read(dotenv)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", dotenv, err)
	}
	return strings.TrimSpace(values[SessionEnv]), nil
}
