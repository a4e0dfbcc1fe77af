package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// ReportDir receives reports when no explicit output path is given.
	ReportDir string `toml:"report_dir"`
	// DataDir holds the run-history database and the run lock.
	DataDir string `toml:"data_dir"`
	// LogDir, when set, receives the tool's log file.
	LogDir string `toml:"log_dir"`
}

// Report contains configuration for report content and styling.
type Report struct {
	// SheetName is the worksheet name in the produced workbook.
	SheetName string `toml:"sheet_name"`
	// EmphasisSize is the point size applied to highlighted diff runs.
	EmphasisSize float64 `toml:"emphasis_size"`
	// CurrentColor and CorrectColor are ARGB hex values for the observed
	// and expected sides of a mismatch.
	CurrentColor string `toml:"current_color"`
	CorrectColor string `toml:"correct_color"`
	// OpenAfterWrite launches the produced report in the default viewer.
	OpenAfterWrite bool `toml:"open_after_write"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for titlecheck.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Report  Report  `toml:"report"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/titlecheck/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. It reports the
// resolved path and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// HistoryDBPath returns the location of the run-history database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// LockPath returns the lock file guarding concurrent runs.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "check.lock")
}

// EnsureDirectories creates the directories a run needs.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.ReportDir, c.Paths.DataDir}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
