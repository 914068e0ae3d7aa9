package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/seabearDEV/minigrep-go/internal/fileutil"
)

// Config represents the persisted user settings.
type Config struct {
	Colors        bool   `json:"colors"`
	Theme         string `json:"theme"`
	CaseSensitive bool   `json:"case_sensitive"`
	Unquote       bool   `json:"unquote"`
}

var (
	ValidThemes     = []string{"default", "dark", "light"}
	ValidConfigKeys = []string{"colors", "theme", "case_sensitive", "unquote"}

	mu         sync.Mutex
	cache      *Config
	cacheMtime int64
)

// Default returns the settings used when config.json is missing or invalid.
func Default() Config {
	return Config{
		Colors:        true,
		Theme:         "default",
		CaseSensitive: false,
		Unquote:       true,
	}
}

// ClearCache invalidates the config cache.
func ClearCache() {
	mu.Lock()
	defer mu.Unlock()
	cache = nil
	cacheMtime = 0
}

// Load reads config.json with mtime caching. Returns defaults if the file is
// missing or invalid; a missing file is created with defaults.
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	return loadLocked()
}

func loadLocked() Config {
	filePath := fileutil.GetConfigFilePath()

	if cache != nil && cacheMtime != 0 {
		info, err := os.Stat(filePath)
		if err != nil {
			cache = nil
			cacheMtime = 0
		} else if info.ModTime().UnixNano() == cacheMtime {
			return *cache
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		def := Default()
		_ = saveLocked(def)
		return def
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return Default()
	}

	// Fields absent from older files keep their defaults.
	cfg := Default()
	if err := json.Unmarshal([]byte(trimmed), &cfg); err != nil {
		return Default()
	}
	if !validTheme(cfg.Theme) {
		cfg.Theme = Default().Theme
	}

	info, err := os.Stat(filePath)
	if err == nil {
		c := cfg
		cache = &c
		cacheMtime = info.ModTime().UnixNano()
	}

	return cfg
}

// Save writes config.json.
func Save(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return saveLocked(cfg)
}

func saveLocked(cfg Config) error {
	if _, err := fileutil.EnsureDataDirectoryExists(); err != nil {
		return err
	}
	filePath := fileutil.GetConfigFilePath()

	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	err = fileutil.WithFileLock(filePath, func() error {
		return fileutil.AtomicWriteFile(filePath, content)
	})
	if err != nil {
		return err
	}

	info, err := os.Stat(filePath)
	if err == nil {
		c := cfg
		cache = &c
		cacheMtime = info.ModTime().UnixNano()
	}
	return nil
}

// GetSetting returns a config value by key name, or nil for unknown keys.
func GetSetting(key string) any {
	cfg := Load()
	switch key {
	case "colors":
		return cfg.Colors
	case "theme":
		return cfg.Theme
	case "case_sensitive":
		return cfg.CaseSensitive
	case "unquote":
		return cfg.Unquote
	default:
		return nil
	}
}

// SetSetting validates and sets a config value.
func SetSetting(key string, value string) error {
	mu.Lock()
	defer mu.Unlock()

	cfg := loadLocked()

	switch key {
	case "colors", "case_sensitive", "unquote":
		b, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return fmt.Errorf("invalid value for %s: '%s'. Must be true or false", key, value)
		}
		switch key {
		case "colors":
			cfg.Colors = b
		case "case_sensitive":
			cfg.CaseSensitive = b
		case "unquote":
			cfg.Unquote = b
		}
		return saveLocked(cfg)

	case "theme":
		if !validTheme(value) {
			return fmt.Errorf("invalid theme: '%s'. Must be one of: %s", value, strings.Join(ValidThemes, ", "))
		}
		cfg.Theme = value
		return saveLocked(cfg)

	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
}

func validTheme(theme string) bool {
	for _, t := range ValidThemes {
		if theme == t {
			return true
		}
	}
	return false
}
