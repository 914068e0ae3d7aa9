package fileutil

import (
	"os"
	"path/filepath"
	"sync"
)

// DataDirEnv overrides the data directory location.
const DataDirEnv = "MINIGREP_DATA_DIR"

var (
	dataDirOnce sync.Once
	dataDirPath string
)

// GetDataDirectory returns the directory holding minigrep's settings:
//  1. $MINIGREP_DATA_DIR (if set)
//  2. $XDG_CONFIG_HOME/minigrep (if XDG_CONFIG_HOME is set)
//  3. ~/.minigrep
func GetDataDirectory() string {
	dataDirOnce.Do(func() {
		if env := os.Getenv(DataDirEnv); env != "" {
			dataDirPath = env
			return
		}
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			dataDirPath = filepath.Join(xdg, "minigrep")
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDirPath = filepath.Join(home, ".minigrep")
	})
	return dataDirPath
}

// ResetDataDirectory resets the cached data directory (for testing).
func ResetDataDirectory() {
	dataDirOnce = sync.Once{}
	dataDirPath = ""
}

// EnsureDataDirectoryExists creates the data directory if it doesn't exist.
func EnsureDataDirectoryExists() (string, error) {
	dir := GetDataDirectory()
	return dir, os.MkdirAll(dir, 0700)
}

// GetConfigFilePath returns the path to config.json.
func GetConfigFilePath() string {
	return filepath.Join(GetDataDirectory(), "config.json")
}
