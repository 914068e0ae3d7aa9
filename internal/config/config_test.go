package config

import (
	"os"
	"strings"
	"testing"

	"github.com/seabearDEV/minigrep-go/internal/fileutil"
)

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(fileutil.DataDirEnv, dir)
	fileutil.ResetDataDirectory()
	ClearCache()
	t.Cleanup(func() {
		fileutil.ResetDataDirectory()
		ClearCache()
	})
	return dir
}

func TestLoadCreatesDefaults(t *testing.T) {
	setupDataDir(t)

	if got := Load(); got != Default() {
		t.Errorf("Load() = %+v, want %+v", got, Default())
	}
	if _, err := os.Stat(fileutil.GetConfigFilePath()); err != nil {
		t.Errorf("config.json not created: %v", err)
	}
}

func TestLoadFillsMissingFields(t *testing.T) {
	setupDataDir(t)
	if err := os.WriteFile(fileutil.GetConfigFilePath(), []byte(`{"colors": false}`), 0600); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if got.Colors {
		t.Error("Colors = true, want false from file")
	}
	if !got.Unquote {
		t.Error("Unquote = false, want default true")
	}
	if got.Theme != "default" {
		t.Errorf("Theme = %q, want default", got.Theme)
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "   \n"},
		{"not json", "{colors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupDataDir(t)
			if err := os.WriteFile(fileutil.GetConfigFilePath(), []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if got := Load(); got != Default() {
				t.Errorf("Load() = %+v, want defaults", got)
			}
		})
	}
}

func TestSetSetting(t *testing.T) {
	setupDataDir(t)

	tests := []struct {
		key     string
		value   string
		want    any
		wantErr string
	}{
		{"colors", "false", false, ""},
		{"case_sensitive", "TRUE", true, ""},
		{"unquote", "0", false, ""},
		{"theme", "dark", "dark", ""},
		{"theme", "neon", "dark", "invalid theme"},
		{"colors", "maybe", false, "invalid value"},
		{"bogus", "1", nil, "unknown configuration key"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := SetSetting(tt.key, tt.value)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("SetSetting() error = %v, want %q", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("SetSetting() error = %v", err)
			}
			if got := GetSetting(tt.key); got != tt.want {
				t.Errorf("GetSetting(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSettingsPersist(t *testing.T) {
	setupDataDir(t)

	if err := SetSetting("case_sensitive", "true"); err != nil {
		t.Fatal(err)
	}
	ClearCache()

	if !Load().CaseSensitive {
		t.Error("CaseSensitive not persisted")
	}
}
