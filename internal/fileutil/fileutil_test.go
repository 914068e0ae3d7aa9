package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetDataDirectoryEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DataDirEnv, dir)
	ResetDataDirectory()
	t.Cleanup(ResetDataDirectory)

	if got := GetDataDirectory(); got != dir {
		t.Errorf("GetDataDirectory() = %q, want %q", got, dir)
	}
	if got, want := GetConfigFilePath(), filepath.Join(dir, "config.json"); got != want {
		t.Errorf("GetConfigFilePath() = %q, want %q", got, want)
	}
}

func TestGetDataDirectoryXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv(DataDirEnv, "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	ResetDataDirectory()
	t.Cleanup(ResetDataDirectory)

	if got, want := GetDataDirectory(), filepath.Join(xdg, "minigrep"); got != want {
		t.Errorf("GetDataDirectory() = %q, want %q", got, want)
	}
}

func TestAtomicWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := AtomicWriteFile(path, []byte("first")); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}
	if err := AtomicWriteFile(path, []byte("second")); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("mode = %o, want 600", perm)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the target file, found %d entries", len(entries))
	}
}

func TestLockContention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	if err := AcquireLock(path, 0); err != nil {
		t.Fatalf("AcquireLock() error = %v", err)
	}
	err := AcquireLock(path, 1)
	if !errors.Is(err, ErrLocked) {
		t.Errorf("second AcquireLock() error = %v, want ErrLocked", err)
	}

	ReleaseLock(path)
	if err := AcquireLock(path, 0); err != nil {
		t.Errorf("AcquireLock() after release error = %v", err)
	}
	ReleaseLock(path)
}

func TestAcquireLockBreaksStaleLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	lockPath := path + ".lock"
	if err := os.WriteFile(lockPath, []byte("12345"), 0600); err != nil {
		t.Fatal(err)
	}
	old := time.Now().Add(-2 * lockStale)
	if err := os.Chtimes(lockPath, old, old); err != nil {
		t.Fatal(err)
	}

	// No retries left: breaking the stale lock must not use up the attempt.
	if err := AcquireLock(path, 0); err != nil {
		t.Fatalf("AcquireLock() error = %v", err)
	}
	info, err := os.Stat(lockPath)
	if err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if time.Since(info.ModTime()) > lockStale {
		t.Error("stale lock file was not replaced")
	}
	ReleaseLock(path)
}

func TestWithFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	ran := false
	err := WithFileLock(path, func() error {
		ran = true
		if _, err := os.Stat(path + ".lock"); err != nil {
			t.Errorf("lock file missing inside fn: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithFileLock() error = %v", err)
	}
	if !ran {
		t.Error("fn was not called")
	}
	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Errorf("lock file left behind: %v", err)
	}
}
