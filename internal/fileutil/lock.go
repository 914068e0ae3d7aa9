package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	lockStale   = 10 * time.Second
	lockRetries = 5
)

// ErrLocked is returned when another process holds the lock for too long.
var ErrLocked = errors.New("file is locked")

// AcquireLock creates filePath+".lock" with O_CREATE|O_EXCL. It retries up to
// maxRetries times with exponential backoff. A lock older than lockStale is
// removed and retried at once without using up an attempt.
func AcquireLock(filePath string, maxRetries int) error {
	lockPath := filePath + ".lock"

	for attempt := 0; attempt <= maxRetries; attempt++ {
		ok, err := tryLock(lockPath)
		if ok || err != nil {
			return err
		}
		if breakStaleLock(lockPath) {
			ok, err := tryLock(lockPath)
			if ok || err != nil {
				return err
			}
		}
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<uint(attempt)) * time.Millisecond)
		}
	}
	return fmt.Errorf("%w: %s after %d retries", ErrLocked, filePath, maxRetries)
}

// tryLock reports whether the lock file was created. An existing lock is not
// an error.
func tryLock(lockPath string) (bool, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, err
	}
	_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
	return true, f.Close()
}

// breakStaleLock reports whether the lock is gone, either released by its
// holder or removed here for being stale.
func breakStaleLock(lockPath string) bool {
	info, err := os.Stat(lockPath)
	if err != nil {
		return os.IsNotExist(err)
	}
	if time.Since(info.ModTime()) <= lockStale {
		return false
	}
	err = os.Remove(lockPath)
	return err == nil || os.IsNotExist(err)
}

// ReleaseLock removes the lock file. Errors are ignored.
func ReleaseLock(filePath string) {
	_ = os.Remove(filePath + ".lock")
}

// WithFileLock runs fn while holding the lock for filePath. If the lock
// cannot be taken fn still runs; settings writes are small and atomic.
func WithFileLock(filePath string, fn func() error) error {
	if err := AcquireLock(filePath, lockRetries); err == nil {
		defer ReleaseLock(filePath)
	}
	return fn()
}
