// Package lock serializes inventory writes across fleet processes. The lock
// is a directory next to the inventory file, taken with an atomic mkdir and
// holding a JSON file that records who took it.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StaleAfter is how old a lock may grow before it is treated as abandoned
// and removed.
const StaleAfter = 10 * time.Minute

const retryInterval = 50 * time.Millisecond

// Lock is an acquired hold on an inventory file.
type Lock struct {
	Dir  string    // The lock directory path
	Info *LockInfo // Who holds it (us)
}

// LockDir returns the lock directory guarding the given inventory path.
func LockDir(path string) string {
	return path + ".lock"
}

// Acquire takes the lock for path, waiting up to timeout while another
// process holds it. Stale locks are removed. The returned error wraps
// ErrLocked when the wait runs out.
func Acquire(path string, timeout time.Duration) (*Lock, error) {
	dir := LockDir(path)
	infoFile := filepath.Join(dir, "info.json")
	info := NewLockInfo()
	start := time.Now()

	for {
		if removeIfStale(dir, infoFile) {
			continue
		}

		l, err := claim(dir, infoFile, info)
		if err == nil {
			return l, nil
		}
		if !os.IsExist(err) {
			return nil, err
		}

		if time.Since(start) >= timeout {
			return nil, fmt.Errorf("timed out after %s: %w (held by %s)",
				timeout, ErrLocked, Holder(path))
		}
		time.Sleep(retryInterval)
	}
}

// TryAcquire takes the lock for path without waiting, returning an error
// wrapping ErrLocked when another process holds it.
func TryAcquire(path string) (*Lock, error) {
	dir := LockDir(path)
	infoFile := filepath.Join(dir, "info.json")
	removeIfStale(dir, infoFile)

	l, err := claim(dir, infoFile, NewLockInfo())
	if os.IsExist(err) {
		return nil, fmt.Errorf("%w (held by %s)", ErrLocked, Holder(path))
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// claim performs one atomic mkdir and writes the holder info. A hold by
// another process surfaces as an os.IsExist error.
func claim(dir, infoFile string, info *LockInfo) (*Lock, error) {
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, err
	}

	data, err := info.Marshal()
	if err == nil {
		err = os.WriteFile(infoFile, data, 0o644)
	}
	if err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("writing lock info: %w", err)
	}

	return &Lock{Dir: dir, Info: info}, nil
}

// Release removes the lock so other processes can take it.
func (l *Lock) Release() error {
	if l == nil || l.Dir == "" {
		return nil
	}
	return os.RemoveAll(l.Dir)
}

// ForceRelease removes the lock for path regardless of who holds it. For
// stuck or abandoned locks only.
func ForceRelease(path string) error {
	return os.RemoveAll(LockDir(path))
}

// Holder describes who holds the lock on path, or "unknown" when the info
// file cannot be read.
func Holder(path string) string {
	data, err := os.ReadFile(filepath.Join(LockDir(path), "info.json"))
	if err != nil {
		return "unknown"
	}
	info, err := ParseLockInfo(data)
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	return info.String()
}

// IsLocked reports whether a live, non-stale lock exists for path.
func IsLocked(path string) bool {
	dir := LockDir(path)
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return false
	}
	return !isStale(filepath.Join(dir, "info.json"))
}

func isStale(infoFile string) bool {
	data, err := os.ReadFile(infoFile)
	if err != nil {
		return false
	}
	info, err := ParseLockInfo(data)
	if err != nil {
		return false
	}
	return info.Age() > StaleAfter
}

// removeIfStale clears an abandoned lock, reporting whether one was removed.
func removeIfStale(dir, infoFile string) bool {
	if !isStale(infoFile) {
		return false
	}
	return os.RemoveAll(dir) == nil
}
