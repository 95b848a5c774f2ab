package config

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const (
	// lockRetryInterval is the delay between attempts to take the config lock
	lockRetryInterval = 50 * time.Millisecond

	// lockTimeout bounds how long a writer waits for another process
	lockTimeout = 10 * time.Second
)

// acquireFileLock takes an exclusive lock on lockPath, retrying until ctx is done.
func acquireFileLock(ctx context.Context, lockPath string) (*flock.Flock, error) {
	fl := flock.New(lockPath)

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to lock config %s: %w", lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock config %s: lock not acquired", lockPath)
	}

	return fl, nil
}

// releaseFileLock unlocks and closes the lock file. The file itself stays on
// disk; removing it could invalidate a lock another process just acquired.
func releaseFileLock(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Close()
	}
}
