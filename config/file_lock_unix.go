//go:build !windows

package config

import (
	"fmt"
	"os"
	"syscall"
)

// fileLock holds an exclusive advisory lock on a sibling of the config
// file. Acquisition blocks until the current holder releases it.
type fileLock struct {
	f *os.File
}

func lockFile(targetPath string) (*fileLock, error) {
	f, err := os.OpenFile(targetPath+".lock", os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("flock: %w", err)
	}

	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	_ = syscall.Flock(int(l.f.Fd()), syscall.LOCK_UN)
	return l.f.Close()
}
