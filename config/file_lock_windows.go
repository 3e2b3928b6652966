//go:build windows

package config

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procLockFileEx   = kernel32.NewProc("LockFileEx")
	procUnlockFileEx = kernel32.NewProc("UnlockFileEx")
)

const lockfileExclusiveLock = 0x00000002

// overlapped mirrors the Windows OVERLAPPED struct, zeroed here so the
// lock starts at offset zero.
type overlapped struct {
	Internal     uintptr
	InternalHigh uintptr
	Offset       uint32
	OffsetHigh   uint32
	HEvent       syscall.Handle
}

// fileLock holds an exclusive lock on a sibling of the config file.
// Acquisition blocks until the current holder releases it.
type fileLock struct {
	f *os.File
}

func lockFile(targetPath string) (*fileLock, error) {
	f, err := os.OpenFile(targetPath+".lock", os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	var ov overlapped
	r1, _, callErr := procLockFileEx.Call(
		f.Fd(),
		uintptr(lockfileExclusiveLock),
		0, // reserved
		1, // lock a single byte
		0,
		uintptr(unsafe.Pointer(&ov)),
	)
	if r1 == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("LockFileEx: %w", callErr)
	}

	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	var ov overlapped
	r1, _, callErr := procUnlockFileEx.Call(
		l.f.Fd(),
		0, // reserved
		1,
		0,
		uintptr(unsafe.Pointer(&ov)),
	)

	errClose := l.f.Close()
	if r1 == 0 {
		return fmt.Errorf("UnlockFileEx: %w", callErr)
	}
	return errClose
}
