package cache

import (
	"errors"
	"os"
	"path/filepath"
)

//go:generate mockgen -destination=storemocks_test.go -package=cache_test github.com/39C-wallenstein/torn-api/cache Store
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Ensure FileStore implements the Store interface
var _ Store = &FileStore{}

// FileStore keeps one file per cached response. Keys are sha256 hex, so
// they are safe to use as filenames without sanitization.
type FileStore struct {
	baseDir string
}

func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

func (f *FileStore) Get(key string) ([]byte, error) {
	return os.ReadFile(f.pathForKey(key))
}

// Set writes the entry through a temp file in the same directory and
// renames it into place, so a concurrent Get never sees a partial entry.
func (f *FileStore) Set(key string, value []byte) error {
	// 0700: the cache holds full API responses for a single user.
	if err := os.MkdirAll(f.baseDir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.baseDir, "torn-cache-*")
	if err != nil {
		return err
	}

	if err := writeAndSync(tmp, value); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	dst := f.pathForKey(key)
	err = os.Rename(tmp.Name(), dst)
	if errors.Is(err, os.ErrExist) || errors.Is(err, os.ErrPermission) {
		// Windows refuses to rename over an existing file.
		_ = os.Remove(dst)
		err = os.Rename(tmp.Name(), dst)
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return nil
}

func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.pathForKey(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileStore) pathForKey(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}

func writeAndSync(f *os.File, value []byte) error {
	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
