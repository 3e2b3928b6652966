package history

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/39C-wallenstein/torn-api/internal"
)

//go:generate mockgen -destination=historymocks_test.go -package=history_test github.com/39C-wallenstein/torn-api/history Store
type Store interface {
	Delete() error
	Read() ([]Entry, error)
	Write([]Entry) error
}

// Ensure FileIO implements the Store interface
var _ Store = &FileIO{}

// FileIO keeps the journal as a single JSON array on disk.
type FileIO struct {
	historyFilePath string
}

func New() *FileIO {
	path, _ := internal.GetHistoryPath()
	return &FileIO{historyFilePath: path}
}

func (f *FileIO) WithFilePath(historyFilePath string) *FileIO {
	f.historyFilePath = historyFilePath
	return f
}

func (f *FileIO) Delete() error {
	err := os.Remove(f.historyFilePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileIO) Read() ([]Entry, error) {
	buf, err := os.ReadFile(f.historyFilePath)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(buf, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (f *FileIO) Write(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return os.WriteFile(f.historyFilePath, data, 0o600)
}
