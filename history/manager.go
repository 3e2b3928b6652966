package history

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Entries returns the journal in recorded order. A journal that does not
// exist yet reads as empty.
func (m *Manager) Entries() ([]Entry, error) {
	entries, err := m.store.Read()
	if err != nil {
		// Gracefully handle missing file
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	return entries, nil
}

// Print renders the journal as one line per request.
func (m *Manager) Print() (string, error) {
	entries, err := m.Entries()
	if err != nil {
		return "", err
	}

	var result string
	for _, entry := range entries {
		result += formatEntry(entry)
	}

	return result, nil
}

// Clear wipes the journal.
func (m *Manager) Clear() error {
	return m.store.Delete()
}

func formatEntry(entry Entry) string {
	target := entry.Category
	if entry.TargetID != 0 {
		target = fmt.Sprintf("%s/%d", entry.Category, entry.TargetID)
	}

	return fmt.Sprintf("%s  %-20s %s\n", entry.Timestamp.Format("2006-01-02 15:04:05"), target, strings.Join(entry.Selections, ","))
}
