package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const maxAPIKeyFileBytes int64 = 10 * 1024 // 10KB

// ReadAPIKeyFile reads an API key from path, trimming surrounding
// whitespace. It refuses anything that is not a small regular file so a
// mistyped path cannot feed gigabytes into memory.
func ReadAPIKeyFile(path string) (string, error) {
	clean := filepath.Clean(path)

	st, err := os.Stat(clean)
	if err != nil {
		return "", fmt.Errorf("failed to open api key file: %w", err)
	}
	if !st.Mode().IsRegular() {
		return "", errors.New("api key file must be a regular file")
	}
	if st.Size() > maxAPIKeyFileBytes {
		return "", fmt.Errorf("api key file too large (max %d bytes)", maxAPIKeyFileBytes)
	}

	b, err := os.ReadFile(clean)
	if err != nil {
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}

	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", errors.New("api key file is empty")
	}
	return key, nil
}
