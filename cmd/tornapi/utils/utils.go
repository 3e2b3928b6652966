package utils

import (
	"fmt"
	"strings"

	"github.com/39C-wallenstein/torn-api/api/user"
)

func ColorToAnsi(color string) (string, string) {
	if color == "" {
		return "", ""
	}

	color = strings.ToLower(strings.TrimSpace(color))

	reset := "\033[0m"

	switch color {
	case "red":
		return "\033[31m", reset
	case "green":
		return "\033[32m", reset
	case "yellow":
		return "\033[33m", reset
	case "blue":
		return "\033[34m", reset
	case "magenta":
		return "\033[35m", reset
	default:
		return "", ""
	}
}

// FormatStatus renders a one line player status, colored the way the
// game colors it: green for okay, red for hospital or jail, blue for
// traveling.
func FormatStatus(name string, status user.Status) string {
	ansi, reset := ColorToAnsi(status.Color)

	if name == "" {
		return fmt.Sprintf("%s%s%s", ansi, status.Description, reset)
	}

	return fmt.Sprintf("%s: %s%s%s", name, ansi, status.Description, reset)
}
