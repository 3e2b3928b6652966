package config

import (
	"strconv"
	"strings"
	"time"
)

// FormatPrompt renders the interactive prompt template. It substitutes
// %datetime, %date, %time and %counter and guarantees a trailing space
// so typed input never touches the prompt.
func FormatPrompt(str string, counter int, now time.Time) string {
	if str == "" {
		return ""
	}

	// Longest placeholder first so %datetime is not clipped by %date.
	replacements := [...][2]string{
		{"%datetime", now.Format("2006-01-02 15:04:05")},
		{"%date", now.Format("2006-01-02")},
		{"%time", now.Format("15:04:05")},
		{"%counter", strconv.Itoa(counter)},
	}
	for _, r := range replacements {
		str = strings.ReplaceAll(str, r[0], r[1])
	}

	if !strings.HasSuffix(str, " ") {
		str += " "
	}

	return strings.ReplaceAll(str, "\\n", "\n")
}
