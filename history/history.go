package history

import "time"

// MaxEntries caps the request journal. Once the cap is reached the oldest
// entries are dropped on the next write.
const MaxEntries = 100

// Entry records a single API request. Response bodies are never journaled;
// the journal answers "what did I ask for and when", nothing more.
type Entry struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	TargetID   int64     `json:"target_id,omitempty"`
	Selections []string  `json:"selections"`
	Timestamp  time.Time `json:"timestamp"`
}
