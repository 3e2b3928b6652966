package api

import (
	"encoding/json"
	"strconv"
	"time"
)

// Timestamp is a time.Time that travels as unix seconds on the wire.
// The API uses 0 for "not set"; that round-trips as the zero time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds int64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	if seconds == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.Unix(seconds, 0).UTC()
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}
