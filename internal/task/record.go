package task

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrMalformedRecord is returned when a persisted record cannot be decoded.
var ErrMalformedRecord = errors.New("malformed task record")

// Entry is one element of the persisted record.
type Entry struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Encode serializes tasks in list order as a JSON array of entries.
// An empty list encodes as "[]".
func Encode(tasks []Task) (string, error) {
	entries := make([]Entry, 0, len(tasks))
	for _, t := range tasks {
		entries = append(entries, Entry{Text: t.Text, Completed: t.Completed})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode task record: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted record. A JSON null decodes to an empty list.
// Anything that is not an array of entries wraps ErrMalformedRecord.
func Decode(record string) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal([]byte(record), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return entries, nil
}
