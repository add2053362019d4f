package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// LogID is the opaque identifier of a log entry. It keeps the raw JSON token it was decoded
// from (number or string) and marshals it back unchanged, so ids round-trip through the admin
// API whatever type the server uses.
type LogID []byte

// Int64LogID builds a numeric LogID.
func Int64LogID(n int64) LogID {
	return LogID(strconv.FormatInt(n, 10))
}

// StringLogID builds a string LogID.
func StringLogID(s string) LogID {
	b, _ := json.Marshal(s)
	return LogID(b)
}

func (id LogID) MarshalJSON() ([]byte, error) {
	if len(id) == 0 {
		return []byte("null"), nil
	}
	return id, nil
}

func (id *LogID) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if !json.Valid(trimmed) {
		return fmt.Errorf("invalid log id %q", b)
	}
	switch trimmed[0] {
	case '{', '[':
		return fmt.Errorf("log id must be a number or a string, got %s", trimmed)
	}
	*id = append((*id)[:0], trimmed...)
	return nil
}

// Int64 returns the id as an integer when it is a JSON number or a numeric string.
func (id LogID) Int64() (int64, error) {
	return strconv.ParseInt(id.String(), 10, 64)
}

// String renders the id for display. String ids are unquoted.
func (id LogID) String() string {
	if len(id) > 0 && id[0] == '"' {
		var s string
		if err := json.Unmarshal(id, &s); err == nil {
			return s
		}
	}
	return string(id)
}

// LogEntry is one element of the admin listing. Only the id is interpreted; every other field
// is kept verbatim.
type LogEntry struct {
	ID     LogID `json:"id" validate:"required"`
	Fields map[string]json.RawMessage
}

func (e *LogEntry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if rawID, ok := raw["id"]; ok {
		if err := e.ID.UnmarshalJSON(rawID); err != nil {
			return err
		}
		delete(raw, "id")
	}
	e.Fields = raw
	return nil
}

func (e LogEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(e.Fields)+1)
	for k, v := range e.Fields {
		out[k] = v
	}
	id, err := e.ID.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out["id"] = id
	return json.Marshal(out)
}

// LeadingIDs returns the ids of the first n entries, in listing order.
func LeadingIDs(entries []LogEntry, n int) []LogID {
	if n > len(entries) {
		n = len(entries)
	}
	ids := make([]LogID, 0, n)
	for _, e := range entries[:n] {
		ids = append(ids, e.ID)
	}
	return ids
}

// DeleteRequest is the body of DELETE /admin/logs/batch.
type DeleteRequest struct {
	IDs []LogID `json:"ids"`
}
