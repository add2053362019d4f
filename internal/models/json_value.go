package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

var jsonNull = []byte("null")

// JSONValue holds one JSON value verbatim. Response fields whose type the server does not pin
// down use it, so an off-type value never fails decoding of an otherwise valid body.
type JSONValue []byte

func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return jsonNull, nil
	}
	return v, nil
}

func (v *JSONValue) UnmarshalJSON(b []byte) error {
	*v = append((*v)[:0], bytes.TrimSpace(b)...)
	return nil
}

// Present reports whether the value was sent and is not null.
func (v JSONValue) Present() bool {
	return len(v) > 0 && !bytes.Equal(v, jsonNull)
}

// Text renders the value for display: strings unquoted, anything else as compact JSON text,
// and "" when absent or null.
func (v JSONValue) Text() string {
	if !v.Present() {
		return ""
	}
	if v[0] == '"' {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return string(v)
	}
	return buf.String()
}

// Truthy reports whether the value counts as set: true, a non-zero number, a non-empty string,
// array or object.
func (v JSONValue) Truthy() bool {
	if !v.Present() {
		return false
	}
	switch v[0] {
	case 't':
		return true
	case 'f':
		return false
	case '"':
		return v.Text() != ""
	case '[':
		var items []json.RawMessage
		return json.Unmarshal(v, &items) == nil && len(items) > 0
	case '{':
		var fields map[string]json.RawMessage
		return json.Unmarshal(v, &fields) == nil && len(fields) > 0
	}
	f, _ := strconv.ParseFloat(string(v), 64)
	return f != 0
}
