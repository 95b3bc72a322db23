package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StorageKey is the slot key holding the serialized snapshot.
const StorageKey = "dashboard-preferences"

var errShape = errors.New("snapshot shape mismatch")

// Snapshot field names, matched exactly.
const (
	fieldCompany   = "company"
	fieldView      = "view"
	fieldTimeRange = "timeRange"
	fieldDarkMode  = "darkMode"
)

func encodeState(s State) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding preferences: %w", err)
	}
	return string(data), nil
}

// decodeState accepts exactly one JSON object holding exactly the four
// snapshot fields, with case-sensitive names and no nulls. Enum values are
// passed through verbatim.
func decodeState(raw string) (State, error) {
	dec := json.NewDecoder(strings.NewReader(raw))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return State{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return State{}, errShape
	}
	if fields == nil || len(fields) != 4 {
		return State{}, errShape
	}

	var st State
	var company, view, timeRange string
	if err := field(fields, fieldCompany, &company); err != nil {
		return State{}, err
	}
	if err := field(fields, fieldView, &view); err != nil {
		return State{}, err
	}
	if err := field(fields, fieldTimeRange, &timeRange); err != nil {
		return State{}, err
	}
	if err := field(fields, fieldDarkMode, &st.DarkMode); err != nil {
		return State{}, err
	}
	st.Company = Company(company)
	st.View = View(view)
	st.TimeRange = TimeRange(timeRange)
	return st, nil
}

func field(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errShape
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errShape
	}
	return nil
}
