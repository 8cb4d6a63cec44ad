package backend

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The PHP backend is loose about scalar types: numbers and booleans arrive
// as strings as often as not. These wire types coerce the known shapes and
// reject anything else, so nothing duck-typed escapes this package.

type wireFloat float64

func (f *wireFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("expected number, got %s", b)
	}
	*f = wireFloat(v)
	return nil
}

type wireInt int

func (i *wireInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", b)
	}
	*i = wireInt(v)
	return nil
}

type wireBool bool

func (w *wireBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(string(b), `"`) {
	case "1", "true":
		*w = true
	case "0", "false", "", "null":
		*w = false
	default:
		return fmt.Errorf("expected boolean, got %s", b)
	}
	return nil
}

type wireString string

func (w *wireString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*w = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// Numeric IDs show up unquoted; accept them as strings.
		trimmed := strings.Trim(string(b), `"`)
		if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
			*w = wireString(trimmed)
			return nil
		}
		return fmt.Errorf("expected string, got %s", b)
	}
	*w = wireString(s)
	return nil
}
