package attrs

import (
	"strconv"
	"strings"
)

// Value is a raw attribute value. The main purpose of wrapping the raw
// string into type Value is to provide a set of convenient conversion
// functions.
type Value string

// NullValue is an empty attribute value.
const NullValue Value = ""

func (v Value) String() string {
	return string(v)
}

// IsEmpty checks wether a value is the null-string.
func (v Value) IsEmpty() bool {
	return strings.TrimSpace(string(v)) == ""
}

// Int converts a value to an integer. Fractional numbers are truncated.
func (v Value) Int(def int) int {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return def
}

// Float converts a value to a float.
func (v Value) Float(def float64) float64 {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return def
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return def
}

// Bool converts a value to a boolean: "true" is true, as is every
// non-zero integer. Every other non-empty value is false.
func (v Value) Bool(def bool) bool {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return def
	}
	if strings.EqualFold(s, "true") {
		return true
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0
	}
	return false
}

// Tokens splits a value at white space.
func (v Value) Tokens() []string {
	return strings.Fields(string(v))
}
