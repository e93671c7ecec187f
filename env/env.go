// Package env reads process environment variables with the conventions
// terminal tools expect: keys compare case-insensitive, values are trimmed,
// and unparseable values fall back to a default instead of failing.
package env

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Lookup returns the raw value for key and whether the variable is present
// at all. Keys are compared case-insensitive, since Windows environments
// don't distinguish case and shells disagree on conventions.
//
// Presence is meaningful on its own: conventions like NO_COLOR assign
// meaning to a variable being set even when its value is empty.
func Lookup(key string) (string, bool) {
	for _, pair := range os.Environ() {
		k, v, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// IsSet reports whether key is present in the environment, regardless of its
// value. An empty value still counts as set.
func IsSet(key string) bool {
	_, ok := Lookup(key)
	return ok
}

// Val returns the trimmed value of key, or defaultVal when the variable is
// unset or blank.
func Val(key string, defaultVal string) string {
	val, ok := Lookup(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	TrueValues  = []string{"1", "yes", "true", "on"}  // TrueValues are the values [Bool] reads as true, and can be changed.
	FalseValues = []string{"0", "no", "false", "off"} // FalseValues are the values [Bool] reads as false, and can be changed.
)

// Bool interprets the value of key as a boolean using [TrueValues] and
// [FalseValues], compared case-insensitive. The defaultVal is returned when
// the variable is unset, blank, or matches neither set.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	if slices.Contains(TrueValues, sval) {
		return true
	}
	if slices.Contains(FalseValues, sval) {
		return false
	}
	return defaultVal
}

// Int interprets the value of key as an integer, returning defaultVal when
// the variable is unset, blank, or not a valid integer.
func Int(key string, defaultVal int64) int64 {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.ParseInt(sval, 10, 64)
	if err != nil {
		return defaultVal
	}
	return ival
}

// Duration interprets the value of key as a [time.Duration], returning
// defaultVal when the variable is unset, blank, or not a valid duration.
func Duration(key string, defaultVal time.Duration) time.Duration {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	dval, err := time.ParseDuration(sval)
	if err != nil {
		return defaultVal
	}
	return dval
}
