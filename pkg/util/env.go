package util

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LookupString returns the variable's value when it is set and non-empty.
func LookupString(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

// LookupInt parses an integer variable. ok is false when the variable is unset.
func LookupInt(key string) (int, bool, error) {
	s, ok := LookupString(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, true, nil
}

// LookupDuration parses a duration variable such as "15s".
func LookupDuration(key string) (time.Duration, bool, error) {
	s, ok := LookupString(key)
	if !ok {
		return 0, false, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, true, nil
}
