package utils

import (
	"os"
	"strconv"
	"strings"
)

func GetEnvInt(varName string, defaultVal int) int {
	v := os.Getenv(varName)
	if v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return defaultVal
}

// FromEnv always returns a string that is either a non-empty value from the
// environment variable named by key or the string otherwise.
func FromEnv(key, otherwise string) string {
	s := os.Getenv(key)
	if s == "" {
		return otherwise
	}
	return s
}

// PadRight space-pads s to width. Interchange sender/receiver IDs are
// fixed-width fields; a longer value is truncated to width.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// ContainsString returns true if `os` is in the array `sa` and false if it is not.
func ContainsString(sa []string, os string) bool {
	for _, s := range sa {
		if s == os {
			return true
		}
	}
	return false
}
