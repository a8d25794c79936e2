package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the longest query, in characters, the engine will answer.
const MaxQueryLength = 1000

// History listing limits.
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// NamePattern defines the valid knowledge base name format: letters, spaces and hyphens.
var NamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z -]*$`)

// ValidateQuery checks that a query is present and not too long.
func ValidateQuery(query string) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "query is required"
	}
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return false, fmt.Sprintf("query must be at most %d characters", MaxQueryLength)
	}
	return true, ""
}

// NormalizeQuery trims surrounding whitespace. Inner text is left alone so
// the same question always selects the same answer.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// ValidateName checks if a knowledge base lookup name matches the allowed pattern.
func ValidateName(name string) bool {
	if name == "" || len(name) > 50 {
		return false
	}
	return NamePattern.MatchString(name)
}

// ParseLimit parses a list limit, falling back to DefaultHistoryLimit for
// missing or invalid values and capping at MaxHistoryLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return DefaultHistoryLimit
	}
	if n > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return n
}
