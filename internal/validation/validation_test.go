package validation

import (
	"strings"
	"testing"
)

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		valid   bool
		wantMsg string
	}{
		{"simple", "how to grow rice", true, ""},
		{"empty", "", false, "query is required"},
		{"whitespace only", "  \t\n", false, "query is required"},
		{"max length", strings.Repeat("a", MaxQueryLength), true, ""},
		{"too long", strings.Repeat("a", MaxQueryLength+1), false, "query must be at most 1000 characters"},
		{"multibyte counts runes", strings.Repeat("धान", MaxQueryLength/3), true, ""},
		{"emoji", "🌾 rice?", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateQuery(tt.query)
			if valid != tt.valid {
				t.Errorf("ValidateQuery(%q) valid = %v, want %v", tt.query, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateQuery(%q) msg = %q, want %q", tt.query, msg, tt.wantMsg)
			}
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  How To Grow Rice \n"); got != "How To Grow Rice" {
		t.Errorf("NormalizeQuery() = %q, want %q", got, "How To Grow Rice")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple", "rice", true},
		{"mixed case", "Aphids", true},
		{"with space", "spider mites", true},
		{"with hyphen", "n-p-k", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 51), false},
		{"digits", "npk123", false},
		{"path traversal attempt", "../etc/passwd", false},
		{"leading space", " rice", false},
		{"unicode", "धान", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateName(tt.input); got != tt.want {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultHistoryLimit},
		{"10", 10},
		{"0", DefaultHistoryLimit},
		{"-5", DefaultHistoryLimit},
		{"abc", DefaultHistoryLimit},
		{"200", 200},
		{"201", MaxHistoryLimit},
		{"100000", MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseLimit(tt.raw); got != tt.want {
				t.Errorf("ParseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
