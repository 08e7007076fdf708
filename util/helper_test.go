package util

import "testing"

func TestAnswerIsTrue(t *testing.T) {
	for _, answer := range []string{"y", "Y", "yes", "t", "TRUE", "on", "1", " yes "} {
		if !AnswerIsTrue(answer) {
			t.Errorf("AnswerIsTrue(%q) = false, want true", answer)
		}
	}
	for _, answer := range []string{"", "n", "no", "false", "off", "0", "maybe"} {
		if AnswerIsTrue(answer) {
			t.Errorf("AnswerIsTrue(%q) = true, want false", answer)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer string", 8, "a longer..."},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestPrettyLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"id", "Indonesian"},
		{"zh_CN", "Chinese (CN)"},
		{"en_US", "English (US)"},
		{"xx", "xx"},
		{"xx_YY", "xx_YY"},
	}
	for _, tt := range tests {
		if got := PrettyLanguage(tt.code); got != tt.want {
			t.Errorf("PrettyLanguage(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
