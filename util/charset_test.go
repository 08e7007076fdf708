package util

import (
	"strings"
	"testing"
)

func TestDetectCharset(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{`"Content-Type: text/plain; charset=UTF-8\n"`, "UTF-8"},
		{`"Content-Type: text/plain; charset=ISO-8859-1\n"`, "ISO-8859-1"},
		{`"Content-Type: text/plain; charset=gb2312\n"`, "gb2312"},
		{`no content type at all`, ""},
	}
	for _, tt := range tests {
		if got := DetectCharset(tt.content); got != tt.want {
			t.Errorf("DetectCharset(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestSameEncoding(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"UTF-8", "utf8", true},
		{"UTF-8", "utf_8", true},
		{"ISO-8859-1", "iso8859-1", true},
		{"UTF-8", "ISO-8859-1", false},
	}
	for _, tt := range tests {
		if got := sameEncoding(tt.a, tt.b); got != tt.want {
			t.Errorf("sameEncoding(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDecodeContentUTF8(t *testing.T) {
	content := "msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=UTF-8\\n\"\n\nmsgid \"héllo\"\nmsgstr \"\"\n"
	got, err := DecodeContent([]byte(content))
	if err != nil {
		t.Fatalf("DecodeContent() error: %s", err)
	}
	if got != content {
		t.Errorf("UTF-8 content must pass through unchanged")
	}
}

func TestDecodeContentLatin1(t *testing.T) {
	header := "msgid \"\"\nmsgstr \"\"\n\"Content-Type: text/plain; charset=ISO-8859-1\\n\"\n\nmsgid \""
	// 0xE9 is é in ISO-8859-1 and invalid as a standalone UTF-8 byte.
	raw := append([]byte(header), 0xE9)
	raw = append(raw, []byte("\"\nmsgstr \"\"\n")...)

	got, err := DecodeContent(raw)
	if err != nil {
		t.Skipf("iconv unavailable: %s", err)
	}
	if !strings.Contains(got, "é") {
		t.Errorf("expect converted é in output, got %q", got)
	}
}

func TestDecodeContentInvalidUTF8(t *testing.T) {
	raw := []byte{'m', 's', 'g', 0xFF, 0xFE}
	if _, err := DecodeContent(raw); err == nil {
		t.Error("expect error for undeclared non-UTF-8 content")
	}
}
