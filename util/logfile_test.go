package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslationLogFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "id.po")

	l, err := NewTranslationLog(input, "en", "id")
	if err != nil {
		t.Fatalf("NewTranslationLog() error: %s", err)
	}

	l.Record("2-3", StatusSuccess, "Hello World", "Halo Dunia", "")
	l.Record("7", StatusError, "Broken", "", "Translation timeout")
	l.Record("9", StatusSuccess, "Same", "Same", "")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %s", err)
	}

	if !strings.HasPrefix(filepath.Base(l.Path()), "id_translate_log_") {
		t.Errorf("log file name %q lacks the input-derived prefix", l.Path())
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("failed to read log: %s", err)
	}
	text := string(data)

	for _, want := range []string{
		"=== PO TRANSLATION LOG ===",
		"Input: " + input,
		"Language: English -> Indonesian",
		"LINE 2-3 | STATUS: SUCCESS",
		"ORIGINAL: Hello World",
		"RESULT  : Halo Dunia",
		"LINE 7 | STATUS: ERROR",
		"ERROR   : Translation timeout",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("log missing %q:\n%s", want, text)
		}
	}

	// Identical translation is not repeated as RESULT.
	if strings.Contains(text, "RESULT  : Same") {
		t.Errorf("unchanged text must not produce a RESULT line:\n%s", text)
	}
}

func TestTranslationLogUnknownLanguageCode(t *testing.T) {
	dir := t.TempDir()
	l, err := NewTranslationLog(filepath.Join(dir, "x.po"), "en", "xx")
	if err != nil {
		t.Fatalf("NewTranslationLog() error: %s", err)
	}
	l.Close()

	data, _ := os.ReadFile(l.Path())
	if !strings.Contains(string(data), "English -> xx") {
		t.Errorf("unknown code must be printed as-is:\n%s", data)
	}
}
