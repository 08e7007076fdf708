package util

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Entry outcome statuses written to the translation log. Skipped spans
// are only counted, never recorded.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// TranslationLog is the append-only per-entry record of one run.
type TranslationLog struct {
	path string
	file *os.File
}

// NewTranslationLog creates the log file next to inputFile and writes the
// run header. The file name carries a timestamp so repeated runs do not
// overwrite each other.
func NewTranslationLog(inputFile, sourceLang, targetLang string) (*TranslationLog, error) {
	base := strings.TrimSuffix(inputFile, ".po")
	path := fmt.Sprintf("%s_translate_log_%s.txt", base, time.Now().Format("20060102_150405"))

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file %s: %w", path, err)
	}

	fmt.Fprintln(f, "=== PO TRANSLATION LOG ===")
	fmt.Fprintf(f, "Date: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(f, "Input: %s\n", inputFile)
	fmt.Fprintf(f, "Language: %s -> %s\n", PrettyLanguage(sourceLang), PrettyLanguage(targetLang))
	fmt.Fprintln(f, strings.Repeat("=", 50))
	fmt.Fprintln(f)

	return &TranslationLog{path: path, file: f}, nil
}

// Path returns the log file location.
func (v *TranslationLog) Path() string {
	return v.path
}

// Record appends one entry outcome. lineRange is "12" for single-line
// entries and "12-14" for multiline spans. The translated text is written
// only when it differs from the original.
func (v *TranslationLog) Record(lineRange, status, original, translated, errMsg string) {
	fmt.Fprintf(v.file, "LINE %s | STATUS: %s\n", lineRange, status)
	fmt.Fprintf(v.file, "ORIGINAL: %s\n", original)
	if translated != "" && translated != original {
		fmt.Fprintf(v.file, "RESULT  : %s\n", translated)
	}
	if errMsg != "" {
		fmt.Fprintf(v.file, "ERROR   : %s\n", errMsg)
	}
	fmt.Fprintln(v.file, strings.Repeat("-", 40))
	fmt.Fprintln(v.file)
}

// Close flushes and closes the log file.
func (v *TranslationLog) Close() error {
	return v.file.Close()
}
