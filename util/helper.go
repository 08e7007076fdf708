package util

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/po-l10n/po-translate/data"
)

// Exist check if path is exist.
func Exist(name string) bool {
	if _, err := os.Stat(name); err == nil {
		return true
	}
	return false
}

// IsFile returns true if path is exist and is a file.
func IsFile(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return false
	}
	return true
}

// IsDir returns true if path is exist and is a directory.
func IsDir(name string) bool {
	fi, err := os.Stat(name)
	if err != nil || !fi.IsDir() {
		return false
	}
	return true
}

// GetUserInput reads user input from stdin.
// Prompt is written to stderr so stdout remains clean for redirects.
func GetUserInput(prompt, defaultValue string) string {
	fmt.Fprint(os.Stderr, prompt)

	reader := bufio.NewReader(os.Stdin)
	text, _ := reader.ReadString('\n')
	text = strings.TrimSpace(text)

	if text == "" {
		return defaultValue
	}
	return text
}

// AnswerIsTrue indicates answer is a true value
func AnswerIsTrue(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "y" ||
		answer == "yes" ||
		answer == "t" ||
		answer == "true" ||
		answer == "on" ||
		answer == "1" {
		return true
	}
	return false
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// PrettyLanguage shows the full language name for an ISO 639-1 code, or
// the code itself when unknown. A locale suffix (en_US) is kept as-is.
func PrettyLanguage(code string) string {
	items := strings.SplitN(code, "_", 2)
	name := data.GetLanguageName(items[0])
	if name == "" {
		return code
	}
	if len(items) > 1 && items[1] != "" {
		return fmt.Sprintf("%s (%s)", name, items[1])
	}
	return name
}
