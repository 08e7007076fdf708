package util

import "strings"

// escapeGuards maps the five literal PO escape sequences to sentinel
// strings that survive a translation backend unchanged. The pass order is
// fixed; GuardEscapes and UnguardEscapes must walk it in the same order so
// a guarded backslash is never unescaped twice.
var escapeGuards = []struct {
	seq      string
	sentinel string
}{
	{`\n`, "<!NEWLINE!>"},
	{`\t`, "<!TAB!>"},
	{`\"`, "<!QUOTE!>"},
	{`\\`, "<!BACKSLASH!>"},
	{`\r`, "<!CARRIAGE!>"},
}

// GuardEscapes replaces literal escape sequences with sentinels before the
// text is handed to a translation backend.
func GuardEscapes(text string) string {
	for _, g := range escapeGuards {
		text = strings.ReplaceAll(text, g.seq, g.sentinel)
	}
	return text
}

// UnguardEscapes restores the escape sequences in a backend's output.
func UnguardEscapes(text string) string {
	for _, g := range escapeGuards {
		text = strings.ReplaceAll(text, g.sentinel, g.seq)
	}
	return text
}
