package util

import "strings"

// ReflowTranslation splits a translated string into quoted continuation
// lines, aiming for lineCount lines to mirror the shape of the original
// multiline msgid. Every line except the last gets a trailing space inside
// the quotes, marking the soft wrap. The result never exceeds lineCount
// lines and never is empty for non-empty input; exact word balance across
// lines is not guaranteed, the last line absorbs the remainder.
func ReflowTranslation(translated string, lineCount int) []string {
	if translated == "" {
		return nil
	}
	if lineCount <= 1 {
		return []string{`"` + translated + `"`}
	}

	words := strings.Fields(translated)
	if len(words) == 0 {
		return []string{`"` + translated + `"`}
	}

	wordsPerLine := len(words) / lineCount
	if wordsPerLine < 1 {
		wordsPerLine = 1
	}

	var lines []string
	for i := 0; i < len(words); i += wordsPerLine {
		end := i + wordsPerLine
		if end > len(words) {
			end = len(words)
		}
		text := strings.Join(words[i:end], " ")
		if i+wordsPerLine < len(words) {
			text += " "
		}
		lines = append(lines, `"`+text+`"`)
	}

	// Greedy packing may overshoot; merge trailing lines until the count
	// fits. Merging strips the closing quote of one line and the opening
	// quote of the next.
	for len(lines) > lineCount && len(lines) > 1 {
		last := lines[len(lines)-1]
		lines = lines[:len(lines)-1]
		prev := lines[len(lines)-1]
		lines[len(lines)-1] = prev[:len(prev)-1] + last[1:]
	}

	return lines
}
