package util

import "strings"

// PoFileStats holds entry and markup statistics for one PO file.
type PoFileStats struct {
	TotalLines        int
	PassthroughLines  int
	SingleLineEntries int
	MultilineEntries  int
	EmptyEntries      int
	Tokens            map[string]int
}

// AnalyzePoContent walks content with the same line classification as the
// rewriting pass, but without translating, and reports what a run would
// encounter. The markup maps are scanned from the content itself.
func AnalyzePoContent(content string) *PoFileStats {
	maps := NewMarkupMaps()
	maps.Scan(content)

	stats := &PoFileStats{
		Tokens: map[string]int{
			CategoryTag:     maps.Map(CategoryTag).Len(),
			CategoryVar:     maps.Map(CategoryVar).Len(),
			CategoryEmotion: maps.Map(CategoryEmotion).Len(),
			CategoryBracket: maps.Map(CategoryBracket).Len(),
		},
	}

	state := stateNormal
	spanHasText := false

	for _, line := range strings.Split(content, "\n") {
		stats.TotalLines++
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateNormal:
			switch {
			case strings.HasPrefix(trimmed, `msgid "`) && trimmed != `msgid ""`:
				stats.SingleLineEntries++
			case trimmed == `msgid ""`:
				state = stateMultiline
				spanHasText = false
			default:
				stats.PassthroughLines++
			}
		case stateMultiline:
			switch {
			case strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`):
				if strings.TrimSpace(ExtractQuotedText(line)) != "" {
					spanHasText = true
				}
			case strings.HasPrefix(trimmed, `msgstr ""`):
				if spanHasText {
					stats.MultilineEntries++
				} else {
					stats.EmptyEntries++
				}
				state = stateNormal
			default:
				stats.PassthroughLines++
			}
		}
	}

	return stats
}
