// Package util provides the PO parsing and rewriting core.
package util

import (
	"regexp"
	"strconv"
	"strings"
)

// Markup categories. Each category protects one delimiter pair.
const (
	CategoryTag     = "tag"     // {speed}, {Start}
	CategoryVar     = "var"     // [player_name]
	CategoryEmotion = "emotion" // (sighs)
	CategoryBracket = "bracket" // <b>, <color=red>
)

var markupPatterns = map[string]*regexp.Regexp{
	CategoryTag:     regexp.MustCompile(`\{([^{}]+)\}`),
	CategoryVar:     regexp.MustCompile(`\[([^\[\]]+)\]`),
	CategoryEmotion: regexp.MustCompile(`\(([^()]+)\)`),
	CategoryBracket: regexp.MustCompile(`<([^<>]+)>`),
}

// scanOrder fixes the category iteration order for deterministic scans.
var scanOrder = []string{CategoryTag, CategoryVar, CategoryEmotion, CategoryBracket}

// TokenMap assigns dense numeric ids to distinct token contents of one
// markup category. Ids start at 1 and follow first-occurrence order.
type TokenMap struct {
	ids  map[string]int
	text map[int]string
	next int
}

// NewTokenMap returns an empty TokenMap.
func NewTokenMap() *TokenMap {
	return &TokenMap{
		ids:  make(map[string]int),
		text: make(map[int]string),
		next: 1,
	}
}

// Add assigns an id to content if not yet mapped, and returns the id.
func (v *TokenMap) Add(content string) int {
	if id, ok := v.ids[content]; ok {
		return id
	}
	id := v.next
	v.ids[content] = id
	v.text[id] = content
	v.next++
	return id
}

// ID returns the id for content, or 0 if content is not mapped.
func (v *TokenMap) ID(content string) int {
	return v.ids[content]
}

// Content returns the original content for id, or "" if id is not mapped.
func (v *TokenMap) Content(id int) string {
	return v.text[id]
}

// Len returns the number of mapped tokens.
func (v *TokenMap) Len() int {
	return len(v.ids)
}

// MarkupMaps holds the four per-category token maps for one file run.
// Build a fresh instance per file; maps are not shared across runs.
type MarkupMaps struct {
	maps map[string]*TokenMap
}

// NewMarkupMaps returns empty markup maps for a new run.
func NewMarkupMaps() *MarkupMaps {
	m := &MarkupMaps{maps: make(map[string]*TokenMap)}
	for _, c := range scanOrder {
		m.maps[c] = NewTokenMap()
	}
	return m
}

// Map returns the token map for a category.
func (v *MarkupMaps) Map(category string) *TokenMap {
	return v.maps[category]
}

// TotalTokens returns the number of tokens mapped across all categories.
func (v *MarkupMaps) TotalTokens() int {
	n := 0
	for _, m := range v.maps {
		n += m.Len()
	}
	return n
}

// isNumericContent reports whether s consists only of decimal digits after
// stripping "." and ",". Such content is a numeric expression like (2.5)
// or (1,000), not an emotion token.
func isNumericContent(s string) bool {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Scan discovers all markup tokens in content and assigns placeholder ids.
// Ids are assigned in first-occurrence order within each category, so
// scanning the same content always yields the same maps. Nested delimiters
// of the same pair are not supported; only the innermost span matches.
func (v *MarkupMaps) Scan(content string) {
	for _, category := range scanOrder {
		pattern := markupPatterns[category]
		tokens := v.maps[category]
		for _, m := range pattern.FindAllStringSubmatch(content, -1) {
			inner := m[1]
			if category == CategoryEmotion && isNumericContent(inner) {
				continue
			}
			tokens.Add(inner)
		}
	}
}

// Protect replaces every markup token in text with its delimiter-wrapped
// placeholder id. Unmapped content becomes "?" for tag, var and bracket
// categories; unmapped emotion content passes through unchanged, since
// parentheses often wrap plain natural-language asides.
func (v *MarkupMaps) Protect(text string) string {
	protected := text
	for _, category := range scanOrder {
		pattern := markupPatterns[category]
		tokens := v.maps[category]
		emotion := category == CategoryEmotion
		protected = pattern.ReplaceAllStringFunc(protected, func(match string) string {
			open, closing := match[:1], match[len(match)-1:]
			inner := match[1 : len(match)-1]
			if id := tokens.ID(inner); id > 0 {
				return open + strconv.Itoa(id) + closing
			}
			if emotion {
				return match
			}
			return open + "?" + closing
		})
	}
	return protected
}

// Restore is the inverse of Protect: delimiter-wrapped numeric placeholders
// are replaced with the original token content. Unknown ids and non-numeric
// spans are left untouched. Restoration inside genuinely translated free
// text can false-positive when the translation itself contains a
// delimiter-wrapped number; this is a known limitation.
func (v *MarkupMaps) Restore(text string) string {
	restored := text
	for _, category := range scanOrder {
		pattern := markupPatterns[category]
		tokens := v.maps[category]
		restored = pattern.ReplaceAllStringFunc(restored, func(match string) string {
			open, closing := match[:1], match[len(match)-1:]
			inner := match[1 : len(match)-1]
			id, err := strconv.Atoi(inner)
			if err != nil || id <= 0 {
				return match
			}
			content := tokens.Content(id)
			if content == "" {
				return match
			}
			return open + content + closing
		})
	}
	return restored
}
