package util

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"

	"github.com/po-l10n/po-translate/tmcache"
)

// RunStats holds per-run counters. Counters only go up and are scoped to
// one ProcessFile call.
type RunStats struct {
	Success      int
	Failed       int
	Skipped      int
	Errors       int
	TotalEntries int
}

// parser states
const (
	stateNormal = iota
	stateMultiline
)

var singleMsgidPattern = regexp.MustCompile(`msgid\s+"([^"]*)"`)

// Processor rewrites one PO file: it walks the file line by line, sends
// each msgid source text through the protect/translate/restore pipeline
// and reassembles the output. A Processor serves exactly one run; create a
// fresh one per file so token maps and counters are not shared.
type Processor struct {
	Translator Translator
	Maps       *MarkupMaps
	Log        *TranslationLog
	Cache      *tmcache.Cache
	SourceLang string
	TargetLang string
	Stats      RunStats
}

// NewProcessor returns a Processor with fresh token maps and counters.
func NewProcessor(translator Translator, sourceLang, targetLang string) *Processor {
	return &Processor{
		Translator: translator,
		Maps:       NewMarkupMaps(),
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}
}

// ExtractQuotedText strips the enclosing double quotes from a continuation
// line: `"text"` -> `text`. Returns "" when the trimmed line is not quoted
// on both ends.
func ExtractQuotedText(line string) string {
	line = strings.TrimSpace(line)
	if len(line) >= 2 && strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`) {
		return line[1 : len(line)-1]
	}
	return ""
}

// translateText runs the full pipeline for one source text: translation
// memory lookup, markup protection, escape guarding, the backend call, and
// the inverse steps on its output.
func (p *Processor) translateText(ctx context.Context, text string) (string, error) {
	if p.Cache != nil {
		cached, ok, err := p.Cache.Lookup(p.SourceLang, p.TargetLang, text)
		if err != nil {
			log.Debugf("translation memory lookup error: %s", err)
		} else if ok {
			log.Debugf("translation memory hit for %q", Truncate(text, 40))
			return cached, nil
		}
	}

	protected := p.Maps.Protect(text)
	guarded := GuardEscapes(protected)

	translated, err := p.Translator.Translate(ctx, p.SourceLang, p.TargetLang, guarded)
	if err != nil {
		return "", err
	}

	translated = UnguardEscapes(translated)
	translated = p.Maps.Restore(translated)

	if p.Cache != nil {
		if err := p.Cache.Store(p.SourceLang, p.TargetLang, text, translated); err != nil {
			log.Debugf("translation memory store error: %s", err)
		}
	}
	return translated, nil
}

// record writes one entry outcome to the translation log, if one is open.
func (p *Processor) record(lineRange, status, original, translated string, err error) {
	if p.Log == nil {
		return
	}
	errMsg := ""
	if err != nil {
		errMsg = capitalize(err.Error())
	}
	p.Log.Record(lineRange, status, original, translated, errMsg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ProcessContent runs the entry state machine over content and returns the
// rewritten content. Scan must already have populated p.Maps. Every input
// line appears in the output, either verbatim or as part of a rewritten
// multiline span; transform failures always fall back to passthrough.
func (p *Processor) ProcessContent(ctx context.Context, content string) string {
	var (
		state     = stateNormal
		spanStart int
		spanLines []string
		spanText  strings.Builder
		out       []string
	)

	lines := strings.Split(content, "\n")
	out = make([]string, 0, len(lines))

	for i, line := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateNormal:
			switch {
			case strings.HasPrefix(trimmed, `msgid "`) && trimmed != `msgid ""`:
				// The translation is logged and remembered, but the
				// msgid line is emitted unchanged and the following
				// msgstr line is not rewritten.
				p.processSingleLine(ctx, lineNo, line)
				out = append(out, line)
			case trimmed == `msgid ""`:
				state = stateMultiline
				spanStart = lineNo
				spanLines = append(spanLines[:0], line)
				spanText.Reset()
			default:
				out = append(out, line)
			}

		case stateMultiline:
			switch {
			case strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`):
				spanText.WriteString(ExtractQuotedText(line))
				spanLines = append(spanLines, line)
			case strings.HasPrefix(trimmed, `msgstr ""`):
				out = p.endMultilineSpan(ctx, out, spanLines, spanText.String(), spanStart, lineNo, line)
				state = stateNormal
				spanLines = spanLines[:0]
				spanText.Reset()
			default:
				// Unexpected line inside a multiline span. Pass it
				// through without resetting the span; parsing continues
				// in the current state.
				log.Warnf("line %d: unexpected line in multiline span: %s", lineNo, trimmed)
				p.Stats.Errors++
				out = append(out, line)
			}
		}
	}

	if state == stateMultiline {
		// Unterminated span at end of input: never lose lines.
		log.Warnf("unterminated multiline msgid starting at line %d", spanStart)
		p.Stats.Errors++
		out = append(out, spanLines...)
	}

	return strings.Join(out, "\n")
}

// processSingleLine handles a single-line msgid in NORMAL state.
func (p *Processor) processSingleLine(ctx context.Context, lineNo int, line string) {
	m := singleMsgidPattern.FindStringSubmatch(line)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return
	}
	original := m[1]
	lineRange := fmt.Sprintf("%d", lineNo)

	translated, err := p.translateText(ctx, original)
	if err != nil {
		p.record(lineRange, StatusError, original, "", err)
		p.Stats.Failed++
		return
	}
	p.record(lineRange, StatusSuccess, original, translated, nil)
	p.Stats.Success++
}

// endMultilineSpan finishes a multiline span at its msgstr line. The
// buffered msgid lines are always emitted verbatim; on success the msgstr
// line is followed by the reflowed translation, on failure or empty source
// text the msgstr line is passed through unchanged.
func (p *Processor) endMultilineSpan(ctx context.Context, out, spanLines []string, text string, spanStart, lineNo int, msgstrLine string) []string {
	out = append(out, spanLines...)
	defer func() { p.Stats.TotalEntries++ }()

	if strings.TrimSpace(text) == "" {
		p.Stats.Skipped++
		return append(out, msgstrLine)
	}

	lineRange := fmt.Sprintf("%d-%d", spanStart+1, lineNo-1)
	translated, err := p.translateText(ctx, text)
	if err != nil {
		p.record(lineRange, StatusError, text, "", err)
		p.Stats.Failed++
		return append(out, msgstrLine)
	}

	p.record(lineRange, StatusSuccess, text, translated, nil)
	p.Stats.Success++
	out = append(out, msgstrLine)

	textLines := 0
	for _, l := range spanLines[1:] {
		if strings.HasPrefix(strings.TrimSpace(l), `"`) {
			textLines++
		}
	}
	return append(out, ReflowTranslation(translated, textLines)...)
}

// ProcessFile translates inputFile and writes the result to outputFile.
// The output is written atomically after the whole pass; when dryrun is
// true no output file is produced. The translation log is created next to
// the input unless p.Log is already set.
func (p *Processor) ProcessFile(ctx context.Context, inputFile, outputFile string, dryrun bool) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputFile, err)
	}

	content, err := DecodeContent(data)
	if err != nil {
		return err
	}

	if p.Log == nil {
		p.Log, err = NewTranslationLog(inputFile, p.SourceLang, p.TargetLang)
		if err != nil {
			return err
		}
		defer p.Log.Close()
	}

	p.Maps.Scan(content)
	log.Infof("found %d markup patterns in %s", p.Maps.TotalTokens(), inputFile)

	result := p.ProcessContent(ctx, content)

	if dryrun {
		log.Infof("dryrun mode, not writing %s", outputFile)
		return nil
	}

	tmpFile := outputFile + ".tmp"
	if err := os.WriteFile(tmpFile, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpFile, err)
	}
	if err := os.Rename(tmpFile, outputFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to replace %s: %w", outputFile, err)
	}
	return nil
}
