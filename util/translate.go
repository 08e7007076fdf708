package util

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"text/template"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/po-l10n/po-translate/config"
)

// DefaultTranslateTimeout bounds one backend invocation.
const DefaultTranslateTimeout = 20 * time.Second

// ErrTranslationSkipped marks text the backend must not touch: commands,
// resource paths and asset file names.
var ErrTranslationSkipped = errors.New("command skipped")

// ErrEmptyInput marks empty or whitespace-only input.
var ErrEmptyInput = errors.New("empty input")

// ErrTranslationTimeout marks a backend invocation hitting its deadline.
var ErrTranslationTimeout = errors.New("translation timeout")

// Translator turns source-language text into target-language text.
// Implementations must return the input text unchanged alongside any error,
// so callers can always fall back to the original.
type Translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error)
}

// skippedSuffixes are binary-asset extensions that mark non-translatable text.
var skippedSuffixes = []string{".png", ".jpg", ".mp3"}

// SkipReason returns a non-nil error when text must bypass translation:
// empty input, command lines starting with "@", resource paths and asset
// file names.
func SkipReason(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	if strings.HasPrefix(strings.TrimSpace(text), "@") || strings.Contains(text, "res://") {
		return ErrTranslationSkipped
	}
	for _, suffix := range skippedSuffixes {
		if strings.HasSuffix(text, suffix) {
			return ErrTranslationSkipped
		}
	}
	return nil
}

// PlaceholderVars holds key-value pairs for backend command templates.
type PlaceholderVars map[string]string

// ReplacePlaceholders replaces placeholders in a template string with
// actual values. Uses Go text/template syntax: {{.key}}, e.g. {{.source}},
// {{.target}}, {{.text}}.
func ReplacePlaceholders(tmpl string, kv PlaceholderVars) (string, error) {
	data := make(map[string]interface{})
	for k, v := range kv {
		data[k] = v
	}
	t, err := template.New("cmd").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse command template: %w", err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute command template: %w", err)
	}
	return buf.String(), nil
}

// BuildBackendCommand resolves the backend command template against vars.
func BuildBackendCommand(backend config.Backend, vars PlaceholderVars) ([]string, error) {
	if len(backend.Cmd) == 0 {
		return nil, fmt.Errorf("backend command cannot be empty")
	}
	cmd := make([]string, 0, len(backend.Cmd))
	for _, arg := range backend.Cmd {
		resolved, err := ReplacePlaceholders(arg, vars)
		if err != nil {
			return nil, err
		}
		cmd = append(cmd, resolved)
	}
	return cmd, nil
}

// SelectBackend selects a backend from the configuration. An empty name
// auto-selects when exactly one backend is configured.
func SelectBackend(cfg *config.Config, name string) (config.Backend, error) {
	if name != "" {
		backend, ok := cfg.Backends[name]
		if !ok {
			names := make([]string, 0, len(cfg.Backends))
			for k := range cfg.Backends {
				names = append(names, k)
			}
			return config.Backend{}, fmt.Errorf(
				"backend '%s' not found in configuration\nAvailable backends: %s\nHint: Check %s for configured backends",
				name, strings.Join(names, ", "), config.ConfigFileName)
		}
		return backend, nil
	}

	switch len(cfg.Backends) {
	case 0:
		return config.Backend{}, fmt.Errorf(
			"no backends configured\nHint: Add at least one backend to %s in the 'backends' section",
			config.ConfigFileName)
	case 1:
		for _, backend := range cfg.Backends {
			return backend, nil
		}
	}
	names := make([]string, 0, len(cfg.Backends))
	for k := range cfg.Backends {
		names = append(names, k)
	}
	return config.Backend{}, fmt.Errorf(
		"multiple backends configured (%s), please specify --backend",
		strings.Join(names, ", "))
}

// ShellTranslator runs a configured external command per text. It is the
// production Translator; tests use in-process fakes.
type ShellTranslator struct {
	Backend config.Backend

	// Timeout overrides the backend and default timeouts when non-zero.
	Timeout time.Duration
}

func (v *ShellTranslator) timeout() time.Duration {
	if v.Timeout > 0 {
		return v.Timeout
	}
	if v.Backend.Timeout > 0 {
		return time.Duration(v.Backend.Timeout) * time.Second
	}
	return DefaultTranslateTimeout
}

// Translate invokes the backend command once for text. The input text is
// always returned on error so the caller can keep the original.
func (v *ShellTranslator) Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error) {
	if err := SkipReason(text); err != nil {
		return text, err
	}

	cmd, err := BuildBackendCommand(v.Backend, PlaceholderVars{
		"source": sourceLang,
		"target": targetLang,
		"text":   text,
	})
	if err != nil {
		return text, err
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout())
	defer cancel()

	execCmd := exec.CommandContext(ctx, cmd[0], cmd[1:]...)
	log.Debugf("executing backend command: %s", strings.Join(cmd, " "))

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	if err := execCmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return text, ErrTranslationTimeout
		}
		if stderr.Len() > 0 {
			log.Debugf("backend stderr: %s", stderr.String())
		}
		return text, fmt.Errorf("translation command failed: %w", err)
	}

	translated, err := extractTranslation(v.Backend.Output, stdout.Bytes())
	if err != nil {
		return text, err
	}
	return translated, nil
}

// extractTranslation pulls the translated text out of backend stdout.
// Output format "json" expects a JSON object with a "translation" field
// ("text" as fallback); anything else uses trimmed stdout.
func extractTranslation(outputFormat string, stdout []byte) (string, error) {
	switch outputFormat {
	case "", "text":
		translated := strings.TrimSpace(string(stdout))
		if translated == "" {
			return "", fmt.Errorf("empty translation result")
		}
		return translated, nil
	case "json":
		result := gjson.GetBytes(stdout, "translation")
		if !result.Exists() {
			result = gjson.GetBytes(stdout, "text")
		}
		if !result.Exists() || result.String() == "" {
			return "", fmt.Errorf("no translation found in backend JSON output")
		}
		return result.String(), nil
	default:
		return "", fmt.Errorf("unknown backend output format: %s", outputFormat)
	}
}
