// Package util provides file selection utilities for po operations.
package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// ListPoFiles returns the po files directly under dir, sorted by name.
func ListPoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".po") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// SelectPoFile resolves the po file to use: either the user-specified one
// or one selected from the candidates (auto when 1, interactive when
// multiple and running on a terminal).
func SelectPoFile(poFileArg string, candidates []string) (string, error) {
	if poFileArg != "" {
		if !IsFile(poFileArg) {
			return "", fmt.Errorf("po file does not exist: %s", poFileArg)
		}
		return poFileArg, nil
	}

	switch len(candidates) {
	case 0:
		return "", fmt.Errorf("no po files found\nHint: Specify a po file explicitly or run in a directory containing *.po files")
	case 1:
		log.Infof("auto-selected po file: %s", candidates[0])
		return candidates[0], nil
	}

	// Multiple files: interactive mode asks user, non-interactive errors
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("Found %d po files:\n", len(candidates))
		for i, f := range candidates {
			size := int64(0)
			if fi, err := os.Stat(f); err == nil {
				size = fi.Size() / 1024
			}
			fmt.Printf("  [%d] %s (%d KB)\n", i+1, f, size)
		}
		answer := GetUserInput(fmt.Sprintf("Select file (1-%d): ", len(candidates)), "1")
		var idx int
		if _, err := fmt.Sscanf(answer, "%d", &idx); err != nil || idx < 1 || idx > len(candidates) {
			return "", fmt.Errorf("invalid selection: %s", answer)
		}
		poFile := candidates[idx-1]
		log.Infof("user selected po file: %s", poFile)
		return poFile, nil
	}
	return "", fmt.Errorf("multiple po files found (%s), specify one explicitly in non-interactive mode",
		strings.Join(candidates, ", "))
}

// ConfirmOverwrite asks before replacing an existing file. A missing
// target or a non-interactive run proceeds without asking.
func ConfirmOverwrite(path string) bool {
	if !Exist(path) {
		return true
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		log.Warnf("overwriting %s", path)
		return true
	}
	answer := GetUserInput(fmt.Sprintf("%s exists, overwrite? (y/N) ", path), "no")
	return AnswerIsTrue(answer)
}

// DefaultOutputFile derives the output file name from the input:
// po/id.po -> po/id_translated.po.
func DefaultOutputFile(inputFile string) string {
	base := strings.TrimSuffix(inputFile, ".po")
	return base + "_translated.po"
}
