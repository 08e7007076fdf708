// Package repository provides optional git repository discovery. When
// po-translate runs inside a git worktree, the project root is used for po
// file discovery and "po-translate.*" git config keys supply defaults.
package repository

import (
	"os"

	"github.com/jiangxin/goconfig"
)

// Repository holds repository and error.
type Repository struct {
	repository *goconfig.Repository
	error      error
}

var theRepository Repository

// Open will try to find repository in dir.
func (v *Repository) Open(dir string) error {
	v.repository, v.error = goconfig.FindRepository(dir)
	return v.error
}

// OpenRepository will try to find repository in dir. Not being inside a
// repository is fine; callers check Opened().
func OpenRepository(dir string) {
	_ = theRepository.Open(dir)
}

// Opened returns true if a repository was successfully opened.
func Opened() bool {
	return theRepository.error == nil && theRepository.repository != nil
}

// WorkDirOrCwd returns the worktree root when a repository is opened,
// otherwise the current working directory.
func WorkDirOrCwd() string {
	if Opened() {
		return theRepository.repository.WorkDir()
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// ConfigGet returns the value of a git config key (e.g.
// "po-translate.sourcelang"), or "" when not in a repository or unset.
func ConfigGet(key string) string {
	if !Opened() {
		return ""
	}
	return theRepository.repository.Config().Get(key)
}

// SourceLang returns the po-translate.sourcelang git config value, if any.
func SourceLang() string {
	return ConfigGet("po-translate.sourcelang")
}

// TargetLang returns the po-translate.targetlang git config value, if any.
func TargetLang() string {
	return ConfigGet("po-translate.targetlang")
}
