package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/po-l10n/po-translate/config"
	"github.com/po-l10n/po-translate/flag"
	"github.com/po-l10n/po-translate/repository"
	"github.com/po-l10n/po-translate/tmcache"
	"github.com/po-l10n/po-translate/util"
)

type translateOptions struct {
	SourceLang string
	TargetLang string
	Backend    string
	Output     string
	Timeout    int
	NoCache    bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [FILE.po]",
		Short: "Translate msgid entries in a PO file",
		Long: `Translate msgid entries in a PO file using a configured backend command.

Markup tokens ({tag}, [variable], (emotion), <bracket>) and escape
sequences are protected before the backend is called and restored in its
output. Multiline msgid entries are reassembled, translated as one text,
and reflowed over the original number of continuation lines.

If no FILE.po argument is given, po files are discovered in the current
directory (or the po/ directory of the enclosing git worktree); a single
match is used directly, multiple matches prompt for a choice.

A per-entry log file is written next to the input. Failed entries keep
their original text in the output; no line of the input is ever lost.

Examples:
  # Pick a po file interactively, translate en -> id
  po-translate translate

  # Explicit file and languages
  po-translate translate --source en --target de po/de.po

  # Use a specific backend and a longer timeout
  po-translate translate --backend deepl --timeout 60 po/id.po`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return NewErrorWithUsage("translate command expects at most one argument: FILE.po")
			}
			poFile := ""
			if len(args) == 1 {
				poFile = args[0]
			}
			return cmdTranslate(&opts, poFile)
		},
	}

	cmd.Flags().StringVar(&opts.SourceLang,
		"source",
		"",
		"source language code (default from config or git config)")
	cmd.Flags().StringVar(&opts.TargetLang,
		"target",
		"",
		"target language code (default from config or git config)")
	cmd.Flags().StringVar(&opts.Backend,
		"backend",
		"",
		"backend name to use (required if multiple backends are configured)")
	cmd.Flags().StringVarP(&opts.Output,
		"output",
		"o",
		"",
		"output file (default FILE_translated.po)")
	cmd.Flags().IntVar(&opts.Timeout,
		"timeout",
		0,
		"per-entry translation timeout in seconds (default 20)")
	cmd.Flags().BoolVar(&opts.NoCache,
		"no-cache",
		false,
		"do not use the translation memory")

	_ = viper.BindPFlag("translate--backend", cmd.Flags().Lookup("backend"))

	return cmd
}

func cmdTranslate(opts *translateOptions, poFileArg string) error {
	cfg, err := config.LoadConfig(flag.ConfigFile(), repository.WorkDirOrCwd())
	if err != nil {
		return err
	}

	sourceLang := opts.SourceLang
	if sourceLang == "" {
		sourceLang = repository.SourceLang()
	}
	if sourceLang == "" {
		sourceLang = cfg.DefaultSourceLang
	}
	targetLang := opts.TargetLang
	if targetLang == "" {
		targetLang = repository.TargetLang()
	}
	if targetLang == "" {
		targetLang = cfg.DefaultTargetLang
	}

	backend, err := util.SelectBackend(cfg, opts.Backend)
	if err != nil {
		return err
	}

	poFile, err := resolveTranslateInput(poFileArg)
	if err != nil {
		return err
	}

	outputFile := opts.Output
	if outputFile == "" {
		outputFile = util.DefaultOutputFile(poFile)
	}
	if !flag.DryRun() && !util.ConfirmOverwrite(outputFile) {
		return fmt.Errorf("will not overwrite %s", outputFile)
	}

	translator := &util.ShellTranslator{
		Backend: backend,
		Timeout: time.Duration(opts.Timeout) * time.Second,
	}

	p := util.NewProcessor(translator, sourceLang, targetLang)

	if cfg.CacheEnabled() && !opts.NoCache {
		cache, err := tmcache.Open(cfg.CachePath())
		if err != nil {
			log.Warnf("translation memory disabled: %s", err)
		} else {
			defer cache.Close()
			p.Cache = cache
		}
	}

	log.Infof("translating %s: %s -> %s",
		poFile, util.PrettyLanguage(sourceLang), util.PrettyLanguage(targetLang))

	if err := p.ProcessFile(context.Background(), poFile, outputFile, flag.DryRun()); err != nil {
		return err
	}

	log.Infof("success: %d, failed: %d, skipped: %d, entries: %d",
		p.Stats.Success, p.Stats.Failed, p.Stats.Skipped, p.Stats.TotalEntries)
	if !flag.DryRun() {
		log.Infof("output: %s", outputFile)
	}
	if p.Log != nil {
		log.Infof("log: %s", p.Log.Path())
	}
	return nil
}

// resolveTranslateInput picks the input po file: the explicit argument, or
// discovery under the project's po/ directory (falling back to the current
// directory) with interactive selection when several candidates exist.
func resolveTranslateInput(poFileArg string) (string, error) {
	if poFileArg != "" {
		return util.SelectPoFile(poFileArg, nil)
	}

	dir := "."
	if repository.Opened() {
		poDir := filepath.Join(repository.WorkDirOrCwd(), "po")
		if util.IsDir(poDir) {
			dir = poDir
		}
	}

	candidates, err := util.ListPoFiles(dir)
	if err != nil {
		return "", err
	}
	// Skip files this tool produced itself.
	filtered := candidates[:0]
	for _, f := range candidates {
		if !strings.HasSuffix(f, "_translated.po") {
			filtered = append(filtered, f)
		}
	}
	return util.SelectPoFile("", filtered)
}

func init() {
	rootCmd.AddCommand(newTranslateCmd())
}
