package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/po-l10n/po-translate/util"
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat FILE.po...",
		Short: "Show entry and markup statistics for PO files",
		Long: `Show what a translate run would encounter in the given PO files:
the number of single-line and multiline entries, passthrough lines, and
markup tokens per category. No translation is performed.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return NewErrorWithUsage("stat command expects at least one FILE.po argument")
			}
			return cmdStat(args)
		},
	}
	return cmd
}

func cmdStat(poFiles []string) error {
	for _, poFile := range poFiles {
		data, err := os.ReadFile(poFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", poFile, err)
		}
		content, err := util.DecodeContent(data)
		if err != nil {
			return err
		}

		stats := util.AnalyzePoContent(content)
		fmt.Printf("%s:\n", poFile)
		fmt.Printf("  lines:              %d\n", stats.TotalLines)
		fmt.Printf("  single-line msgids: %d\n", stats.SingleLineEntries)
		fmt.Printf("  multiline msgids:   %d\n", stats.MultilineEntries)
		fmt.Printf("  empty msgids:       %d\n", stats.EmptyEntries)
		fmt.Printf("  passthrough lines:  %d\n", stats.PassthroughLines)
		fmt.Printf("  markup tokens:      {} %d, [] %d, () %d, <> %d\n",
			stats.Tokens[util.CategoryTag],
			stats.Tokens[util.CategoryVar],
			stats.Tokens[util.CategoryEmotion],
			stats.Tokens[util.CategoryBracket])
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newStatCmd())
}
