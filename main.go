package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/po-l10n/po-translate/cmd"
)

const (
	// Program is name for this project
	Program = "po-translate"
)

func main() {
	resp := cmd.Execute()

	if resp.Err != nil {
		errOut := resp.Cmd.ErrOrStderr()
		if cmd.IsErrorWithUsage(resp.Err) {
			fmt.Fprintf(errOut, "ERROR: %s\n\n", resp.Err)
			fmt.Fprint(errOut, resp.Cmd.UsageString())
		} else {
			fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
			cmdPath := resp.Cmd.CommandPath()
			subCmdPath := strings.TrimPrefix(cmdPath, Program+" ")
			if subCmdPath != "" && subCmdPath != Program {
				fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", Program, subCmdPath)
			}
		}
		os.Exit(1)
	}
}
