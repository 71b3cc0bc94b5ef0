// Command assembler assembles one or more source files, base name by base
// name, into their object, entry and externals files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tenbit-asm/assembler/asm"
)

var (
	verbose bool
	keepAM  bool
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assembler <file> [file...]",
		Short: "Assemble source files into object, entry and externals files",
		Long: "assembler takes one or more base names without extension, reads\n" +
			"<name>.as from disk, and writes <name>.ob on success, plus <name>.ent\n" +
			"and <name>.ext when the program has entries or external references.\n" +
			"Every file given is processed even if an earlier one fails;\n" +
			"the command exits non-zero if any file failed to assemble.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         runAssemble,
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each file as it is processed")
	cmd.Flags().BoolVar(&keepAM, "keep-am", true, "keep the expanded .am source after a successful build")

	return cmd
}

func runAssemble(cmd *cobra.Command, args []string) error {
	failed := false

	for _, base := range args {
		if verbose {
			fmt.Fprintf(os.Stderr, "assembling %s\n", base)
		}

		if _, err := asm.Build(base, keepAM); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", base, err)
			failed = true
			continue
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "%s: ok\n", base)
		}
	}

	if failed {
		return fmt.Errorf("one or more files failed to assemble")
	}
	return nil
}
