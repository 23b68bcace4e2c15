// Command ppfmt is a minimal demonstration driver for package pp. It reads
// a toy S-expression, feeds it through the pretty-printing façade, and
// writes the formatted result to stdout or, with -o, atomically to a file.
//
// It is not a real language formatter: mapping a real syntax tree to pp
// tokens is a driver's job, not this module's.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/renameio"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:           "ppfmt [file]",
		Short:         "pretty-print a toy S-expression through package pp",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				printDebugNote(cmd.OutOrStdout())
			}

			src, err := readInput(args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			n, err := parseSexpr(src)
			if err != nil {
				return fmt.Errorf("parsing input: %w", err)
			}

			out := format(n, nil) + "\n"

			if outPath == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			return writeFileAtomic(outPath, out)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write formatted output atomically to this file instead of stdout")
	cmd.Flags().BoolVar(&debug, "debug", false, "print a note about building with -tags ppdebug to see structural markers")

	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

// writeFileAtomic persists content to path via a temp-file-plus-rename so
// readers never observe a partially written formatted output.
func writeFileAtomic(path, content string) error {
	pf, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := io.WriteString(pf, content); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

func printDebugNote(w io.Writer) {
	note := "structural markers («»‹›·) require: go build -tags ppdebug"
	if termenv.ColorProfile() != termenv.Ascii {
		note = termenv.String(note).Faint().String()
	}
	fmt.Fprintln(w, note)
}
