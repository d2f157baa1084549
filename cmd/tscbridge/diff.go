package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

const diffArgCount = 2

// ErrTreesDiffer is returned by diff --exit-code when the trees differ.
var ErrTreesDiffer = errors.New("syntax trees differ")

type diffOptions struct {
	lang     string
	full     bool
	exitCode bool
}

func diffCmd(a *app) *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:   "diff file1 file2",
		Short: "Compare the syntax trees of two files",
		Long: `Parse two files and show a line diff of their printed syntax trees.

Examples:
  tscbridge diff old.ts new.ts           # Changed lines only
  tscbridge diff --full old.ts new.ts    # Include unchanged lines
  tscbridge diff --exit-code a.ts b.ts   # Fail when the trees differ`,
		Args: cobra.ExactArgs(diffArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiff(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "language", "l", "", "force dialect for both files (ts, tsx, js, jsx)")
	cmd.Flags().BoolVar(&opts.full, "full", false, "print unchanged lines too")
	cmd.Flags().BoolVar(&opts.exitCode, "exit-code", false, "return an error when the trees differ")

	return cmd
}

func (a *app) runDiff(cmd *cobra.Command, file1, file2 string, opts diffOptions) error {
	left, err := a.printedTree(cmd, file1, opts.lang)
	if err != nil {
		return err
	}

	right, err := a.printedTree(cmd, file2, opts.lang)
	if err != nil {
		return err
	}

	changed, err := writeLineDiff(cmd.OutOrStdout(), left, right, opts.full)
	if err != nil {
		return err
	}

	if changed && opts.exitCode {
		return fmt.Errorf("%w: %s %s", ErrTreesDiffer, file1, file2)
	}

	return nil
}

func (a *app) printedTree(cmd *cobra.Command, path, lang string) (string, error) {
	src, err := a.openSource(cmd.Context(), path, lang)
	if err != nil {
		return "", err
	}
	defer src.Close()

	var buf bytes.Buffer

	err = src.root.PrintTree(&buf)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// writeLineDiff prints a line-level diff of left and right and reports
// whether they differ.
func writeLineDiff(w io.Writer, left, right string, full bool) (bool, error) {
	dmp := diffmatchpatch.New()

	leftChars, rightChars, lines := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(leftChars, rightChars, false), lines)

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	changed := false

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			line = strings.TrimSuffix(line, "\n")

			var err error

			switch d.Type {
			case diffmatchpatch.DiffInsert:
				changed = true
				_, err = added.Fprintf(w, "+ %s\n", line)
			case diffmatchpatch.DiffDelete:
				changed = true
				_, err = removed.Fprintf(w, "- %s\n", line)
			case diffmatchpatch.DiffEqual:
				if full {
					_, err = fmt.Fprintf(w, "  %s\n", line)
				}
			}

			if err != nil {
				return changed, err
			}
		}
	}

	return changed, nil
}
