package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

var (
	// ErrUnsupportedFormat is returned for an unknown --format value.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoNodeAtOffset is returned when --at points outside every node.
	ErrNoNodeAtOffset = errors.New("no node at offset")
)

const yamlIndent = 2

type treeOptions struct {
	lang   string
	output string
	format string
	at     int
}

func treeCmd(a *app) *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the syntax tree of a file",
		Long: `Parse a file with the TypeScript compiler and print its syntax tree.

Examples:
  tscbridge tree main.ts                 # Indented kind names
  tscbridge tree -f json main.ts         # Detached tree as JSON
  tscbridge tree -f yaml -o out.yaml a.ts
  tscbridge tree --at 42 main.ts         # Subtree of the node at offset 42
  cat main.ts | tscbridge tree -         # Read from stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTree(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "language", "l", "", "force dialect (ts, tsx, js, jsx)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text, json, yaml)")
	cmd.Flags().IntVar(&opts.at, "at", -1, "print only the innermost node containing this UTF-16 offset")

	return cmd
}

func (a *app) runTree(cmd *cobra.Command, path string, opts treeOptions) error {
	switch opts.format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.format)
	}

	src, err := a.openSource(cmd.Context(), path, opts.lang)
	if err != nil {
		return err
	}
	defer src.Close()

	root := src.root

	if opts.at >= 0 {
		root, err = tsc.NodeAt(src.root, opts.at)
		if err != nil {
			return err
		}

		if root == nil {
			return fmt.Errorf("%w: %d", ErrNoNodeAtOffset, opts.at)
		}
	}

	w, closeOut, err := writeOutput(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	err = writeTree(w, root, opts.format)

	return errors.Join(err, closeOut())
}

func writeTree(w io.Writer, root *tsc.Node, format string) error {
	if format == formatText {
		return root.PrintTree(w)
	}

	dump, err := tsc.Dump(root)
	if err != nil {
		return err
	}

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(dump)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err = enc.Encode(dump)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
