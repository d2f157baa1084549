package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/tscbridge/pkg/schema"
)

// ErrInvalidDump is returned when a tree dump does not match the schema.
var ErrInvalidDump = errors.New("tree dump failed schema validation")

type validateOptions struct {
	schemaPath string
	colorize   bool
	noColor    bool
}

func validateCmd(a *app) *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate a JSON tree dump against the tree schema",
		Long: `Validate the output of "tscbridge tree -f json" against the tree schema.

Examples:
  tscbridge validate tree.json
  tscbridge tree -f json main.ts | tscbridge validate -
  tscbridge validate --schema custom-schema.json tree.json`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationBare: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "path to a JSON schema (default: embedded tree schema)")
	cmd.Flags().BoolVar(&opts.colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (a *app) runValidate(w io.Writer, inputPath string, opts validateOptions) error {
	if opts.noColor {
		color.NoColor = true //nolint:reassign // library global
	} else if opts.colorize {
		color.NoColor = false //nolint:reassign // library global
	}

	data, label, err := readInput(inputPath, a.stdin)
	if err != nil {
		return err
	}

	if inputPath == stdinName {
		label = "stdin"
	}

	var doc any

	err = json.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", label, err)
	}

	schemaBytes, err := loadSchema(opts.schemaPath)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		color.New(color.FgGreen).Fprintf(w, "tree is valid (%s): %d nodes\n", label, countNodes(doc))

		return nil
	}

	color.New(color.FgRed).Fprintf(w, "tree validation failed (%s)\n", label)

	for _, verr := range result.Errors() {
		color.New(color.FgRed).Fprintf(w, "  - %s: %s\n", verr.Field(), verr.Description())
	}

	return fmt.Errorf("%w: %d errors", ErrInvalidDump, len(result.Errors()))
}

func loadSchema(path string) ([]byte, error) {
	if path == "" {
		return schema.TreeSchema()
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	return data, nil
}

func countNodes(data any) int {
	obj, ok := data.(map[string]any)
	if !ok {
		return 0
	}

	count := 1

	children, _ := obj["children"].([]any)
	for _, child := range children {
		count += countNodes(child)
	}

	return count
}
