// Package main generates pkg/tsc/syntax_kind_table.go from the SyntaxKind
// enumeration of a TypeScript compiler script.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

const loadTimeout = time.Minute

// ErrGap is returned when the enumeration skips a code.
var ErrGap = errors.New("kind codes are not contiguous")

var (
	scriptPath string
	outputPath string
	release    string
)

var tableTemplate = template.Must(template.New("table").Parse(`// Code generated by tools/kindgen from the TypeScript {{.Release}} SyntaxKind enumeration. DO NOT EDIT.

package tsc

// TypeScriptVersion is the compiler release the kind table was generated from.
const TypeScriptVersion = "{{.Release}}"

// Syntax kinds, numbered as the engine numbers them.
const (
{{- range $i, $name := .Names}}
	Kind{{$name}}{{if eq $i 0}} SyntaxKind = iota{{end}}
{{- end}}

	kindCount
)

var kindNames = [kindCount]string{
{{- range .Names}}
	"{{.}}",
{{- end}}
}
`))

func main() {
	flag.StringVar(&scriptPath, "script", "typescript.js", "path to the compiler script")
	flag.StringVar(&outputPath, "o", "pkg/tsc/syntax_kind_table.go", "output file")
	flag.StringVar(&release, "release", "", "release recorded in the table (default: engine major.minor)")
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	eng, err := engine.New(ctx, engine.Config{Script: scriptPath})
	if err != nil {
		return err
	}

	names, err := eng.KindNames()
	if err != nil {
		return err
	}

	ordered, err := canonicalNames(names, eng.KindCode)
	if err != nil {
		return err
	}

	if release == "" {
		release = majorMinor(eng.Version())
	}

	src, err := render(release, ordered)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, src, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	fmt.Printf("Generated %d kinds for TypeScript %s\n", len(ordered), release)

	return nil
}

// canonicalNames orders names by code, keeping the first name declared for
// each code. Later names are range markers such as FirstToken.
func canonicalNames(names []string, lookup func(string) (int, bool)) ([]string, error) {
	byCode := make(map[int]string, len(names))
	maxCode := -1

	for _, name := range names {
		code, ok := lookup(name)
		if !ok {
			continue
		}

		if _, seen := byCode[code]; !seen {
			byCode[code] = name
		}

		maxCode = max(maxCode, code)
	}

	out := make([]string, 0, maxCode+1)

	for code := 0; code <= maxCode; code++ {
		name, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: no name for %d", ErrGap, code)
		}

		out = append(out, name)
	}

	return out, nil
}

func majorMinor(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}

	return parts[0] + "." + parts[1]
}

func render(release string, names []string) ([]byte, error) {
	var buf bytes.Buffer

	err := tableTemplate.Execute(&buf, struct {
		Release string
		Names   []string
	}{release, names})
	if err != nil {
		return nil, fmt.Errorf("render table: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format table: %w", err)
	}

	return src, nil
}
