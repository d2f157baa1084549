package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

type tokensOptions struct {
	lang   string
	format string
	trivia bool
	from   int
	to     int
}

func tokensCmd(a *app) *cobra.Command {
	var opts tokensOptions

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Scan a file into tokens",
		Long: `Run the compiler's scanner over a file and list its tokens.

Offsets are UTF-16 code units, as reported by the compiler.

Examples:
  tscbridge tokens main.ts               # Table of tokens
  tscbridge tokens --trivia main.ts      # Include comments and whitespace
  tscbridge tokens --from 10 --to 40 a.ts
  tscbridge tokens -f json main.ts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokens(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "language", "l", "", "force dialect (ts, tsx, js, jsx)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.trivia, "trivia", false, "report trivia tokens")
	cmd.Flags().IntVar(&opts.from, "from", 0, "start scanning at this offset")
	cmd.Flags().IntVar(&opts.to, "to", -1, "stop at the first token starting at or past this offset")

	return cmd
}

func (a *app) runTokens(cmd *cobra.Command, path string, opts tokensOptions) error {
	if opts.format != formatTable && opts.format != formatJSON {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.format)
	}

	src, err := a.openSource(cmd.Context(), path, opts.lang)
	if err != nil {
		return err
	}
	defer src.Close()

	var scanOpts []tsc.ScannerOption
	if opts.trivia {
		scanOpts = append(scanOpts, tsc.WithTrivia())
	}

	tokens, err := scanRange(src.prog, src.text, opts.from, opts.to, scanOpts...)
	if err != nil {
		return err
	}

	if opts.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(tokens)
	}

	return writeTokenTable(cmd.OutOrStdout(), tokens)
}

// scanRange scans text from offset from until end of file or the first token
// starting at or past to. A negative to means the end of the text.
func scanRange(prog *tsc.Program, text string, from, to int, opts ...tsc.ScannerOption) ([]tsc.Token, error) {
	s, err := prog.NewScanner(text, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	err = s.Reset(from)
	if err != nil {
		return nil, err
	}

	tokens := []tsc.Token{}

	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == tsc.KindEndOfFileToken || (to >= 0 && tok.Start >= to) {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func writeTokenTable(w io.Writer, tokens []tsc.Token) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Start", "End", "Text"})

	for _, tok := range tokens {
		tbl.AppendRow(table.Row{tok.Kind.String(), tok.Start, tok.End, sanitizeForTerminal(tok.Text)})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d tokens", len(tokens))})

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}
