package tsc

import (
	"fmt"
	"unicode/utf16"

	"github.com/dop251/goja"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc/engine"
)

type scannerState int

const (
	scannerPositioned scannerState = iota
	scannerScanned
	scannerClosed
)

// Scanner is a cursor over raw text driven by the engine's own tokenizer.
// Offsets are in UTF-16 code units, as the engine counts them. A Scanner is
// not safe for concurrent use and must be closed.
type Scanner struct {
	prog       *Program
	obj        *goja.Object
	text       string
	length     int
	skipTrivia bool
	state      scannerState
}

// ScannerOption configures a Scanner.
type ScannerOption func(*scannerConfig)

type scannerConfig struct {
	skipTrivia bool
}

// WithTrivia makes the scanner report comments, whitespace and newlines.
func WithTrivia() ScannerOption {
	return func(c *scannerConfig) {
		c.skipTrivia = false
	}
}

// NewScanner opens a scanner over text positioned at offset 0.
func (p *Program) NewScanner(text string, opts ...ScannerOption) (*Scanner, error) {
	cfg := scannerConfig{skipTrivia: p.skipTrivia}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Scanner{
		prog:       p,
		text:       text,
		length:     utf16Len(text),
		skipTrivia: cfg.skipTrivia,
	}

	err := p.do("createScanner", func() error {
		v, err := p.eng.Call(engine.HelperCreateScanner, cfg.skipTrivia)
		if err != nil {
			return err
		}

		s.obj = objectValue(v)
		if s.obj == nil {
			return &ForeignCallError{Op: "createScanner", Err: fmt.Errorf("returned %s", typeOf(v))}
		}

		if _, err := invoke(s.obj, "setText", p.rt.ToValue(text)); err != nil {
			return err
		}

		_, err = invoke(s.obj, "setTextPos", p.rt.ToValue(0))

		return err
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}

// Text returns the text being scanned.
func (s *Scanner) Text() string { return s.text }

// SkipsTrivia reports whether trivia tokens are skipped.
func (s *Scanner) SkipsTrivia() bool { return s.skipTrivia }

// Reset moves the cursor to offset and discards the current token.
func (s *Scanner) Reset(offset int) error {
	if s.state == scannerClosed {
		return ErrScannerClosed
	}

	if offset < 0 || offset > s.length {
		return outOfRange(offset, s.length)
	}

	err := s.prog.do("setTextPos", func() error {
		_, err := invoke(s.obj, "setTextPos", s.prog.rt.ToValue(offset))

		return err
	})
	if err != nil {
		return err
	}

	s.state = scannerPositioned

	return nil
}

// Scan advances to the next token and returns its kind. At the end of the
// text it keeps returning KindEndOfFileToken.
func (s *Scanner) Scan() (SyntaxKind, error) {
	if s.state == scannerClosed {
		return KindUnknown, ErrScannerClosed
	}

	var code int

	err := s.prog.do("scan", func() error {
		v, err := invoke(s.obj, "scan")
		if err != nil {
			return err
		}

		n, ok := intValue(v)
		if !ok {
			return &ForeignCallError{Op: "scan", Err: fmt.Errorf("returned %s, want integer", typeOf(v))}
		}

		code = n

		return nil
	})
	if err != nil {
		return KindUnknown, err
	}

	kind, err := KindFromCode(code)
	if err != nil {
		return KindUnknown, err
	}

	s.state = scannerScanned

	return kind, nil
}

func (s *Scanner) tokenQuery(methods ...string) (goja.Value, error) {
	switch s.state {
	case scannerClosed:
		return nil, ErrScannerClosed
	case scannerPositioned:
		return nil, ErrNoToken
	}

	var out goja.Value

	err := s.prog.do(methods[0], func() error {
		for _, method := range methods {
			if !hasMethod(s.obj, method) {
				continue
			}

			v, err := invoke(s.obj, method)
			if err != nil {
				return err
			}

			out = v

			return nil
		}

		return &ForeignCallError{Op: methods[0], Err: errNotFunction}
	})

	return out, err
}

func (s *Scanner) tokenOffset(methods ...string) (int, error) {
	v, err := s.tokenQuery(methods...)
	if err != nil {
		return 0, err
	}

	n, ok := intValue(v)
	if !ok {
		return 0, &ForeignCallError{Op: methods[0], Err: fmt.Errorf("returned %s, want integer", typeOf(v))}
	}

	return n, nil
}

// TokenStart returns the start offset of the current token.
func (s *Scanner) TokenStart() (int, error) {
	// Later compiler releases renamed getTokenPos to getTokenStart.
	return s.tokenOffset("getTokenPos", "getTokenStart")
}

// TokenEnd returns the end offset of the current token.
func (s *Scanner) TokenEnd() (int, error) {
	return s.tokenOffset("getTextPos", "getTokenEnd")
}

// TokenText returns the source text of the current token.
func (s *Scanner) TokenText() (string, error) {
	v, err := s.tokenQuery("getTokenText")
	if err != nil {
		return "", err
	}

	text, ok := v.Export().(string)
	if !ok {
		return "", &ForeignCallError{Op: "getTokenText", Err: fmt.Errorf("returned %s, want string", typeOf(v))}
	}

	return text, nil
}

// Token is one scanned token.
type Token struct {
	Kind  SyntaxKind `json:"kind"  yaml:"kind"`
	Start int        `json:"start" yaml:"start"`
	End   int        `json:"end"   yaml:"end"`
	Text  string     `json:"text"  yaml:"text"`
}

// Next scans one token and returns it with its offsets and text.
func (s *Scanner) Next() (Token, error) {
	kind, err := s.Scan()
	if err != nil {
		return Token{}, err
	}

	start, err := s.TokenStart()
	if err != nil {
		return Token{}, err
	}

	end, err := s.TokenEnd()
	if err != nil {
		return Token{}, err
	}

	text, err := s.TokenText()
	if err != nil {
		return Token{}, err
	}

	return Token{Kind: kind, Start: start, End: end, Text: text}, nil
}

// Close releases the engine cursor. It is idempotent and never fails;
// release failures are logged and dropped.
func (s *Scanner) Close() error {
	if s.state == scannerClosed {
		return nil
	}

	s.state = scannerClosed

	err := s.prog.do("releaseScanner", func() error {
		_, err := invoke(s.obj, "setText", s.prog.rt.ToValue(""))

		return err
	})
	if err != nil {
		s.prog.logger.Debug("scanner release failed", "error", err)
	}

	s.obj = nil

	return nil
}

// Tokens scans all of text and returns every token before end of file.
func (p *Program) Tokens(text string, opts ...ScannerOption) ([]Token, error) {
	s, err := p.NewScanner(text, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var tokens []Token

	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == KindEndOfFileToken {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}
