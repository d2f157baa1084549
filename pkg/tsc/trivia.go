package tsc

import "fmt"

// Trivia is a comment, whitespace or newline run found by the scanner.
type Trivia struct {
	Kind  SyntaxKind `json:"kind"  yaml:"kind"`
	Start int        `json:"start" yaml:"start"`
	End   int        `json:"end"   yaml:"end"`
	Text  string     `json:"text"  yaml:"text"`
}

// IsComment reports whether the trivia is a comment.
func (t Trivia) IsComment() bool { return t.Kind.IsComment() }

// CollectTrivia tokenizes text between from and to and returns the trivia
// found there. Scanning stops at the first token starting at or after to.
func (p *Program) CollectTrivia(text string, from, to int) ([]Trivia, error) {
	if from > to {
		return nil, fmt.Errorf("%w: span [%d, %d)", ErrIndexOutOfRange, from, to)
	}

	s, err := p.NewScanner(text, WithTrivia())
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err := s.Reset(from); err != nil {
		return nil, err
	}

	var out []Trivia

	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}

		if tok.Kind == KindEndOfFileToken || tok.Start >= to {
			return out, nil
		}

		if tok.Kind.IsTrivia() {
			out = append(out, Trivia(tok))
		}
	}
}

// LeadingTrivia returns the comments and whitespace between the node's full
// start and its first token.
func (targetNode *Node) LeadingTrivia() ([]Trivia, error) {
	root, err := targetNode.SourceFile()
	if err != nil {
		return nil, err
	}

	text, err := root.StringProperty("text")
	if err != nil {
		return nil, err
	}

	from, err := targetNode.Start()
	if err != nil {
		return nil, err
	}

	to, err := targetNode.TokenStart()
	if err != nil {
		return nil, err
	}

	return targetNode.prog.CollectTrivia(text, from, to)
}
