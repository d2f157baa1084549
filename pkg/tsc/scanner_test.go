package tsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

func newScanner(t *testing.T, text string, opts ...tsc.ScannerOption) *tsc.Scanner {
	t.Helper()

	prog := openProgram(t, map[string]string{"main.ts": ""})

	s, err := prog.NewScanner(text, opts...)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestScanner_FirstTokens(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "let x = 1;")
	require.NoError(t, s.Reset(0))

	kind, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, tsc.KindLetKeyword, kind)
	assert.True(t, kind.IsKeyword())

	text, err := s.TokenText()
	require.NoError(t, err)
	assert.Equal(t, "let", text)

	start, err := s.TokenStart()
	require.NoError(t, err)
	assert.Equal(t, 0, start)

	end, err := s.TokenEnd()
	require.NoError(t, err)
	assert.Equal(t, 3, end)

	kind, err = s.Scan()
	require.NoError(t, err)
	assert.Equal(t, tsc.KindIdentifier, kind)

	text, err = s.TokenText()
	require.NoError(t, err)
	assert.Equal(t, "x", text)
}

func TestScanner_TokenStream(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "let x = 1;")

	var kinds []tsc.SyntaxKind

	for {
		tok, err := s.Next()
		require.NoError(t, err)

		kinds = append(kinds, tok.Kind)
		if tok.Kind == tsc.KindEndOfFileToken {
			assert.Equal(t, 10, tok.Start)
			assert.Equal(t, 10, tok.End)

			break
		}
	}

	assert.Equal(t, []tsc.SyntaxKind{
		tsc.KindLetKeyword,
		tsc.KindIdentifier,
		tsc.KindEqualsToken,
		tsc.KindNumericLiteral,
		tsc.KindSemicolonToken,
		tsc.KindEndOfFileToken,
	}, kinds)

	kind, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, tsc.KindEndOfFileToken, kind)
}

func TestScanner_NoTokenBeforeScan(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "let x = 1;")

	_, err := s.TokenText()
	require.ErrorIs(t, err, tsc.ErrNoToken)

	_, err = s.Scan()
	require.NoError(t, err)

	require.NoError(t, s.Reset(4))

	_, err = s.TokenStart()
	require.ErrorIs(t, err, tsc.ErrNoToken)

	_, err = s.TokenEnd()
	require.ErrorIs(t, err, tsc.ErrNoToken)

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, tsc.Token{Kind: tsc.KindIdentifier, Start: 4, End: 5, Text: "x"}, tok)
}

func TestScanner_ResetBounds(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "let")

	require.ErrorIs(t, s.Reset(-1), tsc.ErrIndexOutOfRange)
	require.ErrorIs(t, s.Reset(4), tsc.ErrIndexOutOfRange)
	require.NoError(t, s.Reset(3))
	assert.Equal(t, "let", s.Text())
}

func TestScanner_Trivia(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "/* a */ let // b\nx", tsc.WithTrivia())
	assert.False(t, s.SkipsTrivia())

	var tokens []tsc.Token

	for {
		tok, err := s.Next()
		require.NoError(t, err)

		if tok.Kind == tsc.KindEndOfFileToken {
			break
		}

		tokens = append(tokens, tok)
	}

	assert.Equal(t, []tsc.Token{
		{Kind: tsc.KindMultiLineCommentTrivia, Start: 0, End: 7, Text: "/* a */"},
		{Kind: tsc.KindWhitespaceTrivia, Start: 7, End: 8, Text: " "},
		{Kind: tsc.KindLetKeyword, Start: 8, End: 11, Text: "let"},
		{Kind: tsc.KindWhitespaceTrivia, Start: 11, End: 12, Text: " "},
		{Kind: tsc.KindSingleLineCommentTrivia, Start: 12, End: 16, Text: "// b"},
		{Kind: tsc.KindNewLineTrivia, Start: 16, End: 17, Text: "\n"},
		{Kind: tsc.KindIdentifier, Start: 17, End: 18, Text: "x"},
	}, tokens)
}

func TestProgram_Tokens(t *testing.T) {
	t.Parallel()

	prog := openProgram(t, map[string]string{"main.ts": ""})

	tokens, err := prog.Tokens("a /* c */ b")
	require.NoError(t, err)
	assert.Equal(t, []tsc.Token{
		{Kind: tsc.KindIdentifier, Start: 0, End: 1, Text: "a"},
		{Kind: tsc.KindIdentifier, Start: 10, End: 11, Text: "b"},
	}, tokens)

	tokens, err = prog.Tokens("a /* c */ b", tsc.WithTrivia())
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, tsc.KindMultiLineCommentTrivia, tokens[2].Kind)

	tokens, err = prog.Tokens("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestScanner_Close(t *testing.T) {
	t.Parallel()

	prog := openProgram(t, map[string]string{"main.ts": ""})

	s, err := prog.NewScanner("let x")
	require.NoError(t, err)
	assert.True(t, s.SkipsTrivia())

	_, err = s.Scan()
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Scan()
	require.ErrorIs(t, err, tsc.ErrScannerClosed)

	_, err = s.TokenText()
	require.ErrorIs(t, err, tsc.ErrScannerClosed)

	require.ErrorIs(t, s.Reset(0), tsc.ErrScannerClosed)
}

func TestScanner_CloseAfterProgramClosed(t *testing.T) {
	t.Parallel()

	prog, err := openFixture(t, "")
	require.NoError(t, err)

	s, err := prog.NewScanner("let x")
	require.NoError(t, err)

	require.NoError(t, prog.Close())

	_, err = s.Scan()
	require.ErrorIs(t, err, tsc.ErrContextClosed)

	require.NoError(t, s.Close())
}

func TestScanner_UTF16Offsets(t *testing.T) {
	t.Parallel()

	s := newScanner(t, "'😀' x")

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, tsc.KindStringLiteral, tok.Kind)
	assert.Equal(t, 4, tok.End)

	tok, err = s.Next()
	require.NoError(t, err)
	assert.Equal(t, tsc.Token{Kind: tsc.KindIdentifier, Start: 5, End: 6, Text: "x"}, tok)

	require.NoError(t, s.Reset(6))
	require.ErrorIs(t, s.Reset(7), tsc.ErrIndexOutOfRange)
}

func TestProgram_CollectTrivia(t *testing.T) {
	t.Parallel()

	prog := openProgram(t, map[string]string{"main.ts": ""})

	text := "let a = 1; // one\n/* two */ let b;"

	trivia, err := prog.CollectTrivia(text, 10, 29)
	require.NoError(t, err)

	var comments []string

	for _, tr := range trivia {
		if tr.IsComment() {
			comments = append(comments, tr.Text)
		}
	}

	assert.Equal(t, []string{"// one", "/* two */"}, comments)

	_, err = prog.CollectTrivia(text, 5, 2)
	require.ErrorIs(t, err, tsc.ErrIndexOutOfRange)
}

func TestNode_LeadingTrivia(t *testing.T) {
	t.Parallel()

	root := parse(t, "let a = 1;\n// about b\nlet b = 2;")

	stmts, err := root.Children("statements")
	require.NoError(t, err)

	second, err := stmts.At(1)
	require.NoError(t, err)

	trivia, err := second.LeadingTrivia()
	require.NoError(t, err)
	require.Len(t, trivia, 3)
	assert.Equal(t, tsc.KindNewLineTrivia, trivia[0].Kind)
	assert.Equal(t, tsc.Trivia{Kind: tsc.KindSingleLineCommentTrivia, Start: 11, End: 21, Text: "// about b"}, trivia[1])
	assert.Equal(t, tsc.KindNewLineTrivia, trivia[2].Kind)
}
