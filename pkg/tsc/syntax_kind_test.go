package tsc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

func TestKindFromCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code int
		want tsc.SyntaxKind
		name string
	}{
		{code: 0, want: tsc.KindUnknown, name: "Unknown"},
		{code: 1, want: tsc.KindEndOfFileToken, name: "EndOfFileToken"},
		{code: 8, want: tsc.KindNumericLiteral, name: "NumericLiteral"},
		{code: 79, want: tsc.KindIdentifier, name: "Identifier"},
		{code: 119, want: tsc.KindLetKeyword, name: "LetKeyword"},
		{code: 260, want: tsc.KindClassDeclaration, name: "ClassDeclaration"},
		{code: 308, want: tsc.KindSourceFile, name: "SourceFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tsc.KindFromCode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
			assert.Equal(t, tt.code, got.Code())

			byName, ok := tsc.KindByName(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.want, byName)
		})
	}
}

func TestKindFromCode_Unrecognized(t *testing.T) {
	t.Parallel()

	for _, code := range []int{-1, 361, 10000} {
		_, err := tsc.KindFromCode(code)
		require.ErrorIs(t, err, tsc.ErrUnrecognizedKind, "code %d", code)
		assert.Contains(t, err.Error(), tsc.TypeScriptVersion)
	}

	assert.Equal(t, "SyntaxKind(10000)", tsc.SyntaxKind(10000).String())

	_, ok := tsc.KindByName("NotAKind")
	assert.False(t, ok)
}

func TestSyntaxKind_Classes(t *testing.T) {
	t.Parallel()

	assert.True(t, tsc.KindNumericLiteral.IsLiteral())
	assert.True(t, tsc.KindStringLiteral.IsLiteral())
	assert.True(t, tsc.KindNoSubstitutionTemplateLiteral.IsLiteral())
	assert.False(t, tsc.KindIdentifier.IsLiteral())
	assert.False(t, tsc.KindClassDeclaration.IsLiteral())

	assert.True(t, tsc.KindWhitespaceTrivia.IsTrivia())
	assert.True(t, tsc.KindMultiLineCommentTrivia.IsComment())
	assert.False(t, tsc.KindNewLineTrivia.IsComment())
	assert.False(t, tsc.KindIdentifier.IsTrivia())

	assert.True(t, tsc.KindLetKeyword.IsKeyword())
	assert.True(t, tsc.KindOfKeyword.IsKeyword())
	assert.False(t, tsc.KindIdentifier.IsKeyword())

	assert.True(t, tsc.KindSemicolonToken.IsToken())
	assert.False(t, tsc.KindSourceFile.IsToken())
}

func TestVerifyKindTable(t *testing.T) {
	t.Parallel()

	exact := func(name string) (int, bool) {
		kind, ok := tsc.KindByName(name)

		return kind.Code(), ok
	}
	require.NoError(t, tsc.VerifyKindTable(exact))

	shifted := func(name string) (int, bool) {
		kind, ok := tsc.KindByName(name)
		if name == "SourceFile" {
			return kind.Code() + 1, ok
		}

		return kind.Code(), ok
	}

	err := tsc.VerifyKindTable(shifted)
	require.ErrorIs(t, err, tsc.ErrUnrecognizedKind)
	assert.Contains(t, err.Error(), "SourceFile is 309 in engine, 308 in table")

	missing := func(name string) (int, bool) {
		if name == "Identifier" {
			return 0, false
		}

		return exact(name)
	}

	err = tsc.VerifyKindTable(missing)
	require.ErrorIs(t, err, tsc.ErrUnrecognizedKind)
	assert.Contains(t, err.Error(), "Identifier missing from engine")
}

func TestScriptKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want tsc.ScriptKind
	}{
		{name: "main.ts", want: tsc.ScriptKindTS},
		{name: "view.tsx", want: tsc.ScriptKindTSX},
		{name: "lib/util.js", want: tsc.ScriptKindJS},
		{name: "component.jsx", want: tsc.ScriptKindJSX},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tsc.DetectScriptKind(tt.name, nil), tt.name)
	}

	kind, ok := tsc.ParseScriptKind("TypeScript")
	assert.True(t, ok)
	assert.Equal(t, tsc.ScriptKindTS, kind)
	assert.Equal(t, "TS", kind.String())

	_, ok = tsc.ParseScriptKind("cobol")
	assert.False(t, ok)
}

func TestSyntaxKind_TextEncoding(t *testing.T) {
	t.Parallel()

	tok := tsc.Token{Kind: tsc.KindLetKeyword, Start: 0, End: 3, Text: "let"}

	data, err := json.Marshal(tok)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"LetKeyword","start":0,"end":3,"text":"let"}`, string(data))

	var back tsc.Token
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tok, back)

	var kind tsc.SyntaxKind
	require.ErrorIs(t, kind.UnmarshalText([]byte("NotAKind")), tsc.ErrUnrecognizedKind)
}
