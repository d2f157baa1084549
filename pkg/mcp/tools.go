package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

// Tool names.
const (
	ToolNameTree   = "ts_tree"
	ToolNameTokens = "ts_tokens"
)

// MaxCodeInputBytes is the maximum allowed size for inline code input (1 MB).
const MaxCodeInputBytes = 1 << 20

// Sentinel errors for tool input validation.
var (
	ErrEmptyCode           = errors.New("code parameter is required and must not be empty")
	ErrCodeTooLarge        = errors.New("code input exceeds maximum size")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrBadOffset           = errors.New("offset outside the source text")
)

// TreeInput is the input schema for the ts_tree tool.
type TreeInput struct {
	Code     string `json:"code"               jsonschema:"TypeScript or JavaScript source text"`
	Language string `json:"language,omitempty" jsonschema:"dialect: ts, tsx, js or jsx (default ts)"`
	At       *int   `json:"at,omitempty"       jsonschema:"optional UTF-16 offset; print only the innermost node there"`
}

// TokensInput is the input schema for the ts_tokens tool.
type TokensInput struct {
	Code   string `json:"code"             jsonschema:"source text to tokenize"`
	Trivia bool   `json:"trivia,omitempty" jsonschema:"include whitespace and comment tokens"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// TreeResult is the ts_tree payload.
type TreeResult struct {
	Tree string        `json:"tree"`
	Root *tsc.DumpNode `json:"root"`
}

// TokensResult is the ts_tokens payload.
type TokensResult struct {
	Tokens []tsc.Token `json:"tokens"`
}

const (
	treeToolDescription = "Parse TypeScript or JavaScript with the embedded compiler. " +
		"Returns the indented SyntaxKind tree and a structured dump with offsets."

	tokensToolDescription = "Tokenize source text with the compiler's scanner. " +
		"Returns each token's SyntaxKind, UTF-16 offsets and text."
)

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

func validateCodeInput(code string) error {
	if code == "" {
		return ErrEmptyCode
	}

	if len(code) > MaxCodeInputBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrCodeTooLarge, len(code), MaxCodeInputBytes)
	}

	return nil
}

// syntheticFilename names the in-memory file after its dialect.
func syntheticFilename(kind tsc.ScriptKind) string {
	switch kind {
	case tsc.ScriptKindJS:
		return "input.js"
	case tsc.ScriptKindJSX:
		return "input.jsx"
	case tsc.ScriptKindTSX:
		return "input.tsx"
	default:
		return "input.ts"
	}
}
