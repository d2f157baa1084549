package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

func (s *Server) handleTokens(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input TokensInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if err := validateCodeInput(input.Code); err != nil {
		return errorResult(err)
	}

	prog, err := s.open(ctx, syntheticFilename(tsc.ScriptKindTS), input.Code, tsc.ScriptKindTS)
	if err != nil {
		return errorResult(err)
	}
	defer prog.Close()

	var opts []tsc.ScannerOption
	if input.Trivia {
		opts = append(opts, tsc.WithTrivia())
	}

	tokens, err := prog.Tokens(input.Code, opts...)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(TokensResult{Tokens: tokens})
}
