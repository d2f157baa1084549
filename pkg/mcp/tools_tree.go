package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

func (s *Server) handleTree(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input TreeInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if err := validateCodeInput(input.Code); err != nil {
		return errorResult(err)
	}

	kind, ok := tsc.ParseScriptKind(input.Language)
	if !ok {
		return errorResult(fmt.Errorf("%w: %s", ErrUnsupportedLanguage, input.Language))
	}

	if kind == tsc.ScriptKindUnknown {
		kind = tsc.ScriptKindTS
	}

	name := syntheticFilename(kind)

	prog, err := s.open(ctx, name, input.Code, kind)
	if err != nil {
		return errorResult(err)
	}
	defer prog.Close()

	root, err := prog.SourceFile(name)
	if err != nil {
		return errorResult(err)
	}

	if input.At != nil {
		root, err = tsc.NodeAt(root, *input.At)
		if err != nil {
			return errorResult(err)
		}

		if root == nil {
			return errorResult(fmt.Errorf("%w: %d", ErrBadOffset, *input.At))
		}
	}

	var tree strings.Builder

	if err := root.PrintTree(&tree); err != nil {
		return errorResult(err)
	}

	dump, err := tsc.Dump(root)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(TreeResult{Tree: tree.String(), Root: dump})
}
