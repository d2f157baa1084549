package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscbridge/pkg/mcp"
	"github.com/Sumatoshi-tech/tscbridge/pkg/observability"
)

const mcpCommandName = "mcp"

func mcpCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   mcpCommandName,
		Short: "Start an MCP server on stdio",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes the compiler as tools that agents can discover and invoke:
  - ts_tree: parse code and return its syntax tree
  - ts_tokens: scan code into tokens`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := a.newMCPServer()
			if err != nil {
				return err
			}

			if list {
				for _, name := range srv.ListToolNames() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}

				return nil
			}

			a.logger.InfoContext(cmd.Context(), "mcp server starting", "script", a.cfg.Engine.Script)

			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the tool names and exit")

	return cmd
}

func (a *app) newMCPServer() (*mcp.Server, error) {
	red, err := observability.NewREDMetrics(a.providers.Meter)
	if err != nil {
		return nil, err
	}

	return mcp.NewServer(mcp.ServerDeps{
		Engines: a.newEngine,
		Logger:  a.logger,
		Metrics: red,
		Calls:   a.calls,
		Tracer:  a.providers.Tracer,
	}), nil
}
