// Package main provides the tscbridge CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscbridge/pkg/version"
)

// Output format names shared by the commands.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

func main() {
	err := execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs one command line and always releases what setup acquired,
// including when the command fails.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{stdin: stdin, stderr: stderr}

	rootCmd := newRootCmd(a, stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)

	return errors.Join(err, a.teardown())
}

func newRootCmd(a *app, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tscbridge",
		Short: "Inspect TypeScript syntax trees through the real compiler",
		Long: `tscbridge loads the TypeScript compiler (typescript.js) into an embedded
JavaScript engine and exposes its syntax trees, scanner and type checker.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is .tscbridge.yaml in ., ./config or $HOME)")
	flags.StringVar(&a.script, "script", "", "path to typescript.js (overrides engine.script)")
	flags.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9464")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(treeCmd(a))
	rootCmd.AddCommand(tokensCmd(a))
	rootCmd.AddCommand(propsCmd(a))
	rootCmd.AddCommand(diffCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(mcpCmd(a))
	rootCmd.AddCommand(completionCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Annotations: map[string]string{annotationBare: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
