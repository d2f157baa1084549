package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/tscbridge/pkg/tsc"
)

type propsOptions struct {
	lang string
	at   int
	all  bool
}

func propsCmd(a *app) *cobra.Command {
	var opts propsOptions

	cmd := &cobra.Command{
		Use:   "props [file]",
		Short: "Show the properties and type of the node at an offset",
		Long: `Find the innermost node containing an offset and list its properties
along with the type checker's view of it.

Examples:
  tscbridge props --at 4 main.ts         # Own properties of the node at offset 4
  tscbridge props --at 4 --all main.ts   # Include inherited properties`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProps(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "language", "l", "", "force dialect (ts, tsx, js, jsx)")
	cmd.Flags().IntVar(&opts.at, "at", 0, "UTF-16 offset of the node")
	cmd.Flags().BoolVar(&opts.all, "all", false, "include inherited properties")

	return cmd
}

func (a *app) runProps(cmd *cobra.Command, path string, opts propsOptions) error {
	src, err := a.openSource(cmd.Context(), path, opts.lang)
	if err != nil {
		return err
	}
	defer src.Close()

	n, err := tsc.NodeAt(src.root, opts.at)
	if err != nil {
		return err
	}

	if n == nil {
		return fmt.Errorf("%w: %d", ErrNoNodeAtOffset, opts.at)
	}

	names, err := propertyNames(n, opts.all)
	if err != nil {
		return err
	}

	return a.writeProps(cmd.Context(), cmd.OutOrStdout(), n, names)
}

func propertyNames(n *tsc.Node, all bool) ([]string, error) {
	if all {
		return n.PropertyNames()
	}

	return n.OwnPropertyNames()
}

func (a *app) writeProps(ctx context.Context, w io.Writer, n *tsc.Node, names []string) error {
	kind, err := n.Kind()
	if err != nil {
		return err
	}

	start, err := n.Start()
	if err != nil {
		return err
	}

	end, err := n.End()
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle("%s [%d, %d)", kind, start, end)
	tbl.AppendHeader(table.Row{"Property", "Value"})

	for _, name := range names {
		value, describeErr := describeProperty(n, name)
		if describeErr != nil {
			a.logger.DebugContext(ctx, "property unreadable", "name", name, "error", describeErr)

			value = "?"
		}

		tbl.AppendRow(table.Row{name, sanitizeForTerminal(value)})
	}

	typeText, symbolName, err := checkerView(n)
	if err != nil {
		return err
	}

	tbl.AppendFooter(table.Row{"type", typeText})
	tbl.AppendFooter(table.Row{"symbol", symbolName})

	_, err = fmt.Fprintln(w, tbl.Render())

	return err
}

// describeProperty renders one property value. Node arrays show their
// length and nodes their kind.
func describeProperty(n *tsc.Node, name string) (string, error) {
	list, err := n.OptionalChildren(name)
	if err == nil && list != nil {
		size, lenErr := list.Len()
		if lenErr != nil {
			return "", lenErr
		}

		return fmt.Sprintf("[%d nodes]", size), nil
	}

	if err != nil && !errors.Is(err, tsc.ErrTypeMismatch) {
		return "", err
	}

	if err == nil {
		return "undefined", nil
	}

	if s, strErr := n.StringProperty(name); strErr == nil {
		return strconv.Quote(s), nil
	}

	if f, numErr := n.NumberProperty(name); numErr == nil {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}

	if b, boolErr := n.BoolProperty(name); boolErr == nil {
		return strconv.FormatBool(b), nil
	}

	child, err := n.Child(name)
	if err != nil {
		return "", err
	}

	kind, err := child.Kind()
	if err != nil {
		return "object", nil //nolint:nilerr // not every object property is a node.
	}

	return kind.String(), nil
}

func checkerView(n *tsc.Node) (typeText, symbolName string, err error) {
	typeText, symbolName = "-", "-"

	typ, err := n.TypeAtLocation()
	if err != nil {
		return "", "", err
	}

	if typ != nil {
		typeText, err = typ.Text()
		if err != nil {
			return "", "", err
		}
	}

	sym, err := n.SymbolAtLocation()
	if err != nil {
		return "", "", err
	}

	if sym != nil {
		symbolName, err = sym.Name()
		if err != nil {
			return "", "", err
		}
	}

	return typeText, symbolName, nil
}
