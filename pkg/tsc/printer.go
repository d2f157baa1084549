package tsc

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// PrintTree writes the subtree rooted at the node, one node per line,
// indented two spaces per level. Literal nodes are followed by their source
// text in parentheses.
func (targetNode *Node) PrintTree(w io.Writer) error {
	return printTree(w, targetNode, 0)
}

func printTree(w io.Writer, n *Node, depth int) error {
	kind, err := n.Kind()
	if err != nil {
		return err
	}

	line := strings.Repeat(indentUnit, depth) + kind.String()

	if kind.IsLiteral() {
		text, textErr := n.Text()
		if textErr != nil {
			return textErr
		}

		line += " (" + text + ")"
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}

	return n.ForEachChild(func(child *Node) error {
		return printTree(w, child, depth+1)
	})
}

// DumpNode is a detached copy of a subtree, for serialization.
type DumpNode struct {
	Kind     string      `json:"kind"               yaml:"kind"`
	Pos      int         `json:"pos"                yaml:"pos"`
	End      int         `json:"end"                yaml:"end"`
	Text     string      `json:"text,omitempty"     yaml:"text,omitempty"`
	Children []*DumpNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Dump copies the subtree rooted at n out of the engine. Leaves and literal
// nodes carry their source text.
func Dump(n *Node) (*DumpNode, error) {
	kind, err := n.Kind()
	if err != nil {
		return nil, err
	}

	pos, err := n.Start()
	if err != nil {
		return nil, err
	}

	end, err := n.End()
	if err != nil {
		return nil, err
	}

	out := &DumpNode{Kind: kind.String(), Pos: pos, End: end}

	err = n.ForEachChild(func(child *Node) error {
		d, childErr := Dump(child)
		if childErr != nil {
			return childErr
		}

		out.Children = append(out.Children, d)

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(out.Children) == 0 || kind.IsLiteral() {
		out.Text, err = n.Text()
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Walk visits the subtree rooted at n depth-first, parents before children.
// Returning ErrStopTraversal from fn skips the node's children.
func Walk(n *Node, fn func(n *Node, depth int) error) error {
	return walk(n, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) error) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, ErrStopTraversal) {
			return nil
		}

		return err
	}

	return n.ForEachChild(func(child *Node) error {
		return walk(child, depth+1, fn)
	})
}

// NodeAt returns the innermost node whose token span contains offset.
func NodeAt(root *Node, offset int) (*Node, error) {
	var found *Node

	err := Walk(root, func(n *Node, _ int) error {
		start, err := n.TokenStart()
		if err != nil {
			return err
		}

		end, err := n.End()
		if err != nil {
			return err
		}

		if offset < start || offset >= end {
			return ErrStopTraversal
		}

		found = n

		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}
