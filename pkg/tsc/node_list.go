package tsc

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/dop251/goja"
)

// NodeList is a read-only live view of a node array in the engine. Length
// and elements are read from the engine on every access. Every mutator
// fails with ErrUnsupportedMutation.
type NodeList struct {
	prog  *Program
	array *goja.Object
	name  string
	err   error
}

// Name returns the property the list was read from.
func (l *NodeList) Name() string { return l.name }

func (l *NodeList) lenLocked() (int, error) {
	v := l.array.Get("length")

	n, ok := intValue(v)
	if !ok {
		return 0, &ForeignCallError{Op: "length", Err: fmt.Errorf("length is %s", typeOf(v))}
	}

	return n, nil
}

// elemLocked converts element i. Node arrays are dense, so a hole or null
// element is a missing property.
func (l *NodeList) elemLocked(i int) (*Node, error) {
	v := l.array.Get(strconv.Itoa(i))
	if isAbsent(v) {
		return nil, missingProperty(fmt.Sprintf("%s[%d]", l.name, i), KindUnknown)
	}

	obj := objectValue(v)
	if obj == nil {
		return nil, typeMismatch(fmt.Sprintf("%s[%d]", l.name, i), KindUnknown, "node", typeOf(v))
	}

	return l.prog.wrapNode(obj), nil
}

func outOfRange(i, n int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
}

// Len returns the current length of the array.
func (l *NodeList) Len() (int, error) {
	var n int

	err := l.prog.do("length", func() error {
		var err error

		n, err = l.lenLocked()

		return err
	})

	return n, err
}

// IsEmpty reports whether the array has no elements.
func (l *NodeList) IsEmpty() (bool, error) {
	n, err := l.Len()

	return n == 0, err
}

// At returns element i. Indices outside [0, Len) fail with ErrIndexOutOfRange.
func (l *NodeList) At(i int) (*Node, error) {
	var node *Node

	err := l.prog.do("at", func() error {
		n, err := l.lenLocked()
		if err != nil {
			return err
		}

		if i < 0 || i >= n {
			return outOfRange(i, n)
		}

		node, err = l.elemLocked(i)

		return err
	})

	return node, err
}

// IndexOf returns the first index holding target, or -1.
func (l *NodeList) IndexOf(target *Node) (int, error) {
	return l.search(target, false)
}

// LastIndexOf returns the last index holding target, or -1.
func (l *NodeList) LastIndexOf(target *Node) (int, error) {
	return l.search(target, true)
}

// Contains reports whether target is an element.
func (l *NodeList) Contains(target *Node) (bool, error) {
	i, err := l.IndexOf(target)

	return i >= 0, err
}

func (l *NodeList) search(target *Node, fromEnd bool) (int, error) {
	if target == nil || target.prog != l.prog {
		return -1, nil
	}

	found := -1

	err := l.prog.do("indexOf", func() error {
		want := target.object()

		n, err := l.lenLocked()
		if err != nil {
			return err
		}

		for k := range n {
			i := k
			if fromEnd {
				i = n - 1 - k
			}

			if objectValue(l.array.Get(strconv.Itoa(i))) == want {
				found = i

				return nil
			}
		}

		return nil
	})

	return found, err
}

// Slice returns elements [from, to) as a slice. The result is a copy, not a view.
func (l *NodeList) Slice(from, to int) ([]*Node, error) {
	var out []*Node

	err := l.prog.do("slice", func() error {
		n, err := l.lenLocked()
		if err != nil {
			return err
		}

		if from < 0 || from > n {
			return outOfRange(from, n)
		}

		if to < from || to > n {
			return outOfRange(to, n)
		}

		out = make([]*Node, 0, to-from)

		for i := from; i < to; i++ {
			node, err := l.elemLocked(i)
			if err != nil {
				return err
			}

			out = append(out, node)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ToSlice returns every element as a slice.
func (l *NodeList) ToSlice() ([]*Node, error) {
	n, err := l.Len()
	if err != nil {
		return nil, err
	}

	return l.Slice(0, n)
}

// All iterates the elements in order. Iteration stops at the first failure,
// which Err then reports.
func (l *NodeList) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		l.err = nil

		for i := 0; ; i++ {
			n, err := l.Len()
			if err != nil {
				l.err = err

				return
			}

			if i >= n {
				return
			}

			node, err := l.At(i)
			if err != nil {
				l.err = err

				return
			}

			if !yield(i, node) {
				return
			}
		}
	}
}

// Err returns the failure that ended the last All iteration, if any.
func (l *NodeList) Err() error { return l.err }

// Iterator returns a bidirectional cursor positioned before element start.
func (l *NodeList) Iterator(start int) (*ListIterator, error) {
	n, err := l.Len()
	if err != nil {
		return nil, err
	}

	if start < 0 || start > n {
		return nil, outOfRange(start, n)
	}

	return &ListIterator{list: l, cursor: start}, nil
}

// Append fails with ErrUnsupportedMutation.
func (l *NodeList) Append(*Node) error { return l.mutation("append") }

// Insert fails with ErrUnsupportedMutation.
func (l *NodeList) Insert(int, *Node) error { return l.mutation("insert") }

// Set fails with ErrUnsupportedMutation.
func (l *NodeList) Set(int, *Node) error { return l.mutation("set") }

// RemoveAt fails with ErrUnsupportedMutation.
func (l *NodeList) RemoveAt(int) error { return l.mutation("remove") }

// Remove fails with ErrUnsupportedMutation.
func (l *NodeList) Remove(*Node) error { return l.mutation("remove") }

// Clear fails with ErrUnsupportedMutation.
func (l *NodeList) Clear() error { return l.mutation("clear") }

func (l *NodeList) mutation(op string) error {
	return fmt.Errorf("%s on %s: %w", op, l.name, ErrUnsupportedMutation)
}
