package tsc

// ListIterator walks a NodeList in either direction. The cursor sits between
// elements: Next returns the element after it, Previous the one before.
type ListIterator struct {
	list   *NodeList
	cursor int
}

// HasNext reports whether Next would return an element. Engine failures read as false.
func (it *ListIterator) HasNext() bool {
	n, err := it.list.Len()

	return err == nil && it.cursor < n
}

// HasPrevious reports whether Previous would return an element.
func (it *ListIterator) HasPrevious() bool {
	return it.cursor > 0
}

// Next returns the element after the cursor and advances it.
func (it *ListIterator) Next() (*Node, error) {
	node, err := it.list.At(it.cursor)
	if err != nil {
		return nil, err
	}

	it.cursor++

	return node, nil
}

// Previous returns the element before the cursor and moves it back.
func (it *ListIterator) Previous() (*Node, error) {
	node, err := it.list.At(it.cursor - 1)
	if err != nil {
		return nil, err
	}

	it.cursor--

	return node, nil
}

// NextIndex returns the index Next would read.
func (it *ListIterator) NextIndex() int { return it.cursor }

// PreviousIndex returns the index Previous would read, -1 at the front.
func (it *ListIterator) PreviousIndex() int { return it.cursor - 1 }

// Set fails with ErrUnsupportedMutation.
func (it *ListIterator) Set(*Node) error { return it.list.mutation("set") }

// Add fails with ErrUnsupportedMutation.
func (it *ListIterator) Add(*Node) error { return it.list.mutation("add") }

// Remove fails with ErrUnsupportedMutation.
func (it *ListIterator) Remove() error { return it.list.mutation("remove") }
