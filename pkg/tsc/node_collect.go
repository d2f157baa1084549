package tsc

// CollectChildren applies fn to every element of the named node array and
// keeps the present results in order. fn reports absence with ok=false;
// absent results leave no slot.
func CollectChildren[T any](n *Node, name string, fn func(child *Node) (T, bool, error)) ([]T, error) {
	children, err := n.ChildNodes(name)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(children))

	for _, child := range children {
		v, ok, err := fn(child)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// MapChildren applies fn to every element of the named node array. The
// result has one slot per element; absent results are nil.
func MapChildren[T any](n *Node, name string, fn func(child *Node) (T, bool, error)) ([]*T, error) {
	children, err := n.ChildNodes(name)
	if err != nil {
		return nil, err
	}

	out := make([]*T, len(children))

	for i, child := range children {
		v, ok, err := fn(child)
		if err != nil {
			return nil, err
		}

		if ok {
			out[i] = &v
		}
	}

	return out, nil
}
