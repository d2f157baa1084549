package tsc

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// Node is a typed view of one syntax tree node living in the engine.
// A program hands out exactly one *Node per engine node, so pointer
// equality is node identity. Every accessor crosses into the engine.
type Node struct {
	prog   *Program
	handle int
}

// Program returns the program that owns the node.
func (targetNode *Node) Program() *Program { return targetNode.prog }

// object returns the engine node. Callers hold prog.mu.
func (targetNode *Node) object() *goja.Object {
	return targetNode.prog.reg.nodes.object(targetNode.handle)
}

// kindLocked reads the kind for error messages; failures read as Unknown.
func (targetNode *Node) kindLocked() SyntaxKind {
	code, ok := intValue(targetNode.object().Get("kind"))
	if !ok {
		return KindUnknown
	}

	kind, err := KindFromCode(code)
	if err != nil {
		return KindUnknown
	}

	return kind
}

func (targetNode *Node) intProperty(op, name string) (int, error) {
	var out int

	err := targetNode.prog.do(op, func() error {
		v := targetNode.object().Get(name)
		if isMissing(v) {
			return missingProperty(name, targetNode.kindLocked())
		}

		n, ok := intValue(v)
		if !ok {
			return typeMismatch(name, targetNode.kindLocked(), "integer", typeOf(v))
		}

		out = n

		return nil
	})

	return out, err
}

func (targetNode *Node) intMethod(method string) (int, error) {
	var out int

	err := targetNode.prog.do(method, func() error {
		v, err := invoke(targetNode.object(), method)
		if err != nil {
			return err
		}

		n, ok := intValue(v)
		if !ok {
			return &ForeignCallError{Op: method, Err: fmt.Errorf("returned %s, want integer", typeOf(v))}
		}

		out = n

		return nil
	})

	return out, err
}

// KindCode returns the raw engine discriminant.
func (targetNode *Node) KindCode() (int, error) {
	return targetNode.intProperty("kind", "kind")
}

// Kind returns the node's syntax kind.
func (targetNode *Node) Kind() (SyntaxKind, error) {
	code, err := targetNode.KindCode()
	if err != nil {
		return KindUnknown, err
	}

	return KindFromCode(code)
}

// Start returns the full start offset, leading trivia included.
func (targetNode *Node) Start() (int, error) {
	return targetNode.intProperty("pos", "pos")
}

// End returns the end offset.
func (targetNode *Node) End() (int, error) {
	return targetNode.intProperty("end", "end")
}

// TokenStart returns the offset of the node's first token, after leading trivia.
func (targetNode *Node) TokenStart() (int, error) {
	return targetNode.intMethod("getStart")
}

// ChildCount returns the number of structural children the engine reports.
func (targetNode *Node) ChildCount() (int, error) {
	return targetNode.intMethod("getChildCount")
}

// Text returns the source text the engine associates with the node.
func (targetNode *Node) Text() (string, error) {
	var out string

	err := targetNode.prog.do("getText", func() error {
		v, err := invoke(targetNode.object(), "getText")
		if err != nil {
			return err
		}

		s, ok := v.Export().(string)
		if !ok {
			return &ForeignCallError{Op: "getText", Err: fmt.Errorf("returned %s, want string", typeOf(v))}
		}

		out = s

		return nil
	})

	return out, err
}

// Parent returns the enclosing node, or nil at the root.
func (targetNode *Node) Parent() (*Node, error) {
	return targetNode.Child("parent")
}

// SourceFile returns the root node of the file containing this node.
func (targetNode *Node) SourceFile() (*Node, error) {
	var root *Node

	err := targetNode.prog.do("getSourceFile", func() error {
		v, err := invoke(targetNode.object(), "getSourceFile")
		if err != nil {
			return err
		}

		obj := objectValue(v)
		if obj == nil {
			return &ForeignCallError{Op: "getSourceFile", Err: fmt.Errorf("returned %s", typeOf(v))}
		}

		root = targetNode.prog.wrapNode(obj)

		return nil
	})

	return root, err
}

// Child returns the node held by the named property, or nil when the
// property is null or undefined.
func (targetNode *Node) Child(name string) (*Node, error) {
	var child *Node

	err := targetNode.prog.do("child", func() error {
		v := targetNode.object().Get(name)
		if isAbsent(v) {
			return nil
		}

		obj := objectValue(v)
		if obj == nil {
			return typeMismatch(name, targetNode.kindLocked(), "node", typeOf(v))
		}

		child = targetNode.prog.wrapNode(obj)

		return nil
	})

	return child, err
}

// RequiredChild is Child for properties the grammar guarantees. Absence
// fails with ErrMissingProperty.
func (targetNode *Node) RequiredChild(name string) (*Node, error) {
	child, err := targetNode.Child(name)
	if err != nil {
		return nil, err
	}

	if child == nil {
		kind, kindErr := targetNode.Kind()
		if kindErr != nil {
			kind = KindUnknown
		}

		return nil, missingProperty(name, kind)
	}

	return child, nil
}

// Children returns a live view of the named node array. A missing or null
// property fails with ErrMissingProperty.
func (targetNode *Node) Children(name string) (*NodeList, error) {
	list, err := targetNode.OptionalChildren(name)
	if err != nil {
		return nil, err
	}

	if list == nil {
		kind, kindErr := targetNode.Kind()
		if kindErr != nil {
			kind = KindUnknown
		}

		return nil, missingProperty(name, kind)
	}

	return list, nil
}

// OptionalChildren is Children for arrays the engine may leave undefined,
// such as modifiers. It returns nil when the property is absent.
func (targetNode *Node) OptionalChildren(name string) (*NodeList, error) {
	var list *NodeList

	err := targetNode.prog.do("children", func() error {
		v := targetNode.object().Get(name)
		if isAbsent(v) {
			return nil
		}

		obj := objectValue(v)
		if obj == nil || obj.ClassName() != "Array" {
			return typeMismatch(name, targetNode.kindLocked(), "array", typeOf(v))
		}

		list = &NodeList{prog: targetNode.prog, array: obj, name: name}

		return nil
	})

	return list, err
}

// ChildNodes returns the named node array as a slice.
func (targetNode *Node) ChildNodes(name string) ([]*Node, error) {
	list, err := targetNode.Children(name)
	if err != nil {
		return nil, err
	}

	return list.ToSlice()
}

// BoolProperty reads a boolean property. A property of another type fails
// with ErrTypeMismatch; a missing one with ErrMissingProperty.
func (targetNode *Node) BoolProperty(name string) (bool, error) {
	var out bool

	err := targetNode.prog.do("boolProperty", func() error {
		v := targetNode.object().Get(name)
		if isMissing(v) {
			return missingProperty(name, targetNode.kindLocked())
		}

		b, ok := scalar[bool](v)
		if !ok {
			return typeMismatch(name, targetNode.kindLocked(), "boolean", typeOf(v))
		}

		out = b

		return nil
	})

	return out, err
}

// StringProperty reads a string property, with BoolProperty's error rules.
func (targetNode *Node) StringProperty(name string) (string, error) {
	var out string

	err := targetNode.prog.do("stringProperty", func() error {
		v := targetNode.object().Get(name)
		if isMissing(v) {
			return missingProperty(name, targetNode.kindLocked())
		}

		s, ok := scalar[string](v)
		if !ok {
			return typeMismatch(name, targetNode.kindLocked(), "string", typeOf(v))
		}

		out = s

		return nil
	})

	return out, err
}

// NumberProperty reads a numeric property, with BoolProperty's error rules.
func (targetNode *Node) NumberProperty(name string) (float64, error) {
	var out float64

	err := targetNode.prog.do("numberProperty", func() error {
		v := targetNode.object().Get(name)
		if isMissing(v) {
			return missingProperty(name, targetNode.kindLocked())
		}

		if typeOf(v) != "number" {
			return typeMismatch(name, targetNode.kindLocked(), "number", typeOf(v))
		}

		out = v.ToFloat()

		return nil
	})

	return out, err
}

// scalar exports a primitive engine value as T. Objects never match, so a
// boxed Boolean is not a boolean.
func scalar[T bool | string](v goja.Value) (T, bool) {
	var zero T

	if _, isObj := v.(*goja.Object); isObj || goja.IsNull(v) {
		return zero, false
	}

	out, ok := v.Export().(T)

	return out, ok
}

// HasProperty reports whether the named property exists on the node. It
// never fails; any lookup failure reads as absent.
func (targetNode *Node) HasProperty(name string) bool {
	found := false

	err := targetNode.prog.do("hasProperty", func() error {
		found = !isMissing(targetNode.object().Get(name))

		return nil
	})
	if err != nil {
		return false
	}

	return found
}

// PropertyNames lists every enumerable property visible on the node,
// inherited ones included.
func (targetNode *Node) PropertyNames() ([]string, error) {
	return targetNode.names("propertyNames")
}

// OwnPropertyNames lists the properties declared directly on the node.
func (targetNode *Node) OwnPropertyNames() ([]string, error) {
	return targetNode.names("ownPropertyNames")
}

func (targetNode *Node) names(helper string) ([]string, error) {
	var out []string

	err := targetNode.prog.do(helper, func() error {
		call, err := targetNode.prog.eng.Helper(helper)
		if err != nil {
			return err
		}

		v, err := call(goja.Undefined(), targetNode.object())
		if err != nil {
			return err
		}

		if err := targetNode.prog.rt.ExportTo(v, &out); err != nil {
			return &ForeignCallError{Op: helper, Err: err}
		}

		return nil
	})

	return out, err
}

// Same reports whether other wraps the same engine node.
func (targetNode *Node) Same(other *Node) bool {
	return targetNode == other
}

// TypeAtLocation returns the checker's type for the node, or nil when the
// checker has none.
func (targetNode *Node) TypeAtLocation() (*Type, error) {
	var out *Type

	err := targetNode.prog.do("getTypeAtLocation", func() error {
		obj, err := targetNode.checkerQuery("getTypeAtLocation")
		if obj != nil {
			out = targetNode.prog.wrapType(obj)
		}

		return err
	})

	return out, err
}

// SymbolAtLocation returns the checker's symbol for the node, or nil when
// the checker has none.
func (targetNode *Node) SymbolAtLocation() (*Symbol, error) {
	var out *Symbol

	err := targetNode.prog.do("getSymbolAtLocation", func() error {
		obj, err := targetNode.checkerQuery("getSymbolAtLocation")
		if obj != nil {
			out = targetNode.prog.wrapSymbol(obj)
		}

		return err
	})

	return out, err
}

func (targetNode *Node) checkerQuery(method string) (*goja.Object, error) {
	checker, err := targetNode.prog.typeChecker()
	if err != nil {
		return nil, err
	}

	v, err := invoke(checker, method, targetNode.object())
	if err != nil {
		return nil, err
	}

	if isAbsent(v) {
		return nil, nil
	}

	obj := objectValue(v)
	if obj == nil {
		return nil, &ForeignCallError{Op: method, Err: fmt.Errorf("returned %s", typeOf(v))}
	}

	return obj, nil
}

// ForEachChild visits the node's structural children in engine order.
// Returning ErrStopTraversal from fn stops the walk without error; any other
// error stops it and is returned. fn runs with no foreign call in flight, so
// it may call back into the program.
func (targetNode *Node) ForEachChild(fn func(*Node) error) error {
	prog := targetNode.prog

	var children []*Node

	err := prog.do("forEachChild", func() error {
		var visitErr error

		visit := func(call goja.FunctionCall) goja.Value {
			obj := objectValue(call.Argument(0))
			if obj == nil {
				visitErr = &ForeignCallError{Op: "forEachChild", Err: fmt.Errorf("visited %s", typeOf(call.Argument(0)))}

				return prog.rt.ToValue(true)
			}

			children = append(children, prog.wrapNode(obj))

			return goja.Undefined()
		}

		cb, release := prog.asCallback(visit)
		defer release()

		if _, err := invoke(targetNode.object(), "forEachChild", cb); err != nil {
			return err
		}

		return visitErr
	})
	if err != nil {
		return err
	}

	for i, child := range children {
		if i > 0 && prog.Closed() {
			return fmt.Errorf("forEachChild: %w", ErrContextClosed)
		}

		if err := fn(child); err != nil {
			if errors.Is(err, ErrStopTraversal) {
				return nil
			}

			return err
		}
	}

	return nil
}
