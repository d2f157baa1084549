package tsc

import (
	"fmt"

	"github.com/dop251/goja"
)

// Checker answers semantic queries through the engine's type checker.
type Checker struct {
	prog *Program
}

// TypeAtLocation returns the type of n, or nil when there is none.
func (c *Checker) TypeAtLocation(n *Node) (*Type, error) {
	return n.TypeAtLocation()
}

// SymbolAtLocation returns the symbol n refers to, or nil when there is none.
func (c *Checker) SymbolAtLocation(n *Node) (*Symbol, error) {
	return n.SymbolAtLocation()
}

// TypeToString renders t the way the compiler prints it in diagnostics.
func (c *Checker) TypeToString(t *Type) (string, error) {
	var out string

	err := c.prog.do("typeToString", func() error {
		checker, err := c.prog.typeChecker()
		if err != nil {
			return err
		}

		v, err := invoke(checker, "typeToString", t.object())
		if err != nil {
			return err
		}

		out = v.String()

		return nil
	})

	return out, err
}

// Type is a checker type. Like nodes, one *Type exists per engine type.
type Type struct {
	prog   *Program
	handle int
}

func (t *Type) object() *goja.Object { return t.prog.reg.types.object(t.handle) }

// Flags returns the engine's TypeFlags bit set.
func (t *Type) Flags() (int, error) {
	var out int

	err := t.prog.do("typeFlags", func() error {
		v := t.object().Get("flags")

		n, ok := intValue(v)
		if !ok {
			return typeMismatch("flags", KindUnknown, "integer", typeOf(v))
		}

		out = n

		return nil
	})

	return out, err
}

// Text renders the type through the checker.
func (t *Type) Text() (string, error) {
	return (&Checker{prog: t.prog}).TypeToString(t)
}

// Symbol returns the symbol that declares the type, or nil.
func (t *Type) Symbol() (*Symbol, error) {
	var out *Symbol

	err := t.prog.do("getSymbol", func() error {
		v := t.object().Get("symbol")
		if isAbsent(v) {
			return nil
		}

		obj := objectValue(v)
		if obj == nil {
			return typeMismatch("symbol", KindUnknown, "object", typeOf(v))
		}

		out = t.prog.wrapSymbol(obj)

		return nil
	})

	return out, err
}

// Symbol is a checker symbol. One *Symbol exists per engine symbol.
type Symbol struct {
	prog   *Program
	handle int
}

func (s *Symbol) object() *goja.Object { return s.prog.reg.symbols.object(s.handle) }

// Name returns the symbol's declared name.
func (s *Symbol) Name() (string, error) {
	var out string

	err := s.prog.do("symbolName", func() error {
		v := s.object().Get("escapedName")
		if isMissing(v) {
			v = s.object().Get("name")
		}

		name, ok := scalar[string](v)
		if !ok {
			return typeMismatch("escapedName", KindUnknown, "string", typeOf(v))
		}

		out = name

		return nil
	})

	return out, err
}

// Flags returns the engine's SymbolFlags bit set.
func (s *Symbol) Flags() (int, error) {
	var out int

	err := s.prog.do("symbolFlags", func() error {
		v := s.object().Get("flags")

		n, ok := intValue(v)
		if !ok {
			return typeMismatch("flags", KindUnknown, "integer", typeOf(v))
		}

		out = n

		return nil
	})

	return out, err
}

// Declarations returns the nodes that declare the symbol.
func (s *Symbol) Declarations() ([]*Node, error) {
	var out []*Node

	err := s.prog.do("declarations", func() error {
		v := s.object().Get("declarations")
		if isAbsent(v) {
			return nil
		}

		arr := objectValue(v)
		if arr == nil {
			return typeMismatch("declarations", KindUnknown, "array", typeOf(v))
		}

		list := &NodeList{prog: s.prog, array: arr, name: "declarations"}

		n, err := list.lenLocked()
		if err != nil {
			return err
		}

		out = make([]*Node, 0, n)

		for i := range n {
			node, err := list.elemLocked(i)
			if err != nil {
				return err
			}

			out = append(out, node)
		}

		return nil
	})

	return out, err
}

func (s *Symbol) String() string {
	name, err := s.Name()
	if err != nil {
		return fmt.Sprintf("Symbol(%d)", s.handle)
	}

	return name
}
