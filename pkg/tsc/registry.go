package tsc

import "github.com/dop251/goja"

// arena interns engine objects by identity. The slot index is the handle
// wrappers carry, so a wrapper never holds the engine object itself and the
// whole arena can be dropped in one step when the program closes.
type arena[W any] struct {
	byObject map[*goja.Object]W
	objects  []*goja.Object
}

func newArena[W any]() *arena[W] {
	return &arena[W]{byObject: make(map[*goja.Object]W)}
}

// intern returns the wrapper cached for obj, creating it with mk on first sight.
func (a *arena[W]) intern(obj *goja.Object, mk func(handle int) W) W {
	if w, ok := a.byObject[obj]; ok {
		return w
	}

	handle := len(a.objects)
	a.objects = append(a.objects, obj)
	w := mk(handle)
	a.byObject[obj] = w

	return w
}

func (a *arena[W]) object(handle int) *goja.Object {
	if handle < 0 || handle >= len(a.objects) {
		return nil
	}

	return a.objects[handle]
}

func (a *arena[W]) len() int { return len(a.objects) }

// registry is the per-program conversion registry: one wrapper per engine
// object for nodes, types and symbols.
type registry struct {
	nodes   *arena[*Node]
	types   *arena[*Type]
	symbols *arena[*Symbol]
}

func newRegistry() *registry {
	return &registry{
		nodes:   newArena[*Node](),
		types:   newArena[*Type](),
		symbols: newArena[*Symbol](),
	}
}

// RegistryStats counts the wrappers a program has handed out.
type RegistryStats struct {
	Nodes   int
	Types   int
	Symbols int
}

func (r *registry) stats() RegistryStats {
	return RegistryStats{Nodes: r.nodes.len(), Types: r.types.len(), Symbols: r.symbols.len()}
}

func (p *Program) wrapNode(obj *goja.Object) *Node {
	return p.reg.nodes.intern(obj, func(handle int) *Node {
		return &Node{prog: p, handle: handle}
	})
}

func (p *Program) wrapType(obj *goja.Object) *Type {
	return p.reg.types.intern(obj, func(handle int) *Type {
		return &Type{prog: p, handle: handle}
	})
}

func (p *Program) wrapSymbol(obj *goja.Object) *Symbol {
	return p.reg.symbols.intern(obj, func(handle int) *Symbol {
		return &Symbol{prog: p, handle: handle}
	})
}
