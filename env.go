// env.go: layered lexical environments with one family-shared global layer.
package slip

import "sync/atomic"

// Layer is one flat scope: a mapping from symbol names to values. Keys are
// unique; the last write wins. Extension modules populate a Layer with their
// native procedures and hand it to FromLayer or Overlay; later insertions
// silently overwrite earlier ones on name collision.
type Layer map[string]Value

// sharedLayer is the per-family global scope. Every Environment derived from
// one root references the same sharedLayer, so writes through SharedSet are
// visible family-wide regardless of lexical depth. The writing flag is a
// fail-fast reentrancy trap, not a lock: concurrent evaluation of one family
// is out of scope and a reentrant write is a bug worth crashing on.
type sharedLayer struct {
	layer   Layer
	writing atomic.Bool
}

func (s *sharedLayer) write(fn func(Layer)) {
	if !s.writing.CompareAndSwap(false, true) {
		panic("slip: reentrant shared-layer write")
	}
	defer s.writing.Store(false)
	fn(s.layer)
}

// Environment is an immutable chain of layers: the current layer, an
// optional outer environment, and the family's shared layer. Lookup order is
// current layer, then shared layer, then outer environments recursively.
//
// Environments are created on procedure entry (one fresh layer per call or
// let) and dropped on return; nothing persists beyond that except the shared
// layer and values held by still-live closures.
type Environment struct {
	layer  Layer
	outer  *Environment
	shared *sharedLayer
}

// NewEnvironment creates an empty root environment with a fresh family.
func NewEnvironment() *Environment {
	return FromLayer(Layer{})
}

// FromLayer creates a root environment whose current layer is layer,
// typically a prelude or extension registry. The layer is used as-is.
func FromLayer(layer Layer) *Environment {
	return &Environment{layer: layer, shared: &sharedLayer{layer: Layer{}}}
}

// Inner pushes a fresh empty layer, keeping the shared layer and using the
// receiver as the outer environment.
func (e *Environment) Inner() *Environment {
	return &Environment{layer: Layer{}, outer: e, shared: e.shared}
}

// Overlay pushes a pre-built layer (call-frame bindings, let bindings),
// keeping the shared layer and using the receiver as the outer environment.
func (e *Environment) Overlay(layer Layer) *Environment {
	return &Environment{layer: layer, outer: e, shared: e.shared}
}

// Get resolves name through the chain: current layer, shared layer, then
// the outer layers recursively. The shared layer sits between the current
// scope and everything outward, so a shared global shadows outer lexical
// bindings but never the current scope.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.layer[name]; ok {
		return v, true
	}
	if v, ok := e.shared.layer[name]; ok {
		return v, true
	}
	for env := e.outer; env != nil; env = env.outer {
		if v, ok := env.layer[name]; ok {
			return v, true
		}
	}
	return Nil, false
}

// Set binds name in the current layer only. The binding is invisible to
// outer environments and gone when this scope exits.
func (e *Environment) Set(name string, v Value) {
	e.layer[name] = v
}

// SharedSet binds name in the family's shared layer, making it visible to
// every environment derived from the same root. It panics if a shared write
// is already in progress (see sharedLayer).
func (e *Environment) SharedSet(name string, v Value) {
	e.shared.write(func(l Layer) { l[name] = v })
}

// SharedGet reads name from the shared layer only, bypassing lexical layers.
func (e *Environment) SharedGet(name string) (Value, bool) {
	v, ok := e.shared.layer[name]
	return v, ok
}

// SharedUpdate runs fn against the shared layer under the reentrancy trap.
// Hosts use it to install or rewrite several globals as one step; calling
// SharedSet or SharedUpdate again from inside fn panics.
func (e *Environment) SharedUpdate(fn func(Layer)) {
	e.shared.write(fn)
}
