// foreign.go: the open extensibility boundary.
//
// Host applications carry their own types through the interpreter as
// first-class values. The Value sum stays closed; openness comes from one
// erased slot (KindForeign) holding a small object-safe interface with
// exactly the operations the runtime needs: display, clone, equality,
// ordering and concrete-type recovery. A dynamic type mismatch is always a
// normal outcome (not equal / unordered / TypeError), never a panic.
//
// Wrapping is blanket: any Go type qualifies with zero per-type boilerplate.
// Capabilities upgrade when the type provides them:
//
//	display   fmt.Stringer            else %v formatting
//	equality  Equal(T) bool           else reflect.DeepEqual
//	ordering  Compare(T) (int, bool)  else unordered
//	clone     Clone() T               else Go value copy
//
// Types holding reference data (slices, maps, pointers) that extensions
// mutate should implement Clone; recovery hands out clones, so value types
// are safe by construction.
package slip

import (
	"fmt"
	"reflect"
)

// foreignData is the object-safe erased capability set. Implementations
// never know the concrete type of the other side in advance; they downcast
// and treat a mismatch as false/unordered.
type foreignData interface {
	display() string
	clone() foreignData
	equal(other foreignData) bool
	compare(other foreignData) (int, bool)
	concrete() any
}

type equaler[T any] interface{ Equal(T) bool }
type comparer[T any] interface{ Compare(T) (int, bool) }
type cloner[T any] interface{ Clone() T }

// foreignBox adapts an arbitrary host type to foreignData.
type foreignBox[T any] struct {
	val T
}

func (b *foreignBox[T]) display() string {
	if s, ok := any(b.val).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", b.val)
}

func (b *foreignBox[T]) clone() foreignData {
	return &foreignBox[T]{val: b.cloneVal()}
}

func (b *foreignBox[T]) cloneVal() T {
	if c, ok := any(b.val).(cloner[T]); ok {
		return c.Clone()
	}
	return b.val
}

func (b *foreignBox[T]) equal(other foreignData) bool {
	ob, ok := other.(*foreignBox[T])
	if !ok {
		return false
	}
	if eq, ok := any(b.val).(equaler[T]); ok {
		return eq.Equal(ob.val)
	}
	return reflect.DeepEqual(b.val, ob.val)
}

func (b *foreignBox[T]) compare(other foreignData) (int, bool) {
	ob, ok := other.(*foreignBox[T])
	if !ok {
		return 0, false
	}
	if c, ok := any(b.val).(comparer[T]); ok {
		return c.Compare(ob.val)
	}
	return 0, false
}

func (b *foreignBox[T]) concrete() any { return b.cloneVal() }

// Wrap erases a host value into a Value.
func Wrap[T any](v T) Value {
	return Value{Kind: KindForeign, Data: &foreignBox[T]{val: v}}
}

// As recovers the concrete host type from an erased value. The returned
// value is a clone; mutating it never affects bindings still holding the
// original. A non-foreign value or a dynamic type mismatch yields a
// TypeError naming the requested type.
func As[T any](v Value) (T, error) {
	var zero T
	if v.Kind != KindForeign {
		return zero, foreignTypeError[T]()
	}
	t, ok := v.Data.(foreignData).concrete().(T)
	if !ok {
		return zero, foreignTypeError[T]()
	}
	return t, nil
}

// Is reports whether v holds a foreign value recoverable as T.
func Is[T any](v Value) bool {
	if v.Kind != KindForeign {
		return false
	}
	_, ok := v.Data.(foreignData).concrete().(T)
	return ok
}

// ForeignCompare orders two erased values through the boundary. The result
// is not-ok when either value is not foreign, the dynamic types differ, or
// the type itself is unordered.
func ForeignCompare(a, b Value) (int, bool) {
	if a.Kind != KindForeign || b.Kind != KindForeign {
		return 0, false
	}
	return a.Data.(foreignData).compare(b.Data.(foreignData))
}

func foreignTypeError[T any]() error {
	return &TypeError{Message: fmt.Sprintf("Expression does not hold a foreign %s", reflect.TypeOf((*T)(nil)).Elem().String())}
}
