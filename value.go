// value.go: the closed runtime value model.
//
// A Value is a tagged union covering every runtime value and AST node the
// evaluator touches: cons pairs, native procedures, closures, quoted forms,
// symbols, the scalar literals and erased host data (see foreign.go). Pair
// chains double as data lists and as the call protocol, so builtin and
// user-defined procedures are indistinguishable to callers.
//
// Values are immutable after construction. Nothing in the runtime rewrites a
// Pair in place, which makes structural sharing safe and gives shared chains
// the same observable behavior as deep copies.
package slip

// Kind discriminates the active case of a Value.
type Kind int

const (
	KindNil     Kind = iota // empty list and boolean false (no payload)
	KindTrue                // boolean true (no payload)
	KindInteger             // int64
	KindFloat               // float64
	KindString              // string
	KindSymbol              // string (name, resolved via Environment)
	KindPair                // *Pair
	KindQuote               // *Value (one suppressed evaluation)
	KindNative              // *Native
	KindClosure             // *Closure
	KindForeign             // foreignData (erased host value)
)

// Value is the universal runtime carrier. Kind selects which Go type Data
// holds (see Kind constants). The zero Value is Nil.
type Value struct {
	Kind Kind
	Data any
}

// Pair is the classic two-slot cons cell. Chained through Cdr and terminated
// by Nil it forms a proper list; any other tail makes the chain dotted.
type Pair struct {
	Car Value
	Cdr Value
}

// NativeFunc is the fixed shape of every native procedure: it receives the
// active environment and the RAW, unevaluated argument list (the call form's
// tail) and decides itself which parts to evaluate.
type NativeFunc func(env *Environment, args Value) (Value, error)

// Native is a named native procedure. Two Native values are equal only when
// they are the same registration (pointer identity), never by behavior.
type Native struct {
	Name string
	Fn   NativeFunc
}

// Closure is a user-defined procedure: parameter names plus an unevaluated
// body. It captures no environment; at call time the body evaluates in the
// caller's lexical chain extended by one fresh layer binding the parameters.
type Closure struct {
	Params []string
	Body   Value
}

// Nil is the empty list / false value.
var Nil = Value{Kind: KindNil}

// True is the canonical truth value. Every value other than Nil is truthy.
var True = Value{Kind: KindTrue}

// Bool maps true to True and false to Nil.
func Bool(b bool) Value {
	if b {
		return True
	}
	return Nil
}

func Int(n int64) Value     { return Value{Kind: KindInteger, Data: n} }
func Float(f float64) Value { return Value{Kind: KindFloat, Data: f} }
func Str(s string) Value    { return Value{Kind: KindString, Data: s} }
func Sym(name string) Value { return Value{Kind: KindSymbol, Data: name} }

// Cons builds a single pair of two values.
func Cons(car, cdr Value) Value {
	return Value{Kind: KindPair, Data: &Pair{Car: car, Cdr: cdr}}
}

// Quote wraps v so that one evaluation yields v itself.
func Quote(v Value) Value {
	inner := v
	return Value{Kind: KindQuote, Data: &inner}
}

// List builds a Nil-terminated chain of pairs holding vs in order.
// List() is Nil.
func List(vs ...Value) Value {
	out := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		out = Cons(vs[i], out)
	}
	return out
}

// NativeFn wraps a native procedure as a Value.
func NativeFn(name string, fn NativeFunc) Value {
	return Value{Kind: KindNative, Data: &Native{Name: name, Fn: fn}}
}

// ClosureVal wraps a closure as a Value.
func ClosureVal(c *Closure) Value { return Value{Kind: KindClosure, Data: c} }

// Pair returns the payload of a KindPair value.
func (v Value) Pair() *Pair { return v.Data.(*Pair) }

// Inner returns the payload of a KindQuote value.
func (v Value) Inner() Value { return *v.Data.(*Value) }

// Truthy reports whether v counts as true: everything except Nil.
func (v Value) Truthy() bool { return v.Kind != KindNil }

// Equal reports structural equality. It is variant-strict: values of
// different kinds are never equal, so Int(1) does not equal Float(1).
// Natives compare by identity, closures by parameters and body, foreign
// values through the erasure boundary (false on dynamic type mismatch).
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil, KindTrue:
		return true
	case KindInteger:
		return v.Data.(int64) == o.Data.(int64)
	case KindFloat:
		return v.Data.(float64) == o.Data.(float64)
	case KindString, KindSymbol:
		return v.Data.(string) == o.Data.(string)
	case KindPair:
		a, b := v.Pair(), o.Pair()
		return a.Car.Equal(b.Car) && a.Cdr.Equal(b.Cdr)
	case KindQuote:
		return v.Inner().Equal(o.Inner())
	case KindNative:
		return v.Data.(*Native) == o.Data.(*Native)
	case KindClosure:
		a, b := v.Data.(*Closure), o.Data.(*Closure)
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return a.Body.Equal(b.Body)
	case KindForeign:
		return v.Data.(foreignData).equal(o.Data.(foreignData))
	default:
		return false
	}
}
