// eval.go: the tree-walking evaluator.
package slip

// Eval evaluates v inside env by pure recursive descent on the Go stack.
//
//   - A pair is a call: the head is evaluated; a native receives the raw,
//     unevaluated tail and decides what to evaluate; a closure is applied
//     per applyClosure; any other head is a NotAFunctionError.
//   - A quote yields its inner value with no further evaluation.
//   - A symbol resolves through the environment chain and the resolved value
//     is evaluated again, so symbols bound to quoted forms or to further
//     symbols resolve transitively.
//   - Everything else evaluates to itself.
//
// There are no suspension points; deep user recursion exhausts the Go stack,
// which is the one intentionally fatal failure mode besides the shared-layer
// reentrancy trap.
func Eval(env *Environment, v Value) (Value, error) {
	switch v.Kind {
	case KindPair:
		p := v.Pair()
		head, err := Eval(env, p.Car)
		if err != nil {
			return Nil, err
		}
		switch head.Kind {
		case KindNative:
			return head.Data.(*Native).Fn(env, p.Cdr)
		case KindClosure:
			return applyClosure(env, head.Data.(*Closure), p.Cdr)
		default:
			return Nil, &NotAFunctionError{Value: head}
		}
	case KindQuote:
		return v.Inner(), nil
	case KindSymbol:
		name := v.Data.(string)
		resolved, ok := env.Get(name)
		if !ok {
			return Nil, &SymbolNotBoundError{Name: name}
		}
		return Eval(env, resolved)
	default:
		return v, nil
	}
}

// applyClosure calls a closure: the argument list must match the parameter
// count exactly, and each parameter is bound to its RAW argument expression
// in one fresh layer overlaying the caller's environment. The body then
// evaluates there, so argument expressions and free names alike resolve
// against the call site's chain (closures capture no defining environment).
func applyClosure(env *Environment, c *Closure, args Value) (Value, error) {
	argv, err := ListSlice(args)
	if err != nil {
		return Nil, err
	}
	if len(argv) != len(c.Params) {
		return Nil, argCountError(len(c.Params), len(argv))
	}
	frame := make(Layer, len(c.Params))
	for i, name := range c.Params {
		frame[name] = argv[i]
	}
	return Eval(env.Overlay(frame), c.Body)
}
