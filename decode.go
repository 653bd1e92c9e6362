// decode.go: typed argument extraction.
//
// Native procedures receive raw argument lists; the helpers here decode them
// into Go scalars, slices and fixed arities with short-circuiting failure.
// The first mismatch is returned immediately as one of the errors.go kinds;
// there are no partial results.
package slip

// AsInt decodes an Integer value.
func AsInt(v Value) (int64, error) {
	if v.Kind != KindInteger {
		return 0, &TypeError{Message: "Expression is not an Integer"}
	}
	return v.Data.(int64), nil
}

// AsFloat decodes a Float value, promoting an Integer.
func AsFloat(v Value) (float64, error) {
	switch v.Kind {
	case KindFloat:
		return v.Data.(float64), nil
	case KindInteger:
		return float64(v.Data.(int64)), nil
	default:
		return 0, &TypeError{Message: "Expression is not a Float"}
	}
}

// AsString decodes a String value.
func AsString(v Value) (string, error) {
	if v.Kind != KindString {
		return "", &TypeError{Message: "Expression is not a String"}
	}
	return v.Data.(string), nil
}

// AsPair decodes exactly one cell, returning its two slots. Deeper chains
// are fine; only the top of v must be a Pair.
func AsPair(v Value) (car, cdr Value, err error) {
	if v.Kind != KindPair {
		return Nil, Nil, &TypeError{Message: "Expression must be a Cell"}
	}
	p := v.Pair()
	return p.Car, p.Cdr, nil
}

// ListSlice collects a proper list into a slice. A malformed tail fails with
// the iterator's TypeError.
func ListSlice(v Value) ([]Value, error) {
	var out []Value
	it := NewListIter(v)
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ArgsN collects a proper list and requires exactly n elements. Structure
// errors surface before the arity check; a wrong count is an ArgumentError
// carrying expected and actual.
func ArgsN(v Value, n int) ([]Value, error) {
	args, err := ListSlice(v)
	if err != nil {
		return nil, err
	}
	if len(args) != n {
		return nil, argCountError(n, len(args))
	}
	return args, nil
}

// EvalArgsN decodes exactly n arguments and evaluates each in order. This is
// the usual entry point for natives whose arguments are all ordinary
// evaluated operands.
func EvalArgsN(env *Environment, v Value, n int) ([]Value, error) {
	args, err := ArgsN(v, n)
	if err != nil {
		return nil, err
	}
	for i := range args {
		ev, err := Eval(env, args[i])
		if err != nil {
			return nil, err
		}
		args[i] = ev
	}
	return args, nil
}
