// builtin_math.go: arithmetic and comparison builtins.

package slip

func registerMathBuiltins(l Layer) {
	l["+"] = NativeFn("+", arithBuiltin(
		func(a, b int64) (int64, error) { return a + b, nil },
		func(a, b float64) float64 { return a + b },
	))
	l["-"] = NativeFn("-", arithBuiltin(
		func(a, b int64) (int64, error) { return a - b, nil },
		func(a, b float64) float64 { return a - b },
	))
	l["*"] = NativeFn("*", arithBuiltin(
		func(a, b int64) (int64, error) { return a * b, nil },
		func(a, b float64) float64 { return a * b },
	))
	l["/"] = NativeFn("/", arithBuiltin(
		func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, &ArgumentError{Message: "division by zero"}
			}
			return a / b, nil
		},
		func(a, b float64) float64 { return a / b },
	))
	l["="] = NativeFn("=", preludeEq)
	l["<"] = NativeFn("<", compareBuiltin(func(c int) bool { return c < 0 }))
	l[">"] = NativeFn(">", compareBuiltin(func(c int) bool { return c > 0 }))
}

// arithBuiltin builds a two-argument numeric builtin. Both operands are
// evaluated left to right; the left operand's type is inspected before the
// right operand is evaluated. Two Integers stay in intOp, any Float promotes
// the other side and goes through floatOp, anything else is not a number.
func arithBuiltin(intOp func(a, b int64) (int64, error), floatOp func(a, b float64) float64) NativeFunc {
	return func(env *Environment, args Value) (Value, error) {
		ab, err := ArgsN(args, 2)
		if err != nil {
			return Nil, err
		}
		a, err := Eval(env, ab[0])
		if err != nil {
			return Nil, err
		}
		switch a.Kind {
		case KindInteger:
			b, err := Eval(env, ab[1])
			if err != nil {
				return Nil, err
			}
			switch b.Kind {
			case KindInteger:
				n, err := intOp(a.Data.(int64), b.Data.(int64))
				if err != nil {
					return Nil, err
				}
				return Int(n), nil
			case KindFloat:
				return Float(floatOp(float64(a.Data.(int64)), b.Data.(float64))), nil
			default:
				return Nil, &NotANumberError{Value: b}
			}
		case KindFloat:
			b, err := Eval(env, ab[1])
			if err != nil {
				return Nil, err
			}
			switch b.Kind {
			case KindInteger:
				return Float(floatOp(a.Data.(float64), float64(b.Data.(int64)))), nil
			case KindFloat:
				return Float(floatOp(a.Data.(float64), b.Data.(float64))), nil
			default:
				return Nil, &NotANumberError{Value: b}
			}
		default:
			return Nil, &NotANumberError{Value: a}
		}
	}
}

func preludeEq(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 2)
	if err != nil {
		return Nil, err
	}
	return Bool(vs[0].Equal(vs[1])), nil
}

// compareBuiltin builds a two-argument numeric ordering builtin. Mixed
// Integer/Float operands are compared as floats.
func compareBuiltin(accept func(cmp int) bool) NativeFunc {
	return func(env *Environment, args Value) (Value, error) {
		vs, err := EvalArgsN(env, args, 2)
		if err != nil {
			return Nil, err
		}
		cmp, err := numericCompare(vs[0], vs[1])
		if err != nil {
			return Nil, err
		}
		return Bool(accept(cmp)), nil
	}
}

func numericCompare(a, b Value) (int, error) {
	if a.Kind == KindInteger && b.Kind == KindInteger {
		x, y := a.Data.(int64), b.Data.(int64)
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
		return 0, nil
	}
	x, err := numOperand(a)
	if err != nil {
		return 0, err
	}
	y, err := numOperand(b)
	if err != nil {
		return 0, err
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

func numOperand(v Value) (float64, error) {
	switch v.Kind {
	case KindInteger:
		return float64(v.Data.(int64)), nil
	case KindFloat:
		return v.Data.(float64), nil
	default:
		return 0, &NotANumberError{Value: v}
	}
}
