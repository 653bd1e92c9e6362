// builtin_core.go: the special-form builtins.
//
// All of these are ordinary natives that receive their argument list
// unevaluated, so each one decides for itself what to evaluate. That is
// what makes lambda, if and friends work without a macro layer.

package slip

func registerCoreBuiltins(l Layer) {
	l["lambda"] = NativeFn("lambda", preludeLambda)
	l["defun"] = NativeFn("defun", preludeDefun)
	l["define"] = NativeFn("define", preludeDefine)
	l["if"] = NativeFn("if", preludeIf)
	l["not"] = NativeFn("not", preludeNot)
	l["let"] = NativeFn("let", preludeLet)
	l["set"] = NativeFn("set", preludeSet)
	l["eval"] = NativeFn("eval", preludeEval)
	l["progn"] = NativeFn("progn", preludeProgn)
}

// paramSymbols converts a parameter list into its symbol names.
func paramSymbols(list Value) ([]string, error) {
	elems, err := ListSlice(list)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		if e.Kind != KindSymbol {
			return nil, &NotASymbolError{Value: e}
		}
		out[i] = e.Data.(string)
	}
	return out, nil
}

// (lambda (params...) body)
func preludeLambda(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 2)
	if err != nil {
		return Nil, err
	}
	params, err := paramSymbols(ab[0])
	if err != nil {
		return Nil, err
	}
	return ClosureVal(&Closure{Params: params, Body: ab[1]}), nil
}

// (defun name (params...) body) binds name in the shared layer and
// returns the function.
func preludeDefun(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 3)
	if err != nil {
		return Nil, err
	}
	if ab[0].Kind != KindSymbol {
		return Nil, &NotASymbolError{Value: ab[0]}
	}
	params, err := paramSymbols(ab[1])
	if err != nil {
		return Nil, err
	}
	f := ClosureVal(&Closure{Params: params, Body: ab[2]})
	env.SharedSet(ab[0].Data.(string), f)
	return f, nil
}

// (define name expr) evaluates expr, binds name in the shared layer and
// returns the value. The name itself is not evaluated.
func preludeDefine(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 2)
	if err != nil {
		return Nil, err
	}
	if ab[0].Kind != KindSymbol {
		return Nil, &NotASymbolError{Value: ab[0]}
	}
	v, err := Eval(env, ab[1])
	if err != nil {
		return Nil, err
	}
	env.SharedSet(ab[0].Data.(string), v)
	return v, nil
}

// (if predicate then else) takes exactly three arguments; only the chosen
// branch is evaluated.
func preludeIf(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 3)
	if err != nil {
		return Nil, err
	}
	pred, err := Eval(env, ab[0])
	if err != nil {
		return Nil, err
	}
	if pred.Truthy() {
		return Eval(env, ab[1])
	}
	return Eval(env, ab[2])
}

func preludeNot(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 1)
	if err != nil {
		return Nil, err
	}
	return Bool(!vs[0].Truthy()), nil
}

// (let bindings body) evaluates the bindings expression, walks it as an
// alist of (symbol . expr) pairs, evaluates every value in the current
// environment and then evaluates body under one new layer holding them.
// Because the bindings expression is evaluated first, both a quoted
// alist and an expression that builds one work.
func preludeLet(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 2)
	if err != nil {
		return Nil, err
	}
	bindings, err := Eval(env, ab[0])
	if err != nil {
		return Nil, err
	}
	frame := make(Layer)
	it := NewListIter(bindings)
	for it.Next() {
		name, expr, err := AsPair(it.Value())
		if err != nil {
			return Nil, err
		}
		if name.Kind != KindSymbol {
			return Nil, &ArgumentError{Message: "Let bindings must be an alist with elements (symbol . expr)"}
		}
		v, err := Eval(env, expr)
		if err != nil {
			return Nil, err
		}
		frame[name.Data.(string)] = v
	}
	if err := it.Err(); err != nil {
		return Nil, err
	}
	return Eval(env.Overlay(frame), ab[1])
}

// (set symbol-expr expr) evaluates its first argument to obtain the symbol,
// so the common shape is (set 'x 10). The binding goes to the shared layer;
// the evaluated value is returned.
func preludeSet(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 2)
	if err != nil {
		return Nil, err
	}
	s, err := Eval(env, ab[0])
	if err != nil {
		return Nil, err
	}
	if s.Kind != KindSymbol {
		return Nil, &NotASymbolError{Value: s}
	}
	v, err := Eval(env, ab[1])
	if err != nil {
		return Nil, err
	}
	env.SharedSet(s.Data.(string), v)
	return v, nil
}

// (eval expr) evaluates expr and then evaluates the result, which undoes
// one level of quoting.
func preludeEval(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 1)
	if err != nil {
		return Nil, err
	}
	return Eval(env, vs[0])
}

// (progn e...) evaluates every argument in order and returns the last
// result, or nil for an empty body.
func preludeProgn(env *Environment, args Value) (Value, error) {
	result := Nil
	it := NewListIter(args)
	for it.Next() {
		var err error
		result, err = Eval(env, it.Value())
		if err != nil {
			return Nil, err
		}
	}
	if err := it.Err(); err != nil {
		return Nil, err
	}
	return result, nil
}
