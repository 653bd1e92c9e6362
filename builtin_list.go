// builtin_list.go: pair and list builtins.

package slip

func registerListBuiltins(l Layer) {
	l["cons"] = NativeFn("cons", preludeCons)
	l["car"] = NativeFn("car", preludeCar)
	l["cdr"] = NativeFn("cdr", preludeCdr)
	l["list"] = NativeFn("list", preludeList)
	l["append"] = NativeFn("append", preludeAppend)
	l["map"] = NativeFn("map", preludeMap)
}

func preludeCons(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 2)
	if err != nil {
		return Nil, err
	}
	return Cons(vs[0], vs[1]), nil
}

func preludeCar(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 1)
	if err != nil {
		return Nil, err
	}
	car, _, err := AsPair(vs[0])
	if err != nil {
		return Nil, err
	}
	return car, nil
}

func preludeCdr(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 1)
	if err != nil {
		return Nil, err
	}
	_, cdr, err := AsPair(vs[0])
	if err != nil {
		return Nil, err
	}
	return cdr, nil
}

// (list e...) evaluates every argument and returns them as a fresh list.
func preludeList(env *Environment, args Value) (Value, error) {
	exprs, err := ListSlice(args)
	if err != nil {
		return Nil, err
	}
	out := make([]Value, len(exprs))
	for i, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return Nil, err
		}
		out[i] = v
	}
	return List(out...), nil
}

// (append l...) evaluates every argument, requires each to be a list and
// returns their concatenation.
func preludeAppend(env *Environment, args Value) (Value, error) {
	exprs, err := ListSlice(args)
	if err != nil {
		return Nil, err
	}
	var out []Value
	for _, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return Nil, err
		}
		elems, err := ListSlice(v)
		if err != nil {
			return Nil, err
		}
		out = append(out, elems...)
	}
	return List(out...), nil
}

// (map f list) evaluates f and list, then calls f once per element by
// evaluating the call (f elem) with the element spliced in as the argument
// expression. A symbol element therefore resolves at call time. Returns the
// list of results.
func preludeMap(env *Environment, args Value) (Value, error) {
	ab, err := ArgsN(args, 2)
	if err != nil {
		return Nil, err
	}
	f, err := Eval(env, ab[0])
	if err != nil {
		return Nil, err
	}
	lv, err := Eval(env, ab[1])
	if err != nil {
		return Nil, err
	}
	elems, err := ListSlice(lv)
	if err != nil {
		return Nil, err
	}
	out := make([]Value, len(elems))
	for i, e := range elems {
		v, err := Eval(env, List(f, e))
		if err != nil {
			return Nil, err
		}
		out[i] = v
	}
	return List(out...), nil
}
