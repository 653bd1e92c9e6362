// builtin_strings.go: string builtins.

package slip

import "strings"

func registerStringBuiltins(l Layer) {
	l["concat"] = NativeFn("concat", preludeConcat)
	l["to-string"] = NativeFn("to-string", preludeToString)
}

// (concat s...) evaluates every argument, requires each to be a String and
// returns their concatenation.
func preludeConcat(env *Environment, args Value) (Value, error) {
	exprs, err := ListSlice(args)
	if err != nil {
		return Nil, err
	}
	var b strings.Builder
	for _, e := range exprs {
		v, err := Eval(env, e)
		if err != nil {
			return Nil, err
		}
		s, err := AsString(v)
		if err != nil {
			return Nil, err
		}
		b.WriteString(s)
	}
	return Str(b.String()), nil
}

// (to-string e) renders the evaluated argument the way the printer would.
func preludeToString(env *Environment, args Value) (Value, error) {
	vs, err := EvalArgsN(env, args, 1)
	if err != nil {
		return Nil, err
	}
	return Str(vs[0].String()), nil
}
