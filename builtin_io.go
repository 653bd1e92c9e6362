// builtin_io.go: output builtins.

package slip

import (
	"fmt"
	"io"
)

func registerOutputBuiltins(l Layer, w io.Writer) {
	l["println"] = NativeFn("println", printBuiltin(w, true))
	l["print"] = NativeFn("print", printBuiltin(w, false))
}

// printBuiltin renders the single evaluated argument to w and passes the
// value through, so prints can be chained inside larger expressions.
func printBuiltin(w io.Writer, newline bool) NativeFunc {
	return func(env *Environment, args Value) (Value, error) {
		vs, err := EvalArgsN(env, args, 1)
		if err != nil {
			return Nil, err
		}
		if newline {
			fmt.Fprintln(w, vs[0])
		} else {
			fmt.Fprint(w, vs[0])
		}
		return vs[0], nil
	}
}
