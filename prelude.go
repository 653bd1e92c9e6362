// prelude.go: the standard builtin layer.

package slip

import (
	"io"
	"os"
)

// Prelude returns a fresh layer with every standard builtin bound, with
// print and println writing to stdout. The layer is typically installed as
// an environment's root layer via FromLayer.
func Prelude() Layer {
	return PreludeWriter(os.Stdout)
}

// PreludeWriter is Prelude with print and println writing to w.
func PreludeWriter(w io.Writer) Layer {
	l := make(Layer)
	registerMathBuiltins(l)
	registerCoreBuiltins(l)
	registerOutputBuiltins(l, w)
	registerListBuiltins(l)
	registerStringBuiltins(l)
	return l
}
