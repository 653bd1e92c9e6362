// interp.go: embedding façade.
//
// The pieces below are a convenience bundle over the real API (Parse, Eval,
// FromLayer, Prelude). Hosts that need more control, such as several
// environments over one shared family, use those directly.

package slip

import (
	"errors"
	"io"
	"os"
)

// Version is the release version of the runtime.
const Version = "0.3.0"

// Interp is an interpreter over one root environment.
type Interp struct {
	env *Environment
}

// New returns an interpreter whose root layer holds the prelude, with print
// output going to stdout.
func New() *Interp {
	return NewWriter(os.Stdout)
}

// NewWriter is New with print output going to w.
func NewWriter(w io.Writer) *Interp {
	return &Interp{env: FromLayer(PreludeWriter(w))}
}

// NewFromLayer returns an interpreter over a caller-assembled root layer,
// for hosts that bind their own natives next to the prelude.
func NewFromLayer(layer Layer) *Interp {
	return &Interp{env: FromLayer(layer)}
}

// Env exposes the root environment, mainly for registering late bindings
// through SharedSet or SharedUpdate.
func (ip *Interp) Env() *Environment {
	return ip.env
}

// Eval evaluates a single expression in the root environment.
func (ip *Interp) Eval(v Value) (Value, error) {
	return Eval(ip.env, v)
}

// EvalString parses and evaluates every expression in src in order and
// returns the value of the last one. The first parse or eval error stops
// the run. Empty input yields nil.
func (ip *Interp) EvalString(src string) (Value, error) {
	es := Parse(src)
	result := Nil
	for {
		v, err := es.Next()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return Nil, err
		}
		result, err = Eval(ip.env, v)
		if err != nil {
			return Nil, err
		}
	}
}
