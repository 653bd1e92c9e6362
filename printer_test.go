// printer_test.go
package slip

import "testing"

func wantDisplay(t *testing.T, v Value, want string) {
	t.Helper()
	if got := v.String(); got != want {
		t.Fatalf("display: want %q, got %q", want, got)
	}
}

func Test_Display_Atoms(t *testing.T) {
	wantDisplay(t, Nil, "nil")
	wantDisplay(t, True, "true")
	wantDisplay(t, Int(42), "42")
	wantDisplay(t, Int(-7), "-7")
	wantDisplay(t, Sym("vadd"), "vadd")
	// strings print raw, without quotes
	wantDisplay(t, Str("hello world"), "hello world")
	wantDisplay(t, Str(""), "")
}

func Test_Display_Floats(t *testing.T) {
	wantDisplay(t, Float(1.5), "1.5")
	wantDisplay(t, Float(123.125), "123.125")
	// shortest representation, no trailing zeros
	wantDisplay(t, Float(2), "2")
	wantDisplay(t, Float(0.5), "0.5")
}

func Test_Display_Lists(t *testing.T) {
	wantDisplay(t, List(Int(1), Int(2), Int(3)), "(1 2 3)")
	wantDisplay(t, List(Sym("a"), List(Sym("b")), Sym("c")), "(a (b) c)")
	wantDisplay(t, List(Nil), "(nil)")
}

func Test_Display_Dotted_Chains(t *testing.T) {
	wantDisplay(t, Cons(Int(1), Int(2)), "(1 . 2)")
	// a non-nil tail dots every level of the chain
	wantDisplay(t, Cons(Int(1), Cons(Int(2), Int(3))), "(1 . (2 . 3))")
}

func Test_Display_Quote(t *testing.T) {
	wantDisplay(t, Quote(Sym("x")), "'x")
	wantDisplay(t, Quote(List(Int(1), Int(2))), "'(1 2)")
	wantDisplay(t, Quote(Quote(Nil)), "''nil")
}

func Test_Display_Functions(t *testing.T) {
	wantDisplay(t, NativeFn("car", nil), "<function>")
	c := &Closure{
		Params: []string{"x", "y"},
		Body:   List(Sym("+"), Sym("x"), Sym("y")),
	}
	wantDisplay(t, ClosureVal(c), "(lambda (x y) (+ x y))")
}

func Test_Display_Roundtrips_Through_Parser(t *testing.T) {
	for _, src := range []string{"(1 2 3)", "(1 . 2)", "'(a b c true nil)", "(a (b (c)) d)"} {
		vs, err := ParseString(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if len(vs) != 1 {
			t.Fatalf("want one expression for %q, got %d", src, len(vs))
		}
		if got := vs[0].String(); got != src {
			t.Fatalf("roundtrip: want %q, got %q", src, got)
		}
	}
}
