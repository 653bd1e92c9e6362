// decode_test.go
package slip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func wantDecodeError(t *testing.T, err error, want string) {
	t.Helper()
	if err == nil {
		t.Fatalf("want error %q, got none", want)
	}
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func Test_AsInt(t *testing.T) {
	n, err := AsInt(Int(42))
	if err != nil || n != 42 {
		t.Fatalf("want 42, got %d (err %v)", n, err)
	}
	// no demotion: a float is not an integer
	_, err = AsInt(Float(42))
	wantDecodeError(t, err, "Type error: Expression is not an Integer")
	_, err = AsInt(Str("42"))
	wantDecodeError(t, err, "Type error: Expression is not an Integer")
}

func Test_AsFloat_Promotes_Integers(t *testing.T) {
	f, err := AsFloat(Float(1.5))
	if err != nil || f != 1.5 {
		t.Fatalf("want 1.5, got %v (err %v)", f, err)
	}
	f, err = AsFloat(Int(3))
	if err != nil || f != 3 {
		t.Fatalf("want 3, got %v (err %v)", f, err)
	}
	_, err = AsFloat(Str("1.5"))
	wantDecodeError(t, err, "Type error: Expression is not a Float")
}

func Test_AsString(t *testing.T) {
	s, err := AsString(Str("hi"))
	if err != nil || s != "hi" {
		t.Fatalf("want hi, got %q (err %v)", s, err)
	}
	_, err = AsString(Int(1))
	wantDecodeError(t, err, "Type error: Expression is not a String")
}

func Test_AsPair(t *testing.T) {
	car, cdr, err := AsPair(Cons(Int(1), Str("rest")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !car.Equal(Int(1)) || !cdr.Equal(Str("rest")) {
		t.Fatalf("want (1 . rest), got (%s . %s)", car, cdr)
	}
	_, _, err = AsPair(Nil)
	wantDecodeError(t, err, "Type error: Expression must be a Cell")
	_, _, err = AsPair(Int(1))
	wantDecodeError(t, err, "Type error: Expression must be a Cell")
}

func Test_ListSlice(t *testing.T) {
	got, err := ListSlice(List(Int(1), Int(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Value{Int(1), Int(2)}, got); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
	got, err = ListSlice(Nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty slice for nil, got %v (err %v)", got, err)
	}
	_, err = ListSlice(Cons(Int(1), Int(2)))
	wantDecodeError(t, err, "Type error: Expected a cell or nil")
}

func Test_ArgsN(t *testing.T) {
	got, err := ArgsN(List(Int(1), Int(2)), 2)
	if err != nil || len(got) != 2 {
		t.Fatalf("want 2 args, got %v (err %v)", got, err)
	}
	_, err = ArgsN(List(Int(1), Int(2), Int(3)), 2)
	wantDecodeError(t, err, "Argument error: Expected 2 arguments, got 3")
	_, err = ArgsN(Nil, 1)
	wantDecodeError(t, err, "Argument error: Expected 1 arguments, got 0")
	// structure errors beat the arity check
	_, err = ArgsN(Cons(Int(1), Int(2)), 2)
	wantDecodeError(t, err, "Type error: Expected a cell or nil")
}

func Test_EvalArgsN(t *testing.T) {
	env := FromLayer(Layer{"x": Int(5)})
	got, err := EvalArgsN(env, List(Sym("x"), Int(2)), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]Value{Int(5), Int(2)}, got); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	_, err = EvalArgsN(env, List(Sym("ghost")), 1)
	wantDecodeError(t, err, "Symbol ghost is not bound")
}
