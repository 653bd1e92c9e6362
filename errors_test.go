// errors_test.go
package slip

import (
	"errors"
	"testing"
)

func Test_Error_Message_Formats(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&SymbolNotBoundError{Name: "ghost"}, "Symbol ghost is not bound"},
		{&NotAFunctionError{Value: Int(1)}, "Expression 1 is not a function"},
		{&NotANumberError{Value: Sym("abc")}, "Expression abc is not a number"},
		{&ArgumentError{Message: "Expected 2 arguments, got 3"}, "Argument error: Expected 2 arguments, got 3"},
		{&ArgumentError{Message: "division by zero"}, "Argument error: division by zero"},
		{&TypeError{Message: "Expression is not an Integer"}, "Type error: Expression is not an Integer"},
		{&NotASymbolError{Value: Float(1.5)}, "Expression 1.5 is not a symbol"},
		{&RuntimeError{Message: "open /nope: no such file"}, "Runtime error: open /nope: no such file"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("want %q, got %q", c.want, got)
		}
	}
}

// Values embedded in messages render in display form, so a string operand
// appears without quotes and a list with its parentheses.
func Test_Error_Messages_Use_Display_Form(t *testing.T) {
	err := &NotANumberError{Value: Str("a")}
	if got, want := err.Error(), "Expression a is not a number"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	err2 := &NotAFunctionError{Value: List(Int(1), Int(2))}
	if got, want := err2.Error(), "Expression (1 2) is not a function"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func Test_Host_Branches_On_Error_Kinds(t *testing.T) {
	ip := New()

	_, err := ip.EvalString("(ghost 1 2)")
	var nb *SymbolNotBoundError
	if !errors.As(err, &nb) {
		t.Fatalf("want SymbolNotBoundError, got %#v", err)
	}
	if nb.Name != "ghost" {
		t.Fatalf("want name %q, got %q", "ghost", nb.Name)
	}

	_, err = ip.EvalString(`(+ 1 "a")`)
	var nn *NotANumberError
	if !errors.As(err, &nn) {
		t.Fatalf("want NotANumberError, got %#v", err)
	}
	if nn.Value.Kind != KindString {
		t.Fatalf("want the string operand in the error, got %#v", nn.Value)
	}

	_, err = ip.EvalString("(car 5)")
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("want TypeError, got %#v", err)
	}

	_, err = ip.EvalString("(lambda (7) 7)")
	var ns *NotASymbolError
	if !errors.As(err, &ns) {
		t.Fatalf("want NotASymbolError, got %#v", err)
	}

	_, err = ip.EvalString("(+ 1)")
	var ae *ArgumentError
	if !errors.As(err, &ae) {
		t.Fatalf("want ArgumentError, got %#v", err)
	}
}
